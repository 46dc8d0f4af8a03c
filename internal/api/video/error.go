package videos

import "DigitalLab/pkg/response"

var (
	ErrVideoNotFound    = response.NewError(404, "video not found")
	ErrVideoExists      = response.NewError(409, "video already exists")
	ErrCreateVideo      = response.NewError(500, "failed to create video")
	ErrDeleteVideo      = response.NewError(500, "failed to delete video")
	ErrInvalidVideoData = response.NewError(400, "invalid video data")
)
