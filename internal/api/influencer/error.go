package influencers

import "DigitalLab/pkg/response"

var (
	ErrInfluencerNotFound    = response.NewError(404, "influencer not found")
	ErrCreateInfluencer      = response.NewError(500, "failed to create influencer")
	ErrUpdateInfluencer      = response.NewError(500, "failed to update influencer")
	ErrDeleteInfluencer      = response.NewError(500, "failed to delete influencer")
	ErrPicRequired           = response.NewError(400, "a profile picture is required")
	ErrInvalidFileType       = response.NewError(400, "invalid file type")
	ErrFailedToUpload        = response.NewError(500, "failed to upload file")
	ErrInvalidInfluencerData = response.NewError(400, "invalid influencer data")
)
