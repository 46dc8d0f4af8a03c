package reviews

import "DigitalLab/pkg/response"

var (
	ErrReviewNotFound    = response.NewError(404, "review not found")
	ErrCreateReview      = response.NewError(500, "failed to create review")
	ErrUpdateReview      = response.NewError(500, "failed to update review")
	ErrDeleteReview      = response.NewError(500, "failed to delete review")
	ErrInvalidFileType   = response.NewError(400, "invalid file type")
	ErrFailedToUpload    = response.NewError(500, "failed to upload file")
	ErrInvalidReviewData = response.NewError(400, "invalid review data")
)
