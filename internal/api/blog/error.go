package blogs

import "DigitalLab/pkg/response"

var (
	ErrBlogNotFound    = response.NewError(404, "blog not found")
	ErrSlugTaken       = response.NewError(409, "a blog with this title already exists")
	ErrCreateBlog      = response.NewError(500, "failed to create blog")
	ErrUpdateBlog      = response.NewError(500, "failed to update blog")
	ErrDeleteBlog      = response.NewError(500, "failed to delete blog")
	ErrImagesRequired  = response.NewError(400, "at least one image is required")
	ErrTooManyImages   = response.NewError(400, "too many images")
	ErrInvalidFileType = response.NewError(400, "invalid file type")
	ErrFileTooLarge    = response.NewError(400, "file too large")
	ErrFailedToUpload  = response.NewError(500, "failed to upload file")
	ErrInvalidBlogData = response.NewError(400, "invalid blog data")
)
