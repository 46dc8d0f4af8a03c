package blogService

import (
	"math"
	"mime/multipart"
	"time"

	blogs "DigitalLab/internal/api/blog"
	blogsRepository "DigitalLab/internal/api/blog/repository"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const blogImagesFolder = "digitallab_blogs"

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, imageFiles []*multipart.FileHeader) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(imageFiles) == 0 {
		return nil, blogs.ErrImagesRequired
	}
	if len(imageFiles) > blogs.MaxImagesOnCreate {
		return nil, blogs.ErrTooManyImages
	}

	for _, file := range imageFiles {
		if err := s.utils.ValidateImageFile(file); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  file.Filename,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return nil, blogs.ErrInvalidFileType
		}
	}

	// Uploads run sequentially; a failure rolls back the objects already
	// uploaded in this request so the media store holds no orphans.
	uploaded, err := s.uploadImages(ctx, imageFiles)
	if err != nil {
		return nil, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:          blogID,
		Title:       req.Title,
		Slug:        s.utils.GenerateSlug(req.Title),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ReadingTime: s.utils.CalculateReadingTime(req.Content),
		Category:    req.Category,
		Views:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	images := make([]entity.BlogImage, 0, len(uploaded))
	for i, up := range uploaded {
		imageID, err := s.utils.NewULIDFromTimestamp(now)
		if err != nil {
			s.deleteImagesBestEffort(ctx, uploaded)
			return nil, err
		}
		images = append(images, entity.BlogImage{
			ID:        imageID,
			BlogID:    blogID,
			URL:       up.URL,
			ObjectKey: up.ObjectKey,
			Position:  i,
		})
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		return nil, err
	}

	if err := repo.Blogs.AddBlogImages(ctx, images); err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		return nil, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, blogs.ErrCreateBlog
	}

	blog.Images = images
	resp := makeBlogResponse(blog)
	return &resp, nil
}

func (s *blogsService) ListBlogs(ctx context.Context, query blogs.ListBlogsQuery) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = blogs.DefaultPageSize
	}

	category := query.Category
	if category == "all" {
		category = ""
	}

	filter := blogsRepository.ListFilter{
		Search:   query.Search,
		Category: category,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	blogsList, total, err := repo.Blogs.ListBlogs(ctx, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to list blogs")
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	response := &blogs.BlogListResponse{
		Success:    true,
		Blogs:      make([]blogs.BlogListItem, 0, len(blogsList)),
		Page:       page,
		Limit:      limit,
		TotalBlogs: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}

	for _, blog := range blogsList {
		images, err := repo.Blogs.GetBlogImages(ctx, blog.ID)
		if err != nil {
			return nil, err
		}

		response.Blogs = append(response.Blogs, blogs.BlogListItem{
			ID:          blog.ID,
			Title:       blog.Title,
			Slug:        blog.Slug,
			Excerpt:     blog.Excerpt,
			ReadingTime: blog.ReadingTime,
			Images:      makeImageResponses(images),
			Category:    blog.Category,
			Views:       blog.Views,
			CreatedAt:   blog.CreatedAt,
		})
	}

	return response, nil
}

func (s *blogsService) GetBlogBySlug(ctx context.Context, slug string) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	// Read and view-increment are one atomic statement at the store layer.
	blog, err := repo.Blogs.IncrementViewsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	images, err := repo.Blogs.GetBlogImages(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Images = images

	resp := makeBlogResponse(blog)
	return &resp, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, keepImageURLs []string, imageFiles []*multipart.FileHeader) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(imageFiles) > blogs.MaxImagesOnUpdate {
		return nil, blogs.ErrTooManyImages
	}

	for _, file := range imageFiles {
		if err := s.utils.ValidateImageFile(file); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  file.Filename,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return nil, blogs.ErrInvalidFileType
		}
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, id); err != nil {
		return nil, err
	}

	currentImages, err := repo.Blogs.GetBlogImages(ctx, id)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(keepImageURLs))
	for _, url := range keepImageURLs {
		keep[url] = true
	}

	var kept, dropped []entity.BlogImage
	for _, img := range currentImages {
		if keep[img.URL] {
			kept = append(kept, img)
		} else {
			dropped = append(dropped, img)
		}
	}

	uploaded, err := s.uploadImages(ctx, imageFiles)
	if err != nil {
		return nil, err
	}

	// Drop rows first; the remote objects go after the commit so a failed
	// update never destroys media the document still references.
	for _, img := range dropped {
		if err := repo.Blogs.DeleteBlogImage(ctx, img.ID); err != nil {
			s.deleteImagesBestEffort(ctx, uploaded)
			return nil, blogs.ErrUpdateBlog
		}
	}

	nextPosition := 0
	for _, img := range kept {
		if img.Position >= nextPosition {
			nextPosition = img.Position + 1
		}
	}

	newImages := make([]entity.BlogImage, 0, len(uploaded))
	for i, up := range uploaded {
		imageID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.deleteImagesBestEffort(ctx, uploaded)
			return nil, err
		}
		newImages = append(newImages, entity.BlogImage{
			ID:        imageID,
			BlogID:    id,
			URL:       up.URL,
			ObjectKey: up.ObjectKey,
			Position:  nextPosition + i,
		})
	}

	if len(newImages) > 0 {
		if err := repo.Blogs.AddBlogImages(ctx, newImages); err != nil {
			s.deleteImagesBestEffort(ctx, uploaded)
			return nil, blogs.ErrUpdateBlog
		}
	}

	patch := blogsRepository.BlogPatch{
		ID:       id,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
	}

	if req.Title != nil {
		slug := s.utils.GenerateSlug(*req.Title)
		patch.Slug = &slug
	}
	if req.Content != nil {
		readingTime := s.utils.CalculateReadingTime(*req.Content)
		patch.ReadingTime = &readingTime
	}

	if err := repo.Blogs.UpdateBlog(ctx, patch); err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		return nil, err
	}

	updatedBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updatedImages, err := repo.Blogs.GetBlogImages(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.deleteImagesBestEffort(ctx, uploaded)
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, blogs.ErrUpdateBlog
	}

	// Now the dropped references are gone from the document; removing the
	// remote objects is best effort.
	s.deleteEntityImagesBestEffort(ctx, dropped)

	updatedBlog.Images = updatedImages
	resp := makeBlogResponse(updatedBlog)
	return &resp, nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := repo.Blogs.GetBlogImages(ctx, id)
	if err != nil {
		return nil, err
	}

	// Every owned object gets a delete attempt; one failure never aborts
	// the rest, and never aborts the document delete.
	s.deleteEntityImagesBestEffort(ctx, images)

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, blogs.ErrDeleteBlog
	}

	blog.Images = images
	resp := makeBlogResponse(blog)
	return &resp, nil
}

type uploadedImage struct {
	URL       string
	ObjectKey string
}

func (s *blogsService) uploadImages(ctx context.Context, imageFiles []*multipart.FileHeader) ([]uploadedImage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var uploaded []uploadedImage
	for _, file := range imageFiles {
		url, key, err := s.s3Client.UploadFile(blogImagesFolder, file)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  file.Filename,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			s.deleteImagesBestEffort(ctx, uploaded)
			return nil, blogs.ErrFailedToUpload
		}
		uploaded = append(uploaded, uploadedImage{URL: url, ObjectKey: key})
	}

	return uploaded, nil
}

func (s *blogsService) deleteImagesBestEffort(ctx context.Context, images []uploadedImage) {
	requestID := contextPkg.GetRequestID(ctx)

	for _, img := range images {
		if err := s.s3Client.DeleteFile(img.ObjectKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": img.ObjectKey,
				"error":      err.Error(),
			}).Warn("Failed to delete image")
		}
	}
}

func (s *blogsService) deleteEntityImagesBestEffort(ctx context.Context, images []entity.BlogImage) {
	requestID := contextPkg.GetRequestID(ctx)

	for _, img := range images {
		if err := s.s3Client.DeleteFile(img.ObjectKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": img.ObjectKey,
				"error":      err.Error(),
			}).Warn("Failed to delete image")
		}
	}
}

func makeImageResponses(images []entity.BlogImage) []blogs.BlogImageResponse {
	result := make([]blogs.BlogImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, blogs.BlogImageResponse{
			URL:     img.URL,
			MediaID: img.ObjectKey,
		})
	}
	return result
}

func makeBlogResponse(blog entity.Blog) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Slug:        blog.Slug,
		Excerpt:     blog.Excerpt,
		Content:     blog.Content,
		ReadingTime: blog.ReadingTime,
		Images:      makeImageResponses(blog.Images),
		Category:    blog.Category,
		Views:       blog.Views,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}
