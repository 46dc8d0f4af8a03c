package blogService

import (
	"context"
	"mime/multipart"

	blogs "DigitalLab/internal/api/blog"
	blogsRepository "DigitalLab/internal/api/blog/repository"
	"DigitalLab/pkg/s3"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, imageFiles []*multipart.FileHeader) (*blogs.BlogResponse, error)
	ListBlogs(ctx context.Context, query blogs.ListBlogsQuery) (*blogs.BlogListResponse, error)
	GetBlogBySlug(ctx context.Context, slug string) (*blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, keepImageURLs []string, imageFiles []*multipart.FileHeader) (*blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, id string) (*blogs.BlogResponse, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	s3Client  s3.ItfS3
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		s3Client:  s3Client,
		utils:     utils,
	}
}
