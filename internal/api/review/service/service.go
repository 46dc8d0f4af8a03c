package reviewService

import (
	"context"
	"mime/multipart"

	reviews "DigitalLab/internal/api/review"
	reviewsRepository "DigitalLab/internal/api/review/repository"
	"DigitalLab/pkg/redis"
	"DigitalLab/pkg/s3"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IReviewsService interface {
	CreateReview(ctx context.Context, req reviews.CreateReviewRequest, imageFile *multipart.FileHeader) (*reviews.ReviewResponse, error)
	GetAllReviews(ctx context.Context) ([]reviews.ReviewResponse, error)
	GetApprovedReviews(ctx context.Context) ([]reviews.ReviewResponse, error)
	ApproveReview(ctx context.Context, id string) (*reviews.ReviewResponse, error)
	UpdateReview(ctx context.Context, id string, req reviews.UpdateReviewRequest, imageFile *multipart.FileHeader) (*reviews.ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error
}

type reviewsService struct {
	log         *logrus.Logger
	reviewsRepo reviewsRepository.Repository
	s3Client    s3.ItfS3
	redisServer redis.IRedis
	utils       utils.IUtils
}

func NewReviewsService(
	log *logrus.Logger,
	reviewsRepo reviewsRepository.Repository,
	s3Client s3.ItfS3,
	redisServer redis.IRedis,
	utils utils.IUtils,
) IReviewsService {
	return &reviewsService{
		log:         log,
		reviewsRepo: reviewsRepo,
		s3Client:    s3Client,
		redisServer: redisServer,
		utils:       utils,
	}
}
