package reviewService

import (
	"mime/multipart"
	"time"

	reviews "DigitalLab/internal/api/review"
	reviewsRepository "DigitalLab/internal/api/review/repository"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	reviewImagesFolder     = "reviews"
	approvedReviewsCacheKey = "reviews:approved"
	approvedReviewsCacheTTL = 5 * time.Minute
)

func (s *reviewsService) CreateReview(ctx context.Context, req reviews.CreateReviewRequest, imageFile *multipart.FileHeader) (*reviews.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var imageURL, imageKey string
	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return nil, reviews.ErrInvalidFileType
		}

		url, key, err := s.s3Client.UploadFile(reviewImagesFolder, imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return nil, reviews.ErrFailedToUpload
		}
		imageURL = url
		imageKey = key
	}

	reviewID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	review := entity.Review{
		ID:        reviewID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Review:    req.Review,
		ImageURL:  imageURL,
		ImageKey:  imageKey,
		Approved:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.reviewsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.Reviews.CreateReview(ctx, review); err != nil {
		if imageKey != "" {
			if delErr := s.s3Client.DeleteFile(imageKey); delErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"object_key": imageKey,
					"error":      delErr.Error(),
				}).Warn("Failed to delete image")
			}
		}
		return nil, reviews.ErrCreateReview
	}

	resp := makeReviewResponse(review)
	return &resp, nil
}

func (s *reviewsService) GetAllReviews(ctx context.Context) ([]reviews.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reviewsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	reviewsList, err := repo.Reviews.GetAllReviews(ctx)
	if err != nil {
		return nil, err
	}

	return makeReviewResponses(reviewsList), nil
}

func (s *reviewsService) GetApprovedReviews(ctx context.Context) ([]reviews.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	// The public surface is read-heavy; serve from cache when possible and
	// fall through to the store on any cache problem.
	if cached, err := s.redisServer.GetCache(ctx, approvedReviewsCacheKey); err == nil {
		var result []reviews.ReviewResponse
		if err := jsoniter.UnmarshalFromString(cached, &result); err == nil {
			return result, nil
		}
	}

	repo, err := s.reviewsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	reviewsList, err := repo.Reviews.GetApprovedReviews(ctx)
	if err != nil {
		return nil, err
	}

	result := makeReviewResponses(reviewsList)

	if encoded, err := jsoniter.MarshalToString(result); err == nil {
		if err := s.redisServer.SetCache(ctx, approvedReviewsCacheKey, encoded, approvedReviewsCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache approved reviews")
		}
	}

	return result, nil
}

func (s *reviewsService) ApproveReview(ctx context.Context, id string) (*reviews.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reviewsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	review, err := repo.Reviews.ApproveReview(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateApprovedCache(ctx)

	resp := makeReviewResponse(review)
	return &resp, nil
}

func (s *reviewsService) UpdateReview(ctx context.Context, id string, req reviews.UpdateReviewRequest, imageFile *multipart.FileHeader) (*reviews.ReviewResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reviewsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	existing, err := repo.Reviews.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := reviewsRepository.ReviewPatch{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Review: req.Review,
	}

	var newImageKey string
	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return nil, reviews.ErrInvalidFileType
		}

		url, key, err := s.s3Client.UploadFile(reviewImagesFolder, imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return nil, reviews.ErrFailedToUpload
		}
		patch.ImageURL = &url
		patch.ImageKey = &key
		newImageKey = key
	}

	if err := repo.Reviews.UpdateReview(ctx, patch); err != nil {
		if newImageKey != "" {
			if delErr := s.s3Client.DeleteFile(newImageKey); delErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"object_key": newImageKey,
					"error":      delErr.Error(),
				}).Warn("Failed to delete image")
			}
		}
		return nil, err
	}

	updated, err := repo.Reviews.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, reviews.ErrUpdateReview
	}

	// The old image is unreferenced once a replacement landed.
	if imageFile != nil && existing.ImageKey != "" {
		if err := s.s3Client.DeleteFile(existing.ImageKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": existing.ImageKey,
				"error":      err.Error(),
			}).Warn("Failed to delete old image")
		}
	}

	s.invalidateApprovedCache(ctx)

	resp := makeReviewResponse(updated)
	return &resp, nil
}

func (s *reviewsService) DeleteReview(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reviewsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Reviews.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.ImageKey != "" {
		if err := s.s3Client.DeleteFile(existing.ImageKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": existing.ImageKey,
				"error":      err.Error(),
			}).Warn("Failed to delete image")
		}
	}

	if err := repo.Reviews.DeleteReview(ctx, id); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return reviews.ErrDeleteReview
	}

	s.invalidateApprovedCache(ctx)

	return nil
}

func (s *reviewsService) invalidateApprovedCache(ctx context.Context) {
	if err := s.redisServer.DeleteCache(ctx, approvedReviewsCacheKey); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to invalidate approved reviews cache")
	}
}

func makeReviewResponse(review entity.Review) reviews.ReviewResponse {
	return reviews.ReviewResponse{
		ID:        review.ID,
		Name:      review.Name,
		Email:     review.Email,
		Role:      review.Role,
		Review:    review.Review,
		Image:     review.ImageURL,
		Approved:  review.Approved,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

func makeReviewResponses(reviewsList []entity.Review) []reviews.ReviewResponse {
	result := make([]reviews.ReviewResponse, 0, len(reviewsList))
	for _, review := range reviewsList {
		result = append(result, makeReviewResponse(review))
	}
	return result
}
