package influencerService

import (
	"mime/multipart"
	"strings"
	"time"

	influencers "DigitalLab/internal/api/influencer"
	influencersRepository "DigitalLab/internal/api/influencer/repository"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const influencerPicsFolder = "influencers"

func (s *influencersService) CreateInfluencer(ctx context.Context, req influencers.CreateInfluencerRequest, picFile *multipart.FileHeader) (*influencers.InfluencerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if picFile == nil {
		return nil, influencers.ErrPicRequired
	}

	if err := s.utils.ValidateImageFile(picFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid picture file")
		return nil, influencers.ErrInvalidFileType
	}

	picURL, picKey, err := s.s3Client.UploadFile(influencerPicsFolder, picFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload picture")
		return nil, influencers.ErrFailedToUpload
	}

	influencerID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	influencer := entity.Influencer{
		ID:          influencerID,
		Name:        req.Name,
		Description: req.Description,
		PicURL:      picURL,
		PicKey:      picKey,
		Keywords:    joinKeywords(req.Keywords),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	repo, err := s.influencersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.Influencers.CreateInfluencer(ctx, influencer); err != nil {
		if delErr := s.s3Client.DeleteFile(picKey); delErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": picKey,
				"error":      delErr.Error(),
			}).Warn("Failed to delete picture")
		}
		return nil, influencers.ErrCreateInfluencer
	}

	resp := makeInfluencerResponse(influencer)
	return &resp, nil
}

func (s *influencersService) GetAllInfluencers(ctx context.Context) ([]influencers.InfluencerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.influencersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	influencersList, err := repo.Influencers.GetAllInfluencers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]influencers.InfluencerResponse, 0, len(influencersList))
	for _, influencer := range influencersList {
		result = append(result, makeInfluencerResponse(influencer))
	}

	return result, nil
}

func (s *influencersService) GetInfluencerByID(ctx context.Context, id string) (*influencers.InfluencerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.influencersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	influencer, err := repo.Influencers.GetInfluencerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := makeInfluencerResponse(influencer)
	return &resp, nil
}

func (s *influencersService) UpdateInfluencer(ctx context.Context, id string, req influencers.UpdateInfluencerRequest, picFile *multipart.FileHeader) (*influencers.InfluencerResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.influencersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	existing, err := repo.Influencers.GetInfluencerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := influencersRepository.InfluencerPatch{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if req.Keywords != nil {
		joined := joinKeywords(req.Keywords)
		patch.Keywords = &joined
	}

	var newPicKey string
	if picFile != nil {
		if err := s.utils.ValidateImageFile(picFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid picture file")
			return nil, influencers.ErrInvalidFileType
		}

		url, key, err := s.s3Client.UploadFile(influencerPicsFolder, picFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload picture")
			return nil, influencers.ErrFailedToUpload
		}
		patch.PicURL = &url
		patch.PicKey = &key
		newPicKey = key
	}

	if err := repo.Influencers.UpdateInfluencer(ctx, patch); err != nil {
		if newPicKey != "" {
			if delErr := s.s3Client.DeleteFile(newPicKey); delErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"object_key": newPicKey,
					"error":      delErr.Error(),
				}).Warn("Failed to delete picture")
			}
		}
		return nil, err
	}

	updated, err := repo.Influencers.GetInfluencerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return nil, influencers.ErrUpdateInfluencer
	}

	// The old picture is unreferenced once a replacement landed.
	if picFile != nil && existing.PicKey != "" {
		if err := s.s3Client.DeleteFile(existing.PicKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": existing.PicKey,
				"error":      err.Error(),
			}).Warn("Failed to delete old picture")
		}
	}

	resp := makeInfluencerResponse(updated)
	return &resp, nil
}

func (s *influencersService) DeleteInfluencer(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.influencersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Influencers.GetInfluencerByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.PicKey != "" {
		if err := s.s3Client.DeleteFile(existing.PicKey); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"object_key": existing.PicKey,
				"error":      err.Error(),
			}).Warn("Failed to delete picture")
		}
	}

	if err := repo.Influencers.DeleteInfluencer(ctx, id); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return influencers.ErrDeleteInfluencer
	}

	return nil
}

func joinKeywords(keywords []string) string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitKeywords(keywords string) []string {
	if keywords == "" {
		return []string{}
	}
	return strings.Split(keywords, ",")
}

func makeInfluencerResponse(influencer entity.Influencer) influencers.InfluencerResponse {
	return influencers.InfluencerResponse{
		ID:          influencer.ID,
		Name:        influencer.Name,
		Description: influencer.Description,
		Pic:         influencer.PicURL,
		Keywords:    splitKeywords(influencer.Keywords),
		CreatedAt:   influencer.CreatedAt,
		UpdatedAt:   influencer.UpdatedAt,
	}
}
