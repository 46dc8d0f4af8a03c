package videoService

import (
	"time"

	videos "DigitalLab/internal/api/video"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *videosService) CreateShortVideo(ctx context.Context, req videos.CreateShortVideoRequest) (*videos.ShortVideoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	videoID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	video := entity.ShortFormVideo{
		ID:        videoID,
		VideoID:   req.VideoID,
		CreatedAt: time.Now(),
	}

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.ShortVideos.CreateShortVideo(ctx, video); err != nil {
		return nil, err
	}

	return &videos.ShortVideoResponse{
		ID:        video.ID,
		VideoID:   video.VideoID,
		CreatedAt: video.CreatedAt,
	}, nil
}

func (s *videosService) GetAllShortVideos(ctx context.Context) ([]videos.ShortVideoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	videosList, err := repo.ShortVideos.GetAllShortVideos(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]videos.ShortVideoResponse, 0, len(videosList))
	for _, video := range videosList {
		result = append(result, videos.ShortVideoResponse{
			ID:        video.ID,
			VideoID:   video.VideoID,
			CreatedAt: video.CreatedAt,
		})
	}

	return result, nil
}

func (s *videosService) DeleteShortVideo(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.ShortVideos.DeleteShortVideo(ctx, id)
}

func (s *videosService) CreateLongVideo(ctx context.Context, req videos.CreateLongVideoRequest) (*videos.LongVideoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	videoID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	video := entity.LongFormVideo{
		ID:        videoID,
		Title:     req.Title,
		VideoID:   req.VideoID,
		CreatedAt: time.Now(),
	}

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.LongVideos.CreateLongVideo(ctx, video); err != nil {
		return nil, err
	}

	return &videos.LongVideoResponse{
		ID:        video.ID,
		Title:     video.Title,
		VideoID:   video.VideoID,
		CreatedAt: video.CreatedAt,
	}, nil
}

func (s *videosService) GetAllLongVideos(ctx context.Context) ([]videos.LongVideoResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	videosList, err := repo.LongVideos.GetAllLongVideos(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]videos.LongVideoResponse, 0, len(videosList))
	for _, video := range videosList {
		result = append(result, videos.LongVideoResponse{
			ID:        video.ID,
			Title:     video.Title,
			VideoID:   video.VideoID,
			CreatedAt: video.CreatedAt,
		})
	}

	return result, nil
}

func (s *videosService) DeleteLongVideo(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.videosRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.LongVideos.DeleteLongVideo(ctx, id)
}
