package videoService

import (
	videos "DigitalLab/internal/api/video"
	videosRepository "DigitalLab/internal/api/video/repository"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IVideosService interface {
	CreateShortVideo(ctx context.Context, req videos.CreateShortVideoRequest) (*videos.ShortVideoResponse, error)
	GetAllShortVideos(ctx context.Context) ([]videos.ShortVideoResponse, error)
	DeleteShortVideo(ctx context.Context, id string) error
	CreateLongVideo(ctx context.Context, req videos.CreateLongVideoRequest) (*videos.LongVideoResponse, error)
	GetAllLongVideos(ctx context.Context) ([]videos.LongVideoResponse, error)
	DeleteLongVideo(ctx context.Context, id string) error
}

type videosService struct {
	log        *logrus.Logger
	videosRepo videosRepository.Repository
	utils      utils.IUtils
}

func NewVideosService(
	log *logrus.Logger,
	repo videosRepository.Repository,
	utils utils.IUtils,
) IVideosService {
	return &videosService{
		log:        log,
		videosRepo: repo,
		utils:      utils,
	}
}
