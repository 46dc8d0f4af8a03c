package influencerService

import (
	"mime/multipart"

	influencers "DigitalLab/internal/api/influencer"
	influencersRepository "DigitalLab/internal/api/influencer/repository"
	"DigitalLab/pkg/s3"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IInfluencersService interface {
	CreateInfluencer(ctx context.Context, req influencers.CreateInfluencerRequest, picFile *multipart.FileHeader) (*influencers.InfluencerResponse, error)
	GetAllInfluencers(ctx context.Context) ([]influencers.InfluencerResponse, error)
	GetInfluencerByID(ctx context.Context, id string) (*influencers.InfluencerResponse, error)
	UpdateInfluencer(ctx context.Context, id string, req influencers.UpdateInfluencerRequest, picFile *multipart.FileHeader) (*influencers.InfluencerResponse, error)
	DeleteInfluencer(ctx context.Context, id string) error
}

type influencersService struct {
	log             *logrus.Logger
	influencersRepo influencersRepository.Repository
	s3Client        s3.ItfS3
	utils           utils.IUtils
}

func NewInfluencersService(
	log *logrus.Logger,
	repo influencersRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IInfluencersService {
	return &influencersService{
		log:             log,
		influencersRepo: repo,
		s3Client:        s3Client,
		utils:           utils,
	}
}
