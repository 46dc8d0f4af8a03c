package faqService

import (
	faqs "DigitalLab/internal/api/faq"
	faqsRepository "DigitalLab/internal/api/faq/repository"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IFAQsService interface {
	CreateFAQ(ctx context.Context, req faqs.CreateFAQRequest) (*faqs.FAQResponse, error)
	GetAllFAQs(ctx context.Context) ([]faqs.FAQResponse, error)
	GetFAQByID(ctx context.Context, id string) (*faqs.FAQResponse, error)
	UpdateFAQ(ctx context.Context, id string, req faqs.UpdateFAQRequest) (*faqs.FAQResponse, error)
	DeleteFAQ(ctx context.Context, id string) error
}

type faqsService struct {
	log      *logrus.Logger
	faqsRepo faqsRepository.Repository
	utils    utils.IUtils
}

func NewFAQsService(
	log *logrus.Logger,
	repo faqsRepository.Repository,
	utils utils.IUtils,
) IFAQsService {
	return &faqsService{
		log:      log,
		faqsRepo: repo,
		utils:    utils,
	}
}
