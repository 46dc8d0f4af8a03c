package faqService

import (
	"time"

	faqs "DigitalLab/internal/api/faq"
	faqsRepository "DigitalLab/internal/api/faq/repository"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *faqsService) CreateFAQ(ctx context.Context, req faqs.CreateFAQRequest) (*faqs.FAQResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	faqID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	now := time.Now()

	faq := entity.FAQ{
		ID:        faqID,
		Question:  req.Question,
		Answer:    req.Answer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.faqsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.FAQs.CreateFAQ(ctx, faq); err != nil {
		return nil, faqs.ErrCreateFAQ
	}

	resp := makeFAQResponse(faq)
	return &resp, nil
}

func (s *faqsService) GetAllFAQs(ctx context.Context) ([]faqs.FAQResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.faqsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	faqsList, err := repo.FAQs.GetAllFAQs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]faqs.FAQResponse, 0, len(faqsList))
	for _, faq := range faqsList {
		result = append(result, makeFAQResponse(faq))
	}

	return result, nil
}

func (s *faqsService) GetFAQByID(ctx context.Context, id string) (*faqs.FAQResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.faqsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	faq, err := repo.FAQs.GetFAQByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := makeFAQResponse(faq)
	return &resp, nil
}

func (s *faqsService) UpdateFAQ(ctx context.Context, id string, req faqs.UpdateFAQRequest) (*faqs.FAQResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.faqsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	patch := faqsRepository.FAQPatch{
		ID:       id,
		Question: req.Question,
		Answer:   req.Answer,
	}

	if err := repo.FAQs.UpdateFAQ(ctx, patch); err != nil {
		return nil, err
	}

	updated, err := repo.FAQs.GetFAQByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := makeFAQResponse(updated)
	return &resp, nil
}

func (s *faqsService) DeleteFAQ(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.faqsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.FAQs.DeleteFAQ(ctx, id)
}

func makeFAQResponse(faq entity.FAQ) faqs.FAQResponse {
	return faqs.FAQResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}
