package faqService

import (
	"context"
	"testing"

	faqs "DigitalLab/internal/api/faq"
	faqsRepository "DigitalLab/internal/api/faq/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFAQStore struct {
	faqs map[string]entity.FAQ
}

func newFakeFAQStore() *fakeFAQStore {
	return &fakeFAQStore{faqs: make(map[string]entity.FAQ)}
}

func (f *fakeFAQStore) CreateFAQ(_ context.Context, faq entity.FAQ) error {
	f.faqs[faq.ID] = faq
	return nil
}

func (f *fakeFAQStore) GetFAQByID(_ context.Context, id string) (entity.FAQ, error) {
	faq, ok := f.faqs[id]
	if !ok {
		return entity.FAQ{}, faqs.ErrFAQNotFound
	}
	return faq, nil
}

func (f *fakeFAQStore) GetAllFAQs(_ context.Context) ([]entity.FAQ, error) {
	result := make([]entity.FAQ, 0, len(f.faqs))
	for _, faq := range f.faqs {
		result = append(result, faq)
	}
	return result, nil
}

func (f *fakeFAQStore) UpdateFAQ(_ context.Context, patch faqsRepository.FAQPatch) error {
	faq, ok := f.faqs[patch.ID]
	if !ok {
		return faqs.ErrFAQNotFound
	}
	if patch.Question != nil {
		faq.Question = *patch.Question
	}
	if patch.Answer != nil {
		faq.Answer = *patch.Answer
	}
	f.faqs[patch.ID] = faq
	return nil
}

func (f *fakeFAQStore) DeleteFAQ(_ context.Context, id string) error {
	if _, ok := f.faqs[id]; !ok {
		return faqs.ErrFAQNotFound
	}
	delete(f.faqs, id)
	return nil
}

type fakeFAQRepo struct {
	store *fakeFAQStore
}

func (f *fakeFAQRepo) NewClient(bool) (faqsRepository.Client, error) {
	return faqsRepository.Client{
		FAQs:     f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestFAQService(store *fakeFAQStore) IFAQsService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFAQsService(logger, &fakeFAQRepo{store: store}, utils.New())
}

func TestCreateAndGetFAQ(t *testing.T) {
	store := newFakeFAQStore()
	svc := newTestFAQService(store)

	created, err := svc.CreateFAQ(context.Background(), faqs.CreateFAQRequest{
		Question: "What services do you offer?",
		Answer:   "Full-stack marketing.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := svc.GetFAQByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "What services do you offer?", fetched.Question)
}

func TestUpdateFAQPartialPatch(t *testing.T) {
	store := newFakeFAQStore()
	store.faqs["f1"] = entity.FAQ{ID: "f1", Question: "Old question?", Answer: "Old answer."}
	svc := newTestFAQService(store)

	answer := "New answer."
	resp, err := svc.UpdateFAQ(context.Background(), "f1",
		faqs.UpdateFAQRequest{Answer: &answer})

	require.NoError(t, err)
	assert.Equal(t, "Old question?", resp.Question)
	assert.Equal(t, "New answer.", resp.Answer)
}

func TestUpdateFAQNotFound(t *testing.T) {
	svc := newTestFAQService(newFakeFAQStore())

	question := "Anything?"
	_, err := svc.UpdateFAQ(context.Background(), "missing",
		faqs.UpdateFAQRequest{Question: &question})

	assert.ErrorIs(t, err, faqs.ErrFAQNotFound)
}

func TestDeleteFAQ(t *testing.T) {
	store := newFakeFAQStore()
	store.faqs["f1"] = entity.FAQ{ID: "f1", Question: "Q?", Answer: "A."}
	svc := newTestFAQService(store)

	require.NoError(t, svc.DeleteFAQ(context.Background(), "f1"))
	assert.ErrorIs(t, svc.DeleteFAQ(context.Background(), "f1"), faqs.ErrFAQNotFound)
}
