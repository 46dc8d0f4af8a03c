package reviewService

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	reviews "DigitalLab/internal/api/review"
	reviewsRepository "DigitalLab/internal/api/review/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/redis"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewStore struct {
	reviews map[string]entity.Review

	createErr     error
	approvedReads int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: make(map[string]entity.Review)}
}

func (f *fakeReviewStore) CreateReview(_ context.Context, review entity.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewStore) GetReviewByID(_ context.Context, id string) (entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return entity.Review{}, reviews.ErrReviewNotFound
	}
	return review, nil
}

func (f *fakeReviewStore) GetAllReviews(_ context.Context) ([]entity.Review, error) {
	result := make([]entity.Review, 0, len(f.reviews))
	for _, review := range f.reviews {
		result = append(result, review)
	}
	return result, nil
}

func (f *fakeReviewStore) GetApprovedReviews(_ context.Context) ([]entity.Review, error) {
	f.approvedReads++
	var result []entity.Review
	for _, review := range f.reviews {
		if review.Approved {
			result = append(result, review)
		}
	}
	return result, nil
}

func (f *fakeReviewStore) ApproveReview(_ context.Context, id string) (entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return entity.Review{}, reviews.ErrReviewNotFound
	}
	review.Approved = true
	f.reviews[id] = review
	return review, nil
}

func (f *fakeReviewStore) UpdateReview(_ context.Context, patch reviewsRepository.ReviewPatch) error {
	review, ok := f.reviews[patch.ID]
	if !ok {
		return reviews.ErrReviewNotFound
	}
	if patch.Name != nil {
		review.Name = *patch.Name
	}
	if patch.Email != nil {
		review.Email = *patch.Email
	}
	if patch.Role != nil {
		review.Role = *patch.Role
	}
	if patch.Review != nil {
		review.Review = *patch.Review
	}
	if patch.ImageURL != nil {
		review.ImageURL = *patch.ImageURL
	}
	if patch.ImageKey != nil {
		review.ImageKey = *patch.ImageKey
	}
	f.reviews[patch.ID] = review
	return nil
}

func (f *fakeReviewStore) DeleteReview(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return reviews.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeReviewRepo struct {
	store *fakeReviewStore
}

func (f *fakeReviewRepo) NewClient(bool) (reviewsRepository.Client, error) {
	return reviewsRepository.Client{
		Reviews:  f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) SetCache(_ context.Context, key string, value string, _ time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeRedis) GetCache(_ context.Context, key string) (string, error) {
	value, ok := f.store[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return value, nil
}

func (f *fakeRedis) DeleteCache(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

type fakeReviewS3 struct {
	uploads int
	deleted []string
}

func (f *fakeReviewS3) UploadFile(folder string, _ *multipart.FileHeader) (string, string, error) {
	f.uploads++
	key := fmt.Sprintf("%s/object-%d", folder, f.uploads)
	return "https://cdn.example.com/" + key, key, nil
}

func (f *fakeReviewS3) DeleteFile(key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestReviewService(store *fakeReviewStore, s3Client *fakeReviewS3, cache *fakeRedis) IReviewsService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewReviewsService(logger, &fakeReviewRepo{store: store}, s3Client, cache, utils.New())
}

func reviewImage() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "face.png",
		Size:     2048,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func TestCreateReviewStartsUnapproved(t *testing.T) {
	store := newFakeReviewStore()
	svc := newTestReviewService(store, &fakeReviewS3{}, newFakeRedis())

	resp, err := svc.CreateReview(context.Background(), reviews.CreateReviewRequest{
		Name:   "Jamie",
		Email:  "jamie@example.com",
		Role:   "CTO",
		Review: "Great agency to work with.",
	}, nil)

	require.NoError(t, err)
	assert.False(t, resp.Approved)
	assert.False(t, store.reviews[resp.ID].Approved)
}

func TestCreateReviewWithImageRollsBackOnStoreFailure(t *testing.T) {
	store := newFakeReviewStore()
	store.createErr = reviews.ErrCreateReview
	s3Client := &fakeReviewS3{}
	svc := newTestReviewService(store, s3Client, newFakeRedis())

	_, err := svc.CreateReview(context.Background(), reviews.CreateReviewRequest{
		Name:   "Jamie",
		Email:  "jamie@example.com",
		Role:   "CTO",
		Review: "Great agency to work with.",
	}, reviewImage())

	require.Error(t, err)
	assert.Len(t, s3Client.deleted, 1)
}

func TestApproveReviewIsOneWay(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews["r1"] = entity.Review{ID: "r1", Name: "Jamie", Approved: false}
	svc := newTestReviewService(store, &fakeReviewS3{}, newFakeRedis())

	resp, err := svc.ApproveReview(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, resp.Approved)

	// The allow-listed patch has no approved field, so an update cannot
	// take a review back out of the approved set.
	role := "CEO"
	updated, err := svc.UpdateReview(context.Background(), "r1",
		reviews.UpdateReviewRequest{Role: &role}, nil)
	require.NoError(t, err)
	assert.True(t, updated.Approved)
	assert.Equal(t, "CEO", updated.Role)
}

func TestApproveReviewNotFound(t *testing.T) {
	svc := newTestReviewService(newFakeReviewStore(), &fakeReviewS3{}, newFakeRedis())

	_, err := svc.ApproveReview(context.Background(), "missing")
	assert.ErrorIs(t, err, reviews.ErrReviewNotFound)
}

func TestGetApprovedReviewsUsesCache(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews["r1"] = entity.Review{ID: "r1", Name: "Jamie", Approved: true}
	store.reviews["r2"] = entity.Review{ID: "r2", Name: "Alex", Approved: false}
	svc := newTestReviewService(store, &fakeReviewS3{}, newFakeRedis())

	first, err := svc.GetApprovedReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, store.approvedReads)

	second, err := svc.GetApprovedReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, store.approvedReads)
}

func TestApproveReviewInvalidatesCache(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews["r1"] = entity.Review{ID: "r1", Name: "Jamie", Approved: true}
	store.reviews["r2"] = entity.Review{ID: "r2", Name: "Alex", Approved: false}
	svc := newTestReviewService(store, &fakeReviewS3{}, newFakeRedis())

	first, err := svc.GetApprovedReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = svc.ApproveReview(context.Background(), "r2")
	require.NoError(t, err)

	second, err := svc.GetApprovedReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestUpdateReviewReplacesImage(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews["r1"] = entity.Review{
		ID: "r1", Name: "Jamie", ImageURL: "https://cdn.example.com/old", ImageKey: "old",
	}
	s3Client := &fakeReviewS3{}
	svc := newTestReviewService(store, s3Client, newFakeRedis())

	resp, err := svc.UpdateReview(context.Background(), "r1",
		reviews.UpdateReviewRequest{}, reviewImage())

	require.NoError(t, err)
	assert.NotEqual(t, "https://cdn.example.com/old", resp.Image)
	assert.Contains(t, s3Client.deleted, "old")
}

func TestDeleteReviewRemovesImage(t *testing.T) {
	store := newFakeReviewStore()
	store.reviews["r1"] = entity.Review{ID: "r1", Name: "Jamie", ImageKey: "k1"}
	s3Client := &fakeReviewS3{}
	svc := newTestReviewService(store, s3Client, newFakeRedis())

	err := svc.DeleteReview(context.Background(), "r1")

	require.NoError(t, err)
	assert.Contains(t, s3Client.deleted, "k1")
	assert.Len(t, store.reviews, 0)
}
