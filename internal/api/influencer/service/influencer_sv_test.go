package influencerService

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	influencers "DigitalLab/internal/api/influencer"
	influencersRepository "DigitalLab/internal/api/influencer/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInfluencerStore struct {
	influencers map[string]entity.Influencer
	createErr   error
}

func newFakeInfluencerStore() *fakeInfluencerStore {
	return &fakeInfluencerStore{influencers: make(map[string]entity.Influencer)}
}

func (f *fakeInfluencerStore) CreateInfluencer(_ context.Context, influencer entity.Influencer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.influencers[influencer.ID] = influencer
	return nil
}

func (f *fakeInfluencerStore) GetInfluencerByID(_ context.Context, id string) (entity.Influencer, error) {
	influencer, ok := f.influencers[id]
	if !ok {
		return entity.Influencer{}, influencers.ErrInfluencerNotFound
	}
	return influencer, nil
}

func (f *fakeInfluencerStore) GetAllInfluencers(_ context.Context) ([]entity.Influencer, error) {
	result := make([]entity.Influencer, 0, len(f.influencers))
	for _, influencer := range f.influencers {
		result = append(result, influencer)
	}
	return result, nil
}

func (f *fakeInfluencerStore) UpdateInfluencer(_ context.Context, patch influencersRepository.InfluencerPatch) error {
	influencer, ok := f.influencers[patch.ID]
	if !ok {
		return influencers.ErrInfluencerNotFound
	}
	if patch.Name != nil {
		influencer.Name = *patch.Name
	}
	if patch.Description != nil {
		influencer.Description = *patch.Description
	}
	if patch.PicURL != nil {
		influencer.PicURL = *patch.PicURL
	}
	if patch.PicKey != nil {
		influencer.PicKey = *patch.PicKey
	}
	if patch.Keywords != nil {
		influencer.Keywords = *patch.Keywords
	}
	f.influencers[patch.ID] = influencer
	return nil
}

func (f *fakeInfluencerStore) DeleteInfluencer(_ context.Context, id string) error {
	if _, ok := f.influencers[id]; !ok {
		return influencers.ErrInfluencerNotFound
	}
	delete(f.influencers, id)
	return nil
}

type fakeInfluencerRepo struct {
	store *fakeInfluencerStore
}

func (f *fakeInfluencerRepo) NewClient(bool) (influencersRepository.Client, error) {
	return influencersRepository.Client{
		Influencers: f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeInfluencerS3 struct {
	uploads int
	deleted []string
}

func (f *fakeInfluencerS3) UploadFile(folder string, _ *multipart.FileHeader) (string, string, error) {
	f.uploads++
	key := fmt.Sprintf("%s/object-%d", folder, f.uploads)
	return "https://cdn.example.com/" + key, key, nil
}

func (f *fakeInfluencerS3) DeleteFile(key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestInfluencerService(store *fakeInfluencerStore, s3Client *fakeInfluencerS3) IInfluencersService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewInfluencersService(logger, &fakeInfluencerRepo{store: store}, s3Client, utils.New())
}

func picFile() *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "pic.png",
		Size:     4096,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func TestCreateInfluencerRequiresPic(t *testing.T) {
	svc := newTestInfluencerService(newFakeInfluencerStore(), &fakeInfluencerS3{})

	_, err := svc.CreateInfluencer(context.Background(), influencers.CreateInfluencerRequest{
		Name:        "Sam",
		Description: "Tech reviewer",
	}, nil)

	assert.ErrorIs(t, err, influencers.ErrPicRequired)
}

func TestCreateInfluencerKeywordsRoundTrip(t *testing.T) {
	store := newFakeInfluencerStore()
	svc := newTestInfluencerService(store, &fakeInfluencerS3{})

	resp, err := svc.CreateInfluencer(context.Background(), influencers.CreateInfluencerRequest{
		Name:        "Sam",
		Description: "Tech reviewer",
		Keywords:    []string{"tech", " gadgets ", "", "reviews"},
	}, picFile())

	require.NoError(t, err)
	assert.Equal(t, []string{"tech", "gadgets", "reviews"}, resp.Keywords)
	assert.Equal(t, "tech,gadgets,reviews", store.influencers[resp.ID].Keywords)
}

func TestCreateInfluencerRollsBackPicOnStoreFailure(t *testing.T) {
	store := newFakeInfluencerStore()
	store.createErr = influencers.ErrCreateInfluencer
	s3Client := &fakeInfluencerS3{}
	svc := newTestInfluencerService(store, s3Client)

	_, err := svc.CreateInfluencer(context.Background(), influencers.CreateInfluencerRequest{
		Name:        "Sam",
		Description: "Tech reviewer",
	}, picFile())

	require.Error(t, err)
	assert.Len(t, s3Client.deleted, 1)
}

func TestUpdateInfluencerReplacesPic(t *testing.T) {
	store := newFakeInfluencerStore()
	store.influencers["i1"] = entity.Influencer{
		ID: "i1", Name: "Sam", PicURL: "https://cdn.example.com/old", PicKey: "old",
	}
	s3Client := &fakeInfluencerS3{}
	svc := newTestInfluencerService(store, s3Client)

	resp, err := svc.UpdateInfluencer(context.Background(), "i1",
		influencers.UpdateInfluencerRequest{}, picFile())

	require.NoError(t, err)
	assert.NotEqual(t, "https://cdn.example.com/old", resp.Pic)
	assert.Contains(t, s3Client.deleted, "old")
}

func TestUpdateInfluencerPartialPatchKeepsOtherFields(t *testing.T) {
	store := newFakeInfluencerStore()
	store.influencers["i1"] = entity.Influencer{
		ID: "i1", Name: "Sam", Description: "Tech reviewer", Keywords: "tech,reviews",
	}
	svc := newTestInfluencerService(store, &fakeInfluencerS3{})

	newName := "Sam Taylor"
	resp, err := svc.UpdateInfluencer(context.Background(), "i1",
		influencers.UpdateInfluencerRequest{Name: &newName}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Sam Taylor", resp.Name)
	assert.Equal(t, "Tech reviewer", resp.Description)
	assert.Equal(t, []string{"tech", "reviews"}, resp.Keywords)
}

func TestDeleteInfluencerRemovesPic(t *testing.T) {
	store := newFakeInfluencerStore()
	store.influencers["i1"] = entity.Influencer{ID: "i1", Name: "Sam", PicKey: "k1"}
	s3Client := &fakeInfluencerS3{}
	svc := newTestInfluencerService(store, s3Client)

	err := svc.DeleteInfluencer(context.Background(), "i1")

	require.NoError(t, err)
	assert.Contains(t, s3Client.deleted, "k1")
	assert.Len(t, store.influencers, 0)
}
