package videoService

import (
	"context"
	"testing"

	videos "DigitalLab/internal/api/video"
	videosRepository "DigitalLab/internal/api/video/repository"
	"DigitalLab/internal/entity"
	"DigitalLab/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoStore struct {
	short map[string]entity.ShortFormVideo
	long  map[string]entity.LongFormVideo
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{
		short: make(map[string]entity.ShortFormVideo),
		long:  make(map[string]entity.LongFormVideo),
	}
}

func (f *fakeVideoStore) CreateShortVideo(_ context.Context, video entity.ShortFormVideo) error {
	for _, existing := range f.short {
		if existing.VideoID == video.VideoID {
			return videos.ErrVideoExists
		}
	}
	f.short[video.ID] = video
	return nil
}

func (f *fakeVideoStore) GetAllShortVideos(_ context.Context) ([]entity.ShortFormVideo, error) {
	result := make([]entity.ShortFormVideo, 0, len(f.short))
	for _, video := range f.short {
		result = append(result, video)
	}
	return result, nil
}

func (f *fakeVideoStore) DeleteShortVideo(_ context.Context, id string) error {
	if _, ok := f.short[id]; !ok {
		return videos.ErrVideoNotFound
	}
	delete(f.short, id)
	return nil
}

func (f *fakeVideoStore) CreateLongVideo(_ context.Context, video entity.LongFormVideo) error {
	for _, existing := range f.long {
		if existing.VideoID == video.VideoID {
			return videos.ErrVideoExists
		}
	}
	f.long[video.ID] = video
	return nil
}

func (f *fakeVideoStore) GetAllLongVideos(_ context.Context) ([]entity.LongFormVideo, error) {
	result := make([]entity.LongFormVideo, 0, len(f.long))
	for _, video := range f.long {
		result = append(result, video)
	}
	return result, nil
}

func (f *fakeVideoStore) DeleteLongVideo(_ context.Context, id string) error {
	if _, ok := f.long[id]; !ok {
		return videos.ErrVideoNotFound
	}
	delete(f.long, id)
	return nil
}

type fakeVideoRepo struct {
	store *fakeVideoStore
}

func (f *fakeVideoRepo) NewClient(bool) (videosRepository.Client, error) {
	return videosRepository.Client{
		ShortVideos: f.store,
		LongVideos:  f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func newTestVideoService(store *fakeVideoStore) IVideosService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewVideosService(logger, &fakeVideoRepo{store: store}, utils.New())
}

func TestCreateShortVideoRejectsDuplicateVideoID(t *testing.T) {
	svc := newTestVideoService(newFakeVideoStore())

	_, err := svc.CreateShortVideo(context.Background(), videos.CreateShortVideoRequest{VideoID: "abc123"})
	require.NoError(t, err)

	_, err = svc.CreateShortVideo(context.Background(), videos.CreateShortVideoRequest{VideoID: "abc123"})
	assert.ErrorIs(t, err, videos.ErrVideoExists)
}

func TestCreateLongVideoRejectsDuplicateVideoID(t *testing.T) {
	svc := newTestVideoService(newFakeVideoStore())

	_, err := svc.CreateLongVideo(context.Background(), videos.CreateLongVideoRequest{
		Title:   "Deep Dive",
		VideoID: "xyz789",
	})
	require.NoError(t, err)

	_, err = svc.CreateLongVideo(context.Background(), videos.CreateLongVideoRequest{
		Title:   "Another Title",
		VideoID: "xyz789",
	})
	assert.ErrorIs(t, err, videos.ErrVideoExists)
}

func TestShortAndLongVideoIDsAreIndependent(t *testing.T) {
	svc := newTestVideoService(newFakeVideoStore())

	_, err := svc.CreateShortVideo(context.Background(), videos.CreateShortVideoRequest{VideoID: "shared"})
	require.NoError(t, err)

	_, err = svc.CreateLongVideo(context.Background(), videos.CreateLongVideoRequest{
		Title:   "Long Form",
		VideoID: "shared",
	})
	assert.NoError(t, err)
}

func TestDeleteShortVideo(t *testing.T) {
	store := newFakeVideoStore()
	svc := newTestVideoService(store)

	created, err := svc.CreateShortVideo(context.Background(), videos.CreateShortVideoRequest{VideoID: "abc"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShortVideo(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteShortVideo(context.Background(), created.ID), videos.ErrVideoNotFound)
}

func TestGetAllLongVideos(t *testing.T) {
	svc := newTestVideoService(newFakeVideoStore())

	_, err := svc.CreateLongVideo(context.Background(), videos.CreateLongVideoRequest{Title: "One", VideoID: "v1"})
	require.NoError(t, err)
	_, err = svc.CreateLongVideo(context.Background(), videos.CreateLongVideoRequest{Title: "Two", VideoID: "v2"})
	require.NoError(t, err)

	result, err := svc.GetAllLongVideos(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
