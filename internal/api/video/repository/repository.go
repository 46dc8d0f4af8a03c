package videoRepository

import (
	"DigitalLab/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		ShortVideos: &shortVideosRepository{q: sqlExecutor, log: r.log},
		LongVideos:  &longVideosRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	ShortVideos interface {
		CreateShortVideo(ctx context.Context, video entity.ShortFormVideo) error
		GetAllShortVideos(ctx context.Context) ([]entity.ShortFormVideo, error)
		DeleteShortVideo(ctx context.Context, id string) error
	}

	LongVideos interface {
		CreateLongVideo(ctx context.Context, video entity.LongFormVideo) error
		GetAllLongVideos(ctx context.Context) ([]entity.LongFormVideo, error)
		DeleteLongVideo(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type shortVideosRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type longVideosRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
