package influencerRepository

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
		Influencers: &influencersRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

// InfluencerPatch holds partial-update values; nil pointers leave the
// column untouched via COALESCE.
type InfluencerPatch struct {
	ID          string
	Name        *string
	Description *string
	PicURL      *string
	PicKey      *string
	Keywords    *string
}

type Client struct {
	Influencers interface {
		CreateInfluencer(ctx context.Context, influencer entity.Influencer) error
		GetInfluencerByID(ctx context.Context, id string) (entity.Influencer, error)
		GetAllInfluencers(ctx context.Context) ([]entity.Influencer, error)
		UpdateInfluencer(ctx context.Context, patch InfluencerPatch) error
		DeleteInfluencer(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type influencersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
