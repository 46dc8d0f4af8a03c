package reviewRepository

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
		Reviews:  &reviewsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// ReviewPatch holds partial-update values; nil pointers leave the column
// untouched.
type ReviewPatch struct {
	ID       string
	Name     *string
	Email    *string
	Role     *string
	Review   *string
	ImageURL *string
	ImageKey *string
}

type Client struct {
	Reviews interface {
		CreateReview(ctx context.Context, review entity.Review) error
		GetReviewByID(ctx context.Context, id string) (entity.Review, error)
		GetAllReviews(ctx context.Context) ([]entity.Review, error)
		GetApprovedReviews(ctx context.Context) ([]entity.Review, error)
		ApproveReview(ctx context.Context, id string) (entity.Review, error)
		UpdateReview(ctx context.Context, patch ReviewPatch) error
		DeleteReview(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type reviewsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
