package faqRepository

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
		FAQs:     &faqsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// FAQPatch holds partial-update values; nil pointers leave the column
// untouched via COALESCE.
type FAQPatch struct {
	ID       string
	Question *string
	Answer   *string
}

type Client struct {
	FAQs interface {
		CreateFAQ(ctx context.Context, faq entity.FAQ) error
		GetFAQByID(ctx context.Context, id string) (entity.FAQ, error)
		GetAllFAQs(ctx context.Context) ([]entity.FAQ, error)
		UpdateFAQ(ctx context.Context, patch FAQPatch) error
		DeleteFAQ(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type faqsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
