package blogRepository

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
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type ListFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

// BlogPatch holds partial-update values; nil pointers leave the column
// untouched via COALESCE.
type BlogPatch struct {
	ID          string
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	ReadingTime *int
	Category    *string
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		AddBlogImages(ctx context.Context, images []entity.BlogImage) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		GetBlogImages(ctx context.Context, blogID string) ([]entity.BlogImage, error)
		ListBlogs(ctx context.Context, filter ListFilter) ([]entity.Blog, int, error)
		IncrementViewsBySlug(ctx context.Context, slug string) (entity.Blog, error)
		UpdateBlog(ctx context.Context, patch BlogPatch) error
		DeleteBlogImage(ctx context.Context, imageID string) error
		DeleteBlog(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
