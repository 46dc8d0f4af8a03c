package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	blogs "DigitalLab/internal/api/blog"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Slug        sql.NullString `db:"slug"`
	Excerpt     sql.NullString `db:"excerpt"`
	Content     sql.NullString `db:"content"`
	ReadingTime sql.NullInt64  `db:"reading_time"`
	Category    sql.NullString `db:"category"`
	Views       sql.NullInt64  `db:"views"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           blog.ID,
		"title":        blog.Title,
		"slug":         blog.Slug,
		"excerpt":      blog.Excerpt,
		"content":      blog.Content,
		"reading_time": blog.ReadingTime,
		"category":     blog.Category,
		"views":        blog.Views,
		"created_at":   blog.CreatedAt,
		"updated_at":   blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       blog.Slug,
			}).Warn("Slug already exists")
			return blogs.ErrSlugTaken
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) AddBlogImages(ctx context.Context, images []entity.BlogImage) error {
	requestID := contextPkg.GetRequestID(ctx)

	for _, image := range images {
		argsKV := map[string]interface{}{
			"id":         image.ID,
			"blog_id":    image.BlogID,
			"url":        image.URL,
			"object_key": image.ObjectKey,
			"position":   image.Position,
		}

		query, args, err := sqlx.Named(queryAddBlogImage, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("AddBlogImages named query preparation err")
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    image.BlogID,
				"error":      err.Error(),
			}).Error("AddBlogImages execution err")
			return err
		}
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetBlogImages(ctx context.Context, blogID string) ([]entity.BlogImage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var images []entity.BlogImage

	query, args, err := sqlx.Named(queryGetBlogImages, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogImages named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &images, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("GetBlogImages execution err")
		return nil, err
	}

	return images, nil
}

func (r *blogsRepository) ListBlogs(ctx context.Context, filter ListFilter) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB
	var total int

	argsKV := map[string]interface{}{
		"limit":  filter.Limit,
		"offset": filter.Offset,
	}

	countQueryStr := queryCountBlogsBase
	listQueryStr := queryListBlogsBase

	if filter.Search != "" {
		argsKV["pattern"] = "%" + filter.Search + "%"
		countQueryStr += querySearchClause
		listQueryStr += querySearchClause
	}
	if filter.Category != "" {
		argsKV["category"] = filter.Category
		countQueryStr += queryCategoryClause
		listQueryStr += queryCategoryClause
	}
	listQueryStr += queryListBlogsTail

	countQuery, countArgs, err := sqlx.Named(countQueryStr, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBlogs named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBlogs execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQueryStr, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs execution err")
		return nil, 0, err
	}

	var result []entity.Blog
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) IncrementViewsBySlug(ctx context.Context, slug string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	query, args, err := sqlx.Named(queryIncrementViewsBySlug, map[string]interface{}{"slug": slug})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementViewsBySlug named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"slug":       slug,
			}).Warn("IncrementViewsBySlug no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementViewsBySlug execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, patch BlogPatch) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           patch.ID,
		"title":        patch.Title,
		"slug":         patch.Slug,
		"excerpt":      patch.Excerpt,
		"content":      patch.Content,
		"reading_time": patch.ReadingTime,
		"category":     patch.Category,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         patch.ID,
			}).Warn("Slug already exists")
			return blogs.ErrSlugTaken
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         patch.ID,
		}).Warn("UpdateBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteBlogImage(ctx context.Context, imageID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlogImage, map[string]interface{}{"id": imageID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogImage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_id":   imageID,
			"error":      err.Error(),
		}).Error("DeleteBlogImage execution err")
		return err
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	imagesQuery, imagesArgs, err := sqlx.Named(queryDeleteBlogImages, map[string]interface{}{"blog_id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	imagesQuery = r.q.Rebind(imagesQuery)

	if _, err := r.q.ExecContext(ctx, imagesQuery, imagesArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog images execution err")
		return err
	}

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteBlog no rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:          blog.ID.String,
		Title:       blog.Title.String,
		Slug:        blog.Slug.String,
		Excerpt:     blog.Excerpt.String,
		Content:     blog.Content.String,
		ReadingTime: int(blog.ReadingTime.Int64),
		Category:    blog.Category.String,
		Views:       int(blog.Views.Int64),
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}
