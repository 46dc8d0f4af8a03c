package reviewRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	reviews "DigitalLab/internal/api/review"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ReviewDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Role      sql.NullString `db:"role"`
	Review    sql.NullString `db:"review"`
	ImageURL  sql.NullString `db:"image_url"`
	ImageKey  sql.NullString `db:"image_key"`
	Approved  sql.NullBool   `db:"approved"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *reviewsRepository) CreateReview(ctx context.Context, review entity.Review) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         review.ID,
		"name":       review.Name,
		"email":      review.Email,
		"role":       review.Role,
		"review":     review.Review,
		"image_url":  review.ImageURL,
		"image_key":  review.ImageKey,
		"approved":   review.Approved,
		"created_at": review.CreatedAt,
		"updated_at": review.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateReview")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating review")
		return err
	}

	return nil
}

func (r *reviewsRepository) GetReviewByID(ctx context.Context, id string) (entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var review ReviewDB

	query, args, err := sqlx.Named(queryGetReviewByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID named query preparation err")
		return entity.Review{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetReviewByID no rows found")
			return entity.Review{}, reviews.ErrReviewNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReviewByID execution err")
		return entity.Review{}, err
	}

	return r.makeReview(review), nil
}

func (r *reviewsRepository) GetAllReviews(ctx context.Context) ([]entity.Review, error) {
	return r.selectReviews(ctx, queryGetAllReviews, "GetAllReviews")
}

func (r *reviewsRepository) GetApprovedReviews(ctx context.Context) ([]entity.Review, error) {
	return r.selectReviews(ctx, queryGetApprovedReviews, "GetApprovedReviews")
}

func (r *reviewsRepository) selectReviews(ctx context.Context, baseQuery, operation string) ([]entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var reviewsList []ReviewDB

	query, args, err := sqlx.Named(baseQuery, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &reviewsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("execution err")
		return nil, err
	}

	result := make([]entity.Review, 0, len(reviewsList))
	for _, reviewDB := range reviewsList {
		result = append(result, r.makeReview(reviewDB))
	}

	return result, nil
}

func (r *reviewsRepository) ApproveReview(ctx context.Context, id string) (entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var review ReviewDB

	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryApproveReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ApproveReview named query preparation err")
		return entity.Review{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&review); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("ApproveReview no rows found")
			return entity.Review{}, reviews.ErrReviewNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ApproveReview execution err")
		return entity.Review{}, err
	}

	return r.makeReview(review), nil
}

func (r *reviewsRepository) UpdateReview(ctx context.Context, patch ReviewPatch) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         patch.ID,
		"name":       patch.Name,
		"email":      patch.Email,
		"role":       patch.Role,
		"review":     patch.Review,
		"image_url":  patch.ImageURL,
		"image_key":  patch.ImageKey,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateReview, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReview named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReview execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateReview rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         patch.ID,
		}).Warn("UpdateReview no rows affected")
		return reviews.ErrReviewNotFound
	}

	return nil
}

func (r *reviewsRepository) DeleteReview(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteReview, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteReview rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteReview no rows affected")
		return reviews.ErrReviewNotFound
	}

	return nil
}

func (r *reviewsRepository) makeReview(review ReviewDB) entity.Review {
	return entity.Review{
		ID:        review.ID.String,
		Name:      review.Name.String,
		Email:     review.Email.String,
		Role:      review.Role.String,
		Review:    review.Review.String,
		ImageURL:  review.ImageURL.String,
		ImageKey:  review.ImageKey.String,
		Approved:  review.Approved.Bool,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
