package faqRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	faqs "DigitalLab/internal/api/faq"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FAQDB struct {
	ID        sql.NullString `db:"id"`
	Question  sql.NullString `db:"question"`
	Answer    sql.NullString `db:"answer"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *faqsRepository) CreateFAQ(ctx context.Context, faq entity.FAQ) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         faq.ID,
		"question":   faq.Question,
		"answer":     faq.Answer,
		"created_at": faq.CreatedAt,
		"updated_at": faq.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateFAQ, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFAQ")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating faq")
		return err
	}

	return nil
}

func (r *faqsRepository) GetFAQByID(ctx context.Context, id string) (entity.FAQ, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var faq FAQDB

	query, args, err := sqlx.Named(queryGetFAQByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFAQByID named query preparation err")
		return entity.FAQ{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&faq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetFAQByID no rows found")
			return entity.FAQ{}, faqs.ErrFAQNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFAQByID execution err")
		return entity.FAQ{}, err
	}

	return r.makeFAQ(faq), nil
}

func (r *faqsRepository) GetAllFAQs(ctx context.Context) ([]entity.FAQ, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var faqsList []FAQDB

	query, args, err := sqlx.Named(queryGetAllFAQs, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllFAQs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &faqsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllFAQs execution err")
		return nil, err
	}

	result := make([]entity.FAQ, 0, len(faqsList))
	for _, faqDB := range faqsList {
		result = append(result, r.makeFAQ(faqDB))
	}

	return result, nil
}

func (r *faqsRepository) UpdateFAQ(ctx context.Context, patch FAQPatch) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         patch.ID,
		"question":   patch.Question,
		"answer":     patch.Answer,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateFAQ, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFAQ named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFAQ execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateFAQ rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         patch.ID,
		}).Warn("UpdateFAQ no rows affected")
		return faqs.ErrFAQNotFound
	}

	return nil
}

func (r *faqsRepository) DeleteFAQ(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteFAQ, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFAQ named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFAQ execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFAQ rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteFAQ no rows affected")
		return faqs.ErrFAQNotFound
	}

	return nil
}

func (r *faqsRepository) makeFAQ(faq FAQDB) entity.FAQ {
	return entity.FAQ{
		ID:        faq.ID.String,
		Question:  faq.Question.String,
		Answer:    faq.Answer.String,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}
