package influencerRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	influencers "DigitalLab/internal/api/influencer"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type InfluencerDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	PicURL      sql.NullString `db:"pic_url"`
	PicKey      sql.NullString `db:"pic_key"`
	Keywords    sql.NullString `db:"keywords"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *influencersRepository) CreateInfluencer(ctx context.Context, influencer entity.Influencer) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          influencer.ID,
		"name":        influencer.Name,
		"description": influencer.Description,
		"pic_url":     influencer.PicURL,
		"pic_key":     influencer.PicKey,
		"keywords":    influencer.Keywords,
		"created_at":  influencer.CreatedAt,
		"updated_at":  influencer.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateInfluencer, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateInfluencer")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating influencer")
		return err
	}

	return nil
}

func (r *influencersRepository) GetInfluencerByID(ctx context.Context, id string) (entity.Influencer, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var influencer InfluencerDB

	query, args, err := sqlx.Named(queryGetInfluencerByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInfluencerByID named query preparation err")
		return entity.Influencer{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&influencer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetInfluencerByID no rows found")
			return entity.Influencer{}, influencers.ErrInfluencerNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetInfluencerByID execution err")
		return entity.Influencer{}, err
	}

	return r.makeInfluencer(influencer), nil
}

func (r *influencersRepository) GetAllInfluencers(ctx context.Context) ([]entity.Influencer, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var influencersList []InfluencerDB

	query, args, err := sqlx.Named(queryGetAllInfluencers, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllInfluencers named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &influencersList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllInfluencers execution err")
		return nil, err
	}

	result := make([]entity.Influencer, 0, len(influencersList))
	for _, influencerDB := range influencersList {
		result = append(result, r.makeInfluencer(influencerDB))
	}

	return result, nil
}

func (r *influencersRepository) UpdateInfluencer(ctx context.Context, patch InfluencerPatch) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          patch.ID,
		"name":        patch.Name,
		"description": patch.Description,
		"pic_url":     patch.PicURL,
		"pic_key":     patch.PicKey,
		"keywords":    patch.Keywords,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateInfluencer, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInfluencer named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInfluencer execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInfluencer rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         patch.ID,
		}).Warn("UpdateInfluencer no rows affected")
		return influencers.ErrInfluencerNotFound
	}

	return nil
}

func (r *influencersRepository) DeleteInfluencer(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteInfluencer, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteInfluencer named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteInfluencer execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteInfluencer rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteInfluencer no rows affected")
		return influencers.ErrInfluencerNotFound
	}

	return nil
}

func (r *influencersRepository) makeInfluencer(influencer InfluencerDB) entity.Influencer {
	return entity.Influencer{
		ID:          influencer.ID.String,
		Name:        influencer.Name.String,
		Description: influencer.Description.String,
		PicURL:      influencer.PicURL.String,
		PicKey:      influencer.PicKey.String,
		Keywords:    influencer.Keywords.String,
		CreatedAt:   influencer.CreatedAt,
		UpdatedAt:   influencer.UpdatedAt,
	}
}
