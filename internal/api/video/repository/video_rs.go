package videoRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	videos "DigitalLab/internal/api/video"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type ShortVideoDB struct {
	ID        sql.NullString `db:"id"`
	VideoID   sql.NullString `db:"video_id"`
	CreatedAt time.Time      `db:"created_at"`
}

type LongVideoDB struct {
	ID        sql.NullString `db:"id"`
	Title     sql.NullString `db:"title"`
	VideoID   sql.NullString `db:"video_id"`
	CreatedAt time.Time      `db:"created_at"`
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func (r *shortVideosRepository) CreateShortVideo(ctx context.Context, video entity.ShortFormVideo) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         video.ID,
		"video_id":   video.VideoID,
		"created_at": video.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateShortVideo, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateShortVideo")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"video_id":   video.VideoID,
			}).Warn("Short video already exists")
			return videos.ErrVideoExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating short video")
		return err
	}

	return nil
}

func (r *shortVideosRepository) GetAllShortVideos(ctx context.Context) ([]entity.ShortFormVideo, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var videosList []ShortVideoDB

	query, args, err := sqlx.Named(queryGetAllShortVideos, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllShortVideos named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &videosList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllShortVideos execution err")
		return nil, err
	}

	result := make([]entity.ShortFormVideo, 0, len(videosList))
	for _, videoDB := range videosList {
		result = append(result, entity.ShortFormVideo{
			ID:        videoDB.ID.String,
			VideoID:   videoDB.VideoID.String,
			CreatedAt: videoDB.CreatedAt,
		})
	}

	return result, nil
}

func (r *shortVideosRepository) DeleteShortVideo(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteShortVideo, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteShortVideo named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteShortVideo execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteShortVideo rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteShortVideo no rows affected")
		return videos.ErrVideoNotFound
	}

	return nil
}

func (r *longVideosRepository) CreateLongVideo(ctx context.Context, video entity.LongFormVideo) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         video.ID,
		"title":      video.Title,
		"video_id":   video.VideoID,
		"created_at": video.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateLongVideo, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateLongVideo")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"video_id":   video.VideoID,
			}).Warn("Long video already exists")
			return videos.ErrVideoExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating long video")
		return err
	}

	return nil
}

func (r *longVideosRepository) GetAllLongVideos(ctx context.Context) ([]entity.LongFormVideo, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var videosList []LongVideoDB

	query, args, err := sqlx.Named(queryGetAllLongVideos, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllLongVideos named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &videosList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllLongVideos execution err")
		return nil, err
	}

	result := make([]entity.LongFormVideo, 0, len(videosList))
	for _, videoDB := range videosList {
		result = append(result, entity.LongFormVideo{
			ID:        videoDB.ID.String,
			Title:     videoDB.Title.String,
			VideoID:   videoDB.VideoID.String,
			CreatedAt: videoDB.CreatedAt,
		})
	}

	return result, nil
}

func (r *longVideosRepository) DeleteLongVideo(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteLongVideo, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLongVideo named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLongVideo execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLongVideo rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteLongVideo no rows affected")
		return videos.ErrVideoNotFound
	}

	return nil
}
