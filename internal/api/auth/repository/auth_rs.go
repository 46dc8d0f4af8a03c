package authRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	auth "DigitalLab/internal/api/auth"
	"DigitalLab/internal/entity"
	contextPkg "DigitalLab/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AdminDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *adminsRepository) GetAdminByEmail(ctx context.Context, email string) (entity.Admin, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var admin AdminDB

	query, args, err := sqlx.Named(queryGetAdminByEmail, map[string]interface{}{"email": email})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAdminByEmail named query preparation err")
		return entity.Admin{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetAdminByEmail no rows found")
			return entity.Admin{}, auth.ErrInvalidCredentials
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAdminByEmail execution err")
		return entity.Admin{}, err
	}

	return entity.Admin{
		ID:           admin.ID.String,
		Email:        admin.Email.String,
		PasswordHash: admin.PasswordHash.String,
		CreatedAt:    admin.CreatedAt,
	}, nil
}
