package authService

import (
	"time"

	auth "DigitalLab/internal/api/auth"
	contextPkg "DigitalLab/pkg/context"
	jwtPkg "DigitalLab/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = 24 * time.Hour

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	admin, err := repo.Admins.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.bcryptUtils.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password mismatch on login attempt")
		return nil, auth.ErrInvalidCredentials
	}

	token, expiredAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":    admin.ID,
		"email": admin.Email,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return nil, auth.ErrLoginFailed
	}

	return &auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiredAt,
	}, nil
}
