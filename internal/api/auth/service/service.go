package authService

import (
	auth "DigitalLab/internal/api/auth"
	authRepository "DigitalLab/internal/api/auth/repository"
	"DigitalLab/pkg/bcrypt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func NewAuthService(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    repo,
		bcryptUtils: bcryptUtils,
	}
}
