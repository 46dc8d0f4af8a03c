package config

import (
	"fmt"
	"os"

	"DigitalLab/database/postgres"
	authHandler "DigitalLab/internal/api/auth/handler"
	authRepository "DigitalLab/internal/api/auth/repository"
	authService "DigitalLab/internal/api/auth/service"
	blogHandler "DigitalLab/internal/api/blog/handler"
	blogRepository "DigitalLab/internal/api/blog/repository"
	blogService "DigitalLab/internal/api/blog/service"
	contactHandler "DigitalLab/internal/api/contact/handler"
	contactService "DigitalLab/internal/api/contact/service"
	faqHandler "DigitalLab/internal/api/faq/handler"
	faqRepository "DigitalLab/internal/api/faq/repository"
	faqService "DigitalLab/internal/api/faq/service"
	influencerHandler "DigitalLab/internal/api/influencer/handler"
	influencerRepository "DigitalLab/internal/api/influencer/repository"
	influencerService "DigitalLab/internal/api/influencer/service"
	reviewHandler "DigitalLab/internal/api/review/handler"
	reviewRepository "DigitalLab/internal/api/review/repository"
	reviewService "DigitalLab/internal/api/review/service"
	videoHandler "DigitalLab/internal/api/video/handler"
	videoRepository "DigitalLab/internal/api/video/repository"
	videoService "DigitalLab/internal/api/video/service"
	"DigitalLab/internal/middleware"
	"DigitalLab/pkg/bcrypt"
	"DigitalLab/pkg/redis"
	"DigitalLab/pkg/s3"
	"DigitalLab/pkg/smtp"
	"DigitalLab/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.bcryptUtils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Review Domain
	reviewRepo := reviewRepository.New(s.db, s.log)
	reviewServices := reviewService.NewReviewsService(s.log, reviewRepo, s.s3Client, s.redisServer, s.utils)
	reviewHandlers := reviewHandler.New(s.log, s.validator, s.middleware, reviewServices)

	// Influencer Domain
	influencerRepo := influencerRepository.New(s.db, s.log)
	influencerServices := influencerService.NewInfluencersService(s.log, influencerRepo, s.s3Client, s.utils)
	influencerHandlers := influencerHandler.New(s.log, s.validator, s.middleware, influencerServices)

	// FAQ Domain
	faqRepo := faqRepository.New(s.db, s.log)
	faqServices := faqService.NewFAQsService(s.log, faqRepo, s.utils)
	faqHandlers := faqHandler.New(s.log, s.validator, s.middleware, faqServices)

	// Video Domain
	videoRepo := videoRepository.New(s.db, s.log)
	videoServices := videoService.NewVideosService(s.log, videoRepo, s.utils)
	videoHandlers := videoHandler.New(s.log, s.validator, s.middleware, videoServices)

	// Contact Domain
	contactServices := contactService.NewContactService(s.log, s.smtpMailer)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		blogHandlers,
		reviewHandlers,
		influencerHandlers,
		faqHandlers,
		videoHandlers,
		contactHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
