package reviewHandler

import (
	reviewsService "DigitalLab/internal/api/review/service"
	"DigitalLab/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewsHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	reviewsService reviewsService.IReviewsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs reviewsService.IReviewsService,
) *ReviewsHandler {
	return &ReviewsHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		reviewsService: rs,
	}
}

func (h *ReviewsHandler) Start(srv fiber.Router) {
	review := srv.Group("/review")

	// Public endpoints
	review.Post("", h.CreateReview)
	review.Get("/approved", h.GetApprovedReviews)

	// Admin endpoints
	review.Get("", h.middleware.NewTokenMiddleware, h.GetAllReviews)
	review.Patch("/:id/approve", h.middleware.NewTokenMiddleware, h.ApproveReview)
	review.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateReview)
	review.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteReview)
}
