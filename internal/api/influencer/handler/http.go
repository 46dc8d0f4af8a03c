package influencerHandler

import (
	influencersService "DigitalLab/internal/api/influencer/service"
	"DigitalLab/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type InfluencersHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	influencersService influencersService.IInfluencersService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	is influencersService.IInfluencersService,
) *InfluencersHandler {
	return &InfluencersHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		influencersService: is,
	}
}

func (h *InfluencersHandler) Start(srv fiber.Router) {
	influencers := srv.Group("/influencers")
	influencers.Post("", h.middleware.NewTokenMiddleware, h.CreateInfluencer)
	influencers.Get("", h.GetAllInfluencers)
	influencers.Get("/:id", h.GetInfluencerByID)
	influencers.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateInfluencer)
	influencers.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteInfluencer)
}
