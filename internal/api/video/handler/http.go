package videoHandler

import (
	videosService "DigitalLab/internal/api/video/service"
	"DigitalLab/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VideosHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	videosService videosService.IVideosService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	vs videosService.IVideosService,
) *VideosHandler {
	return &VideosHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		videosService: vs,
	}
}

func (h *VideosHandler) Start(srv fiber.Router) {
	short := srv.Group("/short-videos")
	short.Post("", h.middleware.NewTokenMiddleware, h.CreateShortVideo)
	short.Get("", h.GetAllShortVideos)
	short.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteShortVideo)

	long := srv.Group("/long-videos")
	long.Post("", h.middleware.NewTokenMiddleware, h.CreateLongVideo)
	long.Get("", h.GetAllLongVideos)
	long.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteLongVideo)
}
