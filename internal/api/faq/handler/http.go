package faqHandler

import (
	faqsService "DigitalLab/internal/api/faq/service"
	"DigitalLab/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FAQsHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	faqsService faqsService.IFAQsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	fs faqsService.IFAQsService,
) *FAQsHandler {
	return &FAQsHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		faqsService: fs,
	}
}

func (h *FAQsHandler) Start(srv fiber.Router) {
	faq := srv.Group("/faq")
	faq.Post("", h.middleware.NewTokenMiddleware, h.CreateFAQ)
	faq.Get("", h.GetAllFAQs)
	faq.Get("/:id", h.GetFAQByID)
	faq.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateFAQ)
	faq.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteFAQ)
}
