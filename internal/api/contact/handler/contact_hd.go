package contactHandler

import (
	"time"

	contact "DigitalLab/internal/api/contact"
	contextPkg "DigitalLab/pkg/context"
	"DigitalLab/pkg/handlerUtil"
	"DigitalLab/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ContactHandler) SendInquiry(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact inquiry request")

	var req contact.SendInquiryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.contactService.SendInquiry(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_inquiry")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Inquiry sent successfully",
		})
	}
}
