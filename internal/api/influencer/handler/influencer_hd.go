package influencerHandler

import (
	"errors"
	"strings"
	"time"

	influencers "DigitalLab/internal/api/influencer"
	contextPkg "DigitalLab/pkg/context"
	"DigitalLab/pkg/handlerUtil"
	"DigitalLab/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *InfluencersHandler) CreateInfluencer(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create influencer request")

	name := ctx.FormValue("name")
	description := ctx.FormValue("description")

	if name == "" || description == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("name and description are required"), ctx.Path())
	}

	req := influencers.CreateInfluencerRequest{
		Name:        name,
		Description: description,
		Keywords:    parseKeywords(ctx.FormValue("keywords")),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	picFile, _ := ctx.FormFile("pic")

	result, err := h.influencersService.CreateInfluencer(c, req, picFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_influencer")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, result)
	}
}

func (h *InfluencersHandler) GetAllInfluencers(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.influencersService.GetAllInfluencers(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_influencers")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *InfluencersHandler) GetInfluencerByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("influencer ID is required"), ctx.Path())
	}

	result, err := h.influencersService.GetInfluencerByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_influencer_by_id")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *InfluencersHandler) UpdateInfluencer(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("influencer ID is required"), ctx.Path())
	}

	req := influencers.UpdateInfluencerRequest{
		Name:        formValuePresent(ctx, "name"),
		Description: formValuePresent(ctx, "description"),
	}

	if keywords := formValuePresent(ctx, "keywords"); keywords != nil {
		req.Keywords = parseKeywords(*keywords)
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	picFile, _ := ctx.FormFile("pic")

	result, err := h.influencersService.UpdateInfluencer(c, id, req, picFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_influencer")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *InfluencersHandler) DeleteInfluencer(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("influencer ID is required"), ctx.Path())
	}

	if err := h.influencersService.DeleteInfluencer(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_influencer")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Influencer deleted successfully",
		})
	}
}

// parseKeywords splits a comma separated form value, dropping blanks.
func parseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

func formValuePresent(ctx *fiber.Ctx, key string) *string {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
