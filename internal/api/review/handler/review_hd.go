package reviewHandler

import (
	"errors"
	"time"

	reviews "DigitalLab/internal/api/review"
	contextPkg "DigitalLab/pkg/context"
	"DigitalLab/pkg/handlerUtil"
	jwtPkg "DigitalLab/pkg/jwt"
	"DigitalLab/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReviewsHandler) CreateReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create review request")

	name := ctx.FormValue("name")
	email := ctx.FormValue("email")
	role := ctx.FormValue("role")
	review := ctx.FormValue("review")

	if name == "" || email == "" || role == "" || review == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("name, email, role, and review are required"), ctx.Path())
	}

	req := reviews.CreateReviewRequest{
		Name:   name,
		Email:  email,
		Role:   role,
		Review: review,
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imageFile, _ := ctx.FormFile("image")

	result, err := h.reviewsService.CreateReview(c, req, imageFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Review submitted successfully, pending admin approval.",
			"review":  result,
		})
	}
}

func (h *ReviewsHandler) GetAllReviews(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.reviewsService.GetAllReviews(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_reviews")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ReviewsHandler) GetApprovedReviews(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	result, err := h.reviewsService.GetApprovedReviews(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_approved_reviews")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ReviewsHandler) ApproveReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("review ID is required"), ctx.Path())
	}

	if admin, err := jwtPkg.GetAdminLoginData(ctx); err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"admin":      admin.Email,
			"review_id":  id,
		}).Info("Admin approving review")
	}

	result, err := h.reviewsService.ApproveReview(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "approve_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Review approved successfully",
			"review":  result,
		})
	}
}

func (h *ReviewsHandler) UpdateReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("review ID is required"), ctx.Path())
	}

	req := reviews.UpdateReviewRequest{
		Name:   formValuePresent(ctx, "name"),
		Email:  formValuePresent(ctx, "email"),
		Role:   formValuePresent(ctx, "role"),
		Review: formValuePresent(ctx, "review"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imageFile, _ := ctx.FormFile("image")

	result, err := h.reviewsService.UpdateReview(c, id, req, imageFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Review updated successfully",
			"review":  result,
		})
	}
}

func (h *ReviewsHandler) DeleteReview(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("review ID is required"), ctx.Path())
	}

	if err := h.reviewsService.DeleteReview(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_review")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Review deleted successfully",
		})
	}
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
