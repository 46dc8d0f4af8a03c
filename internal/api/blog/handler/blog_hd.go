package blogHandler

import (
	"errors"
	"mime/multipart"
	"strconv"
	"time"

	blogs "DigitalLab/internal/api/blog"
	contextPkg "DigitalLab/pkg/context"
	"DigitalLab/pkg/handlerUtil"
	"DigitalLab/pkg/log"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	title := ctx.FormValue("title")
	excerpt := ctx.FormValue("excerpt")
	content := ctx.FormValue("content")
	category := ctx.FormValue("category")

	if title == "" || excerpt == "" || content == "" || category == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("title, excerpt, content, and category are required"), ctx.Path())
	}

	req := blogs.CreateBlogRequest{
		Title:    title,
		Excerpt:  excerpt,
		Content:  content,
		Category: category,
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imageFiles := formFiles(ctx, "images")

	blog, err := h.blogsService.CreateBlog(c, req, imageFiles)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"success": true,
			"message": "Blog created successfully",
			"blog":    blog,
		})
	}
}

func (h *BlogsHandler) GetBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(ctx.Query("limit", strconv.Itoa(blogs.DefaultPageSize)))
	if err != nil || limit < 1 || limit > 100 {
		limit = blogs.DefaultPageSize
	}

	query := blogs.ListBlogsQuery{
		Page:     page,
		Limit:    limit,
		Search:   ctx.Query("search", ""),
		Category: ctx.Query("category", "all"),
	}

	result, err := h.blogsService.ListBlogs(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *BlogsHandler) GetBlogBySlug(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog slug is required"), ctx.Path())
	}

	blog, err := h.blogsService.GetBlogBySlug(c, slug)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog_by_slug")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Blog retrieved successfully",
			"blog":    blog,
		})
	}
}

func (h *BlogsHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update blog request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	req := blogs.UpdateBlogRequest{
		Title:    formValuePresent(ctx, "title"),
		Excerpt:  formValuePresent(ctx, "excerpt"),
		Content:  formValuePresent(ctx, "content"),
		Category: formValuePresent(ctx, "category"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	keepImageURLs := parseExistingImages(ctx)
	imageFiles := formFiles(ctx, "images")

	blog, err := h.blogsService.UpdateBlog(c, id, req, keepImageURLs, imageFiles)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Blog updated successfully",
			"blog":    blog,
		})
	}
}

func (h *BlogsHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog ID is required"), ctx.Path())
	}

	blog, err := h.blogsService.DeleteBlog(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"success": true,
			"message": "Blog deleted successfully",
			"blog":    blog,
		})
	}
}

func formFiles(ctx *fiber.Ctx, key string) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[key]
}

// formValuePresent distinguishes an absent field from an explicitly empty
// one: absent returns nil, present returns a pointer to the value.
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

// parseExistingImages accepts either a JSON array of URLs or a single URL
// string in the existingImages field.
func parseExistingImages(ctx *fiber.Ctx) []string {
	raw := ctx.FormValue("existingImages")
	if raw == "" {
		return nil
	}

	var urls []string
	if err := jsoniter.UnmarshalFromString(raw, &urls); err != nil {
		return []string{raw}
	}
	return urls
}
