package blogHandler

import (
	"testing"

	"DigitalLab/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(app *fiber.App) map[string]bool {
	routes := map[string]bool{}
	for _, r := range app.GetRoutes(true) {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

// StrictRouting is enabled in production, so "" and "/" register
// different paths and the slash-less one is the documented surface.
func TestStartRegistersBlogRoutes(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	h := New(logrus.New(), validator.New(), middleware.New(logrus.New()), nil)
	h.Start(app.Group("/api"))

	routes := registeredRoutes(app)
	assert.True(t, routes["POST /api/blogs"])
	assert.True(t, routes["GET /api/blogs"])
	assert.True(t, routes["GET /api/blogs/:slug"])
	assert.True(t, routes["PUT /api/blogs/:id"])
	assert.True(t, routes["DELETE /api/blogs/:id"])
	assert.False(t, routes["POST /api/blogs/"])
}
