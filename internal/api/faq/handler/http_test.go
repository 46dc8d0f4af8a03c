package faqHandler

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

func TestStartRegistersFAQRoutes(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	h := New(logrus.New(), validator.New(), middleware.New(logrus.New()), nil)
	h.Start(app.Group("/api"))

	routes := registeredRoutes(app)
	assert.True(t, routes["POST /api/faq"])
	assert.True(t, routes["GET /api/faq"])
	assert.True(t, routes["GET /api/faq/:id"])
	assert.True(t, routes["PUT /api/faq/:id"])
	assert.True(t, routes["DELETE /api/faq/:id"])
	assert.False(t, routes["POST /api/faq/"])
}
