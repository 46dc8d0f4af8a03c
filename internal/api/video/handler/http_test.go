package videoHandler

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

func TestStartRegistersVideoRoutes(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})
	h := New(logrus.New(), validator.New(), middleware.New(logrus.New()), nil)
	h.Start(app.Group("/api"))

	routes := registeredRoutes(app)
	assert.True(t, routes["POST /api/short-videos"])
	assert.True(t, routes["GET /api/short-videos"])
	assert.True(t, routes["DELETE /api/short-videos/:id"])
	assert.True(t, routes["POST /api/long-videos"])
	assert.True(t, routes["GET /api/long-videos"])
	assert.True(t, routes["DELETE /api/long-videos/:id"])
	assert.False(t, routes["POST /api/short-videos/"])
	assert.False(t, routes["POST /api/long-videos/"])
}
