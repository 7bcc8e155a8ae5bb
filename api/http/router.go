package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/smartparking/api/http/handlers"
	"github.com/artem13815/smartparking/api/http/middleware"
	"github.com/artem13815/smartparking/api/http/presenter"
)

const (
	AppName    = "Smart Parking API"
	AppVersion = "0.1.0"
)

// NewApp builds the Fiber app with the shared error handler and middleware.
// Strict routing keeps /owners and /owners/ distinct.
func NewApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName + " " + AppVersion,
		StrictRouting:         true,
		ErrorHandler:          presenter.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, root *handlers.RootHandler, owners *handlers.OwnersHandler) {
	app.Get("/", root.Welcome)

	app.Get("/owners/", owners.List)
	app.Get("/owners", owners.RedirectList)
}
