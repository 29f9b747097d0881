package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/youpesh/schedsim/config"
)

// NewApp builds the fiber application with all routes registered.
func NewApp(cfg *config.ServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "schedsim"})
	NewHandler(cfg).Register(app)
	return app
}

// Listen builds the application and serves it on the configured port,
// blocking until the server stops.
func Listen(cfg *config.ServerConfig) error {
	return NewApp(cfg).Listen(fmt.Sprintf(":%d", cfg.Port))
}
