package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/config"
	"github.com/Takahiruma/lejapong/internal/delivery/http/handler"
	"github.com/Takahiruma/lejapong/internal/delivery/http/middleware"
	appErrors "github.com/Takahiruma/lejapong/internal/pkg/errors"
)

// Server is the Fiber HTTP server fronting the place catalog.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	placeHandler *handler.PlaceHandler
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	placeHandler *handler.PlaceHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Places Catalog",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:          app,
		config:       cfg,
		logger:       logger,
		placeHandler: placeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.NewRequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Place routes. "filters" must be registered before ":slug".
	api.Get("/places", s.placeHandler.List)
	api.Get("/places/filters", s.placeHandler.FilterOptions)
	api.Get("/places/:slug", s.placeHandler.Get)
	api.Post("/places/reload", s.placeHandler.Reload)
}

// App exposes the fiber app for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start runs the server until Shutdown.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("Unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": appErrors.New("REQUEST_FAILED", err.Error(), code),
		})
	}
}
