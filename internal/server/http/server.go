// Package http exposes the registration service over an HTTP JSON API.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	app     *fiber.App
	users   *users.Service
	logger  logging.Logger
}

func NewServer(address string, logger logging.Logger, us *users.Service) *Server {

	s := &Server{
		address: address,
		logger:  logger.With("module", "http_server"),
		users:   us,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(s.requestLogger())

	app.Get("/health", s.health)

	api := app.Group("/api")
	api.Post("/users", s.registerUser)
	api.Get("/users/:id", s.getUser)

	s.app = app

	return s
}

// errorHandler is the single place where handler errors become JSON
// responses; anything that is not a fiber.Error stays an opaque 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

// requestLogger tags each request with an id and logs its outcome.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)

		start := time.Now()
		err := c.Next()

		s.logger.Info(c.UserContext(), "request handled",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"error", err != nil,
		)

		return err
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
