package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/server/users"
	"github.com/dmitrijs2005/userhub/internal/shared"
)

type registerRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public user representation; the credential hash is
// never serialized.
type userResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *models.User) *userResponse {
	return &userResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *Server) registerUser(c *fiber.Ctx) error {

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := s.users.Register(c.UserContext(), &users.RegistrationRequest{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	})

	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorValidation):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, shared.ErrorAlreadyExists):
			// never reveals which of username/email collided
			return fiber.NewError(fiber.StatusBadRequest, "username or email already exists")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user))
}

func (s *Server) getUser(c *fiber.Ctx) error {

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	user, err := s.users.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	return c.JSON(newUserResponse(user))
}
