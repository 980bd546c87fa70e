package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"docadmin/internal/auth"
	"docadmin/internal/http/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token.
//
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} model.Session
// @Failure 401 {object} errorPayload
// @Router /auth/login [post]
func Login(p auth.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "email and password are required")
		}
		session, err := p.SignIn(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			}
			return internalError(c, err)
		}
		return c.JSON(session)
	}
}

// Logout revokes the caller's token. Requires RequireAuth.
//
// @Summary Sign out
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func Logout(p auth.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := p.SignOut(c.UserContext(), middleware.TokenFrom(c)); err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CurrentUser returns the authenticated user. Requires RequireAuth.
//
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.User
// @Router /auth/me [get]
func CurrentUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := middleware.UserFrom(c)
		if user == nil {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		return c.JSON(user)
	}
}
