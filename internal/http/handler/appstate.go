package handler

import (
	"github.com/gofiber/fiber/v2"

	"docadmin/internal/http/middleware"
	"docadmin/internal/model"
	"docadmin/internal/service"
)

func userID(c *fiber.Ctx) string {
	if u := middleware.UserFrom(c); u != nil {
		return u.ID
	}
	return ""
}

// LoadAppState returns the caller's saved state, or 204 when there is none.
//
// @Summary Load app state
// @Tags app-state
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.AppState
// @Success 204
// @Router /app-state [get]
func LoadAppState(svc service.AppStateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Load(c.UserContext(), userID(c))
		if err != nil {
			return internalError(c, err)
		}
		if st == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(st)
	}
}

// SaveAppState replaces the caller's state.
//
// @Summary Save app state
// @Tags app-state
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.AppState true "state"
// @Success 200 {object} model.AppState
// @Router /app-state [put]
func SaveAppState(svc service.AppStateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var st model.AppState
		if err := c.BodyParser(&st); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if st.CurrentStep < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_STEP", "current_step must not be negative")
		}
		saved, err := svc.Save(c.UserContext(), userID(c), st)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(saved)
	}
}

// ClearAppState removes the caller's state.
//
// @Summary Clear app state
// @Tags app-state
// @Security BearerAuth
// @Success 204
// @Router /app-state [delete]
func ClearAppState(svc service.AppStateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Clear(c.UserContext(), userID(c)); err != nil {
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
