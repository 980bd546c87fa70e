package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"docadmin/internal/auth"
	"docadmin/internal/model"
)

const (
	UserLocalKey  = "user"
	TokenLocalKey = "access_token"
)

// RequireAuth rejects requests without a valid bearer token with 401. On
// success the user and the raw token are stored in locals.
func RequireAuth(p auth.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		user, err := p.CurrentUser(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			return err
		}

		c.Locals(UserLocalKey, user)
		c.Locals(TokenLocalKey, token)
		return c.Next()
	}
}

// UserFrom returns the user stored by RequireAuth, or nil.
func UserFrom(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}

// TokenFrom returns the bearer token stored by RequireAuth, or "".
func TokenFrom(c *fiber.Ctx) string {
	s, _ := c.Locals(TokenLocalKey).(string)
	return s
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
