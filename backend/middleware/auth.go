package middleware

import (
	"errors"

	"eduplus/backend/config"
	"eduplus/backend/repository"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// AuthMiddleware resolves the bearer token into a session stored in the request locals.
func AuthMiddleware(cfg *config.Config, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "No autorizado")
		}
		s, err := sessions.Resolve(c.UserContext(), userID)
		if errors.Is(err, repository.ErrNotFound) {
			return utils.Unauthorized(c, "No autorizado")
		}
		if err != nil {
			// the app error handler logs it and answers 500
			return err
		}
		c.Locals(sessionKey, s)
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := CurrentSession(c)
		if !ok {
			return utils.Unauthorized(c, "No autorizado")
		}
		if !s.IsAdmin {
			return utils.Forbidden(c, "Se requiere acceso de administrador")
		}
		return c.Next()
	}
}

func CurrentSession(c *fiber.Ctx) (session.Session, bool) {
	s, ok := c.Locals(sessionKey).(session.Session)
	return s, ok
}
