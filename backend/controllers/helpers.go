package controllers

import (
	"errors"
	"strings"

	"eduplus/backend/middleware"
	"eduplus/backend/repository"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	msgCourseNotFound = "Curso no encontrado"
	msgUserNotFound   = "Usuario no encontrado"
	msgInvalidBody    = "No se pudo leer el cuerpo de la petición"
	msgUnauthorized   = "No autorizado"
)

// storeError answers 404 for missing records and logs anything else as a 500.
func storeError(c *fiber.Ctx, log *utils.Logger, err error, notFound, failure string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(c, notFound)
	}
	log.Error(failure, "path", c.Path(), "error", err)
	return utils.InternalServerError(c, failure)
}

func currentSession(c *fiber.Ctx) (session.Session, error) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return session.Session{}, fiber.NewError(fiber.StatusUnauthorized, msgUnauthorized)
	}
	return s, nil
}

// firstQuery returns the first non-blank query value under any of keys.
func firstQuery(c *fiber.Ctx, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}
