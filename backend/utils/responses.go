package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	OK      bool        `json:"ok"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// PaginatedResponse структура для пагинированных ответов
type PaginatedResponse struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Pages    int         `json:"pages"`
	Meta     interface{} `json:"meta,omitempty"`
}

// Success создает успешный JSON ответ, добавляя "ok": true к полям
func Success(c *fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// OK отправляет ответ 200
func OK(c *fiber.Ctx, fields fiber.Map) error {
	return Success(c, fiber.StatusOK, fields)
}

// Created отправляет ответ 201 Created
func Created(c *fiber.Ctx, fields fiber.Map) error {
	return Success(c, fiber.StatusCreated, fields)
}

// Error создает JSON ответ с ошибкой
func Error(c *fiber.Ctx, status int, message string, details ...interface{}) error {
	response := ErrorResponse{
		OK:    false,
		Error: message,
	}
	if len(details) > 0 {
		response.Details = details[0]
	}
	return c.Status(status).JSON(response)
}

// Paginate создает пагинированный JSON ответ
func Paginate(c *fiber.Ctx, data interface{}, total, page, pageSize int, meta ...interface{}) error {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	response := PaginatedResponse{
		OK:       true,
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Pages:    pages,
	}
	if len(meta) > 0 {
		response.Meta = meta[0]
	}
	return c.JSON(response)
}

// ValidationError отправляет 400 с ошибками по полям
func ValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	if len(fields) == 0 {
		return Error(c, fiber.StatusBadRequest, message)
	}
	return Error(c, fiber.StatusBadRequest, message, fields)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ErrorHandler переводит ошибки, вернувшиеся из обработчиков, в общий формат ответа
func ErrorHandler(log *Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Error interno del servidor"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return Error(c, status, message)
	}
}
