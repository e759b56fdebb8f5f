package controllers

import (
	"strings"

	"eduplus/backend/config"
	"eduplus/backend/repository"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	Users    *repository.UserRepository
	Sessions *session.Manager
	Cfg      *config.Config
	Log      *utils.Logger
}

func NewUserController(db *gorm.DB, cfg *config.Config, sessions *session.Manager, log *utils.Logger) *UserController {
	return &UserController{
		Users:    repository.NewUserRepository(db),
		Sessions: sessions,
		Cfg:      cfg,
		Log:      log.With("controller", "user"),
	}
}

type UpdateUserRequest struct {
	Nombre         string `json:"nombre" validate:"omitempty,max=80" example:"Ana López"`
	PasswordActual string `json:"passwordActual" example:"secreto123"`
	PasswordNueva  string `json:"passwordNueva" validate:"omitempty,min=6" example:"nuevoSecreto1"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	user, err := uc.Users.GetByID(c.UserContext(), s.UserID)
	if err != nil {
		return storeError(c, uc.Log, err, msgUserNotFound, "No se pudo obtener el usuario")
	}
	return utils.OK(c, fiber.Map{"user": userView(user)})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Changes the display name and/or password
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile changes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Datos de perfil inválidos", fields)
	}

	ctx := c.UserContext()
	user, err := uc.Users.GetByID(ctx, s.UserID)
	if err != nil {
		return storeError(c, uc.Log, err, msgUserNotFound, "No se pudo obtener el usuario")
	}

	if name := strings.TrimSpace(input.Nombre); name != "" {
		user.Name = name
	}
	if input.PasswordNueva != "" {
		if user.HasPassword() && !utils.CheckPassword(user.PasswordHash, input.PasswordActual) {
			return utils.BadRequest(c, "La contraseña actual es incorrecta")
		}
		hash, err := utils.HashPassword(input.PasswordNueva)
		if err != nil {
			uc.Log.Error("hash password", "error", err)
			return utils.InternalServerError(c, "No se pudo actualizar el perfil")
		}
		user.PasswordHash = hash
	}

	if err := uc.Users.Save(ctx, &user); err != nil {
		uc.Log.Error("update profile", "error", err)
		return utils.InternalServerError(c, "No se pudo actualizar el perfil")
	}
	uc.Sessions.Invalidate(user.ID)

	return utils.OK(c, fiber.Map{
		"message": "Perfil actualizado",
		"user":    userView(user),
	})
}
