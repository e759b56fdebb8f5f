package controllers

import (
	"errors"

	"eduplus/backend/config"
	"eduplus/backend/models"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *config.Config
	Log   *utils.Logger
}

func NewAuthController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *AuthController {
	return &AuthController{
		Users: repository.NewUserRepository(db),
		Cfg:   cfg,
		Log:   log.With("controller", "auth"),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secreto123"`
	Nombre   string `json:"nombre" example:"Ana"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a password account, or claims one pre-created by an admin
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	input.Email = models.NormalizeEmail(input.Email)
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Datos de registro inválidos", fields)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		ac.Log.Error("hash password", "error", err)
		return utils.InternalServerError(c, "No se pudo crear el usuario")
	}

	ctx := c.UserContext()
	user, err := ac.Users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil && user.HasPassword():
		return utils.Conflict(c, "El email ya está registrado")
	case err == nil:
		// account created by an admin elevation: keep its role
		user.PasswordHash = hash
		if input.Nombre != "" {
			user.Name = input.Nombre
		}
		err = ac.Users.Save(ctx, &user)
	case errors.Is(err, repository.ErrNotFound):
		user = models.User{Email: input.Email, Name: input.Nombre, PasswordHash: hash, Role: models.RoleUser}
		err = ac.Users.Create(ctx, &user)
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return utils.Conflict(c, "El email ya está registrado")
	}
	if err != nil {
		ac.Log.Error("register", "error", err)
		return utils.InternalServerError(c, "No se pudo crear el usuario")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		ac.Log.Error("sign token", "error", err)
		return utils.InternalServerError(c, "No se pudo generar el token")
	}

	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  userView(user),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Datos de acceso inválidos", fields)
	}

	user, err := ac.Users.GetByEmail(c.UserContext(), input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.Unauthorized(c, "Credenciales inválidas")
		}
		ac.Log.Error("login lookup", "error", err)
		return utils.InternalServerError(c, "No se pudo consultar la base de datos")
	}

	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		return utils.Unauthorized(c, "Credenciales inválidas")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		ac.Log.Error("sign token", "error", err)
		return utils.InternalServerError(c, "No se pudo generar el token")
	}

	return utils.OK(c, fiber.Map{
		"token": token,
		"user":  userView(user),
	})
}

func userView(u models.User) fiber.Map {
	return fiber.Map{
		"id":        u.ID,
		"email":     u.Email,
		"nombre":    u.DisplayName(),
		"role":      u.Role,
		"isAdmin":   u.IsAdmin(),
		"createdAt": u.CreatedAt,
	}
}
