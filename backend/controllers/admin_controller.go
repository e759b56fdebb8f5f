package controllers

import (
	"errors"
	"strings"

	"eduplus/backend/config"
	"eduplus/backend/forms"
	"eduplus/backend/models"
	"eduplus/backend/repository"
	"eduplus/backend/seed"
	"eduplus/backend/session"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	Courses  *repository.CourseRepository
	Users    *repository.UserRepository
	Sessions *session.Manager
	Cfg      *config.Config
	Log      *utils.Logger
}

func NewAdminController(db *gorm.DB, cfg *config.Config, sessions *session.Manager, log *utils.Logger) *AdminController {
	return &AdminController{
		Courses:  repository.NewCourseRepository(db),
		Users:    repository.NewUserRepository(db),
		Sessions: sessions,
		Cfg:      cfg,
		Log:      log.With("controller", "admin"),
	}
}

type PromoteRequest struct {
	Email string `json:"email" validate:"required,email" example:"profe@example.com"`
}

// ListCourses godoc
// @Summary Admin course list
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/courses [get]
func (ac *AdminController) ListCourses(c *fiber.Ctx) error {
	courses, err := ac.Courses.List(c.UserContext())
	if err != nil {
		ac.Log.Error("list courses", "error", err)
		return utils.InternalServerError(c, "No se pudieron obtener los cursos")
	}
	return utils.OK(c, fiber.Map{"cursos": courses})
}

// parseCourseForm reads a multipart course form. A nil error with ok=false
// means a response has already been written.
func (ac *AdminController) parseCourseForm(c *fiber.Ctx) (models.Course, bool, error) {
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		return models.Course{}, false, utils.BadRequest(c, "Formato no soportado")
	}
	form, err := c.MultipartForm()
	if err != nil {
		return models.Course{}, false, utils.BadRequest(c, "Formato no soportado")
	}

	course, err := forms.ParseCourse(form.Value)
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			return models.Course{}, false, utils.ValidationError(c, verr.Message, verr.Fields)
		}
		return models.Course{}, false, err
	}
	return course, true, nil
}

// CreateCourse godoc
// @Summary Create course
// @Description Multipart form; list fields are newline separated, materials are "name | url" lines, modules is a JSON array
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param nombre formData string true "Name"
// @Param categoria formData string true "Category"
// @Param descripcion formData string true "Description"
// @Param nivel formData string false "Level"
// @Param duracion formData string false "Duration"
// @Param requisitos formData string false "Requirements, one per line"
// @Param temario formData string false "Syllabus, one per line"
// @Param materiales formData string false "name | url per line"
// @Param modulos formData string false "JSON array of modules"
// @Param imagenUrl formData string false "Absolute image URL"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses [post]
func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	course, ok, err := ac.parseCourseForm(c)
	if !ok {
		return err
	}

	if err := ac.Courses.Create(c.UserContext(), &course); err != nil {
		ac.Log.Error("create course", "error", err)
		return utils.InternalServerError(c, "Error al crear el curso")
	}
	ac.Log.Info("course created", "course_id", course.ID, "titulo", course.Titulo)
	return utils.Created(c, fiber.Map{"id": course.ID})
}

// UpdateCourse godoc
// @Summary Edit course
// @Description Same form as create. Comments and creation date are kept.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses/{id} [put]
func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	course, ok, err := ac.parseCourseForm(c)
	if !ok {
		return err
	}

	updated, err := ac.Courses.Replace(c.UserContext(), c.Params("id"), course)
	if err != nil {
		return storeError(c, ac.Log, err, msgCourseNotFound, "Error al actualizar el curso")
	}
	return utils.OK(c, fiber.Map{"id": updated.ID})
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags admin
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses/{id} [delete]
func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	if err := ac.Courses.Delete(c.UserContext(), c.Params("id")); err != nil {
		return storeError(c, ac.Log, err, msgCourseNotFound, "Error al eliminar el curso")
	}
	return utils.OK(c, nil)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	users, err := ac.Users.List(c.UserContext())
	if err != nil {
		ac.Log.Error("list users", "error", err)
		return utils.InternalServerError(c, "No se pudieron obtener los usuarios")
	}
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	return utils.OK(c, fiber.Map{"usuarios": out})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id} [delete]
func (ac *AdminController) DeleteUser(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	if id == s.UserID {
		return utils.BadRequest(c, "No puedes eliminar tu propia cuenta")
	}

	ctx := c.UserContext()
	if err := ac.Users.Delete(ctx, id); err != nil {
		return storeError(c, ac.Log, err, msgUserNotFound, "Error al eliminar el usuario")
	}
	if err := ac.Sessions.Notify(ctx, session.Event{Kind: session.EventUserDeleted, UserID: id}); err != nil {
		ac.Log.Warn("publish auth event", "error", err)
	}
	return utils.OK(c, nil)
}

// PromoteUser godoc
// @Summary Grant admin role
// @Description Finds the account by email and sets role=admin, creating it if needed
// @Tags admin
// @Accept json
// @Produce json
// @Param input body PromoteRequest true "Email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/admin [post]
func (ac *AdminController) PromoteUser(c *fiber.Ctx) error {
	var input PromoteRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	input.Email = models.NormalizeEmail(input.Email)
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Email inválido", fields)
	}

	ctx := c.UserContext()
	user, created, err := ac.Users.PromoteToAdmin(ctx, input.Email)
	if err != nil {
		ac.Log.Error("promote", "error", err)
		return utils.InternalServerError(c, "Error al asignar rol de administrador")
	}
	if err := ac.Sessions.Notify(ctx, session.Event{Kind: session.EventRoleChanged, UserID: user.ID}); err != nil {
		ac.Log.Warn("publish auth event", "error", err)
	}

	return utils.OK(c, fiber.Map{
		"usuario": userView(user),
		"creado":  created,
	})
}

// SeedCourses godoc
// @Summary Insert sample courses
// @Description Adds the demo catalog; titles already present are skipped
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/seed [post]
func (ac *AdminController) SeedCourses(c *fiber.Ctx) error {
	results, err := seed.Run(c.UserContext(), ac.Courses)
	if err != nil {
		ac.Log.Error("seed", "error", err)
		return utils.InternalServerError(c, "Error durante la migración")
	}
	return utils.OK(c, fiber.Map{
		"message":    "Migración completada exitosamente",
		"resultados": results,
	})
}
