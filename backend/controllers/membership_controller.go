package controllers

import (
	"eduplus/backend/config"
	"eduplus/backend/progress"
	"eduplus/backend/registry"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MembershipController manages the caller's in-progress, completed and favorite sets.
type MembershipController struct {
	Courses  *repository.CourseRepository
	Progress *repository.ProgressRepository
	Registry *registry.Registry
	Cfg      *config.Config
	Log      *utils.Logger
}

func NewMembershipController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *MembershipController {
	return &MembershipController{
		Courses:  repository.NewCourseRepository(db),
		Progress: repository.NewProgressRepository(db),
		Registry: registry.New(repository.NewMembershipRepository(db)),
		Cfg:      cfg,
		Log:      log.With("controller", "membership"),
	}
}

// GetUserCourses godoc
// @Summary User course sets
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/courses [get]
func (mc *MembershipController) GetUserCourses(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	sets, err := mc.Registry.Sets(c.UserContext(), s.UserID)
	if err != nil {
		mc.Log.Error("load sets", "error", err)
		return utils.InternalServerError(c, "No se pudieron obtener tus cursos")
	}
	return utils.OK(c, fiber.Map{
		"enProgreso":  sets.EnProgreso,
		"completados": sets.Completados,
		"favoritos":   sets.Favoritos,
	})
}

// EnrollCourse godoc
// @Summary Enroll in a course
// @Description Copies the course into the in-progress set
// @Tags users
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/courses/{id}/enroll [post]
func (mc *MembershipController) EnrollCourse(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	course, err := mc.Courses.Get(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, mc.Log, err, msgCourseNotFound, "No se pudo obtener el curso")
	}

	snap, found, err := mc.Progress.Store(s.UserID, course.ID).Load(ctx)
	if err != nil {
		return storeError(c, mc.Log, err, msgCourseNotFound, "No se pudo obtener el progreso")
	}
	pct := 0
	if found {
		pct = progress.Percentage(progress.Resize(snap.Completions, progress.CountItems(course)))
	}

	if err := mc.Registry.Enroll(ctx, s.UserID, course, pct); err != nil {
		mc.Log.Error("enroll", "course_id", course.ID, "error", err)
		return utils.InternalServerError(c, "No se pudo inscribir en el curso")
	}
	return utils.OK(c, fiber.Map{"cursoId": course.ID})
}

// CompleteCourse godoc
// @Summary Complete a course
// @Description Moves the course from in progress to completed at 100%
// @Tags users
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/courses/{id}/complete [post]
func (mc *MembershipController) CompleteCourse(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	course, err := mc.Courses.Get(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, mc.Log, err, msgCourseNotFound, "No se pudo obtener el curso")
	}

	at, err := mc.Registry.Complete(ctx, s.UserID, course)
	if err != nil {
		mc.Log.Error("complete", "course_id", course.ID, "error", err)
		return utils.InternalServerError(c, "No se pudo completar el curso")
	}
	return utils.OK(c, fiber.Map{
		"cursoId":         course.ID,
		"fechaCompletado": at,
	})
}

// ToggleFavorite godoc
// @Summary Toggle favorite
// @Tags users
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/favorites/{id} [post]
func (mc *MembershipController) ToggleFavorite(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	course, err := mc.Courses.Get(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, mc.Log, err, msgCourseNotFound, "No se pudo obtener el curso")
	}

	fav, err := mc.Registry.ToggleFavorite(ctx, s.UserID, course)
	if err != nil {
		mc.Log.Error("toggle favorite", "course_id", course.ID, "error", err)
		return utils.InternalServerError(c, "No se pudo actualizar favoritos")
	}
	return utils.OK(c, fiber.Map{
		"cursoId":  course.ID,
		"favorito": fav,
	})
}
