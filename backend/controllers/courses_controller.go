package controllers

import (
	"eduplus/backend/config"
	"eduplus/backend/progress"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	Courses *repository.CourseRepository
	Cfg     *config.Config
	Log     *utils.Logger
}

func NewCoursesController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *CoursesController {
	return &CoursesController{
		Courses: repository.NewCourseRepository(db),
		Cfg:     cfg,
		Log:     log.With("controller", "courses"),
	}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns every course in store order
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Courses.List(c.UserContext())
	if err != nil {
		cc.Log.Error("list courses", "error", err)
		return utils.InternalServerError(c, "No se pudieron obtener los cursos")
	}
	return utils.OK(c, fiber.Map{"courses": courses})
}

// GetCourseDetails godoc
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, err := cc.Courses.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, cc.Log, err, msgCourseNotFound, "No se pudo obtener el curso")
	}
	return utils.OK(c, fiber.Map{
		"curso":                course,
		"calificacionPromedio": course.AverageRating(),
	})
}

// GetCourseModules godoc
// @Summary Combined module list
// @Description Module videos and PDFs flattened in viewing order
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id}/modules [get]
func (cc *CoursesController) GetCourseModules(c *fiber.Ctx) error {
	course, err := cc.Courses.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, cc.Log, err, msgCourseNotFound, "No se pudo obtener el curso")
	}
	items := progress.BuildModuleList(course)
	return utils.OK(c, fiber.Map{
		"modulos": items,
		"total":   len(items),
	})
}
