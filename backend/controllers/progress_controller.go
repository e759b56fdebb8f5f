package controllers

import (
	"errors"

	"eduplus/backend/config"
	"eduplus/backend/models"
	"eduplus/backend/progress"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	Courses  *repository.CourseRepository
	Progress *repository.ProgressRepository
	Cfg      *config.Config
	Log      *utils.Logger
}

func NewProgressController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *ProgressController {
	return &ProgressController{
		Courses:  repository.NewCourseRepository(db),
		Progress: repository.NewProgressRepository(db),
		Cfg:      cfg,
		Log:      log.With("controller", "progress"),
	}
}

type AdvanceRequest struct {
	Delta int `json:"delta" validate:"oneof=-1 1" example:"1"`
}

// tracker loads the caller's progress on the course named in the path.
func (pc *ProgressController) tracker(c *fiber.Ctx) (*progress.Tracker, models.Course, error) {
	s, err := currentSession(c)
	if err != nil {
		return nil, models.Course{}, err
	}
	ctx := c.UserContext()
	course, err := pc.Courses.Get(ctx, c.Params("id"))
	if err != nil {
		return nil, models.Course{}, err
	}
	t := progress.NewTracker(progress.BuildModuleList(course), pc.Progress.Store(s.UserID, course.ID))
	if err := t.LoadProgress(ctx); err != nil {
		return nil, models.Course{}, err
	}
	return t, course, nil
}

func (pc *ProgressController) fail(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return err
	}
	if errors.Is(err, progress.ErrIndexOutOfRange) {
		return utils.BadRequest(c, "Índice de módulo fuera de rango")
	}
	return storeError(c, pc.Log, err, msgCourseNotFound, "No se pudo guardar el progreso")
}

func progressView(courseID string, t *progress.Tracker) fiber.Map {
	snap := t.Snapshot()
	return fiber.Map{
		"cursoId":            courseID,
		"modulosCompletados": snap.Completions,
		"porcentaje":         snap.Percentage,
		"moduloActual":       snap.CurrentIndex,
		"total":              len(snap.Completions),
	}
}

// GetProgress godoc
// @Summary Get course progress
// @Description Stored completion flags resized to the current module list
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	t, course, err := pc.tracker(c)
	if err != nil {
		return pc.fail(c, err)
	}
	return utils.OK(c, fiber.Map{"progreso": progressView(course.ID, t)})
}

// MarkCompleted godoc
// @Summary Mark module completed
// @Description Idempotent; changed is false when the module was already done
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Param index path int true "Combined module index"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress/{index}/complete [post]
func (pc *ProgressController) MarkCompleted(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Índice de módulo inválido")
	}
	t, course, err := pc.tracker(c)
	if err != nil {
		return pc.fail(c, err)
	}

	changed, err := t.MarkCompleted(c.UserContext(), index)
	if err != nil {
		return pc.fail(c, err)
	}
	return utils.OK(c, fiber.Map{
		"progreso": progressView(course.ID, t),
		"changed":  changed,
	})
}

// ToggleCompleted godoc
// @Summary Toggle module completion
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Param index path int true "Combined module index"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress/{index}/toggle [post]
func (pc *ProgressController) ToggleCompleted(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.BadRequest(c, "Índice de módulo inválido")
	}
	t, course, err := pc.tracker(c)
	if err != nil {
		return pc.fail(c, err)
	}

	if err := t.ToggleCompleted(c.UserContext(), index); err != nil {
		return pc.fail(c, err)
	}
	return utils.OK(c, fiber.Map{"progreso": progressView(course.ID, t)})
}

// Advance godoc
// @Summary Move to previous/next module
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body AdvanceRequest true "Direction"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/progress/advance [post]
func (pc *ProgressController) Advance(c *fiber.Ctx) error {
	var input AdvanceRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Dirección inválida", fields)
	}
	t, course, err := pc.tracker(c)
	if err != nil {
		return pc.fail(c, err)
	}

	if _, err := t.Advance(c.UserContext(), input.Delta); err != nil {
		return pc.fail(c, err)
	}
	return utils.OK(c, fiber.Map{"progreso": progressView(course.ID, t)})
}

// ResetProgress godoc
// @Summary Clear course progress
// @Tags progress
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /courses/{id}/progress/reset [post]
func (pc *ProgressController) ResetProgress(c *fiber.Ctx) error {
	t, course, err := pc.tracker(c)
	if err != nil {
		return pc.fail(c, err)
	}
	if err := t.Reset(c.UserContext()); err != nil {
		return pc.fail(c, err)
	}
	return utils.OK(c, fiber.Map{"progreso": progressView(course.ID, t)})
}
