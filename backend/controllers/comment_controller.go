package controllers

import (
	"errors"
	"time"

	"eduplus/backend/comments"
	"eduplus/backend/config"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CommentsController struct {
	Courses *repository.CourseRepository
	Users   *repository.UserRepository
	Cfg     *config.Config
	Log     *utils.Logger
	now     func() time.Time
}

func NewCommentsController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *CommentsController {
	return &CommentsController{
		Courses: repository.NewCourseRepository(db),
		Users:   repository.NewUserRepository(db),
		Cfg:     cfg,
		Log:     log.With("controller", "comments"),
		now:     time.Now,
	}
}

// AddCommentRequest defines the request body for adding a comment
type AddCommentRequest struct {
	Comentario   string `json:"comentario" validate:"notblank" example:"¡Excelente curso!"`
	Calificacion int    `json:"calificacion" validate:"min=1,max=5" example:"5" minimum:"1" maximum:"5"`
	// Timestamp lets a client resend a submission without duplicating it.
	Timestamp string `json:"timestamp,omitempty" example:"2024-03-05T10:00:00.000Z"`
}

// AddCourseComment godoc
// @Summary Add comment to course
// @Description Prepends a rated comment; an identical (timestamp, user) pair is rejected
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param input body AddCommentRequest true "Comment data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/comments [post]
func (cc *CommentsController) AddCourseComment(c *fiber.Ctx) error {
	s, err := currentSession(c)
	if err != nil {
		return err
	}

	var input AddCommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgInvalidBody)
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationError(c, "Comentario inválido", fields)
	}

	ctx := c.UserContext()
	author, err := cc.Users.GetByID(ctx, s.UserID)
	if err != nil {
		return storeError(c, cc.Log, err, msgUserNotFound, "No se pudo obtener el usuario")
	}

	comment, err := comments.New(author, input.Calificacion, input.Comentario, input.Timestamp, cc.now())
	if err != nil {
		return utils.ValidationError(c, "Comentario inválido", map[string]string{"timestamp": err.Error()})
	}

	list, err := cc.Courses.AppendComment(ctx, c.Params("id"), comment)
	if errors.Is(err, comments.ErrDuplicate) {
		return utils.Conflict(c, "Este comentario ya fue enviado")
	}
	if err != nil {
		return storeError(c, cc.Log, err, msgCourseNotFound, "No se pudo guardar el comentario")
	}

	return utils.Created(c, fiber.Map{
		"comentario":  comment,
		"comentarios": list,
	})
}

// GetCourseComments godoc
// @Summary Get course comments
// @Description Returns all comments for a course, newest first
// @Tags comments
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/{id}/comments [get]
func (cc *CommentsController) GetCourseComments(c *fiber.Ctx) error {
	list, err := cc.Courses.Comments(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, cc.Log, err, msgCourseNotFound, "No se pudieron obtener los comentarios")
	}
	return utils.OK(c, fiber.Map{"comentarios": list})
}
