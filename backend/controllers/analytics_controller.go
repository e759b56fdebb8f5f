package controllers

import (
	"context"
	"math"
	"sort"

	"eduplus/backend/config"
	"eduplus/backend/models"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const topRatedLimit = 5

type AnalyticsController struct {
	Courses     *repository.CourseRepository
	Users       *repository.UserRepository
	Memberships *repository.MembershipRepository
	Cfg         *config.Config
	Log         *utils.Logger
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *AnalyticsController {
	return &AnalyticsController{
		Courses:     repository.NewCourseRepository(db),
		Users:       repository.NewUserRepository(db),
		Memberships: repository.NewMembershipRepository(db),
		Cfg:         cfg,
		Log:         log.With("controller", "analytics"),
	}
}

// GetReport godoc
// @Summary Platform report
// @Description Course, user, enrollment and rating totals
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reports [get]
func (ac *AnalyticsController) GetReport(c *fiber.Ctx) error {
	report, err := ac.buildReport(c.UserContext())
	if err != nil {
		ac.Log.Error("build report", "error", err)
		return utils.InternalServerError(c, "No se pudo generar el reporte")
	}
	return utils.OK(c, fiber.Map{"reporte": report})
}

func (ac *AnalyticsController) buildReport(ctx context.Context) (models.Report, error) {
	var (
		report  models.Report
		courses []models.Course
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		courses, err = ac.Courses.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		report.TotalUsuarios, err = ac.Users.CountByRole(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		report.TotalAdmins, err = ac.Users.CountByRole(gctx, models.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		report.Inscripciones, err = ac.Memberships.CountBySet(gctx, models.SetInProgress)
		return err
	})
	g.Go(func() (err error) {
		report.Completados, err = ac.Memberships.CountBySet(gctx, models.SetCompleted)
		return err
	})
	g.Go(func() (err error) {
		report.Favoritos, err = ac.Memberships.CountBySet(gctx, models.SetFavorites)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Report{}, err
	}

	report.TotalCursos = int64(len(courses))
	report.PorCategoria = map[string]int{}
	report.MejorValorados = []models.RatedCourse{}

	ratingSum := 0
	for _, course := range courses {
		if course.Categoria != "" {
			report.PorCategoria[course.Categoria]++
		}
		report.TotalComentarios += len(course.Comentarios)
		for _, cm := range course.Comentarios {
			ratingSum += cm.Calificacion
		}
		if len(course.Comentarios) > 0 {
			report.MejorValorados = append(report.MejorValorados, models.RatedCourse{
				ID:           course.ID,
				Titulo:       course.DisplayTitle(),
				Calificacion: round2(course.AverageRating()),
				Comentarios:  len(course.Comentarios),
			})
		}
	}
	if report.TotalComentarios > 0 {
		report.CalificacionPromedio = round2(float64(ratingSum) / float64(report.TotalComentarios))
	}

	sort.SliceStable(report.MejorValorados, func(i, j int) bool {
		return report.MejorValorados[i].Calificacion > report.MejorValorados[j].Calificacion
	})
	if len(report.MejorValorados) > topRatedLimit {
		report.MejorValorados = report.MejorValorados[:topRatedLimit]
	}
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
