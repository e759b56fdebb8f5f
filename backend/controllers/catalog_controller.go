package controllers

import (
	"eduplus/backend/catalog"
	"eduplus/backend/config"
	"eduplus/backend/repository"
	"eduplus/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogController struct {
	Courses *repository.CourseRepository
	Cfg     *config.Config
	Log     *utils.Logger
}

func NewCatalogController(db *gorm.DB, cfg *config.Config, log *utils.Logger) *CatalogController {
	return &CatalogController{
		Courses: repository.NewCourseRepository(db),
		Cfg:     cfg,
		Log:     log.With("controller", "catalog"),
	}
}

// SearchCourses godoc
// @Summary Course catalog
// @Description Filters, sorts and paginates the full course list in memory
// @Tags courses
// @Produce json
// @Param search query string false "Title substring"
// @Param categoria query string false "Category, Todos for any"
// @Param nivel query string false "Level, Todos for any"
// @Param sort query string false "titulo, recientes or calificacion"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size, default 6"
// @Success 200 {object} utils.PaginatedResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /courses/catalog [get]
func (cc *CatalogController) SearchCourses(c *fiber.Ctx) error {
	all, err := cc.Courses.List(c.UserContext())
	if err != nil {
		cc.Log.Error("catalog", "error", err)
		return utils.InternalServerError(c, "No se pudieron obtener los cursos")
	}

	q := catalog.Query{
		Search:   firstQuery(c, "search", "q"),
		Category: firstQuery(c, "categoria", "category"),
		Level:    firstQuery(c, "nivel", "level"),
		Sort:     firstQuery(c, "sort", "orden"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", catalog.DefaultPageSize),
	}
	page := catalog.Apply(all, q)

	return utils.Paginate(c, page.Courses, page.Total, page.Page, page.PageSize, fiber.Map{
		"categorias": catalog.Categories(all),
	})
}
