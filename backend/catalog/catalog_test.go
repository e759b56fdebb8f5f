package catalog

import (
	"fmt"
	"math"
	"testing"
	"time"

	"eduplus/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(title, category, level string, created time.Time, ratings ...int) models.Course {
	c := models.Course{Nombre: title, Titulo: title, Categoria: category, Nivel: level, FechaCreacion: created}
	for _, r := range ratings {
		c.Comentarios = append(c.Comentarios, models.Comment{Calificacion: r})
	}
	return c
}

func fixtures() []models.Course {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Course{
		course("Diseño UX/UI", "Diseño", "Intermedio", base, 4),
		course("Desarrollo Web Full Stack", "Programación", "Intermedio", base.Add(2*time.Hour), 5, 5),
		course("Marketing Digital", "Marketing", "Básico", base.Add(time.Hour)),
		course("Desarrollo Web Full Stack", "Programación", "Avanzado", base.Add(3*time.Hour)),
	}
}

func titles(cs []models.Course) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.DisplayTitle())
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "diseno", Normalize("Diseño"))
	assert.Equal(t, "programacion", Normalize(" Programación "))
	assert.Equal(t, "basico", Normalize("BÁSICO"))
	assert.Equal(t, "cienciadedatos", Normalize("Ciencia de Datos"))
}

func TestDedupeKeepsFirst(t *testing.T) {
	out := Dedupe(fixtures())
	require.Len(t, out, 3)
	assert.Equal(t, "Intermedio", out[1].Nivel)
}

func TestFilter(t *testing.T) {
	cs := Dedupe(fixtures())

	assert.Equal(t, []string{"Desarrollo Web Full Stack"}, titles(Filter(cs, Query{Search: "  WEB "})))
	assert.Equal(t, []string{"Diseño UX/UI"}, titles(Filter(cs, Query{Category: "diseno"})))
	assert.Equal(t, []string{"Marketing Digital"}, titles(Filter(cs, Query{Level: "basico"})))
	assert.Len(t, Filter(cs, Query{Category: "todos", Level: "TODOS"}), 3)
	assert.Empty(t, Filter(cs, Query{Category: "Música"}))
}

func TestSort(t *testing.T) {
	cs := Dedupe(fixtures())

	Sort(cs, SortTitle)
	assert.Equal(t, []string{"Desarrollo Web Full Stack", "Diseño UX/UI", "Marketing Digital"}, titles(cs))

	Sort(cs, SortRecent)
	assert.Equal(t, []string{"Desarrollo Web Full Stack", "Marketing Digital", "Diseño UX/UI"}, titles(cs))

	Sort(cs, SortRating)
	assert.Equal(t, []string{"Desarrollo Web Full Stack", "Diseño UX/UI", "Marketing Digital"}, titles(cs))

	before := titles(cs)
	Sort(cs, "popularidad")
	assert.Equal(t, before, titles(cs))
}

func TestPaginate(t *testing.T) {
	var cs []models.Course
	for i := 0; i < 14; i++ {
		cs = append(cs, models.Course{Nombre: fmt.Sprintf("Curso %02d", i)})
	}

	p := Paginate(cs, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Len(t, p.Courses, 6)

	p = Paginate(cs, 3, 6)
	assert.Len(t, p.Courses, 2)
	assert.Equal(t, "Curso 12", p.Courses[0].Nombre)

	p = Paginate(cs, 9, 6)
	assert.Empty(t, p.Courses)
	assert.Equal(t, 14, p.Total)
}

func TestPaginateLargeNumbers(t *testing.T) {
	var cs []models.Course
	for i := 0; i < 14; i++ {
		cs = append(cs, models.Course{Nombre: fmt.Sprintf("Curso %02d", i)})
	}

	p := Paginate(cs, 1, math.MaxInt)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Len(t, p.Courses, 14)

	p = Paginate(cs, 2, math.MaxInt)
	assert.Empty(t, p.Courses)
	assert.Equal(t, 14, p.Total)

	p = Paginate(cs, 2e18, 6)
	assert.Empty(t, p.Courses)
	assert.Equal(t, 14, p.Total)

	p = Paginate(cs, math.MaxInt, MaxPageSize)
	assert.Empty(t, p.Courses)

	p = Paginate(nil, 3, 6)
	assert.Empty(t, p.Courses)
	assert.Zero(t, p.Total)
}

func TestApply(t *testing.T) {
	p := Apply(fixtures(), Query{Category: "Programación", Sort: SortTitle})
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, []string{"Desarrollo Web Full Stack"}, titles(p.Courses))
}

func TestCategories(t *testing.T) {
	cs := append(fixtures(), models.Course{Nombre: "x", Categoria: "diseño"}, models.Course{Nombre: "y"})
	assert.Equal(t, []string{"Todos", "Diseño", "Programación", "Marketing"}, Categories(cs))
}
