package forms

import (
	"testing"

	"eduplus/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[string][]string {
	return map[string][]string{
		"nombre":      {"Go para backend"},
		"categoria":   {"Programación"},
		"descripcion": {"APIs con Go"},
		"nivel":       {"Intermedio"},
		"requisitos":  {"a\nb"},
		"temario":     {" uno \n\n dos\n"},
		"materiales":  {"Guide | http://x\nsin url\n | http://y\nOtro|https://z"},
		"modulos":     {`[{"titulo":"Intro","contenido":"c","videoUrl":"https://v","materiales":[{"nombre":"m","url":"u"}]},{"titulo":"Dos"}]`},
		"imagenUrl":   {"https://img.example.com/a.png"},
	}
}

func TestParseCourse(t *testing.T) {
	course, err := ParseCourse(validValues())
	require.NoError(t, err)

	assert.Equal(t, "Go para backend", course.Nombre)
	assert.Equal(t, course.Nombre, course.Titulo)
	assert.Equal(t, []string{"a", "b"}, []string(course.Requisitos))
	assert.Equal(t, []string{"uno", "dos"}, []string(course.Temario))
	assert.Equal(t, []models.Material{
		{Nombre: "Guide", URL: "http://x"},
		{Nombre: "Otro", URL: "https://z"},
	}, []models.Material(course.Materiales))
	require.Len(t, course.Modulos, 2)
	assert.Equal(t, "https://v", course.Modulos[0].VideoURL)
	assert.Equal(t, []models.Material{}, course.Modulos[1].Materiales)
	assert.Equal(t, "https://img.example.com/a.png", course.Imagen)
}

func TestParseCourseEnglishAliases(t *testing.T) {
	course, err := ParseCourse(map[string][]string{
		"name":         {"Data"},
		"category":     {"Datos"},
		"description":  {"d"},
		"requirements": {"x"},
		"materials":    {"Guide | http://x"},
		"image":        {"http://img"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Data", course.Titulo)
	assert.Equal(t, []string{"x"}, []string(course.Requisitos))
	assert.Len(t, course.Materiales, 1)
	assert.Empty(t, course.Modulos)
}

func TestParseCourseMissingFields(t *testing.T) {
	values := validValues()
	delete(values, "categoria")
	values["descripcion"] = []string{"   "}

	_, err := ParseCourse(values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgMissingFields, verr.Message)
	assert.Contains(t, verr.Fields, "categoria")
	assert.Contains(t, verr.Fields, "descripcion")
}

func TestParseCourseInvalidImage(t *testing.T) {
	values := validValues()
	values["imagenUrl"] = []string{"not a url"}

	_, err := ParseCourse(values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidImageURL, verr.Message)
}

func TestParseCourseWithoutImage(t *testing.T) {
	values := validValues()
	delete(values, "imagenUrl")

	course, err := ParseCourse(values)
	require.NoError(t, err)
	assert.Empty(t, course.Imagen)
}

func TestParseCourseMalformedModules(t *testing.T) {
	values := validValues()
	values["modulos"] = []string{`{"titulo":`}

	_, err := ParseCourse(values)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgInvalidModules, verr.Message)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{}, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\n\nb"))
}
