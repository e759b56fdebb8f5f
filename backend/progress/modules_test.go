package progress

import (
	"testing"

	"eduplus/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCourse() models.Course {
	return models.Course{
		Nombre: "Go desde cero",
		Modulos: []models.Module{
			{Titulo: "Intro", VideoURL: "https://video/0", Materiales: []models.Material{
				{Nombre: "Guia", URL: "https://pdf/0-0"},
				{Nombre: "Ejercicios", URL: "https://pdf/0-1"},
			}},
			{Titulo: "Tipos", VideoURL: "https://video/1"},
		},
		Materiales: []models.Material{{Nombre: "Temario", URL: "https://pdf/general"}},
	}
}

func TestBuildModuleList(t *testing.T) {
	items := BuildModuleList(sampleCourse())

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"video-0", "pdf-mod-0-0", "pdf-mod-0-1", "video-1", "pdf-general-0"}, ids)

	assert.Equal(t, ItemVideo, items[0].Tipo)
	assert.Equal(t, 0, items[0].IndiceOriginal)
	assert.Nil(t, items[0].MaterialIndex)

	assert.Equal(t, ItemPDF, items[2].Tipo)
	assert.Equal(t, "📄 Ejercicios", items[2].Titulo)
	require.NotNil(t, items[2].MaterialIndex)
	assert.Equal(t, 1, *items[2].MaterialIndex)

	assert.Equal(t, GeneralMaterial, items[4].IndiceOriginal)
	assert.Equal(t, "https://pdf/general", items[4].URL)
}

func TestBuildModuleListIsDeterministic(t *testing.T) {
	course := sampleCourse()
	assert.Equal(t, BuildModuleList(course), BuildModuleList(course))
	assert.Equal(t, len(BuildModuleList(course)), CountItems(course))
}

func TestBuildModuleListDoesNotMutate(t *testing.T) {
	course := sampleCourse()
	items := BuildModuleList(course)
	items[0].Materiales[0].Nombre = "changed"
	assert.Equal(t, "Guia", course.Modulos[0].Materiales[0].Nombre)
}

func TestBuildModuleListEmpty(t *testing.T) {
	items := BuildModuleList(models.Course{})
	assert.Empty(t, items)
	assert.Equal(t, 0, CountItems(models.Course{}))

	onlyMaterials := models.Course{Materiales: []models.Material{{Nombre: "a", URL: "u"}}}
	items = BuildModuleList(onlyMaterials)
	require.Len(t, items, 1)
	assert.Equal(t, "pdf-general-0", items[0].ID)
}
