package progress

import (
	"fmt"

	"eduplus/backend/models"
)

type ItemType string

const (
	ItemVideo ItemType = "video"
	ItemPDF   ItemType = "pdf"
)

// GeneralMaterial marks items built from course-level materials.
const GeneralMaterial = -1

// Item is one step of the combined course view: a module video or a PDF.
type Item struct {
	ID             string            `json:"id"`
	Tipo           ItemType          `json:"tipo"`
	Titulo         string            `json:"titulo"`
	Contenido      string            `json:"contenido,omitempty"`
	VideoURL       string            `json:"videoUrl,omitempty"`
	URL            string            `json:"url,omitempty"`
	Materiales     []models.Material `json:"materiales,omitempty"`
	IndiceOriginal int               `json:"indiceOriginal"`
	MaterialIndex  *int              `json:"materialIndex,omitempty"`
}

// BuildModuleList flattens a course into its ordered item list: each module's
// video followed by that module's PDFs, then the course-level PDFs.
func BuildModuleList(course models.Course) []Item {
	items := make([]Item, 0, CountItems(course))

	for i, mod := range course.Modulos {
		mats := make([]models.Material, len(mod.Materiales))
		copy(mats, mod.Materiales)
		items = append(items, Item{
			ID:             fmt.Sprintf("video-%d", i),
			Tipo:           ItemVideo,
			Titulo:         mod.Titulo,
			Contenido:      mod.Contenido,
			VideoURL:       mod.VideoURL,
			Materiales:     mats,
			IndiceOriginal: i,
		})
		for j, mat := range mod.Materiales {
			items = append(items, pdfItem(fmt.Sprintf("pdf-mod-%d-%d", i, j), mat, i, j))
		}
	}

	for j, mat := range course.Materiales {
		items = append(items, pdfItem(fmt.Sprintf("pdf-general-%d", j), mat, GeneralMaterial, j))
	}

	return items
}

// CountItems is len(BuildModuleList(course)) without building the list.
func CountItems(course models.Course) int {
	n := len(course.Modulos) + len(course.Materiales)
	for _, mod := range course.Modulos {
		n += len(mod.Materiales)
	}
	return n
}

func pdfItem(id string, mat models.Material, owner, index int) Item {
	idx := index
	return Item{
		ID:             id,
		Tipo:           ItemPDF,
		Titulo:         "📄 " + mat.Nombre,
		URL:            mat.URL,
		IndiceOriginal: owner,
		MaterialIndex:  &idx,
	}
}
