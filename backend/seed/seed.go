package seed

import (
	"context"
	"fmt"
	"strings"

	"eduplus/backend/models"
)

type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

type Result struct {
	ID      string `json:"id"`
	Titulo  string `json:"titulo"`
	Omitido bool   `json:"omitido,omitempty"`
}

// SampleCourses is the demo catalog.
func SampleCourses() []models.Course {
	return []models.Course{
		{
			Titulo:      "Desarrollo Web Full Stack",
			Descripcion: "Aprende a crear aplicaciones web completas con las últimas tecnologías.",
			Duracion:    "6 meses",
			Nivel:       "Intermedio",
			Precio:      299.99,
			Imagen:      "/cursos/web-fullstack.jpg",
			Instructor:  "Juan Pérez",
			Categoria:   "Desarrollo Web",
		},
		{
			Titulo:      "Machine Learning con Python",
			Descripcion: "Introducción a la inteligencia artificial y machine learning.",
			Duracion:    "4 meses",
			Nivel:       "Avanzado",
			Precio:      399.99,
			Imagen:      "/cursos/ml-python.jpg",
			Instructor:  "María García",
			Categoria:   "Inteligencia Artificial",
		},
		{
			Titulo:      "Diseño UX/UI",
			Descripcion: "Aprende a crear interfaces de usuario atractivas y funcionales.",
			Duracion:    "3 meses",
			Nivel:       "Principiante",
			Precio:      199.99,
			Imagen:      "/cursos/ux-ui.jpg",
			Instructor:  "Carlos Rodríguez",
			Categoria:   "Diseño",
		},
		{
			Titulo:      "Marketing Digital",
			Descripcion: "Estrategias efectivas de marketing en el mundo digital.",
			Duracion:    "3 meses",
			Nivel:       "Intermedio",
			Precio:      249.99,
			Imagen:      "/cursos/marketing.jpg",
			Instructor:  "Ana Martínez",
			Categoria:   "Marketing",
		},
		{
			Titulo:      "Desarrollo Móvil con React Native",
			Descripcion: "Crea aplicaciones móviles multiplataforma con React Native.",
			Duracion:    "5 meses",
			Nivel:       "Intermedio",
			Precio:      349.99,
			Imagen:      "/cursos/react-native.jpg",
			Instructor:  "Luis Sánchez",
			Categoria:   "Desarrollo Móvil",
		},
		{
			Titulo:      "DevOps y CI/CD",
			Descripcion: "Aprende las mejores prácticas de DevOps y automatización.",
			Duracion:    "4 meses",
			Nivel:       "Avanzado",
			Precio:      379.99,
			Imagen:      "/cursos/devops.jpg",
			Instructor:  "Pedro Gómez",
			Categoria:   "DevOps",
		},
	}
}

// Run inserts the sample courses whose title is not in the store yet.
func Run(ctx context.Context, store CourseStore) ([]Result, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.DisplayTitle())] = c.ID
	}

	samples := SampleCourses()
	results := make([]Result, 0, len(samples))
	for i := range samples {
		course := samples[i]
		course.Nombre = course.Titulo
		if id, ok := seen[strings.ToLower(course.Titulo)]; ok {
			results = append(results, Result{ID: id, Titulo: course.Titulo, Omitido: true})
			continue
		}
		if err := store.Create(ctx, &course); err != nil {
			return results, fmt.Errorf("seed %q: %w", course.Titulo, err)
		}
		results = append(results, Result{ID: course.ID, Titulo: course.Titulo})
	}
	return results, nil
}
