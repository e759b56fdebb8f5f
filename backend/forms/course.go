package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"eduplus/backend/models"
	"eduplus/backend/utils"
)

const (
	MsgMissingFields   = "Faltan campos obligatorios"
	MsgInvalidImageURL = "URL de imagen inválida"
	MsgInvalidModules  = "Formato de módulos inválido"
)

// ValidationError rejects a submitted form before anything is written.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(keys, ", "))
}

// CourseForm is the flat text form an admin submits for a course.
type CourseForm struct {
	Nombre      string `json:"nombre" validate:"notblank"`
	Categoria   string `json:"categoria" validate:"notblank"`
	Descripcion string `json:"descripcion" validate:"notblank"`
	Nivel       string `json:"nivel"`
	Duracion    string `json:"duracion"`
	Instructor  string `json:"instructor"`
	Requisitos  string `json:"requisitos"`
	Temario     string `json:"temario"`
	Materiales  string `json:"materiales"`
	Modulos     string `json:"modulos"`
	ImagenURL   string `json:"imagenUrl"`
}

// field keys, Spanish first then the English alias
var aliases = map[string][]string{
	"nombre":      {"nombre", "titulo", "name", "title"},
	"categoria":   {"categoria", "category"},
	"descripcion": {"descripcion", "description"},
	"nivel":       {"nivel", "level"},
	"duracion":    {"duracion", "duration"},
	"instructor":  {"instructor"},
	"requisitos":  {"requisitos", "requirements"},
	"temario":     {"temario", "syllabus"},
	"materiales":  {"materiales", "materials"},
	"modulos":     {"modulos", "modules"},
	"imagenUrl":   {"imagenUrl", "imagen", "image"},
}

// FormFromValues reads a multipart value map into a CourseForm.
func FormFromValues(values map[string][]string) CourseForm {
	get := func(field string) string {
		for _, key := range aliases[field] {
			if v, ok := values[key]; ok && len(v) > 0 && strings.TrimSpace(v[0]) != "" {
				return v[0]
			}
		}
		return ""
	}
	return CourseForm{
		Nombre:      strings.TrimSpace(get("nombre")),
		Categoria:   strings.TrimSpace(get("categoria")),
		Descripcion: strings.TrimSpace(get("descripcion")),
		Nivel:       strings.TrimSpace(get("nivel")),
		Duracion:    strings.TrimSpace(get("duracion")),
		Instructor:  strings.TrimSpace(get("instructor")),
		Requisitos:  get("requisitos"),
		Temario:     get("temario"),
		Materiales:  get("materiales"),
		Modulos:     get("modulos"),
		ImagenURL:   strings.TrimSpace(get("imagenUrl")),
	}
}

// ParseCourse validates and decomposes a submitted form into a course.
func ParseCourse(values map[string][]string) (models.Course, error) {
	return FormFromValues(values).Course()
}

func (f CourseForm) Course() (models.Course, error) {
	if f.ImagenURL != "" && !utils.IsAbsoluteURL(f.ImagenURL) {
		return models.Course{}, &ValidationError{
			Message: MsgInvalidImageURL,
			Fields:  map[string]string{"imagenUrl": "imagenUrl must be a valid URL"},
		}
	}

	modules, err := ParseModules(f.Modulos)
	if err != nil {
		return models.Course{}, &ValidationError{
			Message: MsgInvalidModules,
			Fields:  map[string]string{"modulos": err.Error()},
		}
	}

	if fields := utils.ValidateStruct(f); fields != nil {
		return models.Course{}, &ValidationError{Message: MsgMissingFields, Fields: fields}
	}

	return models.Course{
		Nombre:      f.Nombre,
		Titulo:      f.Nombre,
		Categoria:   f.Categoria,
		Descripcion: f.Descripcion,
		Nivel:       f.Nivel,
		Duracion:    f.Duracion,
		Instructor:  f.Instructor,
		Imagen:      f.ImagenURL,
		Requisitos:  SplitLines(f.Requisitos),
		Temario:     SplitLines(f.Temario),
		Materiales:  ParseMaterials(f.Materiales),
		Modulos:     modules,
	}, nil
}

// SplitLines splits on newlines, trims each line and drops empty ones.
func SplitLines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseMaterials reads "name | url" lines. Lines missing either side are skipped.
func ParseMaterials(raw string) []models.Material {
	out := []models.Material{}
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		name, url := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if name == "" || url == "" {
			continue
		}
		out = append(out, models.Material{Nombre: name, URL: url})
	}
	return out
}

// ParseModules decodes the JSON module array. Blank input means no modules.
func ParseModules(raw string) ([]models.Module, error) {
	if strings.TrimSpace(raw) == "" {
		return []models.Module{}, nil
	}
	var mods []models.Module
	if err := json.Unmarshal([]byte(raw), &mods); err != nil {
		return nil, fmt.Errorf("modulos must be a JSON array: %w", err)
	}
	for i := range mods {
		mods[i].Titulo = strings.TrimSpace(mods[i].Titulo)
		if mods[i].Materiales == nil {
			mods[i].Materiales = []models.Material{}
		}
	}
	if mods == nil {
		mods = []models.Module{}
	}
	return mods, nil
}
