package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Material struct {
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
}

type Module struct {
	Titulo     string     `json:"titulo"`
	Contenido  string     `json:"contenido"`
	VideoURL   string     `json:"videoUrl"`
	Materiales []Material `json:"materiales"`
}

// Course is stored as one row; lists, modules and comments live in JSON columns.
type Course struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nombre      string  `gorm:"not null" json:"nombre"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `gorm:"type:text" json:"descripcion"`
	Categoria   string  `gorm:"index" json:"categoria"`
	Nivel       string  `json:"nivel"`
	Duracion    string  `json:"duracion"`
	Imagen      string  `json:"imagen"`
	Instructor  string  `json:"instructor,omitempty"`
	Precio      float64 `json:"precio,omitempty"`

	Requisitos  datatypes.JSONSlice[string]   `json:"requisitos"`
	Temario     datatypes.JSONSlice[string]   `json:"temario"`
	Materiales  datatypes.JSONSlice[Material] `json:"materiales"`
	Modulos     datatypes.JSONSlice[Module]   `json:"modulos"`
	Comentarios datatypes.JSONSlice[Comment]  `json:"comentarios"`

	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fechaCreacion"`
	UpdatedAt     time.Time `json:"fechaActualizacion"`
}

// DisplayTitle prefers titulo and falls back to nombre.
func (c Course) DisplayTitle() string {
	if t := strings.TrimSpace(c.Titulo); t != "" {
		return t
	}
	return strings.TrimSpace(c.Nombre)
}

// AverageRating is 0 for a course without comments.
func (c Course) AverageRating() float64 {
	if len(c.Comentarios) == 0 {
		return 0
	}
	sum := 0
	for _, cm := range c.Comentarios {
		sum += cm.Calificacion
	}
	return float64(sum) / float64(len(c.Comentarios))
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Course) BeforeSave(tx *gorm.DB) error {
	c.normalize()
	return nil
}

func (c *Course) AfterFind(tx *gorm.DB) error {
	c.normalize()
	return nil
}

// normalize keeps absent lists encoded as [] rather than null.
func (c *Course) normalize() {
	if c.Requisitos == nil {
		c.Requisitos = datatypes.JSONSlice[string]{}
	}
	if c.Temario == nil {
		c.Temario = datatypes.JSONSlice[string]{}
	}
	if c.Materiales == nil {
		c.Materiales = datatypes.JSONSlice[Material]{}
	}
	if c.Modulos == nil {
		c.Modulos = datatypes.JSONSlice[Module]{}
	}
	if c.Comentarios == nil {
		c.Comentarios = datatypes.JSONSlice[Comment]{}
	}
	for i := range c.Modulos {
		if c.Modulos[i].Materiales == nil {
			c.Modulos[i].Materiales = []Material{}
		}
	}
}
