package models

// Report is the admin overview of platform activity.
type Report struct {
	TotalCursos          int64          `json:"totalCursos"`
	TotalUsuarios        int64          `json:"totalUsuarios"`
	TotalAdmins          int64          `json:"totalAdmins"`
	TotalComentarios     int            `json:"totalComentarios"`
	CalificacionPromedio float64        `json:"calificacionPromedio"`
	Inscripciones        int64          `json:"inscripciones"`
	Completados          int64          `json:"completados"`
	Favoritos            int64          `json:"favoritos"`
	PorCategoria         map[string]int `json:"porCategoria"`
	MejorValorados       []RatedCourse  `json:"mejorValorados"`
}

type RatedCourse struct {
	ID           string  `json:"id"`
	Titulo       string  `json:"titulo"`
	Calificacion float64 `json:"calificacion"`
	Comentarios  int     `json:"comentarios"`
}
