package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SetInProgress = "enProgreso"
	SetCompleted  = "completados"
	SetFavorites  = "favoritos"
)

// MembershipEntry places a course snapshot into one of a user's sets.
// The snapshot is a copy; later edits to the course do not reach it.
type MembershipEntry struct {
	ID              uint                       `gorm:"primaryKey"`
	UserID          string                     `gorm:"type:varchar(36);not null;uniqueIndex:idx_membership"`
	CourseID        string                     `gorm:"type:varchar(36);not null;uniqueIndex:idx_membership"`
	Set             string                     `gorm:"column:set_name;type:varchar(16);not null;uniqueIndex:idx_membership"`
	Snapshot        datatypes.JSONType[Course] `gorm:"type:json"`
	Progreso        int
	FechaCompletado *time.Time
	CreatedAt       time.Time
}

// MembershipView flattens the snapshot for API responses.
type MembershipView struct {
	Course
	FechaInscripcion time.Time  `json:"fechaInscripcion"`
	FechaCompletado  *time.Time `json:"fechaCompletado,omitempty"`
	Progreso         int        `json:"progreso"`
}

func (m MembershipEntry) View() MembershipView {
	return MembershipView{
		Course:           m.Snapshot.Data(),
		FechaInscripcion: m.CreatedAt,
		FechaCompletado:  m.FechaCompletado,
		Progreso:         m.Progreso,
	}
}
