package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProgressRecord holds one user's completion flags for one course.
type ProgressRecord struct {
	ID           uint                      `gorm:"primaryKey" json:"-"`
	UserID       string                    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_course" json:"userId"`
	CourseID     string                    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_course" json:"cursoId"`
	Completions  datatypes.JSONSlice[bool] `json:"modulosCompletados"`
	Percentage   int                       `json:"progreso"`
	CurrentIndex int                       `json:"moduloActual"`
	UpdatedAt    time.Time                 `json:"fechaActualizacion"`
}
