package repository

import (
	"context"
	"fmt"
	"time"

	"eduplus/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Put stores a snapshot of course in the user's set, replacing any earlier one.
func (r *MembershipRepository) Put(ctx context.Context, userID, set string, course models.Course, progreso int, completedAt *time.Time) error {
	entry := models.MembershipEntry{
		UserID:          userID,
		CourseID:        course.ID,
		Set:             set,
		Snapshot:        datatypes.NewJSONType(course),
		Progreso:        progreso,
		FechaCompletado: completedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "set_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot", "progreso", "fecha_completado"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", set, course.ID, err)
	}
	return nil
}

// Remove reports whether an entry was deleted.
func (r *MembershipRepository) Remove(ctx context.Context, userID, courseID, set string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ? AND set_name = ?", userID, courseID, set).
		Delete(&models.MembershipEntry{})
	if res.Error != nil {
		return false, fmt.Errorf("remove %s/%s: %w", set, courseID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *MembershipRepository) Exists(ctx context.Context, userID, courseID, set string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.MembershipEntry{}).
		Where("user_id = ? AND course_id = ? AND set_name = ?", userID, courseID, set).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("lookup %s/%s: %w", set, courseID, err)
	}
	return n > 0, nil
}

func (r *MembershipRepository) List(ctx context.Context, userID, set string) ([]models.MembershipEntry, error) {
	var entries []models.MembershipEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND set_name = ?", userID, set).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", set, err)
	}
	return entries, nil
}

func (r *MembershipRepository) CountBySet(ctx context.Context, set string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.MembershipEntry{}).Where("set_name = ?", set).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", set, err)
	}
	return n, nil
}
