package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduplus/backend/models"
	"eduplus/backend/progress"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Get(ctx context.Context, userID, courseID string) (models.ProgressRecord, error) {
	var rec models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&rec).Error
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("get progress: %w", translate(err))
	}
	return rec, nil
}

// Upsert overwrites the whole record for (user, course).
func (r *ProgressRepository) Upsert(ctx context.Context, rec *models.ProgressRecord) error {
	rec.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completions", "percentage", "current_index", "updated_at"}),
	}).Create(rec).Error
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var recs []models.ProgressRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return recs, nil
}

// Store binds the repository to one (user, course) pair for a tracker.
func (r *ProgressRepository) Store(userID, courseID string) progress.Store {
	return &progressStore{repo: r, userID: userID, courseID: courseID}
}

type progressStore struct {
	repo     *ProgressRepository
	userID   string
	courseID string
}

func (s *progressStore) Load(ctx context.Context) (progress.Snapshot, bool, error) {
	rec, err := s.repo.Get(ctx, s.userID, s.courseID)
	if errors.Is(err, ErrNotFound) {
		return progress.Snapshot{}, false, nil
	}
	if err != nil {
		return progress.Snapshot{}, false, err
	}
	return progress.Snapshot{
		Completions:  rec.Completions,
		Percentage:   rec.Percentage,
		CurrentIndex: rec.CurrentIndex,
	}, true, nil
}

func (s *progressStore) Save(ctx context.Context, snap progress.Snapshot) error {
	return s.repo.Upsert(ctx, &models.ProgressRecord{
		UserID:       s.userID,
		CourseID:     s.courseID,
		Completions:  snap.Completions,
		Percentage:   snap.Percentage,
		CurrentIndex: snap.CurrentIndex,
	})
}
