package repository

import (
	"context"
	"fmt"

	"eduplus/backend/comments"
	"eduplus/backend/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course in creation order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Order("fecha_creacion ASC").Order("id ASC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) Get(ctx context.Context, id string) (models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return models.Course{}, fmt.Errorf("get course %s: %w", id, translate(err))
	}
	return course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("create course: %w", translate(err))
	}
	return nil
}

// Replace overwrites the editable fields of course id. Comments, the
// creation date and an omitted image are carried over from the stored row.
func (r *CourseRepository) Replace(ctx context.Context, id string, course models.Course) (models.Course, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	course.ID = current.ID
	course.FechaCreacion = current.FechaCreacion
	course.Comentarios = current.Comentarios
	if course.Precio == 0 {
		course.Precio = current.Precio
	}
	if course.Imagen == "" {
		course.Imagen = current.Imagen
	}
	if err := r.db.WithContext(ctx).Save(&course).Error; err != nil {
		return models.Course{}, fmt.Errorf("replace course %s: %w", id, translate(err))
	}
	return course, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete course %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete course %s: %w", id, ErrNotFound)
	}
	return nil
}

// Comments returns the course comments, newest first.
func (r *CourseRepository) Comments(ctx context.Context, id string) ([]models.Comment, error) {
	course, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return comments.SortNewestFirst(course.Comentarios), nil
}

// AppendComment reads the current list, rejects a duplicate submission and
// writes the whole list back with c first. Concurrent appends can lose one
// another; the last write wins.
func (r *CourseRepository) AppendComment(ctx context.Context, courseID string, c models.Comment) ([]models.Comment, error) {
	course, err := r.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	list, err := comments.Prepend(course.Comentarios, c)
	if err != nil {
		return nil, fmt.Errorf("append comment to %s: %w", courseID, err)
	}
	course.Comentarios = list
	if err := r.db.WithContext(ctx).Model(&course).Update("comentarios", course.Comentarios).Error; err != nil {
		return nil, fmt.Errorf("append comment to %s: %w", courseID, err)
	}
	return list, nil
}

func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}
