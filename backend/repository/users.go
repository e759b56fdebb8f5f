package repository

import (
	"context"
	"errors"
	"fmt"

	"eduplus/backend/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if _, err := r.GetByEmail(ctx, user.Email); err == nil {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, fmt.Errorf("get user %s: %w", id, translate(err))
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		return models.User{}, fmt.Errorf("get user by email: %w", translate(err))
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save user %s: %w", user.ID, translate(err))
	}
	return nil
}

// Delete removes the user together with their progress and memberships.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	res := db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user %s: %w", id, ErrNotFound)
	}
	if err := db.Where("user_id = ?", id).Delete(&models.ProgressRecord{}).Error; err != nil {
		return fmt.Errorf("delete progress of %s: %w", id, err)
	}
	if err := db.Where("user_id = ?", id).Delete(&models.MembershipEntry{}).Error; err != nil {
		return fmt.Errorf("delete memberships of %s: %w", id, err)
	}
	return nil
}

// PromoteToAdmin finds the account by email and sets role=admin, creating a
// passwordless account when none exists. created reports the latter.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, email string) (user models.User, created bool, err error) {
	user, err = r.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, ErrNotFound):
		user = models.User{Email: email, Role: models.RoleAdmin}
		if err := r.Create(ctx, &user); err != nil {
			return models.User{}, false, err
		}
		return user, true, nil
	case err != nil:
		return models.User{}, false, err
	}

	if err := r.db.WithContext(ctx).Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		return models.User{}, false, fmt.Errorf("promote %s: %w", user.ID, err)
	}
	user.Role = models.RoleAdmin
	return user, false, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
