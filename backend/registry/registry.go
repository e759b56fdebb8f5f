package registry

import (
	"context"
	"fmt"
	"time"

	"eduplus/backend/models"

	"golang.org/x/sync/errgroup"
)

// Store keeps per-user sets of course snapshots.
type Store interface {
	Put(ctx context.Context, userID, set string, course models.Course, progreso int, completedAt *time.Time) error
	Remove(ctx context.Context, userID, courseID, set string) (bool, error)
	Exists(ctx context.Context, userID, courseID, set string) (bool, error)
	List(ctx context.Context, userID, set string) ([]models.MembershipEntry, error)
}

// Sets is what the profile page shows.
type Sets struct {
	EnProgreso  []models.MembershipView `json:"enProgreso"`
	Completados []models.MembershipView `json:"completados"`
	Favoritos   []models.MembershipView `json:"favoritos"`
}

// Registry files denormalized course copies into a user's sets. Snapshots are
// taken at the time of the call and are not refreshed when the course changes.
type Registry struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// Enroll snapshots course into the in-progress set.
func (r *Registry) Enroll(ctx context.Context, userID string, course models.Course, progreso int) error {
	if err := r.store.Put(ctx, userID, models.SetInProgress, course, progreso, nil); err != nil {
		return fmt.Errorf("enroll: %w", err)
	}
	return nil
}

// Complete files course as completed at 100% and drops it from in progress.
// Whether the user actually reached 100% is not checked here.
func (r *Registry) Complete(ctx context.Context, userID string, course models.Course) (time.Time, error) {
	at := r.now().UTC()
	if err := r.store.Put(ctx, userID, models.SetCompleted, course, 100, &at); err != nil {
		return time.Time{}, fmt.Errorf("complete: %w", err)
	}
	if _, err := r.store.Remove(ctx, userID, course.ID, models.SetInProgress); err != nil {
		return time.Time{}, fmt.Errorf("complete: %w", err)
	}
	return at, nil
}

// ToggleFavorite adds or removes course from favorites and reports the new state.
func (r *Registry) ToggleFavorite(ctx context.Context, userID string, course models.Course) (bool, error) {
	removed, err := r.store.Remove(ctx, userID, course.ID, models.SetFavorites)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	if removed {
		return false, nil
	}
	if err := r.store.Put(ctx, userID, models.SetFavorites, course, 0, nil); err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return true, nil
}

func (r *Registry) IsFavorite(ctx context.Context, userID, courseID string) (bool, error) {
	return r.store.Exists(ctx, userID, courseID, models.SetFavorites)
}

// Sets loads the three sets concurrently.
func (r *Registry) Sets(ctx context.Context, userID string) (Sets, error) {
	var out Sets
	g, gctx := errgroup.WithContext(ctx)

	load := func(set string, dst *[]models.MembershipView) {
		g.Go(func() error {
			entries, err := r.store.List(gctx, userID, set)
			if err != nil {
				return err
			}
			views := make([]models.MembershipView, 0, len(entries))
			for _, e := range entries {
				views = append(views, e.View())
			}
			*dst = views
			return nil
		})
	}
	load(models.SetInProgress, &out.EnProgreso)
	load(models.SetCompleted, &out.Completados)
	load(models.SetFavorites, &out.Favoritos)

	if err := g.Wait(); err != nil {
		return Sets{}, fmt.Errorf("load sets: %w", err)
	}
	return out, nil
}
