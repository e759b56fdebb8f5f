package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"eduplus/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type key struct{ user, course, set string }

type fakeStore struct {
	mu      sync.Mutex
	entries map[key]models.MembershipEntry
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[key]models.MembershipEntry{}}
}

func (f *fakeStore) Put(_ context.Context, userID, set string, course models.Course, progreso int, completedAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key{userID, course.ID, set}] = models.MembershipEntry{
		UserID: userID, CourseID: course.ID, Set: set,
		Snapshot: datatypes.NewJSONType(course), Progreso: progreso, FechaCompletado: completedAt,
	}
	return nil
}

func (f *fakeStore) Remove(_ context.Context, userID, courseID, set string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := key{userID, courseID, set}
	_, ok := f.entries[k]
	delete(f.entries, k)
	return ok, nil
}

func (f *fakeStore) Exists(_ context.Context, userID, courseID, set string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key{userID, courseID, set}]
	return ok, nil
}

func (f *fakeStore) List(_ context.Context, userID, set string) ([]models.MembershipEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.MembershipEntry
	for k, e := range f.entries {
		if k.user == userID && k.set == set {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestEnrollThenComplete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	reg := New(store)
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return fixed }

	course := models.Course{ID: "c1", Nombre: "Go"}
	require.NoError(t, reg.Enroll(ctx, "u1", course, 40))

	at, err := reg.Complete(ctx, "u1", course)
	require.NoError(t, err)
	assert.Equal(t, fixed, at)

	sets, err := reg.Sets(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, sets.EnProgreso)
	require.Len(t, sets.Completados, 1)
	assert.Equal(t, 100, sets.Completados[0].Progreso)
	require.NotNil(t, sets.Completados[0].FechaCompletado)
	assert.Equal(t, fixed, *sets.Completados[0].FechaCompletado)
}

func TestCompleteWithoutEnrollment(t *testing.T) {
	reg := New(newFakeStore())
	_, err := reg.Complete(context.Background(), "u1", models.Course{ID: "c1"})
	assert.NoError(t, err)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	reg := New(newFakeStore())
	course := models.Course{ID: "c1"}

	fav, err := reg.ToggleFavorite(ctx, "u1", course)
	require.NoError(t, err)
	assert.True(t, fav)
	ok, err := reg.IsFavorite(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	fav, err = reg.ToggleFavorite(ctx, "u1", course)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	reg := New(newFakeStore())
	course := models.Course{ID: "c1", Titulo: "Antes"}
	require.NoError(t, reg.Enroll(ctx, "u1", course, 0))

	course.Titulo = "Después"
	sets, err := reg.Sets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sets.EnProgreso, 1)
	assert.Equal(t, "Antes", sets.EnProgreso[0].Titulo)
}

func TestSetsError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("boom")
	_, err := New(store).Sets(context.Background(), "u1")
	assert.ErrorIs(t, err, store.listErr)
}
