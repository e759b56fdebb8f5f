package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	snap    Snapshot
	found   bool
	saves   int
	failErr error
}

func (m *memoryStore) Load(context.Context) (Snapshot, bool, error) {
	return m.snap, m.found, nil
}

func (m *memoryStore) Save(_ context.Context, s Snapshot) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.snap = s
	m.found = true
	return nil
}

func newTracker(t *testing.T, store *memoryStore) *Tracker {
	t.Helper()
	tr := NewTracker(BuildModuleList(sampleCourse()), store)
	require.NoError(t, tr.LoadProgress(context.Background()))
	return tr
}

func TestTrackerMarkCompleted(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	tr := newTracker(t, store)

	changed, err := tr.MarkCompleted(ctx, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.snap.Completions, 5)
	assert.Equal(t, 20, store.snap.Percentage)

	changed, err = tr.MarkCompleted(ctx, 0)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, store.saves, "second mark must not write")
}

func TestTrackerToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	tr := newTracker(t, store)

	require.NoError(t, tr.ToggleCompleted(ctx, 3))
	assert.True(t, store.snap.Completions[3])
	require.NoError(t, tr.ToggleCompleted(ctx, 3))
	assert.False(t, store.snap.Completions[3])
	assert.Equal(t, 2, store.saves)
}

func TestTrackerOutOfRange(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t, &memoryStore{})

	_, err := tr.MarkCompleted(ctx, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, tr.ToggleCompleted(ctx, -1), ErrIndexOutOfRange)
}

func TestTrackerLoadResizesStoredArray(t *testing.T) {
	store := &memoryStore{found: true, snap: Snapshot{Completions: []bool{true, true}, CurrentIndex: 9}}
	tr := newTracker(t, store)

	snap := tr.Snapshot()
	assert.Equal(t, []bool{true, true, false, false, false}, snap.Completions)
	assert.Equal(t, 40, tr.Percentage())
	assert.Equal(t, 0, snap.CurrentIndex, "stored index past the end is ignored")

	store = &memoryStore{found: true, snap: Snapshot{Completions: []bool{true, false, true, true, true, true, true}}}
	tr = newTracker(t, store)
	assert.Len(t, tr.Snapshot().Completions, 5)
}

func TestTrackerKeepsStateWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	tr := newTracker(t, store)
	store.failErr = errors.New("db down")

	changed, err := tr.MarkCompleted(ctx, 1)
	assert.True(t, changed)
	assert.ErrorIs(t, err, store.failErr)
	assert.True(t, tr.Snapshot().Completions[1])
}

func TestTrackerAdvance(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	tr := newTracker(t, store)

	idx, err := tr.Advance(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, store.saves)

	for i := 0; i < 10; i++ {
		idx, err = tr.Advance(ctx, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 4, idx)
	assert.Equal(t, 4, store.snap.CurrentIndex)
}

func TestTrackerEmptyCourse(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(nil, &memoryStore{})
	require.NoError(t, tr.LoadProgress(ctx))

	assert.Equal(t, 0, tr.Percentage())
	idx, err := tr.Advance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	_, err = tr.MarkCompleted(ctx, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTrackerReset(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{found: true, snap: Snapshot{Completions: []bool{true, true, true, true, true}, CurrentIndex: 3}}
	tr := newTracker(t, store)

	require.NoError(t, tr.Reset(ctx))
	assert.Equal(t, 0, store.snap.Percentage)
	assert.Equal(t, 0, store.snap.CurrentIndex)
}
