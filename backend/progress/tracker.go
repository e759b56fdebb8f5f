package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrIndexOutOfRange = errors.New("module index out of range")

// Snapshot is what gets persisted for one (user, course) pair.
type Snapshot struct {
	Completions  []bool `json:"modulosCompletados"`
	Percentage   int    `json:"progreso"`
	CurrentIndex int    `json:"moduloActual"`
}

// Store persists a single user's progress on a single course.
type Store interface {
	// Load returns found=false when nothing was stored yet.
	Load(ctx context.Context) (snap Snapshot, found bool, err error)
	Save(ctx context.Context, snap Snapshot) error
}

// Tracker applies progress operations over a course's item list and writes the
// whole completion array on every change. A failed write leaves the new state
// in place and is returned to the caller.
type Tracker struct {
	mu    sync.Mutex
	items []Item
	store Store
	state State
}

func NewTracker(items []Item, store Store) *Tracker {
	return &Tracker{
		items: items,
		store: store,
		state: NewState(len(items)),
	}
}

// LoadProgress adopts the stored array, resized to the current item count.
func (t *Tracker) LoadProgress(ctx context.Context) error {
	snap, found, err := t.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !found {
		t.state = NewState(len(t.items))
		return nil
	}
	t.state = Reduce(t.state, Load(snap.Completions))
	t.state = Reduce(t.state, SetModule(snap.CurrentIndex))
	return nil
}

// MarkCompleted sets index to done. It reports changed=false and writes
// nothing when the item was already done.
func (t *Tracker) MarkCompleted(ctx context.Context, index int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !inRange(index, len(t.state.Completions)) {
		return false, ErrIndexOutOfRange
	}
	if t.state.Completions[index] {
		return false, nil
	}
	t.state = Reduce(t.state, Mark(index))
	return true, t.save(ctx)
}

// ToggleCompleted flips index and persists. Two calls restore the value.
func (t *Tracker) ToggleCompleted(ctx context.Context, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !inRange(index, len(t.state.Completions)) {
		return ErrIndexOutOfRange
	}
	t.state = Reduce(t.state, Toggle(index))
	return t.save(ctx)
}

// Advance moves the current item by delta, clamped to the list bounds.
func (t *Tracker) Advance(ctx context.Context, delta int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.state.CurrentIndex
	t.state = Reduce(t.state, Advance(delta))
	if t.state.CurrentIndex == prev {
		return prev, nil
	}
	return t.state.CurrentIndex, t.save(ctx)
}

// Reset clears every completion and returns to the first item.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = Reduce(t.state, Reset())
	return t.save(ctx)
}

func (t *Tracker) Percentage() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Percentage(t.state.Completions)
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

func (t *Tracker) Items() []Item {
	return t.items
}

func (t *Tracker) snapshot() Snapshot {
	return Snapshot{
		Completions:  Resize(t.state.Completions, len(t.items)),
		Percentage:   Percentage(t.state.Completions),
		CurrentIndex: t.state.CurrentIndex,
	}
}

func (t *Tracker) save(ctx context.Context) error {
	if err := t.store.Save(ctx, t.snapshot()); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
