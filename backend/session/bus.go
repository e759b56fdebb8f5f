package session

import (
	"context"
	"errors"
	"sync"
)

type EventKind string

const (
	EventRoleChanged EventKind = "role_changed"
	EventUserDeleted EventKind = "user_deleted"
)

// Event announces that a user's auth state changed.
type Event struct {
	Kind   EventKind `json:"kind"`
	UserID string    `json:"userId"`
}

type Bus interface {
	Publish(ctx context.Context, ev Event) error
	StartForwarder(ctx context.Context, onEvent func(Event)) error
	Close() error
}

// MemoryBus delivers events synchronously inside the process.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers []func(Event)
	closed   bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

func (b *MemoryBus) Publish(_ context.Context, ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return errors.New("memory bus closed")
	}
	for _, h := range b.handlers {
		h(ev)
	}
	return nil
}

func (b *MemoryBus) StartForwarder(_ context.Context, onEvent func(Event)) error {
	if onEvent == nil {
		return errors.New("onEvent callback required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, onEvent)
	return nil
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = nil
	return nil
}
