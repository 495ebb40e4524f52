// Package workflow drives master actions: it resolves a registered workflow
// handler for an operation type, runs it against a stateful action context,
// scopes work into stages, and aggregates stage progress into the action's
// overall percent.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// ErrNoHandler is returned when no workflow handler is registered for the
// requested operation type.
var ErrNoHandler = errors.New("no workflow handler for operation type")

// Handler is a workflow-as-code definition. Execute runs to completion and is
// expected to reach one of the context's terminal setters; returning without
// one (or with an error) fails the action.
type Handler interface {
	Execute(ctx context.Context, run *MasterActionContext) error
}

// HandlerFactory builds a fresh handler instance per invocation so handlers
// can keep per-run state in struct fields.
type HandlerFactory func() Handler

// HandlerRegistry maps operation types to workflow handler factories.
type HandlerRegistry struct {
	mu        sync.RWMutex
	factories map[models.OperationType]HandlerFactory
}

// NewHandlerRegistry creates an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{factories: make(map[models.OperationType]HandlerFactory)}
}

// Register binds an operation type to a handler factory, replacing any
// previous binding.
func (r *HandlerRegistry) Register(opType models.OperationType, factory HandlerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[opType] = factory
}

// Resolve returns the factory for an operation type.
func (r *HandlerRegistry) Resolve(opType models.OperationType) (HandlerFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[opType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, opType)
	}
	return factory, nil
}

// Types returns the registered operation types.
func (r *HandlerRegistry) Types() []models.OperationType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]models.OperationType, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	return types
}
