package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// ErrActionNotFound is returned for lookups and cancellations of unknown
// action ids.
var ErrActionNotFound = errors.New("no such action")

// Runtime starts master actions: it resolves the workflow handler for the
// requested operation type and drives it on its own goroutine. Each running
// action is independently cancellable; terminal status always lands exactly
// once, even when the handler panics or returns without setting one.
type Runtime struct {
	handlers *HandlerRegistry
	coord    *coordinator.Coordinator
	router   *logrouter.Router
	journal  *journal.Service
	nodes    NodeLister

	mu      sync.RWMutex
	actions map[string]*runningAction
	wg      sync.WaitGroup
}

type runningAction struct {
	action *models.MasterAction
	cancel context.CancelFunc
}

// NewRuntime creates a runtime over the given services.
func NewRuntime(
	handlers *HandlerRegistry,
	coord *coordinator.Coordinator,
	router *logrouter.Router,
	journalSvc *journal.Service,
	nodes NodeLister,
) *Runtime {
	return &Runtime{
		handlers: handlers,
		coord:    coord,
		router:   router,
		journal:  journalSvc,
		nodes:    nodes,
		actions:  make(map[string]*runningAction),
	}
}

// Start resolves a handler for the operation type, constructs the master
// action, journals the start record and launches the handler. It returns the
// live action immediately; callers poll it (or the REST surface does) for
// progress and terminal state.
func (r *Runtime) Start(ctx context.Context, opType models.OperationType, params map[string]string) (*models.MasterAction, error) {
	factory, err := r.handlers.Resolve(opType)
	if err != nil {
		return nil, err
	}

	action := models.NewMasterAction(uuid.NewString(), opType, params)
	actionCtx, cancel := context.WithCancel(ctx)
	run := newMasterActionContext(action, r.journal, r.router, r.coord, r.nodes)

	r.mu.Lock()
	r.actions[action.ID] = &runningAction{action: action, cancel: cancel}
	r.mu.Unlock()

	r.journal.ActionStarted(actionCtx, action)
	slog.Info("Master action started",
		"action_id", action.ID, "operation_type", opType)

	r.wg.Add(1)
	go r.runHandler(actionCtx, cancel, factory(), run)

	return action, nil
}

// Cancel requests cancellation of a running action. In-flight node-actions go
// through the coordinator's graceful cancellation; the handler observes the
// cancelled results and the runtime guarantees a Cancelled terminal status.
func (r *Runtime) Cancel(id string) error {
	r.mu.RLock()
	run, ok := r.actions[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("action %s: %w", id, ErrActionNotFound)
	}
	if run.action.Status().IsTerminal() {
		return nil
	}
	slog.Info("Cancelling master action", "action_id", id)
	run.cancel()
	return nil
}

// Get returns a running or finished action by id.
func (r *Runtime) Get(id string) (*models.MasterAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.actions[id]
	if !ok {
		return nil, fmt.Errorf("action %s: %w", id, ErrActionNotFound)
	}
	return run.action, nil
}

// List returns snapshots of all known actions, most recently started first.
func (r *Runtime) List() []models.MasterActionSnapshot {
	r.mu.RLock()
	snapshots := make([]models.MasterActionSnapshot, 0, len(r.actions))
	for _, run := range r.actions {
		snapshots = append(snapshots, run.action.Snapshot())
	}
	r.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].StartedAt.After(snapshots[j].StartedAt)
	})
	return snapshots
}

// Wait blocks until all running handlers have finished. Used on shutdown.
func (r *Runtime) Wait() {
	r.wg.Wait()
}

func (r *Runtime) runHandler(ctx context.Context, cancel context.CancelFunc, handler Handler, run *MasterActionContext) {
	defer r.wg.Done()
	defer cancel()
	defer r.journal.Release(run.Action.ID)

	// Terminal journal writes must not be skipped because the action context
	// was cancelled.
	finalCtx := context.WithoutCancel(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Workflow handler panicked",
				"action_id", run.Action.ID, "panic", rec)
			run.SetFailed(finalCtx, fmt.Sprintf("workflow panicked: %v", rec))
		}
	}()

	err := handler.Execute(ctx, run)

	switch {
	case run.Action.Status().IsTerminal():
		// handler reached a terminal setter itself
	case ctx.Err() != nil:
		run.SetCancelled(finalCtx, "action cancelled")
	case err != nil:
		run.SetFailed(finalCtx, err.Error())
	default:
		run.SetFailed(finalCtx, "workflow handler returned without a terminal status")
	}
}
