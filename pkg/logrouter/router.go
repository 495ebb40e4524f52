// Package logrouter correlates log entries arriving from agents with the
// master action that owns them, feeds them to the journal and the action's
// recent-log buffer, and implements the flush barrier that orders a stage's
// completion record after its node-action logs.
package logrouter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

var (
	// ErrFlushPending is returned when a flush barrier already exists for
	// the action; the barrier is single-use per node-action.
	ErrFlushPending = errors.New("flush already pending for action")

	// ErrNoFlush is returned by WaitForFlush when RequestFlush was never
	// called for the action.
	ErrNoFlush = errors.New("no flush pending for action")
)

// Journal is the subset of the journal service the router writes to.
type Journal interface {
	LogLine(ctx context.Context, actionID string, stageIndex int, entry models.ReportSlaveTaskLog)
}

// Sender delivers flush requests to agents.
type Sender interface {
	Send(node string, env models.Envelope) error
}

// actionRoute holds the weak, id-keyed hooks into a live master action. The
// router never owns the action; the workflow runtime registers and removes
// routes as node-actions come and go. Agents correlate log entries by
// node-action id, while the journal stream is keyed by the owning master
// action id, so the route carries both.
type actionRoute struct {
	masterID     string
	appendLog    func(line string)
	currentStage func() int
}

type flushWait struct {
	remaining map[string]bool
	done      chan struct{}
	once      sync.Once
}

func (w *flushWait) confirm(node string) {
	delete(w.remaining, node)
	if len(w.remaining) == 0 {
		w.once.Do(func() { close(w.done) })
	}
}

// Router routes agent log entries and runs flush barriers.
type Router struct {
	journal      Journal
	sender       Sender
	flushTimeout time.Duration

	mu      sync.Mutex
	actions map[string]*actionRoute
	flushes map[string]*flushWait
}

// New creates a router. flushTimeout bounds WaitForFlush; on expiry the wait
// completes with an advisory warning, never an error.
func New(journal Journal, sender Sender, flushTimeout time.Duration) *Router {
	return &Router{
		journal:      journal,
		sender:       sender,
		flushTimeout: flushTimeout,
		actions:      make(map[string]*actionRoute),
		flushes:      make(map[string]*flushWait),
	}
}

// RegisterAction wires a node-action into the router under the id agents use
// in their log entries. appendLog receives pre-formatted lines for the owning
// master action's bounded recent-log buffer; currentStage resolves the stage
// index for journal sub-stream routing.
func (r *Router) RegisterAction(actionID, masterID string, appendLog func(string), currentStage func() int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[actionID] = &actionRoute{masterID: masterID, appendLog: appendLog, currentStage: currentStage}
}

// UnregisterAction removes the route once the action is terminal.
func (r *Router) UnregisterAction(actionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actions, actionID)
}

// Ingest routes one log entry from an agent. Entries for unknown actions are
// dropped with a warning.
func (r *Router) Ingest(ctx context.Context, entry models.ReportSlaveTaskLog) {
	r.mu.Lock()
	route, ok := r.actions[entry.ActionID]
	r.mu.Unlock()
	if !ok {
		slog.Warn("Dropping log entry for unknown action",
			"action_id", entry.ActionID, "node", entry.Node, "task_id", entry.TaskID)
		return
	}

	stageIndex := route.currentStage()
	route.appendLog(formatLine(entry))
	r.journal.LogLine(ctx, route.masterID, stageIndex, entry)
}

// formatLine renders an agent log entry for the recent-log ring buffer.
func formatLine(e models.ReportSlaveTaskLog) string {
	return fmt.Sprintf("%s [%s] %s task=%s: %s",
		e.Timestamp.UTC().Format(time.RFC3339), e.Level, e.Node, e.TaskID, e.Message)
}

// RequestFlush starts the flush barrier for a node-action: it sends
// RequestLogFlush to every participating node and arms a single-use wait.
// Nodes the request cannot reach are treated as accounted for — their logs
// cannot arrive anyway.
func (r *Router) RequestFlush(actionID string, nodes []string) error {
	wait := &flushWait{
		remaining: make(map[string]bool, len(nodes)),
		done:      make(chan struct{}),
	}
	for _, n := range nodes {
		wait.remaining[n] = true
	}

	r.mu.Lock()
	if _, exists := r.flushes[actionID]; exists {
		r.mu.Unlock()
		return fmt.Errorf("action %s: %w", actionID, ErrFlushPending)
	}
	r.flushes[actionID] = wait
	r.mu.Unlock()

	env, err := models.NewEnvelope(models.MsgRequestLogFlush, models.RequestLogFlush{ActionID: actionID})
	if err != nil {
		return fmt.Errorf("failed to build flush request: %w", err)
	}

	for _, node := range nodes {
		if err := r.sender.Send(node, env); err != nil {
			slog.Warn("Flush request undeliverable, counting node as flushed",
				"action_id", actionID, "node", node, "error", err)
			r.Confirm(actionID, node)
		}
	}
	return nil
}

// Confirm records a ConfirmLogFlush from one node.
func (r *Router) Confirm(actionID, node string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wait, ok := r.flushes[actionID]
	if !ok {
		slog.Warn("Flush confirmation for unknown action", "action_id", actionID, "node", node)
		return
	}
	wait.confirm(node)
}

// WaitForFlush blocks until every participating node has confirmed, the
// flush timeout elapses, or ctx is done. A timeout is advisory: it logs a
// warning and returns allConfirmed=false, and the caller proceeds to journal
// the stage as complete regardless. The barrier is single-use — the wait is
// consumed on return.
func (r *Router) WaitForFlush(ctx context.Context, actionID string) (allConfirmed bool, err error) {
	r.mu.Lock()
	wait, ok := r.flushes[actionID]
	r.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("action %s: %w", actionID, ErrNoFlush)
	}

	defer func() {
		r.mu.Lock()
		delete(r.flushes, actionID)
		r.mu.Unlock()
	}()

	timer := time.NewTimer(r.flushTimeout)
	defer timer.Stop()

	select {
	case <-wait.done:
		return true, nil
	case <-timer.C:
		r.mu.Lock()
		pending := make([]string, 0, len(wait.remaining))
		for n := range wait.remaining {
			pending = append(pending, n)
		}
		r.mu.Unlock()
		slog.Warn("Log flush timed out, proceeding without confirmation",
			"action_id", actionID, "timeout", r.flushTimeout, "unconfirmed_nodes", pending)
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
