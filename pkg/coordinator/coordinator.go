// Package coordinator drives node-actions through the readiness/dispatch/
// execute/flush protocol. Each submitted action runs its own state machine
// goroutine; readiness reports, progress updates, connectivity changes and
// cancellation all funnel through the action's mailbox so transitions apply
// in a single total order.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
)

var (
	// ErrDuplicateActionID is returned by Submit when an action with the
	// same id is already active.
	ErrDuplicateActionID = errors.New("duplicate action id")
)

// Sender delivers protocol messages to agents and answers connectivity
// lookups. Implemented by the agent registry.
type Sender interface {
	Send(node string, env models.Envelope) error
	Lookup(node string) (models.AgentState, bool)
}

// Flusher runs the log-flush barrier. Implemented by the log router.
type Flusher interface {
	RequestFlush(actionID string, nodes []string) error
	WaitForFlush(ctx context.Context, actionID string) (bool, error)
}

// Journal receives per-node-task terminal records.
type Journal interface {
	NodeTaskResult(ctx context.Context, actionID string, stageIndex int, task *models.NodeTask)
}

// ProgressFunc receives aggregated progress for a running node-action.
type ProgressFunc func(percent int, message string)

// Timeouts are the protocol timeouts; tests shrink them to milliseconds.
type Timeouts struct {
	Readiness         time.Duration
	CancellationGrace time.Duration
}

// Coordinator multiplexes active node-action state machines.
type Coordinator struct {
	sender   Sender
	flusher  Flusher
	journal  Journal
	timeouts Timeouts

	mu     sync.Mutex
	active map[string]*actionRun

	wg sync.WaitGroup
}

// New creates a coordinator.
func New(sender Sender, flusher Flusher, journal Journal, timeouts Timeouts) *Coordinator {
	return &Coordinator{
		sender:   sender,
		flusher:  flusher,
		journal:  journal,
		timeouts: timeouts,
		active:   make(map[string]*actionRun),
	}
}

// Run consumes registry connectivity events and forwards each to the active
// actions with tasks on the affected node. Blocks until ctx is done.
func (c *Coordinator) Run(ctx context.Context, events <-chan registry.ConnectivityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			if evt.State == models.AgentOnline {
				continue
			}
			for _, run := range c.runsForNode(evt.Node) {
				run.post(event{kind: evConnectivity, conn: evt})
			}
		}
	}
}

// Wait blocks until every active action has resolved. Used in shutdown and
// tests.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// Submit starts the state machine for a node-action with a pre-populated
// task list. The returned future resolves once every task is terminal and
// the log-flush barrier has completed. parentCtx cancellation triggers the
// cancellation protocol; it does not abandon the action.
func (c *Coordinator) Submit(parentCtx context.Context, action *models.NodeAction, stageIndex int, progress ProgressFunc) (*Future, error) {
	if progress == nil {
		progress = func(int, string) {}
	}
	future := newFuture()

	// Empty task list resolves immediately as success.
	if len(action.Tasks) == 0 {
		action.Status = models.StatusSucceeded
		action.Progress = 100
		now := time.Now().UTC()
		action.EndedAt = &now
		progress(100, "No tasks to execute")
		future.resolve(models.NodeActionResult{Success: true, FinalState: action})
		return future, nil
	}

	run := &actionRun{
		c:          c,
		action:     action,
		stageIndex: stageIndex,
		progress:   progress,
		future:     future,
		mailbox:    make(chan event, mailboxBuffer),
		tasks:      make(map[string]*models.NodeTask, len(action.Tasks)),
		log: slog.With(
			"action_id", action.ID,
			"action_name", action.ActionName,
			"task_type", action.TaskType),
	}
	for _, task := range action.Tasks {
		run.tasks[task.ID] = task
	}

	c.mu.Lock()
	if _, exists := c.active[action.ID]; exists {
		c.mu.Unlock()
		return nil, fmt.Errorf("action %s: %w", action.ID, ErrDuplicateActionID)
	}
	c.active[action.ID] = run
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		run.loop(parentCtx)
	}()

	return future, nil
}

// SubmitParallel runs several node-actions concurrently. The supplied
// progress function receives the arithmetic mean of the children's progress;
// the returned future resolves when every child has resolved, preserving
// submission order in the result slice.
func (c *Coordinator) SubmitParallel(parentCtx context.Context, actions []*models.NodeAction, stageIndex int, progress ProgressFunc) (*MultiFuture, error) {
	if progress == nil {
		progress = func(int, string) {}
	}

	multi := newMultiFuture(len(actions))
	tracker := newParallelProgress(len(actions), progress)

	futures := make([]*Future, len(actions))
	for i, action := range actions {
		idx := i
		f, err := c.Submit(parentCtx, action, stageIndex, func(percent int, message string) {
			tracker.update(idx, percent, message)
		})
		if err != nil {
			// Children already started keep running; the caller's parent
			// context cancellation is the only rollback mechanism.
			return nil, fmt.Errorf("submit %s: %w", action.ID, err)
		}
		futures[i] = f
	}

	go func() {
		results := make([]models.NodeActionResult, len(futures))
		for i, f := range futures {
			res, err := f.Wait(context.Background())
			if err != nil {
				// Wait with Background never errors; guard anyway.
				res = models.NodeActionResult{Success: false, FinalState: actions[i]}
			}
			results[i] = res
		}
		multi.resolve(results)
	}()

	return multi, nil
}

// HandleReadiness routes an agent's readiness report to its action.
// Reports for unknown actions are dropped with a warning.
func (c *Coordinator) HandleReadiness(rep models.ReportTaskReadiness) {
	run, ok := c.lookup(rep.ActionID)
	if !ok {
		slog.Warn("Readiness report for unknown action",
			"action_id", rep.ActionID, "task_id", rep.TaskID)
		return
	}
	run.post(event{kind: evReadiness, readiness: rep})
}

// HandleProgress routes an agent's progress update to its action.
func (c *Coordinator) HandleProgress(rep models.ReportTaskProgress) {
	run, ok := c.lookup(rep.ActionID)
	if !ok {
		slog.Warn("Progress update for unknown action",
			"action_id", rep.ActionID, "task_id", rep.TaskID)
		return
	}
	run.post(event{kind: evProgress, progress: rep})
}

// ActiveCount returns the number of unresolved node-actions.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

func (c *Coordinator) lookup(actionID string) (*actionRun, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	run, ok := c.active[actionID]
	return run, ok
}

func (c *Coordinator) remove(actionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.active, actionID)
}

func (c *Coordinator) runsForNode(node string) []*actionRun {
	c.mu.Lock()
	defer c.mu.Unlock()
	var runs []*actionRun
	for _, run := range c.active {
		for _, task := range run.action.Tasks {
			if task.Node == node {
				runs = append(runs, run)
				break
			}
		}
	}
	return runs
}

// parallelProgress aggregates child progress into a mean for the stage.
type parallelProgress struct {
	mu       sync.Mutex
	percents []int
	report   ProgressFunc
}

func newParallelProgress(n int, report ProgressFunc) *parallelProgress {
	return &parallelProgress{percents: make([]int, n), report: report}
}

func (p *parallelProgress) update(idx, percent int, message string) {
	p.mu.Lock()
	p.percents[idx] = percent
	sum := 0
	for _, v := range p.percents {
		sum += v
	}
	mean := sum / len(p.percents)
	p.mu.Unlock()
	p.report(mean, message)
}
