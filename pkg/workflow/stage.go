package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// ErrConcurrentStageUse is returned when a second RunNodeAction call is made
// while one is still in flight on the same stage.
var ErrConcurrentStageUse = errors.New("stage already has a node-action in flight")

// NodeActionSpec describes one node-action a stage wants to run. An empty
// Nodes list targets every agent currently Online. Payloads is keyed by node
// name; nodes without an entry get an empty payload.
type NodeActionSpec struct {
	ActionName string
	TaskType   models.SlaveTaskType
	Nodes      []string
	Payloads   map[string]map[string]string
}

// StageContext is one scoped unit of work within a master action. Node-action
// results, progress and logs reported through it are attributed to its stage.
// The stage must be closed on every exit path; Close writes the
// stage-completed journal record.
//
// At most one RunNodeAction or RunNodeActionsInParallel call may be in flight
// at a time.
type StageContext struct {
	run   *MasterActionContext
	stage *models.Stage
	log   *slog.Logger

	busy   atomic.Bool
	failed atomic.Bool

	mu        sync.Mutex
	closeOnce sync.Once
}

// Index returns the stage's 1-based ordinal within the action.
func (s *StageContext) Index() int {
	return s.stage.Index
}

// RunNodeAction builds a node-action from the spec, submits it to the
// coordinator, and blocks until it resolves. When spec.Nodes is empty the
// action targets all currently Online agents; with no online agents the
// action resolves immediately as successful with no tasks.
func (s *StageContext) RunNodeAction(ctx context.Context, spec NodeActionSpec) (models.NodeActionResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return models.NodeActionResult{}, ErrConcurrentStageUse
	}
	defer s.busy.Store(false)

	action := s.buildNodeAction(spec)
	s.registerRoute(action.ID)
	defer s.run.router.UnregisterAction(action.ID)

	future, err := s.run.coord.Submit(ctx, action, s.stage.Index, s.progressReporter())
	if err != nil {
		return models.NodeActionResult{}, fmt.Errorf("failed to submit node-action %s: %w", action.ActionName, err)
	}

	// Cancellation of ctx starts the coordinator's graceful cancellation;
	// the wait must survive it so the Cancelled verdict comes back.
	res, err := future.Wait(context.WithoutCancel(ctx))
	if err != nil {
		return models.NodeActionResult{}, err
	}
	if !res.Success {
		s.failed.Store(true)
	}
	return res, nil
}

// RunNodeActionsInParallel submits all specs at once and blocks until every
// child action resolves. Results are returned in spec order. Stage progress
// is the arithmetic mean of the children's progress.
func (s *StageContext) RunNodeActionsInParallel(ctx context.Context, specs []NodeActionSpec) ([]models.NodeActionResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrConcurrentStageUse
	}
	defer s.busy.Store(false)

	actions := make([]*models.NodeAction, len(specs))
	for i, spec := range specs {
		actions[i] = s.buildNodeAction(spec)
		s.registerRoute(actions[i].ID)
	}
	defer func() {
		for _, a := range actions {
			s.run.router.UnregisterAction(a.ID)
		}
	}()

	multi, err := s.run.coord.SubmitParallel(ctx, actions, s.stage.Index, s.progressReporter())
	if err != nil {
		return nil, fmt.Errorf("failed to submit parallel node-actions: %w", err)
	}

	results, err := multi.Wait(context.WithoutCancel(ctx))
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if !res.Success {
			s.failed.Store(true)
			break
		}
	}
	return results, nil
}

// ReportProgress reports stage-local progress for custom (non-node-action)
// work. percent is stage-local, 0-100.
func (s *StageContext) ReportProgress(percent int, message string) {
	s.run.reportStageProgress(s.stage.Index, percent)
	s.log.Debug("Stage progress", "percent", percent, "message", message)
}

// Log pushes a master-side log line onto the action's recent-log buffer and
// into the journal's log-line stream for this stage.
func (s *StageContext) Log(ctx context.Context, level models.LogLevel, msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	s.run.appendLocalLog(level, msg)
	s.run.journal.LogLine(ctx, s.run.Action.ID, s.stage.Index, models.ReportSlaveTaskLog{
		ActionID:  s.run.Action.ID,
		Node:      "master",
		Level:     level,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	})
}

// SetCustomResult attaches an arbitrary result payload to the stage; it is
// included in the stage-completed journal record.
func (s *StageContext) SetCustomResult(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage.Result = v
}

// Close finishes the stage and journals the stage-completed record. It is
// idempotent and must run on every exit path, including handler errors.
// Node-action log flushes have already been barriered by the coordinator
// before each result resolved, so the completion record is ordered after all
// routed log entries.
func (s *StageContext) Close(ctx context.Context) {
	s.closeOnce.Do(func() {
		if s.failed.Load() {
			s.stage.Status = models.StatusFailed
		} else {
			s.stage.Status = models.StatusSucceeded
		}

		s.mu.Lock()
		result := stageResultMap(s.stage.Result)
		s.mu.Unlock()
		if result == nil {
			result = map[string]any{}
		}
		result["status"] = string(s.stage.Status)

		s.run.journal.StageCompleted(ctx, s.run.Action.ID, s.stage.Index, s.stage.Name, result)
		s.log.Info("Stage completed", "status", s.stage.Status)

		s.run.reportStageProgress(s.stage.Index, 100)
	})
}

// progressReporter adapts coordinator progress callbacks to the overall
// progress math for this stage.
func (s *StageContext) progressReporter() func(percent int, message string) {
	return func(percent int, message string) {
		s.run.reportStageProgress(s.stage.Index, percent)
	}
}

func (s *StageContext) buildNodeAction(spec NodeActionSpec) *models.NodeAction {
	nodes := spec.Nodes
	if len(nodes) == 0 {
		nodes = s.run.nodes.OnlineNodes()
	}

	action := &models.NodeAction{
		ID:         uuid.NewString(),
		StageID:    fmt.Sprintf("%s/stage-%d", s.run.Action.ID, s.stage.Index),
		ActionName: spec.ActionName,
		TaskType:   spec.TaskType,
		Status:     models.StatusPending,
		StartedAt:  time.Now().UTC(),
	}
	for i, node := range nodes {
		action.Tasks = append(action.Tasks, &models.NodeTask{
			ID:       fmt.Sprintf("t%d", i+1),
			Node:     node,
			TaskType: spec.TaskType,
			Payload:  spec.Payloads[node],
		})
	}
	return action
}

// registerRoute wires agent log entries carrying this node-action id to the
// master action's recent-log buffer and journal stream.
func (s *StageContext) registerRoute(nodeActionID string) {
	index := s.stage.Index
	s.run.router.RegisterAction(nodeActionID, s.run.Action.ID,
		s.run.Action.AppendLog, func() int { return index })
}

// stageResultMap copies a custom stage result into a journal payload map.
func stageResultMap(v any) map[string]any {
	switch r := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(r)+1)
		for k, val := range r {
			out[k] = val
		}
		return out
	default:
		return map[string]any{"value": v}
	}
}
