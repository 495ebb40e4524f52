// Package journal records the durable trace of every master action: stage
// begin/complete records, per-node task results, and correlated log lines.
// Writes are append-only and best-effort — a journal failure is logged and
// never blocks or fails the workflow that caused it.
package journal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// Entry kinds. Values match the journal_entries.kind enum.
const (
	KindStageInitiated = "stage_initiated"
	KindStageCompleted = "stage_completed"
	KindNodeTaskResult = "node_task_result"
	KindLogLine        = "log_line"
)

// Entry is one append-only journal record.
type Entry struct {
	ActionID   string
	Stream     string
	StageIndex int
	StageName  string
	Kind       string
	Node       string
	TaskID     string
	Payload    map[string]any
	Sequence   int
	Timestamp  time.Time
}

// Store is the persistence seam for journal records. The ent-backed
// implementation lives in store.go; tests substitute fakes.
type Store interface {
	AppendEntry(ctx context.Context, e *Entry) error
	CreateActionRecord(ctx context.Context, action *models.MasterAction, environment string) error
	FinalizeActionRecord(ctx context.Context, actionID string, status models.OperationStatus, result map[string]any, endedAt time.Time) error
}

// Service serializes writes per master-action stream and assigns sequence
// numbers. Cross-stream ordering is unspecified.
type Service struct {
	store    Store
	rootPath string
	env      string

	mu  sync.Mutex
	seq map[string]int
}

// NewService creates a journal service writing through the given store.
func NewService(store Store, journalRootPath, environment string) *Service {
	return &Service{
		store:    store,
		rootPath: journalRootPath,
		env:      environment,
		seq:      make(map[string]int),
	}
}

// ActionStarted writes the per-action header row.
func (s *Service) ActionStarted(ctx context.Context, action *models.MasterAction) {
	if err := s.store.CreateActionRecord(ctx, action, s.env); err != nil {
		slog.Error("Journal: failed to record action start",
			"action_id", action.ID, "error", err)
	}
}

// ActionCompleted finalizes the per-action header row with the terminal
// status and result payload.
func (s *Service) ActionCompleted(ctx context.Context, actionID string, status models.OperationStatus, result map[string]any) {
	if err := s.store.FinalizeActionRecord(ctx, actionID, status, result, time.Now().UTC()); err != nil {
		slog.Error("Journal: failed to record action completion",
			"action_id", actionID, "error", err)
	}
}

// StageInitiated appends the stage-begin record.
func (s *Service) StageInitiated(ctx context.Context, actionID string, stageIndex int, stageName string, input map[string]any) {
	s.append(ctx, &Entry{
		ActionID:   actionID,
		StageIndex: stageIndex,
		StageName:  stageName,
		Kind:       KindStageInitiated,
		Payload:    input,
	})
}

// StageCompleted appends the stage-complete record. The flush barrier
// guarantees this is never written before the stage's node-action logs have
// been offered to the router.
func (s *Service) StageCompleted(ctx context.Context, actionID string, stageIndex int, stageName string, result map[string]any) {
	s.append(ctx, &Entry{
		ActionID:   actionID,
		StageIndex: stageIndex,
		StageName:  stageName,
		Kind:       KindStageCompleted,
		Payload:    result,
	})
}

// NodeTaskResult appends the terminal record of one per-node task.
func (s *Service) NodeTaskResult(ctx context.Context, actionID string, stageIndex int, task *models.NodeTask) {
	payload := map[string]any{
		"status":         string(task.Status),
		"progress":       task.Progress,
		"status_message": task.StatusMessage,
		"result":         task.Result,
	}
	if task.EndedAt != nil {
		payload["ended_at"] = task.EndedAt.Format(time.RFC3339Nano)
	}
	s.append(ctx, &Entry{
		ActionID:   actionID,
		StageIndex: stageIndex,
		Kind:       KindNodeTaskResult,
		Node:       task.Node,
		TaskID:     task.ID,
		Payload:    payload,
	})
}

// LogLine appends one correlated log line from an agent.
func (s *Service) LogLine(ctx context.Context, actionID string, stageIndex int, entry models.ReportSlaveTaskLog) {
	s.append(ctx, &Entry{
		ActionID:   actionID,
		StageIndex: stageIndex,
		Kind:       KindLogLine,
		Node:       entry.Node,
		TaskID:     entry.TaskID,
		Payload: map[string]any{
			"level":     string(entry.Level),
			"message":   entry.Message,
			"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		},
	})
}

// append stamps stream, sequence and timestamp, then writes through the
// store. Failures are logged and dropped.
func (s *Service) append(ctx context.Context, e *Entry) {
	s.mu.Lock()
	s.seq[e.ActionID]++
	e.Sequence = s.seq[e.ActionID]
	s.mu.Unlock()

	e.Stream = s.rootPath + "/" + e.ActionID
	e.Timestamp = time.Now().UTC()

	if err := s.store.AppendEntry(ctx, e); err != nil {
		slog.Error("Journal: failed to append entry",
			"action_id", e.ActionID, "kind", e.Kind, "error", err)
	}
}

// Release drops the per-action sequence counter once an action is fully
// journaled.
func (s *Service) Release(actionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seq, actionID)
}
