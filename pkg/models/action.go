package models

import (
	"sync"
	"time"
)

// MasterAction is the root of a single workflow run. Status, progress and the
// recent-log ring are mutated from the runtime and coordinator goroutines and
// read by the API layer, so access goes through the embedded mutex.
type MasterAction struct {
	ID            string
	OperationType OperationType
	Parameters    map[string]string
	StartedAt     time.Time

	mu       sync.RWMutex
	status   OperationStatus
	progress int
	endedAt  *time.Time
	result   any
	logs     *LogRing
}

// NewMasterAction creates a running master action with the given id and
// read-only parameter map.
func NewMasterAction(id string, opType OperationType, params map[string]string) *MasterAction {
	return &MasterAction{
		ID:            id,
		OperationType: opType,
		Parameters:    params,
		StartedAt:     time.Now().UTC(),
		status:        StatusRunning,
		logs:          NewLogRing(DefaultLogRingCapacity),
	}
}

// Status returns the current overall status.
func (a *MasterAction) Status() OperationStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Progress returns the overall progress percent (0-100).
func (a *MasterAction) Progress() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.progress
}

// EndedAt returns the end timestamp, set iff the action is terminal.
func (a *MasterAction) EndedAt() *time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.endedAt
}

// Result returns the final result payload, if any.
func (a *MasterAction) Result() any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.result
}

// SetResult stores the final result payload.
func (a *MasterAction) SetResult(v any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.result = v
}

// UpdateProgress raises the overall progress percent. Progress is monotone:
// a lower value than the current one is ignored. Values are clamped to
// [0, 100].
func (a *MasterAction) UpdateProgress(percent int) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status.IsTerminal() {
		return
	}
	if percent > a.progress {
		a.progress = percent
	}
}

// Complete transitions the action to the given terminal status, forces
// progress to 100 and stamps the end time. Once terminal the status never
// changes; a second call is a no-op and returns false.
func (a *MasterAction) Complete(status OperationStatus) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status.IsTerminal() {
		return false
	}
	a.status = status
	a.progress = 100
	now := time.Now().UTC()
	a.endedAt = &now
	return true
}

// AppendLog pushes a pre-formatted line onto the bounded recent-log buffer.
func (a *MasterAction) AppendLog(line string) {
	a.mu.RLock()
	logs := a.logs
	a.mu.RUnlock()
	logs.Append(line)
}

// RecentLogs returns the retained log lines, oldest first.
func (a *MasterAction) RecentLogs() []string {
	a.mu.RLock()
	logs := a.logs
	a.mu.RUnlock()
	return logs.Lines()
}

// Snapshot returns a read-consistent copy of the action's mutable state.
func (a *MasterAction) Snapshot() MasterActionSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return MasterActionSnapshot{
		ID:            a.ID,
		OperationType: a.OperationType,
		Status:        a.status,
		Progress:      a.progress,
		StartedAt:     a.StartedAt,
		EndedAt:       a.endedAt,
		Result:        a.result,
	}
}

// MasterActionSnapshot is a point-in-time copy of a MasterAction, safe to
// serialize without holding locks.
type MasterActionSnapshot struct {
	ID            string          `json:"id"`
	OperationType OperationType   `json:"operation_type"`
	Status        OperationStatus `json:"status"`
	Progress      int             `json:"progress_percent"`
	StartedAt     time.Time       `json:"started_at"`
	EndedAt       *time.Time      `json:"ended_at,omitempty"`
	Result        any             `json:"result,omitempty"`
}

// Stage is one scoped phase within a master action.
type Stage struct {
	Name   string
	Index  int // 1-based ordinal within the action
	Input  any
	Result any
	Status OperationStatus
}

// NodeAction is a single distributed task fanned out across a set of nodes.
// It is owned and mutated exclusively by the coordinator's per-action
// goroutine; other components see it only through NodeActionResult after the
// action resolves.
type NodeAction struct {
	ID            string
	StageID       string
	ActionName    string
	TaskType      SlaveTaskType
	Status        OperationStatus
	Progress      int
	StatusMessage string
	StartedAt     time.Time
	EndedAt       *time.Time
	Tasks         []*NodeTask
}

// NodeTask is the per-node sub-state of a NodeAction.
type NodeTask struct {
	ID            string
	Node          string
	TaskType      SlaveTaskType
	Payload       map[string]string
	Status        NodeTaskStatus
	Progress      int
	StatusMessage string
	UpdatedAt     time.Time
	EndedAt       *time.Time
	Result        map[string]any
}

// NodeActionResult is the final verdict of a resolved node-action.
type NodeActionResult struct {
	Success    bool
	FinalState *NodeAction
}
