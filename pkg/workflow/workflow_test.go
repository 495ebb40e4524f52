package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Fakes
// ────────────────────────────────────────────────────────────

// fakeFleet plays the agent side of the protocol: it answers readiness
// checks, executes assigned tasks instantly, honors cancellation and
// confirms log flushes.
type fakeFleet struct {
	mu     sync.Mutex
	nodes  []string
	coord  *coordinator.Coordinator
	router *logrouter.Router

	resultJSON string          // delivered with every Succeeded report
	silent     map[string]bool // nodes that accept tasks but never finish
	logLines   bool            // emit one log line per assigned task
}

func (f *fakeFleet) OnlineNodes() []string { return f.nodes }

func (f *fakeFleet) Lookup(node string) (models.AgentState, bool) {
	return models.AgentState{Node: node, Connectivity: models.AgentOnline}, true
}

func (f *fakeFleet) Send(node string, env models.Envelope) error {
	switch env.Type {
	case models.MsgPrepareForTask:
		var p models.PrepareForTask
		_ = json.Unmarshal(env.Payload, &p)
		go f.coord.HandleReadiness(models.ReportTaskReadiness{
			ActionID: p.ActionID, TaskID: p.TaskID, Ready: true,
		})

	case models.MsgAssignSlaveTask:
		var p models.AssignSlaveTask
		_ = json.Unmarshal(env.Payload, &p)
		f.mu.Lock()
		silent := f.silent[node]
		resultJSON := f.resultJSON
		logLines := f.logLines
		f.mu.Unlock()
		if silent {
			return nil
		}
		go func() {
			if logLines {
				f.router.Ingest(context.Background(), models.ReportSlaveTaskLog{
					ActionID:  p.ActionID,
					TaskID:    p.TaskID,
					Node:      node,
					Level:     models.LevelInformation,
					Message:   "task executing",
					Timestamp: time.Now().UTC(),
				})
			}
			f.report(p.ActionID, p.TaskID, models.TaskInProgress, 50, "")
			f.report(p.ActionID, p.TaskID, models.TaskSucceeded, 100, resultJSON)
		}()

	case models.MsgCancelTask:
		var p models.CancelTask
		_ = json.Unmarshal(env.Payload, &p)
		go f.report(p.ActionID, p.TaskID, models.TaskCancelled, 0, "")

	case models.MsgRequestLogFlush:
		var p models.RequestLogFlush
		_ = json.Unmarshal(env.Payload, &p)
		go f.router.Confirm(p.ActionID, node)
	}
	return nil
}

func (f *fakeFleet) report(actionID, taskID string, status models.NodeTaskStatus, percent int, resultJSON string) {
	f.coord.HandleProgress(models.ReportTaskProgress{
		ActionID:   actionID,
		TaskID:     taskID,
		Status:     string(status),
		Percent:    &percent,
		Timestamp:  time.Now().UTC(),
		ResultJSON: resultJSON,
	})
}

// memStore is an in-memory journal.Store.
type memStore struct {
	mu        sync.Mutex
	entries   []journal.Entry
	finalized map[string]models.OperationStatus
}

func newMemStore() *memStore {
	return &memStore{finalized: make(map[string]models.OperationStatus)}
}

func (s *memStore) AppendEntry(_ context.Context, e *journal.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *e)
	return nil
}

func (s *memStore) CreateActionRecord(_ context.Context, _ *models.MasterAction, _ string) error {
	return nil
}

func (s *memStore) FinalizeActionRecord(_ context.Context, actionID string, status models.OperationStatus, _ map[string]any, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized[actionID] = status
	return nil
}

func (s *memStore) kinds(actionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kinds []string
	for _, e := range s.entries {
		if e.ActionID == actionID {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

func (s *memStore) finalStatus(actionID string) (models.OperationStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.finalized[actionID]
	return st, ok
}

// funcHandler adapts a function to the Handler interface.
type funcHandler func(ctx context.Context, run *MasterActionContext) error

func (f funcHandler) Execute(ctx context.Context, run *MasterActionContext) error {
	return f(ctx, run)
}

// ────────────────────────────────────────────────────────────
// Harness
// ────────────────────────────────────────────────────────────

type wfHarness struct {
	fleet    *fakeFleet
	store    *memStore
	journal  *journal.Service
	router   *logrouter.Router
	coord    *coordinator.Coordinator
	handlers *HandlerRegistry
	runtime  *Runtime
}

func newWFHarness(nodes ...string) *wfHarness {
	h := &wfHarness{
		fleet: &fakeFleet{nodes: nodes, silent: make(map[string]bool)},
		store: newMemStore(),
	}
	h.journal = journal.NewService(h.store, "/var/lib/sitekeeper/journal", "test")
	h.router = logrouter.New(h.journal, h.fleet, 500*time.Millisecond)
	h.coord = coordinator.New(h.fleet, h.router, h.journal, coordinator.Timeouts{
		Readiness:         2 * time.Second,
		CancellationGrace: 2 * time.Second,
	})
	h.fleet.coord = h.coord
	h.fleet.router = h.router
	h.handlers = NewHandlerRegistry()
	h.runtime = NewRuntime(h.handlers, h.coord, h.router, h.journal, h.fleet)
	return h
}

func (h *wfHarness) startAndWait(t *testing.T, opType models.OperationType, params map[string]string) *models.MasterAction {
	t.Helper()
	action, err := h.runtime.Start(context.Background(), opType, params)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return action.Status().IsTerminal()
	}, 5*time.Second, 5*time.Millisecond)
	h.runtime.Wait()
	return action
}

// ────────────────────────────────────────────────────────────
// Runtime
// ────────────────────────────────────────────────────────────

func TestStartUnknownOperationType(t *testing.T) {
	h := newWFHarness("N1")
	_, err := h.runtime.Start(context.Background(), models.OperationType("Unknown"), nil)
	require.ErrorIs(t, err, ErrNoHandler)
}

func TestWorkflowRunsToCompletion(t *testing.T) {
	h := newWFHarness("N1", "N2")
	h.fleet.resultJSON = `{"filesChecked":10}`
	h.fleet.logLines = true

	var capturedNodes []string
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			run.InitializeProgress(2)

			prep := run.BeginStage(ctx, "Preparation", nil)
			prep.ReportProgress(100, "prepared")
			prep.Close(ctx)

			stage := run.BeginStage(ctx, "Fan-out", nil)
			defer stage.Close(ctx)
			res, err := stage.RunNodeAction(ctx, NodeActionSpec{
				ActionName: "fan-out",
				TaskType:   models.TaskTypeVerifyConfiguration,
			})
			if err != nil {
				return err
			}
			for _, task := range res.FinalState.Tasks {
				capturedNodes = append(capturedNodes, task.Node)
			}
			run.SetCompleted(ctx, "all done")
			return nil
		})
	})

	action := h.startAndWait(t, "op", map[string]string{"env": "prod"})

	assert.Equal(t, models.StatusSucceeded, action.Status())
	assert.Equal(t, 100, action.Progress())
	require.NotNil(t, action.EndedAt())
	// empty node list defaulted to all online agents
	assert.ElementsMatch(t, []string{"N1", "N2"}, capturedNodes)

	kinds := h.store.kinds(action.ID)
	assert.Equal(t, 2, countOf(kinds, journal.KindStageInitiated))
	assert.Equal(t, 2, countOf(kinds, journal.KindStageCompleted))
	assert.Equal(t, 2, countOf(kinds, journal.KindNodeTaskResult))
	assert.GreaterOrEqual(t, countOf(kinds, journal.KindLogLine), 2)

	final, ok := h.store.finalStatus(action.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusSucceeded, final)

	// routed agent lines landed in the recent-log buffer
	logs := action.RecentLogs()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0], "task executing")
}

func TestHandlerErrorMarksFailed(t *testing.T) {
	h := newWFHarness("N1")
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			return errors.New("stage machinery exploded")
		})
	})

	action := h.startAndWait(t, "op", nil)
	assert.Equal(t, models.StatusFailed, action.Status())
	assert.Equal(t, 100, action.Progress())
}

func TestHandlerPanicMarksFailed(t *testing.T) {
	h := newWFHarness("N1")
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			panic("nil map write")
		})
	})

	action := h.startAndWait(t, "op", nil)
	assert.Equal(t, models.StatusFailed, action.Status())
}

func TestHandlerWithoutTerminalMarksFailed(t *testing.T) {
	h := newWFHarness("N1")
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			return nil
		})
	})

	action := h.startAndWait(t, "op", nil)
	assert.Equal(t, models.StatusFailed, action.Status())
}

func TestCancelRunningAction(t *testing.T) {
	h := newWFHarness("N1")
	h.fleet.silent["N1"] = true // accepts the task, never finishes it

	dispatched := make(chan struct{})
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			run.InitializeProgress(1)
			stage := run.BeginStage(ctx, "Long haul", nil)
			defer stage.Close(ctx)
			close(dispatched)
			_, err := stage.RunNodeAction(ctx, NodeActionSpec{
				ActionName: "long-haul",
				TaskType:   models.TaskTypeDeployPackages,
			})
			return err
		})
	})

	action, err := h.runtime.Start(context.Background(), "op", nil)
	require.NoError(t, err)
	<-dispatched
	// give the coordinator time to reach the dispatched state
	require.Eventually(t, func() bool { return h.coord.ActiveCount() == 1 },
		time.Second, 2*time.Millisecond)

	require.NoError(t, h.runtime.Cancel(action.ID))
	require.Eventually(t, func() bool {
		return action.Status().IsTerminal()
	}, 5*time.Second, 5*time.Millisecond)

	assert.Equal(t, models.StatusCancelled, action.Status())
}

func TestCancelUnknownAction(t *testing.T) {
	h := newWFHarness("N1")
	require.ErrorIs(t, h.runtime.Cancel("ghost"), ErrActionNotFound)
}

func TestGetAndList(t *testing.T) {
	h := newWFHarness("N1")
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			run.SetCompleted(ctx, "trivial")
			return nil
		})
	})

	action := h.startAndWait(t, "op", nil)

	got, err := h.runtime.Get(action.ID)
	require.NoError(t, err)
	assert.Equal(t, action.ID, got.ID)

	_, err = h.runtime.Get("ghost")
	require.ErrorIs(t, err, ErrActionNotFound)

	list := h.runtime.List()
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusSucceeded, list[0].Status)
}

// ────────────────────────────────────────────────────────────
// Progress math
// ────────────────────────────────────────────────────────────

func TestOverallProgressMath(t *testing.T) {
	tests := []struct {
		name        string
		totalStages int
		stageIndex  int
		percent     int
		want        int
	}{
		{"first stage half done of two", 2, 1, 50, 25},
		{"second stage half done of two", 2, 2, 50, 75},
		{"second stage complete of two", 2, 2, 100, 100},
		{"second stage early of three", 3, 2, 10, 36},
		{"single stage passthrough", 1, 1, 42, 42},
		{"clamped above hundred", 2, 2, 150, 100},
		{"negative clamped", 2, 1, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newWFHarness("N1")
			action := models.NewMasterAction("a", "op", nil)
			run := newMasterActionContext(action, h.journal, h.router, h.coord, h.fleet)
			run.InitializeProgress(tt.totalStages)
			run.reportStageProgress(tt.stageIndex, tt.percent)
			assert.Equal(t, tt.want, action.Progress())
		})
	}
}

func TestProgressIgnoredBeforeInitialize(t *testing.T) {
	h := newWFHarness("N1")
	action := models.NewMasterAction("a", "op", nil)
	run := newMasterActionContext(action, h.journal, h.router, h.coord, h.fleet)
	run.reportStageProgress(1, 50)
	assert.Equal(t, 0, action.Progress())
}

// ────────────────────────────────────────────────────────────
// Stage context
// ────────────────────────────────────────────────────────────

func TestConcurrentStageUseRejected(t *testing.T) {
	h := newWFHarness("N1")
	action := models.NewMasterAction("a", "op", nil)
	run := newMasterActionContext(action, h.journal, h.router, h.coord, h.fleet)
	run.InitializeProgress(1)
	stage := run.BeginStage(context.Background(), "busy", nil)
	defer stage.Close(context.Background())

	stage.busy.Store(true)

	_, err := stage.RunNodeAction(context.Background(), NodeActionSpec{
		ActionName: "second",
		TaskType:   models.TaskTypeVerifyConfiguration,
	})
	require.ErrorIs(t, err, ErrConcurrentStageUse)

	_, err = stage.RunNodeActionsInParallel(context.Background(), []NodeActionSpec{
		{ActionName: "third", TaskType: models.TaskTypeVerifyConfiguration},
	})
	require.ErrorIs(t, err, ErrConcurrentStageUse)
}

func TestStageCloseIsIdempotent(t *testing.T) {
	h := newWFHarness("N1")
	action := models.NewMasterAction("a", "op", nil)
	run := newMasterActionContext(action, h.journal, h.router, h.coord, h.fleet)
	run.InitializeProgress(1)

	stage := run.BeginStage(context.Background(), "once", nil)
	stage.SetCustomResult(map[string]any{"checked": 3})
	stage.Close(context.Background())
	stage.Close(context.Background())

	kinds := h.store.kinds("a")
	assert.Equal(t, 1, countOf(kinds, journal.KindStageCompleted))
}

func TestParallelNodeActions(t *testing.T) {
	h := newWFHarness("N1", "N2")
	h.handlers.Register("op", func() Handler {
		return funcHandler(func(ctx context.Context, run *MasterActionContext) error {
			run.InitializeProgress(1)
			stage := run.BeginStage(ctx, "Parallel", nil)
			defer stage.Close(ctx)
			results, err := stage.RunNodeActionsInParallel(ctx, []NodeActionSpec{
				{ActionName: "a", TaskType: models.TaskTypeTestOrchestration, Nodes: []string{"N1"}},
				{ActionName: "b", TaskType: models.TaskTypeTestOrchestration, Nodes: []string{"N2"}},
			})
			if err != nil {
				return err
			}
			for _, res := range results {
				if !res.Success {
					run.SetFailed(ctx, "parallel child failed")
					return nil
				}
			}
			run.SetCompleted(ctx, "both children succeeded")
			return nil
		})
	})

	action := h.startAndWait(t, "op", nil)
	assert.Equal(t, models.StatusSucceeded, action.Status())
}

func countOf(kinds []string, kind string) int {
	n := 0
	for _, k := range kinds {
		if k == kind {
			n++
		}
	}
	return n
}
