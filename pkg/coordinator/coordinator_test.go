package coordinator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
)

// ────────────────────────────────────────────────────────────
// Fakes
// ────────────────────────────────────────────────────────────

type sentMessage struct {
	node string
	env  models.Envelope
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]error
	states  map[string]models.ConnectivityState
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		failFor: make(map[string]error),
		states:  make(map[string]models.ConnectivityState),
	}
}

func (f *fakeSender) Send(node string, env models.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[node]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMessage{node: node, env: env})
	return nil
}

func (f *fakeSender) Lookup(node string) (models.AgentState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.states[node]
	if !ok {
		return models.AgentState{}, false
	}
	return models.AgentState{Node: node, Connectivity: state}, true
}

func (f *fakeSender) count(node, msgType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.sent {
		if m.node == node && m.env.Type == msgType {
			n++
		}
	}
	return n
}

type fakeFlusher struct {
	mu        sync.Mutex
	requested map[string][]string
	confirmed bool
	delay     time.Duration
}

func newFakeFlusher() *fakeFlusher {
	return &fakeFlusher{requested: make(map[string][]string), confirmed: true}
}

func (f *fakeFlusher) RequestFlush(actionID string, nodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested[actionID] = nodes
	return nil
}

func (f *fakeFlusher) WaitForFlush(ctx context.Context, actionID string) (bool, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.requested[actionID]; !ok {
		return false, errors.New("no flush requested")
	}
	return f.confirmed, nil
}

func (f *fakeFlusher) nodes(actionID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requested[actionID]
}

type fakeJournal struct {
	mu      sync.Mutex
	results map[string]int // task id → terminal records written
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{results: make(map[string]int)}
}

func (f *fakeJournal) NodeTaskResult(_ context.Context, _ string, _ int, task *models.NodeTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[task.ID]++
}

func (f *fakeJournal) recordsFor(taskID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results[taskID]
}

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

type harness struct {
	sender  *fakeSender
	flusher *fakeFlusher
	journal *fakeJournal
	coord   *Coordinator
}

func newHarness(timeouts Timeouts) *harness {
	h := &harness{
		sender:  newFakeSender(),
		flusher: newFakeFlusher(),
		journal: newFakeJournal(),
	}
	h.coord = New(h.sender, h.flusher, h.journal, timeouts)
	return h
}

func defaultTimeouts() Timeouts {
	return Timeouts{Readiness: 2 * time.Second, CancellationGrace: 2 * time.Second}
}

func newAction(id string, taskType models.SlaveTaskType, nodes ...string) *models.NodeAction {
	action := &models.NodeAction{
		ID:         id,
		ActionName: "test-" + id,
		TaskType:   taskType,
		Status:     models.StatusPending,
	}
	for i, node := range nodes {
		action.Tasks = append(action.Tasks, &models.NodeTask{
			ID:       taskID(i),
			Node:     node,
			TaskType: taskType,
		})
	}
	return action
}

func taskID(i int) string {
	return "t" + string(rune('1'+i))
}

func intptr(v int) *int { return &v }

func (h *harness) reportReady(actionID, taskID string) {
	h.coord.HandleReadiness(models.ReportTaskReadiness{ActionID: actionID, TaskID: taskID, Ready: true})
}

func (h *harness) reportProgress(actionID, taskID string, status models.NodeTaskStatus, percent int, msg, resultJSON string) {
	h.coord.HandleProgress(models.ReportTaskProgress{
		ActionID:   actionID,
		TaskID:     taskID,
		Status:     string(status),
		Percent:    intptr(percent),
		Message:    msg,
		Timestamp:  time.Now().UTC(),
		ResultJSON: resultJSON,
	})
}

// waitDispatched polls until the task has been assigned to its node.
func (h *harness) waitDispatched(t *testing.T, node string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.sender.count(node, models.MsgAssignSlaveTask) > 0
	}, time.Second, 2*time.Millisecond)
}

func findTask(action *models.NodeAction, id string) *models.NodeTask {
	for _, task := range action.Tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Scenarios
// ────────────────────────────────────────────────────────────

func TestHappyPathTwoNodes(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-1", models.TaskTypeVerifyConfiguration, "N1", "N2")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return h.sender.count("N1", models.MsgPrepareForTask) == 1 &&
			h.sender.count("N2", models.MsgPrepareForTask) == 1
	}, time.Second, 2*time.Millisecond)

	h.reportReady("op-1", "t1")
	h.reportReady("op-1", "t2")
	h.waitDispatched(t, "N1")
	h.waitDispatched(t, "N2")

	for _, p := range []int{25, 50, 75} {
		h.reportProgress("op-1", "t1", models.TaskInProgress, p, "checking", "")
		h.reportProgress("op-1", "t2", models.TaskInProgress, p, "checking", "")
	}
	resultJSON := `{"filesChecked":1250,"deviationsFound":0}`
	h.reportProgress("op-1", "t1", models.TaskSucceeded, 100, "done", resultJSON)
	h.reportProgress("op-1", "t2", models.TaskSucceeded, 100, "done", resultJSON)

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusSucceeded, res.FinalState.Status)
	assert.Equal(t, 100, res.FinalState.Progress)
	assert.Equal(t, "In progress: 0, Succeeded: 2, Failed/Cancelled: 0", res.FinalState.StatusMessage)
	assert.ElementsMatch(t, []string{"N1", "N2"}, h.flusher.nodes("op-1"))

	t1 := findTask(res.FinalState, "t1")
	require.NotNil(t, t1.EndedAt)
	assert.Equal(t, float64(1250), t1.Result["filesChecked"])
	assert.Equal(t, 1, h.journal.recordsFor("t1"))
	assert.Equal(t, 1, h.journal.recordsFor("t2"))
	assert.Equal(t, 0, h.coord.ActiveCount())
}

func TestReadinessTimeoutOnOneNode(t *testing.T) {
	h := newHarness(Timeouts{Readiness: 60 * time.Millisecond, CancellationGrace: time.Second})
	action := newAction("op-2", models.TaskTypeVerifyConfiguration, "N1", "N2")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-2", "t1")
	h.waitDispatched(t, "N1")
	h.reportProgress("op-2", "t1", models.TaskSucceeded, 100, "done", "")
	// N2 never answers its readiness check.

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusFailed, res.FinalState.Status)
	assert.Equal(t, models.TaskSucceeded, findTask(res.FinalState, "t1").Status)
	assert.Equal(t, models.TaskReadinessCheckTimedOut, findTask(res.FinalState, "t2").Status)
}

func TestNodeDisconnectsMidExecution(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-3", models.TaskTypeTestOrchestration, "N1")

	events := make(chan registry.ConnectivityEvent)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.coord.Run(ctx, events)

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-3", "t1")
	h.waitDispatched(t, "N1")
	h.reportProgress("op-3", "t1", models.TaskInProgress, 10, "working", "")

	events <- registry.ConnectivityEvent{Node: "N1", State: models.AgentOffline, At: time.Now().UTC()}

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusFailed, res.FinalState.Status)

	t1 := findTask(res.FinalState, "t1")
	assert.Equal(t, models.TaskNodeOfflineDuringTask, t1.Status)
	assert.Equal(t, string(models.AgentOffline), t1.StatusMessage)
	require.NotNil(t, t1.EndedAt)
	// stage completion still proceeds: flush was requested even though the
	// node cannot confirm
	assert.Equal(t, []string{"N1"}, h.flusher.nodes("op-3"))
}

func TestCancellationUnderLoad(t *testing.T) {
	h := newHarness(Timeouts{Readiness: time.Second, CancellationGrace: 80 * time.Millisecond})
	action := newAction("op-4", models.TaskTypeDeployPackages, "N1", "N2", "N3")

	ctx, cancel := context.WithCancel(context.Background())
	future, err := h.coord.Submit(ctx, action, 1, nil)
	require.NoError(t, err)

	for i, node := range []string{"N1", "N2", "N3"} {
		h.reportReady("op-4", taskID(i))
		h.waitDispatched(t, node)
		h.reportProgress("op-4", taskID(i), models.TaskInProgress, 50, "deploying", "")
	}

	cancel()

	require.Eventually(t, func() bool {
		return h.sender.count("N1", models.MsgCancelTask) == 1 &&
			h.sender.count("N2", models.MsgCancelTask) == 1 &&
			h.sender.count("N3", models.MsgCancelTask) == 1
	}, time.Second, 2*time.Millisecond)

	h.reportProgress("op-4", "t1", models.TaskCancelled, 50, "aborted", "")
	h.reportProgress("op-4", "t2", models.TaskCancelled, 50, "aborted", "")
	// N3 stays silent; the grace window forces it.

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusCancelled, res.FinalState.Status)
	for _, task := range res.FinalState.Tasks {
		assert.Equal(t, models.TaskCancelled, task.Status)
		require.NotNil(t, task.EndedAt)
	}
}

func TestMixedOutcomes(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-5", models.TaskTypeVerifyConfiguration, "N1", "N2", "N3")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	for i, node := range []string{"N1", "N2", "N3"} {
		h.reportReady("op-5", taskID(i))
		h.waitDispatched(t, node)
	}
	h.reportProgress("op-5", "t1", models.TaskSucceeded, 100, "ok", "")
	h.reportProgress("op-5", "t2", models.TaskFailed, 100, "checksum mismatch", "")
	h.reportProgress("op-5", "t3", models.TaskSucceeded, 100, "ok", "")

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.StatusFailed, res.FinalState.Status)
	assert.Equal(t, 100, res.FinalState.Progress)
	assert.Equal(t, "In progress: 0, Succeeded: 2, Failed/Cancelled: 1", res.FinalState.StatusMessage)
}

func TestFlushTimeoutStillSucceeds(t *testing.T) {
	h := newHarness(defaultTimeouts())
	h.flusher.confirmed = false // barrier reports advisory timeout
	h.flusher.delay = 30 * time.Millisecond
	action := newAction("op-6", models.TaskTypeVerifyConfiguration, "N1", "N2")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	for i, node := range []string{"N1", "N2"} {
		h.reportReady("op-6", taskID(i))
		h.waitDispatched(t, node)
		h.reportProgress("op-6", taskID(i), models.TaskSucceeded, 100, "ok", "")
	}

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusSucceeded, res.FinalState.Status)
}

// ────────────────────────────────────────────────────────────
// Properties
// ────────────────────────────────────────────────────────────

func TestSubmitEmptyTaskList(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-empty", models.TaskTypeVerifyConfiguration)

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusSucceeded, res.FinalState.Status)
}

func TestSubmitDuplicateActionID(t *testing.T) {
	h := newHarness(defaultTimeouts())

	_, err := h.coord.Submit(context.Background(), newAction("op-dup", models.TaskTypeVerifyConfiguration, "N1"), 1, nil)
	require.NoError(t, err)

	_, err = h.coord.Submit(context.Background(), newAction("op-dup", models.TaskTypeVerifyConfiguration, "N2"), 1, nil)
	require.ErrorIs(t, err, ErrDuplicateActionID)
}

func TestTerminalStatusIsSticky(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-sticky", models.TaskTypeVerifyConfiguration, "N1", "N2")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-sticky", "t1")
	h.waitDispatched(t, "N1")
	h.reportProgress("op-sticky", "t1", models.TaskSucceeded, 100, "done", "")

	// late non-terminal update for the terminal task must be dropped
	h.reportProgress("op-sticky", "t1", models.TaskInProgress, 10, "ghost update", "")
	// duplicate terminal must not double-journal
	h.reportProgress("op-sticky", "t1", models.TaskSucceeded, 100, "done", "")

	h.reportReady("op-sticky", "t2")
	h.waitDispatched(t, "N2")
	h.reportProgress("op-sticky", "t2", models.TaskSucceeded, 100, "done", "")

	res, err := future.Wait(context.Background())
	require.NoError(t, err)

	t1 := findTask(res.FinalState, "t1")
	assert.Equal(t, models.TaskSucceeded, t1.Status)
	assert.Equal(t, 100, t1.Progress)
	assert.Equal(t, 1, h.journal.recordsFor("t1"))
}

func TestDuplicateReadinessIsIdempotent(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-idem", models.TaskTypeVerifyConfiguration, "N1")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-idem", "t1")
	h.reportReady("op-idem", "t1")
	h.waitDispatched(t, "N1")

	// dispatched exactly once despite the duplicate report
	require.Never(t, func() bool {
		return h.sender.count("N1", models.MsgAssignSlaveTask) > 1
	}, 100*time.Millisecond, 10*time.Millisecond)

	h.reportProgress("op-idem", "t1", models.TaskSucceeded, 100, "done", "")
	_, err = future.Wait(context.Background())
	require.NoError(t, err)
}

func TestNoLostTasks(t *testing.T) {
	h := newHarness(Timeouts{Readiness: 50 * time.Millisecond, CancellationGrace: 50 * time.Millisecond})
	action := newAction("op-lost", models.TaskTypeVerifyConfiguration, "N1", "N2", "N3")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-lost", "t2")
	h.waitDispatched(t, "N2")
	h.reportProgress("op-lost", "t2", models.TaskFailed, 30, "broken", "")
	// t1 and t3 never answer readiness

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	require.Len(t, res.FinalState.Tasks, 3)
	for _, task := range res.FinalState.Tasks {
		assert.True(t, task.Status.IsTerminal(), "task %s not terminal", task.ID)
		assert.NotNil(t, task.EndedAt, "task %s missing end time", task.ID)
	}
}

func TestSendFailureMarksNotReady(t *testing.T) {
	h := newHarness(defaultTimeouts())
	h.sender.failFor["N2"] = errors.New("not connected")
	action := newAction("op-conn", models.TaskTypeVerifyConfiguration, "N1", "N2")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-conn", "t1")
	h.waitDispatched(t, "N1")
	h.reportProgress("op-conn", "t1", models.TaskSucceeded, 100, "done", "")

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, models.TaskNotReadyForTask, findTask(res.FinalState, "t2").Status)
}

func TestBadResultPayloadStillTerminal(t *testing.T) {
	h := newHarness(defaultTimeouts())
	action := newAction("op-badjson", models.TaskTypeVerifyConfiguration, "N1")

	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	h.reportReady("op-badjson", "t1")
	h.waitDispatched(t, "N1")
	h.reportProgress("op-badjson", "t1", models.TaskSucceeded, 100, "done", `{not json`)

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, findTask(res.FinalState, "t1").Result)
}

func TestSubmitParallel(t *testing.T) {
	h := newHarness(defaultTimeouts())
	a1 := newAction("op-p1", models.TaskTypeVerifyConfiguration, "N1")
	a2 := newAction("op-p2", models.TaskTypeVerifyConfiguration, "N2")

	var mu sync.Mutex
	var lastPercent int
	multi, err := h.coord.SubmitParallel(context.Background(), []*models.NodeAction{a1, a2}, 1,
		func(percent int, _ string) {
			mu.Lock()
			lastPercent = percent
			mu.Unlock()
		})
	require.NoError(t, err)

	h.reportReady("op-p1", "t1")
	h.reportReady("op-p2", "t1")
	h.waitDispatched(t, "N1")
	h.waitDispatched(t, "N2")

	h.reportProgress("op-p1", "t1", models.TaskSucceeded, 100, "ok", "")
	h.reportProgress("op-p2", "t1", models.TaskFailed, 100, "bad", "")

	results, err := multi.Wait(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 100, lastPercent)
}
