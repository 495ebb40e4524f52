package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

// fakeFleet answers the protocol for every assigned task: ready, one
// progress report, then Succeeded with the configured result payload.
type fakeFleet struct {
	mu         sync.Mutex
	nodes      []string
	coord      *coordinator.Coordinator
	router     *logrouter.Router
	resultJSON string
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
		resultJSON := f.resultJSON
		f.mu.Unlock()
		go func() {
			half := 50
			f.coord.HandleProgress(models.ReportTaskProgress{
				ActionID: p.ActionID, TaskID: p.TaskID,
				Status: string(models.TaskInProgress), Percent: &half,
				Timestamp: time.Now().UTC(),
			})
			full := 100
			f.coord.HandleProgress(models.ReportTaskProgress{
				ActionID: p.ActionID, TaskID: p.TaskID,
				Status: string(models.TaskSucceeded), Percent: &full,
				Timestamp: time.Now().UTC(), ResultJSON: resultJSON,
			})
		}()
	case models.MsgRequestLogFlush:
		var p models.RequestLogFlush
		_ = json.Unmarshal(env.Payload, &p)
		go f.router.Confirm(p.ActionID, node)
	}
	return nil
}

type nullStore struct{}

func (nullStore) AppendEntry(context.Context, *journal.Entry) error { return nil }
func (nullStore) CreateActionRecord(context.Context, *models.MasterAction, string) error {
	return nil
}
func (nullStore) FinalizeActionRecord(context.Context, string, models.OperationStatus, map[string]any, time.Time) error {
	return nil
}

func newRuntime(resultJSON string, nodes ...string) (*workflow.Runtime, *fakeFleet) {
	fleet := &fakeFleet{nodes: nodes, resultJSON: resultJSON}
	journalSvc := journal.NewService(nullStore{}, "/var/lib/sitekeeper/journal", "test")
	router := logrouter.New(journalSvc, fleet, 500*time.Millisecond)
	coord := coordinator.New(fleet, router, journalSvc, coordinator.Timeouts{
		Readiness:         2 * time.Second,
		CancellationGrace: 2 * time.Second,
	})
	fleet.coord = coord
	fleet.router = router

	reg := workflow.NewHandlerRegistry()
	Register(reg)
	return workflow.NewRuntime(reg, coord, router, journalSvc, fleet), fleet
}

func startAndWait(t *testing.T, rt *workflow.Runtime, opType models.OperationType, params map[string]string) *models.MasterAction {
	t.Helper()
	action, err := rt.Start(context.Background(), opType, params)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return action.Status().IsTerminal()
	}, 5*time.Second, 5*time.Millisecond)
	rt.Wait()
	return action
}

func TestVerifyConfigurationAllClean(t *testing.T) {
	rt, _ := newRuntime(`{"filesChecked":625,"deviationsFound":0}`, "N1", "N2")

	action := startAndWait(t, rt, models.OpVerifyConfiguration, nil)

	assert.Equal(t, models.StatusSucceeded, action.Status())
	assert.Equal(t, 100, action.Progress())

	result, ok := action.Result().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1250, result["filesChecked"])
	assert.Equal(t, 0, result["deviationsFound"])
	assert.Equal(t, 2, result["nodesChecked"])
}

func TestVerifyConfigurationDeviationsFail(t *testing.T) {
	rt, _ := newRuntime(`{"filesChecked":100,"deviationsFound":3}`, "N1")

	action := startAndWait(t, rt, models.OpVerifyConfiguration, nil)

	assert.Equal(t, models.StatusFailed, action.Status())
	result, ok := action.Result().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, result["deviationsFound"])
}

func TestVerifyConfigurationSingleNodeParameter(t *testing.T) {
	rt, _ := newRuntime(`{"filesChecked":10,"deviationsFound":0}`, "N1", "N2", "N3")

	action := startAndWait(t, rt, models.OpVerifyConfiguration,
		map[string]string{"node": "N2"})

	assert.Equal(t, models.StatusSucceeded, action.Status())
	result, ok := action.Result().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, result["nodesChecked"])
}

func TestTestOrchestrationSmoke(t *testing.T) {
	rt, _ := newRuntime("", "N1", "N2")

	action := startAndWait(t, rt, models.OpTestOrchestration, nil)

	assert.Equal(t, models.StatusSucceeded, action.Status())
	result, ok := action.Result().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, result["sequentialPassed"])
	assert.Equal(t, true, result["parallelPassed"])
}
