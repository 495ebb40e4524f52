package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/auth"
	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/hub"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
	"github.com/sitekeeper/sitekeeper/pkg/workflow"
)

type nullStore struct{}

func (nullStore) AppendEntry(context.Context, *journal.Entry) error { return nil }
func (nullStore) CreateActionRecord(context.Context, *models.MasterAction, string) error {
	return nil
}
func (nullStore) FinalizeActionRecord(context.Context, string, models.OperationStatus, map[string]any, time.Time) error {
	return nil
}

// fakeTransport records envelopes pushed to a registered agent.
type fakeTransport struct {
	mu   sync.Mutex
	sent []models.Envelope
}

func (f *fakeTransport) Send(env models.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, env)
	return nil
}

func (f *fakeTransport) Close(string) {}

func (f *fakeTransport) sentTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.sent))
	for _, env := range f.sent {
		types = append(types, env.Type)
	}
	return types
}

type funcHandler func(ctx context.Context, run *workflow.MasterActionContext) error

func (f funcHandler) Execute(ctx context.Context, run *workflow.MasterActionContext) error {
	return f(ctx, run)
}

type apiHarness struct {
	registry *registry.Registry
	handlers *workflow.HandlerRegistry
	runtime  *workflow.Runtime
	ts       *httptest.Server
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	reg := registry.New(30 * time.Second)
	journalSvc := journal.NewService(nullStore{}, "/var/lib/sitekeeper/journal", "test")
	router := logrouter.New(journalSvc, reg, 500*time.Millisecond)
	coord := coordinator.New(reg, router, journalSvc, coordinator.Timeouts{
		Readiness:         2 * time.Second,
		CancellationGrace: 2 * time.Second,
	})
	handlers := workflow.NewHandlerRegistry()
	runtime := workflow.NewRuntime(handlers, coord, router, journalSvc, reg)
	authSvc := auth.NewService("sitekeeper-master", "sitekeeper-agents", "test-secret", time.Hour, 24*time.Hour)
	agentHub := hub.New(reg, coord, router, authSvc, "test")

	srv := NewServer(nil, nil, runtime, handlers, reg, agentHub)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		runtime.Wait()
	})

	return &apiHarness{registry: reg, handlers: handlers, runtime: runtime, ts: ts}
}

func (h *apiHarness) postJSON(t *testing.T, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(h.ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (h *apiHarness) getJSON(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(h.ts.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// waitForStatus polls the detail endpoint until the operation reaches the
// wanted status.
func (h *apiHarness) waitForStatus(t *testing.T, id, want string) map[string]any {
	t.Helper()
	var last map[string]any
	require.Eventually(t, func() bool {
		resp, body := h.getJSON(t, "/api/v1/operations/"+id)
		if resp.StatusCode != http.StatusOK {
			return false
		}
		last = body
		return body["status"] == want
	}, 5*time.Second, 20*time.Millisecond, "operation %s never reached %s", id, want)
	return last
}

// ────────────────────────────────────────────────────────────────────────────
// Operation lifecycle
// ────────────────────────────────────────────────────────────────────────────

func TestStartOperationUnknownType(t *testing.T) {
	h := newAPIHarness(t)

	resp, _ := h.postJSON(t, "/api/v1/operations", map[string]any{"operation_type": "NoSuchOp"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartOperationMissingType(t *testing.T) {
	h := newAPIHarness(t)

	resp, _ := h.postJSON(t, "/api/v1/operations", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartAndGetOperation(t *testing.T) {
	h := newAPIHarness(t)
	h.handlers.Register("Noop", func() workflow.Handler {
		return funcHandler(func(ctx context.Context, run *workflow.MasterActionContext) error {
			run.SetCompleted(ctx, "nothing to do")
			return nil
		})
	})

	resp, body := h.postJSON(t, "/api/v1/operations", map[string]any{
		"operation_type": "Noop",
		"parameters":     map[string]string{"node": "N1"},
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Noop", body["operation_type"])

	detail := h.waitForStatus(t, id, "Succeeded")
	assert.NotNil(t, detail["ended_at"])
	params, _ := detail["parameters"].(map[string]any)
	assert.Equal(t, "N1", params["node"])
}

func TestGetOperationNotFound(t *testing.T) {
	h := newAPIHarness(t)

	resp, _ := h.getJSON(t, "/api/v1/operations/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCancelOperation(t *testing.T) {
	h := newAPIHarness(t)
	started := make(chan struct{})
	h.handlers.Register("Blocker", func() workflow.Handler {
		return funcHandler(func(ctx context.Context, run *workflow.MasterActionContext) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	})

	_, body := h.postJSON(t, "/api/v1/operations", map[string]any{"operation_type": "Blocker"})
	id := body["id"].(string)

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("handler never started")
	}

	resp, _ := h.postJSON(t, "/api/v1/operations/"+id+"/cancel", nil)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	h.waitForStatus(t, id, "Cancelled")
}

func TestCancelUnknownOperation(t *testing.T) {
	h := newAPIHarness(t)

	resp, _ := h.postJSON(t, "/api/v1/operations/ghost/cancel", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListOperationsStatusFilter(t *testing.T) {
	h := newAPIHarness(t)
	h.handlers.Register("Good", func() workflow.Handler {
		return funcHandler(func(ctx context.Context, run *workflow.MasterActionContext) error {
			run.SetCompleted(ctx, "ok")
			return nil
		})
	})
	h.handlers.Register("Bad", func() workflow.Handler {
		return funcHandler(func(ctx context.Context, run *workflow.MasterActionContext) error {
			return fmt.Errorf("boom")
		})
	})

	_, good := h.postJSON(t, "/api/v1/operations", map[string]any{"operation_type": "Good"})
	_, bad := h.postJSON(t, "/api/v1/operations", map[string]any{"operation_type": "Bad"})
	h.waitForStatus(t, good["id"].(string), "Succeeded")
	h.waitForStatus(t, bad["id"].(string), "Failed")

	resp, body := h.getJSON(t, "/api/v1/operations")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["total"])

	resp, body = h.getJSON(t, "/api/v1/operations?status=Succeeded")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
	ops := body["operations"].([]any)
	require.Len(t, ops, 1)
	assert.Equal(t, good["id"], ops[0].(map[string]any)["id"])
}

func TestOperationTypes(t *testing.T) {
	h := newAPIHarness(t)
	h.handlers.Register("Noop", func() workflow.Handler {
		return funcHandler(func(ctx context.Context, run *workflow.MasterActionContext) error {
			run.SetCompleted(ctx, "ok")
			return nil
		})
	})

	resp, body := h.getJSON(t, "/api/v1/operations/types")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["operation_types"], "Noop")
}

// ────────────────────────────────────────────────────────────────────────────
// Agents
// ────────────────────────────────────────────────────────────────────────────

func TestListAgents(t *testing.T) {
	h := newAPIHarness(t)
	require.NoError(t, h.registry.Register("N1", models.AgentMeta{Version: "1.2.3", OS: "linux"}, &fakeTransport{}))

	resp, body := h.getJSON(t, "/api/v1/agents")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])
	agents := body["agents"].([]any)
	require.Len(t, agents, 1)
	agent := agents[0].(map[string]any)
	assert.Equal(t, "N1", agent["node"])
	assert.Equal(t, "Online", agent["connectivity"])
}

func TestAdjustTimeDelivered(t *testing.T) {
	h := newAPIHarness(t)
	transport := &fakeTransport{}
	require.NoError(t, h.registry.Register("N1", models.AgentMeta{}, transport))

	resp, body := h.postJSON(t, "/api/v1/agents/N1/adjust-time", map[string]any{"force": true})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "N1", body["node"])
	assert.Contains(t, transport.sentTypes(), models.MsgAdjustSystemTime)
}

func TestGeneralCommandDelivered(t *testing.T) {
	h := newAPIHarness(t)
	transport := &fakeTransport{}
	require.NoError(t, h.registry.Register("N1", models.AgentMeta{}, transport))

	resp, _ := h.postJSON(t, "/api/v1/agents/N1/command", map[string]any{
		"command_type": "RestartAgent",
		"timeout_sec":  30,
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Contains(t, transport.sentTypes(), models.MsgGeneralCommand)
}

func TestGeneralCommandRequiresType(t *testing.T) {
	h := newAPIHarness(t)
	require.NoError(t, h.registry.Register("N1", models.AgentMeta{}, &fakeTransport{}))

	resp, _ := h.postJSON(t, "/api/v1/agents/N1/command", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdjustTimeUnknownAgent(t *testing.T) {
	h := newAPIHarness(t)

	resp, _ := h.postJSON(t, "/api/v1/agents/ghost/adjust-time", map[string]any{})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ────────────────────────────────────────────────────────────────────────────
// Health and middleware
// ────────────────────────────────────────────────────────────────────────────

func TestHealthWithoutDatabase(t *testing.T) {
	h := newAPIHarness(t)

	resp, body := h.getJSON(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sitekeeper", body["service"])
	assert.Equal(t, "healthy", body["status"])
	assert.EqualValues(t, 0, body["agents_online"])
}

func TestSecurityHeadersSet(t *testing.T) {
	h := newAPIHarness(t)

	resp, err := http.Get(h.ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
