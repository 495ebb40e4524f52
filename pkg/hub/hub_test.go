package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/auth"
	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
)

type nullStore struct{}

func (nullStore) AppendEntry(context.Context, *journal.Entry) error { return nil }
func (nullStore) CreateActionRecord(context.Context, *models.MasterAction, string) error {
	return nil
}
func (nullStore) FinalizeActionRecord(context.Context, string, models.OperationStatus, map[string]any, time.Time) error {
	return nil
}

type hubHarness struct {
	registry *registry.Registry
	coord    *coordinator.Coordinator
	router   *logrouter.Router
	auth     *auth.Service
	hub      *Hub
	server   *httptest.Server
}

func newHubHarness(t *testing.T) *hubHarness {
	t.Helper()
	h := &hubHarness{}
	h.registry = registry.New(30 * time.Second)
	journalSvc := journal.NewService(nullStore{}, "/var/lib/sitekeeper/journal", "test")
	h.router = logrouter.New(journalSvc, h.registry, 2*time.Second)
	h.coord = coordinator.New(h.registry, h.router, journalSvc, coordinator.Timeouts{
		Readiness:         2 * time.Second,
		CancellationGrace: 2 * time.Second,
	})
	h.auth = auth.NewService("sitekeeper-master", "sitekeeper-agents", "hub-test-secret",
		15*time.Minute, 24*time.Hour)
	h.hub = New(h.registry, h.coord, h.router, h.auth, "test")

	e := echo.New()
	h.hub.RegisterRoutes(e)
	h.server = httptest.NewServer(e)
	t.Cleanup(h.server.Close)
	t.Cleanup(h.registry.Stop)
	return h
}

func (h *hubHarness) wsURL() string {
	return "ws" + strings.TrimPrefix(h.server.URL, "http") + "/agent/ws"
}

// agentConn is a test agent on the client side of the websocket.
type agentConn struct {
	t    *testing.T
	conn *websocket.Conn
}

func dialAgent(t *testing.T, h *hubHarness, header http.Header) *agentConn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, h.wsURL(), &websocket.DialOptions{HTTPHeader: header})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "test done") })
	return &agentConn{t: t, conn: conn}
}

func (a *agentConn) send(msgType string, payload any) {
	a.t.Helper()
	env, err := models.NewEnvelope(msgType, payload)
	require.NoError(a.t, err)
	data, err := json.Marshal(env)
	require.NoError(a.t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(a.t, a.conn.Write(ctx, websocket.MessageText, data))
}

func (a *agentConn) recv() models.Envelope {
	a.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, data, err := a.conn.Read(ctx)
	require.NoError(a.t, err)
	var env models.Envelope
	require.NoError(a.t, json.Unmarshal(data, &env))
	return env
}

func (a *agentConn) register(name string) models.RegisterSlaveAck {
	a.t.Helper()
	a.send(models.MsgRegisterSlave, models.RegisterSlave{
		Name:               name,
		Version:            "1.4.2",
		OS:                 "linux",
		MaxConcurrentTasks: 4,
		Hostname:           name + ".internal",
	})

	env := a.recv()
	require.Equal(a.t, models.MsgRegisterSlaveAck, env.Type)
	var ack models.RegisterSlaveAck
	require.NoError(a.t, json.Unmarshal(env.Payload, &ack))

	// master state push follows the ack
	state := a.recv()
	require.Equal(a.t, models.MsgUpdateMasterState, state.Type)
	return ack
}

func TestRegisterHandshake(t *testing.T) {
	h := newHubHarness(t)
	agent := dialAgent(t, h, nil)

	ack := agent.register("web-01")
	assert.Equal(t, "web-01", ack.Node)
	assert.NotEmpty(t, ack.AccessToken)
	assert.NotEmpty(t, ack.RefreshToken)
	assert.Equal(t, "test", ack.EnvironmentName)

	require.Eventually(t, func() bool {
		state, ok := h.registry.Lookup("web-01")
		return ok && state.Connectivity == models.AgentOnline
	}, time.Second, 5*time.Millisecond)

	state, _ := h.registry.Lookup("web-01")
	assert.Equal(t, "linux", state.Meta.OS)
	assert.Equal(t, 4, state.Meta.MaxConcurrentTasks)
}

func TestFullTaskProtocolOverWebsocket(t *testing.T) {
	h := newHubHarness(t)
	agent := dialAgent(t, h, nil)
	agent.register("web-01")

	action := &models.NodeAction{
		ID:         "na-1",
		ActionName: "verify",
		TaskType:   models.TaskTypeVerifyConfiguration,
		Status:     models.StatusPending,
		Tasks: []*models.NodeTask{
			{ID: "t1", Node: "web-01", TaskType: models.TaskTypeVerifyConfiguration},
		},
	}
	future, err := h.coord.Submit(context.Background(), action, 1, nil)
	require.NoError(t, err)

	// readiness check arrives
	env := agent.recv()
	require.Equal(t, models.MsgPrepareForTask, env.Type)
	var prep models.PrepareForTask
	require.NoError(t, json.Unmarshal(env.Payload, &prep))
	assert.Equal(t, "na-1", prep.ActionID)

	agent.send(models.MsgReportTaskReadiness, models.ReportTaskReadiness{
		ActionID: prep.ActionID, TaskID: prep.TaskID, Ready: true,
	})

	// dispatch arrives
	env = agent.recv()
	require.Equal(t, models.MsgAssignSlaveTask, env.Type)

	percent := 100
	agent.send(models.MsgReportTaskProgress, models.ReportTaskProgress{
		ActionID:   prep.ActionID,
		TaskID:     prep.TaskID,
		Status:     string(models.TaskSucceeded),
		Percent:    &percent,
		Timestamp:  time.Now().UTC(),
		ResultJSON: `{"filesChecked":42}`,
	})

	// flush barrier arrives
	env = agent.recv()
	require.Equal(t, models.MsgRequestLogFlush, env.Type)
	var flush models.RequestLogFlush
	require.NoError(t, json.Unmarshal(env.Payload, &flush))
	agent.send(models.MsgConfirmLogFlushForTask, models.ConfirmLogFlushForTask{
		ActionID: flush.ActionID, Node: "web-01",
	})

	res, err := future.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.StatusSucceeded, res.FinalState.Status)
	assert.Equal(t, float64(42), res.FinalState.Tasks[0].Result["filesChecked"])
}

func TestHeartbeatKeepsAgentOnline(t *testing.T) {
	h := newHubHarness(t)
	agent := dialAgent(t, h, nil)
	agent.register("db-01")

	agent.send(models.MsgSendHeartbeat, models.HeartbeatSnapshot{
		Timestamp:   time.Now().UTC(),
		ActiveTasks: 2,
	})

	require.Eventually(t, func() bool {
		state, ok := h.registry.Lookup("db-01")
		return ok && !state.LastHeartbeat.IsZero()
	}, time.Second, 5*time.Millisecond)
}

func TestReconnectWithAccessToken(t *testing.T) {
	h := newHubHarness(t)

	first := dialAgent(t, h, nil)
	ack := first.register("web-01")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+ack.AccessToken)
	second := dialAgent(t, h, header)
	second.register("web-01")

	state, ok := h.registry.Lookup("web-01")
	require.True(t, ok)
	assert.Equal(t, models.AgentOnline, state.Connectivity)
}

func TestTokenNodeMismatchRejected(t *testing.T) {
	h := newHubHarness(t)

	first := dialAgent(t, h, nil)
	ack := first.register("web-01")

	header := http.Header{}
	header.Set("Authorization", "Bearer "+ack.AccessToken)
	imposter := dialAgent(t, h, header)
	imposter.send(models.MsgRegisterSlave, models.RegisterSlave{Name: "web-02"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _, err := imposter.conn.Read(ctx)
	require.Error(t, err) // closed by the hub
}

func TestInvalidAccessTokenRejectedBeforeUpgrade(t *testing.T) {
	h := newHubHarness(t)

	header := http.Header{}
	header.Set("Authorization", "Bearer garbage.token.here")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, resp, err := websocket.Dial(ctx, h.wsURL(), &websocket.DialOptions{HTTPHeader: header})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFirstMessageMustBeRegister(t *testing.T) {
	h := newHubHarness(t)
	agent := dialAgent(t, h, nil)

	agent.send(models.MsgSendHeartbeat, models.HeartbeatSnapshot{Timestamp: time.Now().UTC()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _, err := agent.conn.Read(ctx)
	require.Error(t, err)
}

func TestRefreshEndpoint(t *testing.T) {
	h := newHubHarness(t)
	agent := dialAgent(t, h, nil)
	ack := agent.register("web-01")

	body := strings.NewReader(`{"refresh_token":"` + ack.RefreshToken + `"}`)
	resp, err := http.Post(h.server.URL+"/agent/token/refresh", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair auth.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))
	node, err := h.auth.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "web-01", node)
}

func TestRefreshEndpointRejectsGarbage(t *testing.T) {
	h := newHubHarness(t)

	body := strings.NewReader(`{"refresh_token":"garbage"}`)
	resp, err := http.Post(h.server.URL+"/agent/token/refresh", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
