// Package hub hosts the websocket endpoint agents connect to. It upgrades
// connections, authenticates them, registers the transport with the agent
// registry, and forwards every inbound message to the component that owns it:
// readiness/progress to the coordinator, log entries and flush confirmations
// to the log router, heartbeats and resource reports to the registry.
package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/sitekeeper/sitekeeper/pkg/auth"
	"github.com/sitekeeper/sitekeeper/pkg/coordinator"
	"github.com/sitekeeper/sitekeeper/pkg/logrouter"
	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/pkg/registry"
	"github.com/sitekeeper/sitekeeper/pkg/version"
)

const (
	// registerTimeout bounds how long a fresh connection may take to send
	// its RegisterSlave message.
	registerTimeout = 10 * time.Second

	// writeTimeout bounds each outbound websocket write.
	writeTimeout = 10 * time.Second
)

// Hub is the agent-facing facade.
type Hub struct {
	registry *registry.Registry
	coord    *coordinator.Coordinator
	router   *logrouter.Router
	auth     *auth.Service
	envName  string
}

// New creates the hub over the given components.
func New(reg *registry.Registry, coord *coordinator.Coordinator, router *logrouter.Router, authSvc *auth.Service, envName string) *Hub {
	return &Hub{
		registry: reg,
		coord:    coord,
		router:   router,
		auth:     authSvc,
		envName:  envName,
	}
}

// RegisterRoutes mounts the agent endpoints on the echo instance.
func (h *Hub) RegisterRoutes(e *echo.Echo) {
	e.GET("/agent/ws", h.connectHandler)
	e.POST("/agent/token/refresh", h.refreshHandler)
}

// connectHandler upgrades the connection and serves it until it closes.
// A reconnecting agent presents its access token; a first-time agent connects
// bare and is authenticated by the RegisterSlave exchange.
func (h *Hub) connectHandler(c *echo.Context) error {
	authenticatedNode := ""
	if token := bearerToken(c.Request()); token != "" {
		node, err := h.auth.ValidateAccess(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
		}
		authenticatedNode = node
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	h.serve(c.Request().Context(), conn, authenticatedNode)
	return nil
}

// refreshHandler exchanges a refresh token for a fresh token pair.
func (h *Hub) refreshHandler(c *echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh_token is required")
	}

	pair, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}
	return c.JSON(http.StatusOK, pair)
}

// serve runs the connection: registration handshake, then the read loop.
// Blocks until the websocket closes.
func (h *Hub) serve(ctx context.Context, conn *websocket.Conn, authenticatedNode string) {
	node, transport, ok := h.handshake(ctx, conn, authenticatedNode)
	if !ok {
		return
	}
	log := slog.With("node", node)
	log.Info("Agent connected")

	defer func() {
		transport.Close("connection closed")
		h.registry.MarkUnreachable(node, ErrTransportClosed)
		log.Info("Agent disconnected")
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			log.Warn("Invalid agent message", "error", err)
			continue
		}
		h.dispatch(ctx, node, env)
	}
}

// handshake reads the RegisterSlave message, registers the agent and answers
// with the token pair. A pre-authenticated reconnect must register under the
// node its token was issued to.
func (h *Hub) handshake(ctx context.Context, conn *websocket.Conn, authenticatedNode string) (string, *agentTransport, bool) {
	readCtx, cancel := context.WithTimeout(ctx, registerTimeout)
	defer cancel()

	_, data, err := conn.Read(readCtx)
	if err != nil {
		_ = conn.Close(websocket.StatusPolicyViolation, "registration expected")
		return "", nil, false
	}

	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Type != models.MsgRegisterSlave {
		_ = conn.Close(websocket.StatusPolicyViolation, "first message must be RegisterSlave")
		return "", nil, false
	}

	var reg models.RegisterSlave
	if err := json.Unmarshal(env.Payload, &reg); err != nil || reg.Name == "" {
		_ = conn.Close(websocket.StatusPolicyViolation, "invalid registration payload")
		return "", nil, false
	}
	if authenticatedNode != "" && authenticatedNode != reg.Name {
		slog.Warn("Agent token/name mismatch",
			"token_node", authenticatedNode, "registered_name", reg.Name)
		_ = conn.Close(websocket.StatusPolicyViolation, "token issued to a different node")
		return "", nil, false
	}

	transport := newAgentTransport(reg.Name, conn, writeTimeout)
	meta := models.AgentMeta{
		Version:            reg.Version,
		OS:                 reg.OS,
		MaxConcurrentTasks: reg.MaxConcurrentTasks,
		Hostname:           reg.Hostname,
	}
	if err := h.registry.Register(reg.Name, meta, transport); err != nil {
		slog.Error("Agent registration failed", "node", reg.Name, "error", err)
		transport.Close("registration failed")
		return "", nil, false
	}

	if err := h.sendRegisterAck(reg.Name, transport); err != nil {
		slog.Error("Failed to acknowledge registration", "node", reg.Name, "error", err)
		h.registry.MarkUnreachable(reg.Name, err)
		return "", nil, false
	}
	h.pushMasterState(transport)

	return reg.Name, transport, true
}

func (h *Hub) sendRegisterAck(node string, transport *agentTransport) error {
	pair, err := h.auth.IssuePair(node)
	if err != nil {
		return err
	}
	env, err := models.NewEnvelope(models.MsgRegisterSlaveAck, models.RegisterSlaveAck{
		Node:            node,
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		ExpiresAt:       pair.ExpiresAt,
		MasterTimestamp: time.Now().UTC(),
		MasterVersion:   version.Full(),
		EnvironmentName: h.envName,
	})
	if err != nil {
		return err
	}
	return transport.Send(env)
}

// pushMasterState sends the master's current context to one agent.
func (h *Hub) pushMasterState(transport *agentTransport) {
	env, err := models.NewEnvelope(models.MsgUpdateMasterState, models.UpdateMasterState{
		MasterTimestamp:     time.Now().UTC(),
		ExpectedAgentStatus: "Online",
		MasterVersion:       version.Full(),
	})
	if err != nil {
		return
	}
	if err := transport.Send(env); err != nil {
		slog.Warn("Failed to push master state", "node", transport.node, "error", err)
	}
}

// BroadcastMasterState pushes the master's context to every connected agent.
// Called after registry changes and on version rollover.
func (h *Hub) BroadcastMasterState() {
	env, err := models.NewEnvelope(models.MsgUpdateMasterState, models.UpdateMasterState{
		MasterTimestamp:     time.Now().UTC(),
		ExpectedAgentStatus: "Online",
		MasterVersion:       version.Full(),
	})
	if err != nil {
		return
	}
	h.registry.Broadcast(env)
}

// AdjustSystemTime pushes the master's authoritative clock to one agent.
func (h *Hub) AdjustSystemTime(node string, force bool) error {
	env, err := models.NewEnvelope(models.MsgAdjustSystemTime, models.AdjustSystemTime{
		AuthoritativeUTC: time.Now().UTC(),
		ForceAdjustment:  force,
	})
	if err != nil {
		return err
	}
	return h.registry.Send(node, env)
}

// SendGeneralCommand issues an out-of-band command to one agent.
func (h *Hub) SendGeneralCommand(node, commandType, payload string, timeoutSec int) error {
	env, err := models.NewEnvelope(models.MsgGeneralCommand, models.GeneralCommand{
		CommandType: commandType,
		Payload:     payload,
		TimeoutSec:  timeoutSec,
	})
	if err != nil {
		return err
	}
	return h.registry.Send(node, env)
}

// dispatch routes one inbound envelope. The node identity comes from the
// connection, never from the payload, so agents cannot impersonate each
// other.
func (h *Hub) dispatch(ctx context.Context, node string, env models.Envelope) {
	switch env.Type {
	case models.MsgSendHeartbeat:
		var p models.HeartbeatSnapshot
		if !h.decode(node, env, &p) {
			return
		}
		p.Node = node
		if err := h.registry.Heartbeat(node, p); err != nil {
			slog.Warn("Heartbeat for unregistered node", "node", node, "error", err)
		}

	case models.MsgReportTaskReadiness:
		var p models.ReportTaskReadiness
		if !h.decode(node, env, &p) {
			return
		}
		if p.ActionID == "" || p.TaskID == "" {
			slog.Warn("Readiness report missing correlation ids", "node", node)
			return
		}
		h.coord.HandleReadiness(p)

	case models.MsgReportTaskProgress:
		var p models.ReportTaskProgress
		if !h.decode(node, env, &p) {
			return
		}
		if p.ActionID == "" || p.TaskID == "" {
			slog.Warn("Progress report missing correlation ids", "node", node)
			return
		}
		if p.Timestamp.IsZero() {
			p.Timestamp = time.Now().UTC()
		}
		h.coord.HandleProgress(p)

	case models.MsgReportSlaveTaskLog:
		var p models.ReportSlaveTaskLog
		if !h.decode(node, env, &p) {
			return
		}
		p.Node = node
		if p.Timestamp.IsZero() {
			p.Timestamp = time.Now().UTC()
		}
		h.router.Ingest(ctx, p)

	case models.MsgReportResourceUsage:
		var p models.ResourceUsage
		if !h.decode(node, env, &p) {
			return
		}
		p.Node = node
		if err := h.registry.ReportResources(node, p); err != nil {
			slog.Warn("Resource report for unregistered node", "node", node, "error", err)
		}

	case models.MsgConfirmLogFlushForTask:
		var p models.ConfirmLogFlushForTask
		if !h.decode(node, env, &p) {
			return
		}
		h.router.Confirm(p.ActionID, node)

	default:
		slog.Warn("Unknown agent message type", "node", node, "type", env.Type)
	}
}

func (h *Hub) decode(node string, env models.Envelope, v any) bool {
	if err := json.Unmarshal(env.Payload, v); err != nil {
		slog.Warn("Malformed agent payload", "node", node, "type", env.Type, "error", err)
		return false
	}
	return true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}
