// Package registry tracks connected agents: their metadata, connectivity,
// heartbeats and transport handles. It is the only component that mutates
// AgentState; everyone else reads snapshots. Connectivity transitions are
// published on an event channel consumed by the node-action coordinator.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

var (
	// ErrNotConnected is returned by Send when the node has no live transport.
	ErrNotConnected = errors.New("agent not connected")

	// ErrNotRegistered is returned for operations on unknown nodes.
	ErrNotRegistered = errors.New("agent not registered")
)

// Transport is the outbound side of one agent connection. Implementations
// must deliver messages in Send order (single writer per connection).
type Transport interface {
	Send(env models.Envelope) error
	Close(reason string)
}

// ConnectivityEvent is published whenever an agent's connectivity changes.
type ConnectivityEvent struct {
	Node  string
	State models.ConnectivityState
	At    time.Time
}

// eventBuffer bounds the connectivity event channel. The coordinator drains
// it continuously; overflow events are dropped with a warning rather than
// blocking registry internals.
const eventBuffer = 256

type agentEntry struct {
	state     models.AgentState
	transport Transport
}

// Registry is the master's directory of agents.
type Registry struct {
	offlineThreshold time.Duration
	sweepInterval    time.Duration

	mu     sync.RWMutex
	agents map[string]*agentEntry

	events chan ConnectivityEvent

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a registry. offlineThreshold is the heartbeat age past which
// the sweeper marks an agent Offline; the sweeper runs at half that period.
func New(offlineThreshold time.Duration) *Registry {
	sweep := offlineThreshold / 2
	if sweep < time.Second {
		sweep = time.Second
	}
	return &Registry{
		offlineThreshold: offlineThreshold,
		sweepInterval:    sweep,
		agents:           make(map[string]*agentEntry),
		events:           make(chan ConnectivityEvent, eventBuffer),
		stopCh:           make(chan struct{}),
	}
}

// Events returns the connectivity event channel. There is a single logical
// consumer (the coordinator's health observer).
func (r *Registry) Events() <-chan ConnectivityEvent {
	return r.events
}

// Register upserts an agent and marks it Online. Idempotent: a re-register
// replaces the transport handle (the old one is closed) and refreshes meta.
func (r *Registry) Register(node string, meta models.AgentMeta, t Transport) error {
	if node == "" {
		return fmt.Errorf("node name is required")
	}

	now := time.Now().UTC()
	r.mu.Lock()
	entry, exists := r.agents[node]
	var stale Transport
	if exists {
		if entry.transport != nil && entry.transport != t {
			stale = entry.transport
		}
		entry.transport = t
		entry.state.Meta = meta
		entry.state.Connectivity = models.AgentOnline
		entry.state.LastHeartbeat = now
	} else {
		r.agents[node] = &agentEntry{
			state: models.AgentState{
				Node:          node,
				Connectivity:  models.AgentOnline,
				Meta:          meta,
				LastHeartbeat: now,
				RegisteredAt:  now,
			},
			transport: t,
		}
	}
	r.mu.Unlock()

	if stale != nil {
		stale.Close("superseded by new registration")
	}

	slog.Info("Agent registered", "node", node, "version", meta.Version, "reregister", exists)
	r.publish(ConnectivityEvent{Node: node, State: models.AgentOnline, At: now})
	return nil
}

// Heartbeat refreshes an agent's last-seen time and marks it back Online if
// the sweeper had aged it out.
func (r *Registry) Heartbeat(node string, hb models.HeartbeatSnapshot) error {
	now := time.Now().UTC()

	r.mu.Lock()
	entry, ok := r.agents[node]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("heartbeat from %s: %w", node, ErrNotRegistered)
	}
	entry.state.LastHeartbeat = now
	revived := entry.state.Connectivity != models.AgentOnline && entry.transport != nil
	if revived {
		entry.state.Connectivity = models.AgentOnline
	}
	r.mu.Unlock()

	if revived {
		r.publish(ConnectivityEvent{Node: node, State: models.AgentOnline, At: now})
	}
	return nil
}

// ReportResources stores the latest resource usage snapshot.
func (r *Registry) ReportResources(node string, usage models.ResourceUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.agents[node]
	if !ok {
		return fmt.Errorf("resource report from %s: %w", node, ErrNotRegistered)
	}
	entry.state.Resources = &usage
	return nil
}

// Send delivers a message to one node. Messages to the same node arrive in
// Send order; cross-node ordering is unspecified.
func (r *Registry) Send(node string, env models.Envelope) error {
	r.mu.RLock()
	entry, ok := r.agents[node]
	var t Transport
	var connected bool
	if ok {
		t = entry.transport
		connected = entry.state.Connectivity == models.AgentOnline && t != nil
	}
	r.mu.RUnlock()

	if !connected {
		return fmt.Errorf("send %s to %s: %w", env.Type, node, ErrNotConnected)
	}
	if err := t.Send(env); err != nil {
		r.MarkUnreachable(node, err)
		return fmt.Errorf("send %s to %s: %w", env.Type, node, err)
	}
	return nil
}

// Broadcast sends a message to every online agent. Per-node failures are
// logged and skipped.
func (r *Registry) Broadcast(env models.Envelope) {
	for _, node := range r.OnlineNodes() {
		if err := r.Send(node, env); err != nil {
			slog.Warn("Broadcast delivery failed", "node", node, "type", env.Type, "error", err)
		}
	}
}

// Lookup returns a snapshot of one agent's state.
func (r *Registry) Lookup(node string) (models.AgentState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.agents[node]
	if !ok {
		return models.AgentState{}, false
	}
	return entry.state, true
}

// OnlineNodes returns the names of all currently online agents.
func (r *Registry) OnlineNodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	nodes := make([]string, 0, len(r.agents))
	for name, entry := range r.agents {
		if entry.state.Connectivity == models.AgentOnline {
			nodes = append(nodes, name)
		}
	}
	return nodes
}

// Snapshot returns the state of every known agent.
func (r *Registry) Snapshot() []models.AgentState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.AgentState, 0, len(r.agents))
	for _, entry := range r.agents {
		out = append(out, entry.state)
	}
	return out
}

// MarkUnreachable transitions a node to Unreachable after a transport error
// and drops the dead transport handle.
func (r *Registry) MarkUnreachable(node string, cause error) {
	now := time.Now().UTC()

	r.mu.Lock()
	entry, ok := r.agents[node]
	if !ok || entry.state.Connectivity == models.AgentUnreachable {
		r.mu.Unlock()
		return
	}
	entry.state.Connectivity = models.AgentUnreachable
	entry.transport = nil
	r.mu.Unlock()

	slog.Warn("Agent unreachable", "node", node, "error", cause)
	r.publish(ConnectivityEvent{Node: node, State: models.AgentUnreachable, At: now})
}

// Disconnect records a transport closure (graceful or not) for a node.
func (r *Registry) Disconnect(node string, reason string) {
	now := time.Now().UTC()

	r.mu.Lock()
	entry, ok := r.agents[node]
	if !ok || entry.state.Connectivity == models.AgentOffline {
		r.mu.Unlock()
		return
	}
	entry.state.Connectivity = models.AgentOffline
	entry.transport = nil
	r.mu.Unlock()

	slog.Info("Agent disconnected", "node", node, "reason", reason)
	r.publish(ConnectivityEvent{Node: node, State: models.AgentOffline, At: now})
}

// Start launches the background heartbeat sweeper.
func (r *Registry) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
}

// Stop terminates the sweeper. Safe to call multiple times.
func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// sweep ages out agents whose heartbeat is older than the offline threshold.
func (r *Registry) sweep() {
	now := time.Now().UTC()
	var aged []string

	r.mu.Lock()
	for name, entry := range r.agents {
		if entry.state.Connectivity != models.AgentOnline {
			continue
		}
		if now.Sub(entry.state.LastHeartbeat) > r.offlineThreshold {
			entry.state.Connectivity = models.AgentOffline
			aged = append(aged, name)
		}
	}
	r.mu.Unlock()

	for _, node := range aged {
		slog.Warn("Agent heartbeat lapsed, marking offline",
			"node", node, "threshold", r.offlineThreshold)
		r.publish(ConnectivityEvent{Node: node, State: models.AgentOffline, At: now})
	}
}

// publish emits a connectivity event without blocking registry internals.
func (r *Registry) publish(evt ConnectivityEvent) {
	select {
	case r.events <- evt:
	default:
		slog.Warn("Connectivity event channel full, dropping event",
			"node", evt.Node, "state", evt.State)
	}
}
