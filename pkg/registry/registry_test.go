package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// fakeTransport records sent envelopes; failErr makes Send fail.
type fakeTransport struct {
	mu      sync.Mutex
	sent    []models.Envelope
	closed  bool
	failErr error
}

func (f *fakeTransport) Send(env models.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, env)
	return nil
}

func (f *fakeTransport) Close(string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeTransport) sentTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.sent))
	for i, e := range f.sent {
		types[i] = e.Type
	}
	return types
}

func drainEvents(r *Registry) []ConnectivityEvent {
	var out []ConnectivityEvent
	for {
		select {
		case evt := <-r.Events():
			out = append(out, evt)
		default:
			return out
		}
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := New(15 * time.Second)
	t1 := &fakeTransport{}
	t2 := &fakeTransport{}

	require.NoError(t, r.Register("N1", models.AgentMeta{Version: "1.0"}, t1))
	require.NoError(t, r.Register("N1", models.AgentMeta{Version: "1.1"}, t2))

	state, ok := r.Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, models.AgentOnline, state.Connectivity)
	assert.Equal(t, "1.1", state.Meta.Version)
	assert.True(t, t1.closed, "stale transport should be closed on re-register")

	events := drainEvents(r)
	require.Len(t, events, 2)
	assert.Equal(t, models.AgentOnline, events[0].State)
}

func TestSendRequiresLiveTransport(t *testing.T) {
	r := New(15 * time.Second)

	env, err := models.NewEnvelope(models.MsgPrepareForTask, models.PrepareForTask{ActionID: "a", TaskID: "t"})
	require.NoError(t, err)

	t.Run("unknown node", func(t *testing.T) {
		err := r.Send("ghost", env)
		require.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("ordered delivery to one node", func(t *testing.T) {
		ft := &fakeTransport{}
		require.NoError(t, r.Register("N1", models.AgentMeta{}, ft))

		for _, typ := range []string{models.MsgPrepareForTask, models.MsgAssignSlaveTask, models.MsgCancelTask} {
			e, err := models.NewEnvelope(typ, struct{}{})
			require.NoError(t, err)
			require.NoError(t, r.Send("N1", e))
		}
		assert.Equal(t, []string{models.MsgPrepareForTask, models.MsgAssignSlaveTask, models.MsgCancelTask}, ft.sentTypes())
	})

	t.Run("transport error marks unreachable", func(t *testing.T) {
		ft := &fakeTransport{failErr: errors.New("broken pipe")}
		require.NoError(t, r.Register("N2", models.AgentMeta{}, ft))
		drainEvents(r)

		err := r.Send("N2", env)
		require.Error(t, err)

		state, _ := r.Lookup("N2")
		assert.Equal(t, models.AgentUnreachable, state.Connectivity)

		events := drainEvents(r)
		require.Len(t, events, 1)
		assert.Equal(t, models.AgentUnreachable, events[0].State)

		// subsequent sends fail fast
		require.ErrorIs(t, r.Send("N2", env), ErrNotConnected)
	})
}

func TestHeartbeatRevivesAgent(t *testing.T) {
	r := New(15 * time.Second)
	ft := &fakeTransport{}
	require.NoError(t, r.Register("N1", models.AgentMeta{}, ft))

	require.Error(t, r.Heartbeat("ghost", models.HeartbeatSnapshot{}))
	require.NoError(t, r.Heartbeat("N1", models.HeartbeatSnapshot{Node: "N1"}))
}

func TestSweeperMarksOffline(t *testing.T) {
	r := New(50 * time.Millisecond)
	r.sweepInterval = 10 * time.Millisecond
	ft := &fakeTransport{}
	require.NoError(t, r.Register("N1", models.AgentMeta{}, ft))
	drainEvents(r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	require.Eventually(t, func() bool {
		state, _ := r.Lookup("N1")
		return state.Connectivity == models.AgentOffline
	}, time.Second, 5*time.Millisecond)

	events := drainEvents(r)
	require.NotEmpty(t, events)
	assert.Equal(t, models.AgentOffline, events[len(events)-1].State)

	// heartbeat while a transport is still held brings it back online
	require.NoError(t, r.Heartbeat("N1", models.HeartbeatSnapshot{Node: "N1"}))
	state, _ := r.Lookup("N1")
	assert.Equal(t, models.AgentOnline, state.Connectivity)
}

func TestOnlineNodesAndBroadcast(t *testing.T) {
	r := New(15 * time.Second)
	t1 := &fakeTransport{}
	t2 := &fakeTransport{}
	require.NoError(t, r.Register("N1", models.AgentMeta{}, t1))
	require.NoError(t, r.Register("N2", models.AgentMeta{}, t2))
	r.Disconnect("N2", "test")

	assert.Equal(t, []string{"N1"}, r.OnlineNodes())

	env, err := models.NewEnvelope(models.MsgUpdateMasterState, models.UpdateMasterState{MasterVersion: "1.0"})
	require.NoError(t, err)
	r.Broadcast(env)

	assert.Len(t, t1.sentTypes(), 1)
	assert.Empty(t, t2.sentTypes())
}
