package journal

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

// memStore collects entries in memory; failErr makes every write fail.
type memStore struct {
	mu      sync.Mutex
	entries []*Entry
	actions map[string]models.OperationStatus
	failErr error
}

func newMemStore() *memStore {
	return &memStore{actions: make(map[string]models.OperationStatus)}
}

func (m *memStore) AppendEntry(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memStore) CreateActionRecord(_ context.Context, action *models.MasterAction, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.actions[action.ID] = action.Status()
	return nil
}

func (m *memStore) FinalizeActionRecord(_ context.Context, actionID string, status models.OperationStatus, _ map[string]any, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.actions[actionID] = status
	return nil
}

func (m *memStore) byKind(kind string) []*Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Entry
	for _, e := range m.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestServiceSequencing(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "/journal", "test")
	ctx := context.Background()

	svc.StageInitiated(ctx, "op-1", 1, "verify", nil)
	svc.LogLine(ctx, "op-1", 1, models.ReportSlaveTaskLog{
		Node: "N1", Level: models.LevelInformation, Message: "hello", Timestamp: time.Now(),
	})
	svc.StageCompleted(ctx, "op-1", 1, "verify", nil)
	// independent action keeps its own counter
	svc.StageInitiated(ctx, "op-2", 1, "deploy", nil)

	require.Len(t, store.entries, 4)
	assert.Equal(t, 1, store.entries[0].Sequence)
	assert.Equal(t, 2, store.entries[1].Sequence)
	assert.Equal(t, 3, store.entries[2].Sequence)
	assert.Equal(t, 1, store.entries[3].Sequence)
	assert.Equal(t, "/journal/op-1", store.entries[0].Stream)
}

func TestServiceNodeTaskResult(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, "/journal", "test")
	ended := time.Now().UTC()

	svc.NodeTaskResult(context.Background(), "op-1", 2, &models.NodeTask{
		ID:       "t1",
		Node:     "N1",
		Status:   models.TaskSucceeded,
		Progress: 100,
		EndedAt:  &ended,
		Result:   map[string]any{"filesChecked": 1250},
	})

	results := store.byKind(KindNodeTaskResult)
	require.Len(t, results, 1)
	assert.Equal(t, "t1", results[0].TaskID)
	assert.Equal(t, "N1", results[0].Node)
	assert.Equal(t, "Succeeded", results[0].Payload["status"])
}

func TestServiceSwallowsStoreErrors(t *testing.T) {
	store := newMemStore()
	store.failErr = errors.New("disk full")
	svc := NewService(store, "/journal", "test")
	ctx := context.Background()

	// None of these may panic or surface the error.
	svc.ActionStarted(ctx, models.NewMasterAction("op-1", models.OpVerifyConfiguration, nil))
	svc.StageInitiated(ctx, "op-1", 1, "verify", nil)
	svc.StageCompleted(ctx, "op-1", 1, "verify", nil)
	svc.ActionCompleted(ctx, "op-1", models.StatusFailed, nil)

	assert.Empty(t, store.entries)
}
