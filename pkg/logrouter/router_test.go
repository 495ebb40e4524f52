package logrouter

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

type journalSpy struct {
	mu      sync.Mutex
	lines   []models.ReportSlaveTaskLog
	streams []string
	stage   []int
}

func (j *journalSpy) LogLine(_ context.Context, actionID string, stageIndex int, entry models.ReportSlaveTaskLog) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, entry)
	j.streams = append(j.streams, actionID)
	j.stage = append(j.stage, stageIndex)
}

type senderSpy struct {
	mu      sync.Mutex
	sent    map[string][]string // node → message types
	failFor map[string]error
}

func newSenderSpy() *senderSpy {
	return &senderSpy{sent: make(map[string][]string), failFor: make(map[string]error)}
}

func (s *senderSpy) Send(node string, env models.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failFor[node]; err != nil {
		return err
	}
	s.sent[node] = append(s.sent[node], env.Type)
	return nil
}

func entry(actionID, node, msg string) models.ReportSlaveTaskLog {
	return models.ReportSlaveTaskLog{
		ActionID:  actionID,
		TaskID:    "t1",
		Node:      node,
		Level:     models.LevelInformation,
		Message:   msg,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestIngestRouting(t *testing.T) {
	j := &journalSpy{}
	r := New(j, newSenderSpy(), time.Second)

	var lines []string
	r.RegisterAction("na-1", "op-1", func(l string) { lines = append(lines, l) }, func() int { return 2 })

	r.Ingest(context.Background(), entry("na-1", "N1", "checking files"))

	require.Len(t, j.lines, 1)
	assert.Equal(t, []string{"op-1"}, j.streams)
	assert.Equal(t, []int{2}, j.stage)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[Information] N1 task=t1: checking files")
}

func TestIngestUnknownActionDropped(t *testing.T) {
	j := &journalSpy{}
	r := New(j, newSenderSpy(), time.Second)

	r.Ingest(context.Background(), entry("ghost", "N1", "lost"))
	assert.Empty(t, j.lines)
}

func TestIngestAfterUnregisterDropped(t *testing.T) {
	j := &journalSpy{}
	r := New(j, newSenderSpy(), time.Second)
	r.RegisterAction("na-1", "op-1", func(string) {}, func() int { return 1 })
	r.UnregisterAction("na-1")

	r.Ingest(context.Background(), entry("na-1", "N1", "late"))
	assert.Empty(t, j.lines)
}

func TestFlushBarrierAllConfirm(t *testing.T) {
	s := newSenderSpy()
	r := New(&journalSpy{}, s, time.Second)

	require.NoError(t, r.RequestFlush("op-1", []string{"N1", "N2"}))
	assert.Equal(t, []string{models.MsgRequestLogFlush}, s.sent["N1"])
	assert.Equal(t, []string{models.MsgRequestLogFlush}, s.sent["N2"])

	go func() {
		r.Confirm("op-1", "N1")
		r.Confirm("op-1", "N2")
	}()

	confirmed, err := r.WaitForFlush(context.Background(), "op-1")
	require.NoError(t, err)
	assert.True(t, confirmed)

	// single-use: the wait is consumed
	_, err = r.WaitForFlush(context.Background(), "op-1")
	require.ErrorIs(t, err, ErrNoFlush)
}

func TestFlushBarrierTimeoutIsAdvisory(t *testing.T) {
	s := newSenderSpy()
	r := New(&journalSpy{}, s, 50*time.Millisecond)

	require.NoError(t, r.RequestFlush("op-1", []string{"N1", "N2"}))
	r.Confirm("op-1", "N1")
	// N2 never confirms

	start := time.Now()
	confirmed, err := r.WaitForFlush(context.Background(), "op-1")
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestFlushBarrierUnreachableNodesAccounted(t *testing.T) {
	s := newSenderSpy()
	s.failFor["N2"] = errors.New("not connected")
	r := New(&journalSpy{}, s, time.Second)

	require.NoError(t, r.RequestFlush("op-1", []string{"N1", "N2"}))
	r.Confirm("op-1", "N1")

	confirmed, err := r.WaitForFlush(context.Background(), "op-1")
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestFlushBarrierSingleUse(t *testing.T) {
	r := New(&journalSpy{}, newSenderSpy(), time.Second)
	require.NoError(t, r.RequestFlush("op-1", []string{"N1"}))
	require.ErrorIs(t, r.RequestFlush("op-1", []string{"N1"}), ErrFlushPending)
}

func TestConfirmUnknownActionIgnored(t *testing.T) {
	r := New(&journalSpy{}, newSenderSpy(), time.Second)
	r.Confirm("ghost", "N1") // must not panic
}
