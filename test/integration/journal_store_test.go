// Package integration holds database-backed tests for the journal store.
// They start a PostgreSQL testcontainer (or use CI_DATABASE_URL) and run
// each test in its own schema.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/ent"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/pkg/journal"
	"github.com/sitekeeper/sitekeeper/pkg/models"
	"github.com/sitekeeper/sitekeeper/test/util"
)

func newStore(t *testing.T) (*journal.EntStore, *ent.Client) {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	return journal.NewEntStore(entClient), entClient
}

func TestJournalStreamRoundtrip(t *testing.T) {
	store, entClient := newStore(t)
	svc := journal.NewService(store, "/var/lib/sitekeeper/journal", "integration")
	ctx := context.Background()

	action := models.NewMasterAction("op-1", models.OpVerifyConfiguration, map[string]string{"node": "N1"})
	svc.ActionStarted(ctx, action)
	svc.StageInitiated(ctx, action.ID, 1, "Verify configuration", map[string]any{"targets": "all"})
	svc.LogLine(ctx, action.ID, 1, models.ReportSlaveTaskLog{
		ActionID:  "na-1",
		TaskID:    "t1",
		Node:      "N1",
		Level:     models.LevelInformation,
		Message:   "checking files",
		Timestamp: time.Now().UTC(),
	})
	ended := time.Now().UTC()
	svc.NodeTaskResult(ctx, action.ID, 1, &models.NodeTask{
		ID:       "t1",
		Node:     "N1",
		Status:   models.TaskSucceeded,
		Progress: 100,
		EndedAt:  &ended,
		Result:   map[string]any{"filesChecked": 625},
	})
	svc.StageCompleted(ctx, action.ID, 1, "Verify configuration", map[string]any{"status": "Succeeded"})
	svc.ActionCompleted(ctx, action.ID, models.StatusSucceeded, map[string]any{"filesChecked": 625})

	entries, err := entClient.JournalEntry.Query().
		Where(journalentry.ActionID(action.ID)).
		Order(ent.Asc(journalentry.FieldSequenceNumber)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	kinds := make([]string, 0, len(entries))
	for i, e := range entries {
		assert.Equal(t, i+1, e.SequenceNumber)
		assert.Equal(t, "/var/lib/sitekeeper/journal/op-1", e.Stream)
		kinds = append(kinds, string(e.Kind))
	}
	assert.Equal(t, []string{
		journal.KindStageInitiated,
		journal.KindLogLine,
		journal.KindNodeTaskResult,
		journal.KindStageCompleted,
	}, kinds)

	logEntry := entries[1]
	assert.Equal(t, "N1", logEntry.Node)
	assert.Equal(t, "t1", logEntry.TaskID)
	assert.Equal(t, "checking files", logEntry.Payload["message"])

	record, err := entClient.MasterActionRecord.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, "VerifyConfiguration", record.OperationType)
	assert.Equal(t, "integration", record.Environment)
	assert.EqualValues(t, models.StatusSucceeded, record.Status)
	require.NotNil(t, record.EndedAt)
	assert.Equal(t, map[string]string{"node": "N1"}, record.Parameters)
}

func TestJournalSequencesArePerStream(t *testing.T) {
	store, entClient := newStore(t)
	svc := journal.NewService(store, "/var/lib/sitekeeper/journal", "integration")
	ctx := context.Background()

	svc.StageInitiated(ctx, "op-a", 1, "one", nil)
	svc.StageInitiated(ctx, "op-b", 1, "one", nil)
	svc.StageCompleted(ctx, "op-a", 1, "one", nil)

	aEntries, err := entClient.JournalEntry.Query().
		Where(journalentry.ActionID("op-a")).
		Order(ent.Asc(journalentry.FieldSequenceNumber)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, aEntries, 2)
	assert.Equal(t, 1, aEntries[0].SequenceNumber)
	assert.Equal(t, 2, aEntries[1].SequenceNumber)

	bEntries, err := entClient.JournalEntry.Query().
		Where(journalentry.ActionID("op-b")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, bEntries, 1)
	assert.Equal(t, 1, bEntries[0].SequenceNumber)
}

func TestPurgeBeforeRemovesOnlyOldFinishedRecords(t *testing.T) {
	store, entClient := newStore(t)
	ctx := context.Background()
	old := time.Now().UTC().AddDate(0, 0, -40)

	// Old finished action with one old entry.
	oldAction := models.NewMasterAction("op-old", models.OpTestOrchestration, nil)
	require.NoError(t, store.CreateActionRecord(ctx, oldAction, "integration"))
	require.NoError(t, store.FinalizeActionRecord(ctx, "op-old", models.StatusSucceeded, nil, old))
	_, err := entClient.JournalEntry.Create().
		SetID("e-old").
		SetActionID("op-old").
		SetStream("/var/lib/sitekeeper/journal/op-old").
		SetKind(journalentry.KindStageInitiated).
		SetSequenceNumber(1).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Recent finished action and a long-running one, both kept.
	recentAction := models.NewMasterAction("op-recent", models.OpTestOrchestration, nil)
	require.NoError(t, store.CreateActionRecord(ctx, recentAction, "integration"))
	require.NoError(t, store.FinalizeActionRecord(ctx, "op-recent", models.StatusFailed, nil, time.Now().UTC()))
	runningAction := models.NewMasterAction("op-running", models.OpTestOrchestration, nil)
	require.NoError(t, store.CreateActionRecord(ctx, runningAction, "integration"))

	removed, err := store.PurgeBefore(ctx, time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := entClient.MasterActionRecord.Query().All(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(remaining))
	for _, r := range remaining {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{"op-recent", "op-running"}, ids)

	count, err := entClient.JournalEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
