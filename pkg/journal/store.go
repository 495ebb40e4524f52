package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sitekeeper/sitekeeper/ent"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// writeTimeout bounds every journal write so a slow database cannot stall
// the caller beyond it.
const writeTimeout = 5 * time.Second

// EntStore persists journal records through the Ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a database-backed journal store.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// AppendEntry writes one journal record.
func (s *EntStore) AppendEntry(ctx context.Context, e *Entry) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	builder := s.client.JournalEntry.Create().
		SetID(uuid.New().String()).
		SetActionID(e.ActionID).
		SetStream(e.Stream).
		SetStageIndex(e.StageIndex).
		SetKind(journalentry.Kind(e.Kind)).
		SetSequenceNumber(e.Sequence).
		SetCreatedAt(e.Timestamp)

	if e.StageName != "" {
		builder.SetStageName(e.StageName)
	}
	if e.Node != "" {
		builder.SetNode(e.Node)
	}
	if e.TaskID != "" {
		builder.SetTaskID(e.TaskID)
	}
	if e.Payload != nil {
		builder.SetPayload(e.Payload)
	}

	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// CreateActionRecord writes the per-action header row.
func (s *EntStore) CreateActionRecord(ctx context.Context, action *models.MasterAction, environment string) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	builder := s.client.MasterActionRecord.Create().
		SetID(action.ID).
		SetOperationType(string(action.OperationType)).
		SetEnvironment(environment).
		SetStatus(masteractionrecord.Status(action.Status())).
		SetStartedAt(action.StartedAt)

	if len(action.Parameters) > 0 {
		builder.SetParameters(action.Parameters)
	}

	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to create action record: %w", err)
	}
	return nil
}

// FinalizeActionRecord stamps the terminal status, result and end time.
func (s *EntStore) FinalizeActionRecord(ctx context.Context, actionID string, status models.OperationStatus, result map[string]any, endedAt time.Time) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	builder := s.client.MasterActionRecord.UpdateOneID(actionID).
		SetStatus(masteractionrecord.Status(status)).
		SetEndedAt(endedAt)
	if result != nil {
		builder.SetResult(result)
	}

	if _, err := builder.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to finalize action record: %w", err)
	}
	return nil
}

// PurgeBefore deletes journal entries created before cutoff and action
// records that ended before it. Header rows of still-running actions are
// kept regardless of age. Returns the number of rows removed.
func (s *EntStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	entries, err := s.client.JournalEntry.Delete().
		Where(journalentry.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge journal entries: %w", err)
	}

	records, err := s.client.MasterActionRecord.Delete().
		Where(
			masteractionrecord.EndedAtNotNil(),
			masteractionrecord.EndedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return entries, fmt.Errorf("failed to purge action records: %w", err)
	}
	return entries + records, nil
}
