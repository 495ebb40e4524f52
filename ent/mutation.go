// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
	"github.com/sitekeeper/sitekeeper/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJournalEntry       = "JournalEntry"
	TypeMasterActionRecord = "MasterActionRecord"
)

// JournalEntryMutation represents an operation that mutates the JournalEntry nodes in the graph.
type JournalEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	action_id          *string
	stream             *string
	stage_index        *int
	addstage_index     *int
	stage_name         *string
	kind               *journalentry.Kind
	node               *string
	task_id            *string
	payload            *map[string]interface{}
	sequence_number    *int
	addsequence_number *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*JournalEntry, error)
	predicates         []predicate.JournalEntry
}

var _ ent.Mutation = (*JournalEntryMutation)(nil)

// journalentryOption allows management of the mutation configuration using functional options.
type journalentryOption func(*JournalEntryMutation)

// newJournalEntryMutation creates new mutation for the JournalEntry entity.
func newJournalEntryMutation(c config, op Op, opts ...journalentryOption) *JournalEntryMutation {
	m := &JournalEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeJournalEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJournalEntryID sets the ID field of the mutation.
func withJournalEntryID(id string) journalentryOption {
	return func(m *JournalEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *JournalEntry
		)
		m.oldValue = func(ctx context.Context) (*JournalEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JournalEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJournalEntry sets the old JournalEntry of the mutation.
func withJournalEntry(node *JournalEntry) journalentryOption {
	return func(m *JournalEntryMutation) {
		m.oldValue = func(context.Context) (*JournalEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JournalEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JournalEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JournalEntry entities.
func (m *JournalEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JournalEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JournalEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JournalEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionID sets the "action_id" field.
func (m *JournalEntryMutation) SetActionID(s string) {
	m.action_id = &s
}

// ActionID returns the value of the "action_id" field in the mutation.
func (m *JournalEntryMutation) ActionID() (r string, exists bool) {
	v := m.action_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActionID returns the old "action_id" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldActionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionID: %w", err)
	}
	return oldValue.ActionID, nil
}

// ResetActionID resets all changes to the "action_id" field.
func (m *JournalEntryMutation) ResetActionID() {
	m.action_id = nil
}

// SetStream sets the "stream" field.
func (m *JournalEntryMutation) SetStream(s string) {
	m.stream = &s
}

// Stream returns the value of the "stream" field in the mutation.
func (m *JournalEntryMutation) Stream() (r string, exists bool) {
	v := m.stream
	if v == nil {
		return
	}
	return *v, true
}

// OldStream returns the old "stream" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldStream(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStream is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStream requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStream: %w", err)
	}
	return oldValue.Stream, nil
}

// ResetStream resets all changes to the "stream" field.
func (m *JournalEntryMutation) ResetStream() {
	m.stream = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *JournalEntryMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *JournalEntryMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *JournalEntryMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *JournalEntryMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *JournalEntryMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetStageName sets the "stage_name" field.
func (m *JournalEntryMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *JournalEntryMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ClearStageName clears the value of the "stage_name" field.
func (m *JournalEntryMutation) ClearStageName() {
	m.stage_name = nil
	m.clearedFields[journalentry.FieldStageName] = struct{}{}
}

// StageNameCleared returns if the "stage_name" field was cleared in this mutation.
func (m *JournalEntryMutation) StageNameCleared() bool {
	_, ok := m.clearedFields[journalentry.FieldStageName]
	return ok
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *JournalEntryMutation) ResetStageName() {
	m.stage_name = nil
	delete(m.clearedFields, journalentry.FieldStageName)
}

// SetKind sets the "kind" field.
func (m *JournalEntryMutation) SetKind(j journalentry.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JournalEntryMutation) Kind() (r journalentry.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldKind(ctx context.Context) (v journalentry.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JournalEntryMutation) ResetKind() {
	m.kind = nil
}

// SetNode sets the "node" field.
func (m *JournalEntryMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *JournalEntryMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ClearNode clears the value of the "node" field.
func (m *JournalEntryMutation) ClearNode() {
	m.node = nil
	m.clearedFields[journalentry.FieldNode] = struct{}{}
}

// NodeCleared returns if the "node" field was cleared in this mutation.
func (m *JournalEntryMutation) NodeCleared() bool {
	_, ok := m.clearedFields[journalentry.FieldNode]
	return ok
}

// ResetNode resets all changes to the "node" field.
func (m *JournalEntryMutation) ResetNode() {
	m.node = nil
	delete(m.clearedFields, journalentry.FieldNode)
}

// SetTaskID sets the "task_id" field.
func (m *JournalEntryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *JournalEntryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *JournalEntryMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[journalentry.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *JournalEntryMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[journalentry.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *JournalEntryMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, journalentry.FieldTaskID)
}

// SetPayload sets the "payload" field.
func (m *JournalEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JournalEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JournalEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[journalentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JournalEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[journalentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JournalEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, journalentry.FieldPayload)
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *JournalEntryMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *JournalEntryMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *JournalEntryMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *JournalEntryMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *JournalEntryMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JournalEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JournalEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JournalEntry entity.
// If the JournalEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JournalEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JournalEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JournalEntryMutation builder.
func (m *JournalEntryMutation) Where(ps ...predicate.JournalEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JournalEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JournalEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JournalEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JournalEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JournalEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JournalEntry).
func (m *JournalEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JournalEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.action_id != nil {
		fields = append(fields, journalentry.FieldActionID)
	}
	if m.stream != nil {
		fields = append(fields, journalentry.FieldStream)
	}
	if m.stage_index != nil {
		fields = append(fields, journalentry.FieldStageIndex)
	}
	if m.stage_name != nil {
		fields = append(fields, journalentry.FieldStageName)
	}
	if m.kind != nil {
		fields = append(fields, journalentry.FieldKind)
	}
	if m.node != nil {
		fields = append(fields, journalentry.FieldNode)
	}
	if m.task_id != nil {
		fields = append(fields, journalentry.FieldTaskID)
	}
	if m.payload != nil {
		fields = append(fields, journalentry.FieldPayload)
	}
	if m.sequence_number != nil {
		fields = append(fields, journalentry.FieldSequenceNumber)
	}
	if m.created_at != nil {
		fields = append(fields, journalentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JournalEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case journalentry.FieldActionID:
		return m.ActionID()
	case journalentry.FieldStream:
		return m.Stream()
	case journalentry.FieldStageIndex:
		return m.StageIndex()
	case journalentry.FieldStageName:
		return m.StageName()
	case journalentry.FieldKind:
		return m.Kind()
	case journalentry.FieldNode:
		return m.Node()
	case journalentry.FieldTaskID:
		return m.TaskID()
	case journalentry.FieldPayload:
		return m.Payload()
	case journalentry.FieldSequenceNumber:
		return m.SequenceNumber()
	case journalentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JournalEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case journalentry.FieldActionID:
		return m.OldActionID(ctx)
	case journalentry.FieldStream:
		return m.OldStream(ctx)
	case journalentry.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case journalentry.FieldStageName:
		return m.OldStageName(ctx)
	case journalentry.FieldKind:
		return m.OldKind(ctx)
	case journalentry.FieldNode:
		return m.OldNode(ctx)
	case journalentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case journalentry.FieldPayload:
		return m.OldPayload(ctx)
	case journalentry.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case journalentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JournalEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JournalEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case journalentry.FieldActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionID(v)
		return nil
	case journalentry.FieldStream:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStream(v)
		return nil
	case journalentry.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case journalentry.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case journalentry.FieldKind:
		v, ok := value.(journalentry.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case journalentry.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case journalentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case journalentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case journalentry.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case journalentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JournalEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JournalEntryMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, journalentry.FieldStageIndex)
	}
	if m.addsequence_number != nil {
		fields = append(fields, journalentry.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JournalEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case journalentry.FieldStageIndex:
		return m.AddedStageIndex()
	case journalentry.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JournalEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case journalentry.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case journalentry.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown JournalEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JournalEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(journalentry.FieldStageName) {
		fields = append(fields, journalentry.FieldStageName)
	}
	if m.FieldCleared(journalentry.FieldNode) {
		fields = append(fields, journalentry.FieldNode)
	}
	if m.FieldCleared(journalentry.FieldTaskID) {
		fields = append(fields, journalentry.FieldTaskID)
	}
	if m.FieldCleared(journalentry.FieldPayload) {
		fields = append(fields, journalentry.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JournalEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JournalEntryMutation) ClearField(name string) error {
	switch name {
	case journalentry.FieldStageName:
		m.ClearStageName()
		return nil
	case journalentry.FieldNode:
		m.ClearNode()
		return nil
	case journalentry.FieldTaskID:
		m.ClearTaskID()
		return nil
	case journalentry.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown JournalEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JournalEntryMutation) ResetField(name string) error {
	switch name {
	case journalentry.FieldActionID:
		m.ResetActionID()
		return nil
	case journalentry.FieldStream:
		m.ResetStream()
		return nil
	case journalentry.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case journalentry.FieldStageName:
		m.ResetStageName()
		return nil
	case journalentry.FieldKind:
		m.ResetKind()
		return nil
	case journalentry.FieldNode:
		m.ResetNode()
		return nil
	case journalentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case journalentry.FieldPayload:
		m.ResetPayload()
		return nil
	case journalentry.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case journalentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JournalEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JournalEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JournalEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JournalEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JournalEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JournalEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JournalEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JournalEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JournalEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JournalEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JournalEntry edge %s", name)
}

// MasterActionRecordMutation represents an operation that mutates the MasterActionRecord nodes in the graph.
type MasterActionRecordMutation struct {
	config
	op             Op
	typ            string
	id             *string
	operation_type *string
	environment    *string
	status         *masteractionrecord.Status
	parameters     *map[string]string
	result         *map[string]interface{}
	started_at     *time.Time
	ended_at       *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MasterActionRecord, error)
	predicates     []predicate.MasterActionRecord
}

var _ ent.Mutation = (*MasterActionRecordMutation)(nil)

// masteractionrecordOption allows management of the mutation configuration using functional options.
type masteractionrecordOption func(*MasterActionRecordMutation)

// newMasterActionRecordMutation creates new mutation for the MasterActionRecord entity.
func newMasterActionRecordMutation(c config, op Op, opts ...masteractionrecordOption) *MasterActionRecordMutation {
	m := &MasterActionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasterActionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasterActionRecordID sets the ID field of the mutation.
func withMasterActionRecordID(id string) masteractionrecordOption {
	return func(m *MasterActionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasterActionRecord
		)
		m.oldValue = func(ctx context.Context) (*MasterActionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasterActionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasterActionRecord sets the old MasterActionRecord of the mutation.
func withMasterActionRecord(node *MasterActionRecord) masteractionrecordOption {
	return func(m *MasterActionRecordMutation) {
		m.oldValue = func(context.Context) (*MasterActionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasterActionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasterActionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MasterActionRecord entities.
func (m *MasterActionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasterActionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasterActionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasterActionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOperationType sets the "operation_type" field.
func (m *MasterActionRecordMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *MasterActionRecordMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *MasterActionRecordMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetEnvironment sets the "environment" field.
func (m *MasterActionRecordMutation) SetEnvironment(s string) {
	m.environment = &s
}

// Environment returns the value of the "environment" field in the mutation.
func (m *MasterActionRecordMutation) Environment() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironment returns the old "environment" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldEnvironment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironment: %w", err)
	}
	return oldValue.Environment, nil
}

// ResetEnvironment resets all changes to the "environment" field.
func (m *MasterActionRecordMutation) ResetEnvironment() {
	m.environment = nil
}

// SetStatus sets the "status" field.
func (m *MasterActionRecordMutation) SetStatus(value masteractionrecord.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MasterActionRecordMutation) Status() (r masteractionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldStatus(ctx context.Context) (v masteractionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MasterActionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetParameters sets the "parameters" field.
func (m *MasterActionRecordMutation) SetParameters(value map[string]string) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *MasterActionRecordMutation) Parameters() (r map[string]string, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldParameters(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *MasterActionRecordMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[masteractionrecord.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *MasterActionRecordMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[masteractionrecord.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *MasterActionRecordMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, masteractionrecord.FieldParameters)
}

// SetResult sets the "result" field.
func (m *MasterActionRecordMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *MasterActionRecordMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *MasterActionRecordMutation) ClearResult() {
	m.result = nil
	m.clearedFields[masteractionrecord.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *MasterActionRecordMutation) ResultCleared() bool {
	_, ok := m.clearedFields[masteractionrecord.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *MasterActionRecordMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, masteractionrecord.FieldResult)
}

// SetStartedAt sets the "started_at" field.
func (m *MasterActionRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MasterActionRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MasterActionRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *MasterActionRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *MasterActionRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the MasterActionRecord entity.
// If the MasterActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasterActionRecordMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *MasterActionRecordMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[masteractionrecord.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *MasterActionRecordMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[masteractionrecord.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *MasterActionRecordMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, masteractionrecord.FieldEndedAt)
}

// Where appends a list predicates to the MasterActionRecordMutation builder.
func (m *MasterActionRecordMutation) Where(ps ...predicate.MasterActionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasterActionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasterActionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasterActionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasterActionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasterActionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasterActionRecord).
func (m *MasterActionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasterActionRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.operation_type != nil {
		fields = append(fields, masteractionrecord.FieldOperationType)
	}
	if m.environment != nil {
		fields = append(fields, masteractionrecord.FieldEnvironment)
	}
	if m.status != nil {
		fields = append(fields, masteractionrecord.FieldStatus)
	}
	if m.parameters != nil {
		fields = append(fields, masteractionrecord.FieldParameters)
	}
	if m.result != nil {
		fields = append(fields, masteractionrecord.FieldResult)
	}
	if m.started_at != nil {
		fields = append(fields, masteractionrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, masteractionrecord.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasterActionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteractionrecord.FieldOperationType:
		return m.OperationType()
	case masteractionrecord.FieldEnvironment:
		return m.Environment()
	case masteractionrecord.FieldStatus:
		return m.Status()
	case masteractionrecord.FieldParameters:
		return m.Parameters()
	case masteractionrecord.FieldResult:
		return m.Result()
	case masteractionrecord.FieldStartedAt:
		return m.StartedAt()
	case masteractionrecord.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasterActionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteractionrecord.FieldOperationType:
		return m.OldOperationType(ctx)
	case masteractionrecord.FieldEnvironment:
		return m.OldEnvironment(ctx)
	case masteractionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case masteractionrecord.FieldParameters:
		return m.OldParameters(ctx)
	case masteractionrecord.FieldResult:
		return m.OldResult(ctx)
	case masteractionrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case masteractionrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasterActionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasterActionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteractionrecord.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case masteractionrecord.FieldEnvironment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironment(v)
		return nil
	case masteractionrecord.FieldStatus:
		v, ok := value.(masteractionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case masteractionrecord.FieldParameters:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case masteractionrecord.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case masteractionrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case masteractionrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasterActionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasterActionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasterActionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasterActionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MasterActionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasterActionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteractionrecord.FieldParameters) {
		fields = append(fields, masteractionrecord.FieldParameters)
	}
	if m.FieldCleared(masteractionrecord.FieldResult) {
		fields = append(fields, masteractionrecord.FieldResult)
	}
	if m.FieldCleared(masteractionrecord.FieldEndedAt) {
		fields = append(fields, masteractionrecord.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasterActionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasterActionRecordMutation) ClearField(name string) error {
	switch name {
	case masteractionrecord.FieldParameters:
		m.ClearParameters()
		return nil
	case masteractionrecord.FieldResult:
		m.ClearResult()
		return nil
	case masteractionrecord.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown MasterActionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasterActionRecordMutation) ResetField(name string) error {
	switch name {
	case masteractionrecord.FieldOperationType:
		m.ResetOperationType()
		return nil
	case masteractionrecord.FieldEnvironment:
		m.ResetEnvironment()
		return nil
	case masteractionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case masteractionrecord.FieldParameters:
		m.ResetParameters()
		return nil
	case masteractionrecord.FieldResult:
		m.ResetResult()
		return nil
	case masteractionrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case masteractionrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown MasterActionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasterActionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasterActionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasterActionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasterActionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasterActionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasterActionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasterActionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasterActionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasterActionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasterActionRecord edge %s", name)
}
