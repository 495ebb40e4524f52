// Code generated by ent, DO NOT EDIT.

package journalentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sitekeeper/sitekeeper/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldID, id))
}

// ActionID applies equality check predicate on the "action_id" field. It's identical to ActionIDEQ.
func ActionID(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldActionID, v))
}

// Stream applies equality check predicate on the "stream" field. It's identical to StreamEQ.
func Stream(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStream, v))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStageIndex, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStageName, v))
}

// Node applies equality check predicate on the "node" field. It's identical to NodeEQ.
func Node(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldNode, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldTaskID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldSequenceNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ActionIDEQ applies the EQ predicate on the "action_id" field.
func ActionIDEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldActionID, v))
}

// ActionIDNEQ applies the NEQ predicate on the "action_id" field.
func ActionIDNEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldActionID, v))
}

// ActionIDIn applies the In predicate on the "action_id" field.
func ActionIDIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldActionID, vs...))
}

// ActionIDNotIn applies the NotIn predicate on the "action_id" field.
func ActionIDNotIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldActionID, vs...))
}

// ActionIDGT applies the GT predicate on the "action_id" field.
func ActionIDGT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldActionID, v))
}

// ActionIDGTE applies the GTE predicate on the "action_id" field.
func ActionIDGTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldActionID, v))
}

// ActionIDLT applies the LT predicate on the "action_id" field.
func ActionIDLT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldActionID, v))
}

// ActionIDLTE applies the LTE predicate on the "action_id" field.
func ActionIDLTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldActionID, v))
}

// ActionIDContains applies the Contains predicate on the "action_id" field.
func ActionIDContains(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContains(FieldActionID, v))
}

// ActionIDHasPrefix applies the HasPrefix predicate on the "action_id" field.
func ActionIDHasPrefix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasPrefix(FieldActionID, v))
}

// ActionIDHasSuffix applies the HasSuffix predicate on the "action_id" field.
func ActionIDHasSuffix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasSuffix(FieldActionID, v))
}

// ActionIDEqualFold applies the EqualFold predicate on the "action_id" field.
func ActionIDEqualFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldActionID, v))
}

// ActionIDContainsFold applies the ContainsFold predicate on the "action_id" field.
func ActionIDContainsFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldActionID, v))
}

// StreamEQ applies the EQ predicate on the "stream" field.
func StreamEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStream, v))
}

// StreamNEQ applies the NEQ predicate on the "stream" field.
func StreamNEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldStream, v))
}

// StreamIn applies the In predicate on the "stream" field.
func StreamIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldStream, vs...))
}

// StreamNotIn applies the NotIn predicate on the "stream" field.
func StreamNotIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldStream, vs...))
}

// StreamGT applies the GT predicate on the "stream" field.
func StreamGT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldStream, v))
}

// StreamGTE applies the GTE predicate on the "stream" field.
func StreamGTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldStream, v))
}

// StreamLT applies the LT predicate on the "stream" field.
func StreamLT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldStream, v))
}

// StreamLTE applies the LTE predicate on the "stream" field.
func StreamLTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldStream, v))
}

// StreamContains applies the Contains predicate on the "stream" field.
func StreamContains(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContains(FieldStream, v))
}

// StreamHasPrefix applies the HasPrefix predicate on the "stream" field.
func StreamHasPrefix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasPrefix(FieldStream, v))
}

// StreamHasSuffix applies the HasSuffix predicate on the "stream" field.
func StreamHasSuffix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasSuffix(FieldStream, v))
}

// StreamEqualFold applies the EqualFold predicate on the "stream" field.
func StreamEqualFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldStream, v))
}

// StreamContainsFold applies the ContainsFold predicate on the "stream" field.
func StreamContainsFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldStream, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldStageIndex, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameIsNil applies the IsNil predicate on the "stage_name" field.
func StageNameIsNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIsNull(FieldStageName))
}

// StageNameNotNil applies the NotNil predicate on the "stage_name" field.
func StageNameNotNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotNull(FieldStageName))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldStageName, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldKind, vs...))
}

// NodeEQ applies the EQ predicate on the "node" field.
func NodeEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldNode, v))
}

// NodeNEQ applies the NEQ predicate on the "node" field.
func NodeNEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldNode, v))
}

// NodeIn applies the In predicate on the "node" field.
func NodeIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldNode, vs...))
}

// NodeNotIn applies the NotIn predicate on the "node" field.
func NodeNotIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldNode, vs...))
}

// NodeGT applies the GT predicate on the "node" field.
func NodeGT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldNode, v))
}

// NodeGTE applies the GTE predicate on the "node" field.
func NodeGTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldNode, v))
}

// NodeLT applies the LT predicate on the "node" field.
func NodeLT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldNode, v))
}

// NodeLTE applies the LTE predicate on the "node" field.
func NodeLTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldNode, v))
}

// NodeContains applies the Contains predicate on the "node" field.
func NodeContains(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContains(FieldNode, v))
}

// NodeHasPrefix applies the HasPrefix predicate on the "node" field.
func NodeHasPrefix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasPrefix(FieldNode, v))
}

// NodeHasSuffix applies the HasSuffix predicate on the "node" field.
func NodeHasSuffix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasSuffix(FieldNode, v))
}

// NodeIsNil applies the IsNil predicate on the "node" field.
func NodeIsNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIsNull(FieldNode))
}

// NodeNotNil applies the NotNil predicate on the "node" field.
func NodeNotNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotNull(FieldNode))
}

// NodeEqualFold applies the EqualFold predicate on the "node" field.
func NodeEqualFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldNode, v))
}

// NodeContainsFold applies the ContainsFold predicate on the "node" field.
func NodeContainsFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldNode, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldContainsFold(FieldTaskID, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotNull(FieldPayload))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldSequenceNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JournalEntry {
	return predicate.JournalEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JournalEntry) predicate.JournalEntry {
	return predicate.JournalEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JournalEntry) predicate.JournalEntry {
	return predicate.JournalEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JournalEntry) predicate.JournalEntry {
	return predicate.JournalEntry(sql.NotPredicates(p))
}
