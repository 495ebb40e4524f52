// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/ent/predicate"
)

// JournalEntryUpdate is the builder for updating JournalEntry entities.
type JournalEntryUpdate struct {
	config
	hooks    []Hook
	mutation *JournalEntryMutation
}

// Where appends a list predicates to the JournalEntryUpdate builder.
func (_u *JournalEntryUpdate) Where(ps ...predicate.JournalEntry) *JournalEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *JournalEntryUpdate) SetSequenceNumber(v int) *JournalEntryUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *JournalEntryUpdate) SetNillableSequenceNumber(v *int) *JournalEntryUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *JournalEntryUpdate) AddSequenceNumber(v int) *JournalEntryUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// Mutation returns the JournalEntryMutation object of the builder.
func (_u *JournalEntryUpdate) Mutation() *JournalEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JournalEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JournalEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JournalEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JournalEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *JournalEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(journalentry.Table, journalentry.Columns, sqlgraph.NewFieldSpec(journalentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageNameCleared() {
		_spec.ClearField(journalentry.FieldStageName, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		_spec.ClearField(journalentry.FieldNode, field.TypeString)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(journalentry.FieldTaskID, field.TypeString)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(journalentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(journalentry.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(journalentry.FieldSequenceNumber, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journalentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JournalEntryUpdateOne is the builder for updating a single JournalEntry entity.
type JournalEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JournalEntryMutation
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *JournalEntryUpdateOne) SetSequenceNumber(v int) *JournalEntryUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *JournalEntryUpdateOne) SetNillableSequenceNumber(v *int) *JournalEntryUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *JournalEntryUpdateOne) AddSequenceNumber(v int) *JournalEntryUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// Mutation returns the JournalEntryMutation object of the builder.
func (_u *JournalEntryUpdateOne) Mutation() *JournalEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the JournalEntryUpdate builder.
func (_u *JournalEntryUpdateOne) Where(ps ...predicate.JournalEntry) *JournalEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JournalEntryUpdateOne) Select(field string, fields ...string) *JournalEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JournalEntry entity.
func (_u *JournalEntryUpdateOne) Save(ctx context.Context) (*JournalEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JournalEntryUpdateOne) SaveX(ctx context.Context) *JournalEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JournalEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JournalEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *JournalEntryUpdateOne) sqlSave(ctx context.Context) (_node *JournalEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(journalentry.Table, journalentry.Columns, sqlgraph.NewFieldSpec(journalentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JournalEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journalentry.FieldID)
		for _, f := range fields {
			if !journalentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journalentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageNameCleared() {
		_spec.ClearField(journalentry.FieldStageName, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		_spec.ClearField(journalentry.FieldNode, field.TypeString)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(journalentry.FieldTaskID, field.TypeString)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(journalentry.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(journalentry.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(journalentry.FieldSequenceNumber, field.TypeInt, value)
	}
	_node = &JournalEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journalentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
