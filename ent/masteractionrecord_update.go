// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
	"github.com/sitekeeper/sitekeeper/ent/predicate"
)

// MasterActionRecordUpdate is the builder for updating MasterActionRecord entities.
type MasterActionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasterActionRecordMutation
}

// Where appends a list predicates to the MasterActionRecordUpdate builder.
func (_u *MasterActionRecordUpdate) Where(ps ...predicate.MasterActionRecord) *MasterActionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MasterActionRecordUpdate) SetStatus(v masteractionrecord.Status) *MasterActionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasterActionRecordUpdate) SetNillableStatus(v *masteractionrecord.Status) *MasterActionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *MasterActionRecordUpdate) SetResult(v map[string]interface{}) *MasterActionRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *MasterActionRecordUpdate) ClearResult() *MasterActionRecordUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *MasterActionRecordUpdate) SetEndedAt(v time.Time) *MasterActionRecordUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *MasterActionRecordUpdate) SetNillableEndedAt(v *time.Time) *MasterActionRecordUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *MasterActionRecordUpdate) ClearEndedAt() *MasterActionRecordUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the MasterActionRecordMutation object of the builder.
func (_u *MasterActionRecordUpdate) Mutation() *MasterActionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasterActionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasterActionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasterActionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasterActionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasterActionRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := masteractionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasterActionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MasterActionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteractionrecord.Table, masteractionrecord.Columns, sqlgraph.NewFieldSpec(masteractionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masteractionrecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(masteractionrecord.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(masteractionrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(masteractionrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(masteractionrecord.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(masteractionrecord.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasterActionRecordUpdateOne is the builder for updating a single MasterActionRecord entity.
type MasterActionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasterActionRecordMutation
}

// SetStatus sets the "status" field.
func (_u *MasterActionRecordUpdateOne) SetStatus(v masteractionrecord.Status) *MasterActionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MasterActionRecordUpdateOne) SetNillableStatus(v *masteractionrecord.Status) *MasterActionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *MasterActionRecordUpdateOne) SetResult(v map[string]interface{}) *MasterActionRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *MasterActionRecordUpdateOne) ClearResult() *MasterActionRecordUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *MasterActionRecordUpdateOne) SetEndedAt(v time.Time) *MasterActionRecordUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *MasterActionRecordUpdateOne) SetNillableEndedAt(v *time.Time) *MasterActionRecordUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *MasterActionRecordUpdateOne) ClearEndedAt() *MasterActionRecordUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the MasterActionRecordMutation object of the builder.
func (_u *MasterActionRecordUpdateOne) Mutation() *MasterActionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasterActionRecordUpdate builder.
func (_u *MasterActionRecordUpdateOne) Where(ps ...predicate.MasterActionRecord) *MasterActionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasterActionRecordUpdateOne) Select(field string, fields ...string) *MasterActionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasterActionRecord entity.
func (_u *MasterActionRecordUpdateOne) Save(ctx context.Context) (*MasterActionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasterActionRecordUpdateOne) SaveX(ctx context.Context) *MasterActionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasterActionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasterActionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasterActionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := masteractionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasterActionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MasterActionRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasterActionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteractionrecord.Table, masteractionrecord.Columns, sqlgraph.NewFieldSpec(masteractionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasterActionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteractionrecord.FieldID)
		for _, f := range fields {
			if !masteractionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteractionrecord.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(masteractionrecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(masteractionrecord.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(masteractionrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(masteractionrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(masteractionrecord.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(masteractionrecord.FieldEndedAt, field.TypeTime)
	}
	_node = &MasterActionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
