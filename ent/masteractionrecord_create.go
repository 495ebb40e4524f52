// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
)

// MasterActionRecordCreate is the builder for creating a MasterActionRecord entity.
type MasterActionRecordCreate struct {
	config
	mutation *MasterActionRecordMutation
	hooks    []Hook
}

// SetOperationType sets the "operation_type" field.
func (_c *MasterActionRecordCreate) SetOperationType(v string) *MasterActionRecordCreate {
	_c.mutation.SetOperationType(v)
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *MasterActionRecordCreate) SetEnvironment(v string) *MasterActionRecordCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MasterActionRecordCreate) SetStatus(v masteractionrecord.Status) *MasterActionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MasterActionRecordCreate) SetNillableStatus(v *masteractionrecord.Status) *MasterActionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *MasterActionRecordCreate) SetParameters(v map[string]string) *MasterActionRecordCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *MasterActionRecordCreate) SetResult(v map[string]interface{}) *MasterActionRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MasterActionRecordCreate) SetStartedAt(v time.Time) *MasterActionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MasterActionRecordCreate) SetNillableStartedAt(v *time.Time) *MasterActionRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *MasterActionRecordCreate) SetEndedAt(v time.Time) *MasterActionRecordCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *MasterActionRecordCreate) SetNillableEndedAt(v *time.Time) *MasterActionRecordCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MasterActionRecordCreate) SetID(v string) *MasterActionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MasterActionRecordMutation object of the builder.
func (_c *MasterActionRecordCreate) Mutation() *MasterActionRecordMutation {
	return _c.mutation
}

// Save creates the MasterActionRecord in the database.
func (_c *MasterActionRecordCreate) Save(ctx context.Context) (*MasterActionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasterActionRecordCreate) SaveX(ctx context.Context) *MasterActionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasterActionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasterActionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasterActionRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := masteractionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := masteractionrecord.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasterActionRecordCreate) check() error {
	if _, ok := _c.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "MasterActionRecord.operation_type"`)}
	}
	if _, ok := _c.mutation.Environment(); !ok {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required field "MasterActionRecord.environment"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MasterActionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := masteractionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MasterActionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "MasterActionRecord.started_at"`)}
	}
	return nil
}

func (_c *MasterActionRecordCreate) sqlSave(ctx context.Context) (*MasterActionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MasterActionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasterActionRecordCreate) createSpec() (*MasterActionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasterActionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteractionrecord.Table, sqlgraph.NewFieldSpec(masteractionrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OperationType(); ok {
		_spec.SetField(masteractionrecord.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(masteractionrecord.FieldEnvironment, field.TypeString, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(masteractionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(masteractionrecord.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(masteractionrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(masteractionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(masteractionrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// MasterActionRecordCreateBulk is the builder for creating many MasterActionRecord entities in bulk.
type MasterActionRecordCreateBulk struct {
	config
	err      error
	builders []*MasterActionRecordCreate
}

// Save creates the MasterActionRecord entities in the database.
func (_c *MasterActionRecordCreateBulk) Save(ctx context.Context) ([]*MasterActionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasterActionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasterActionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasterActionRecordCreateBulk) SaveX(ctx context.Context) []*MasterActionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasterActionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasterActionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
