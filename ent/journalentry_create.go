// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
)

// JournalEntryCreate is the builder for creating a JournalEntry entity.
type JournalEntryCreate struct {
	config
	mutation *JournalEntryMutation
	hooks    []Hook
}

// SetActionID sets the "action_id" field.
func (_c *JournalEntryCreate) SetActionID(v string) *JournalEntryCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetStream sets the "stream" field.
func (_c *JournalEntryCreate) SetStream(v string) *JournalEntryCreate {
	_c.mutation.SetStream(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *JournalEntryCreate) SetStageIndex(v int) *JournalEntryCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_c *JournalEntryCreate) SetNillableStageIndex(v *int) *JournalEntryCreate {
	if v != nil {
		_c.SetStageIndex(*v)
	}
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *JournalEntryCreate) SetStageName(v string) *JournalEntryCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_c *JournalEntryCreate) SetNillableStageName(v *string) *JournalEntryCreate {
	if v != nil {
		_c.SetStageName(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *JournalEntryCreate) SetKind(v journalentry.Kind) *JournalEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNode sets the "node" field.
func (_c *JournalEntryCreate) SetNode(v string) *JournalEntryCreate {
	_c.mutation.SetNode(v)
	return _c
}

// SetNillableNode sets the "node" field if the given value is not nil.
func (_c *JournalEntryCreate) SetNillableNode(v *string) *JournalEntryCreate {
	if v != nil {
		_c.SetNode(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *JournalEntryCreate) SetTaskID(v string) *JournalEntryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *JournalEntryCreate) SetNillableTaskID(v *string) *JournalEntryCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JournalEntryCreate) SetPayload(v map[string]interface{}) *JournalEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *JournalEntryCreate) SetSequenceNumber(v int) *JournalEntryCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JournalEntryCreate) SetCreatedAt(v time.Time) *JournalEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JournalEntryCreate) SetNillableCreatedAt(v *time.Time) *JournalEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JournalEntryCreate) SetID(v string) *JournalEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JournalEntryMutation object of the builder.
func (_c *JournalEntryCreate) Mutation() *JournalEntryMutation {
	return _c.mutation
}

// Save creates the JournalEntry in the database.
func (_c *JournalEntryCreate) Save(ctx context.Context) (*JournalEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JournalEntryCreate) SaveX(ctx context.Context) *JournalEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JournalEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JournalEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JournalEntryCreate) defaults() {
	if _, ok := _c.mutation.StageIndex(); !ok {
		v := journalentry.DefaultStageIndex
		_c.mutation.SetStageIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := journalentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JournalEntryCreate) check() error {
	if _, ok := _c.mutation.ActionID(); !ok {
		return &ValidationError{Name: "action_id", err: errors.New(`ent: missing required field "JournalEntry.action_id"`)}
	}
	if _, ok := _c.mutation.Stream(); !ok {
		return &ValidationError{Name: "stream", err: errors.New(`ent: missing required field "JournalEntry.stream"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "JournalEntry.stage_index"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "JournalEntry.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := journalentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "JournalEntry.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "JournalEntry.sequence_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JournalEntry.created_at"`)}
	}
	return nil
}

func (_c *JournalEntryCreate) sqlSave(ctx context.Context) (*JournalEntry, error) {
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
			return nil, fmt.Errorf("unexpected JournalEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JournalEntryCreate) createSpec() (*JournalEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &JournalEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journalentry.Table, sqlgraph.NewFieldSpec(journalentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(journalentry.FieldActionID, field.TypeString, value)
		_node.ActionID = value
	}
	if value, ok := _c.mutation.Stream(); ok {
		_spec.SetField(journalentry.FieldStream, field.TypeString, value)
		_node.Stream = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(journalentry.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(journalentry.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(journalentry.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Node(); ok {
		_spec.SetField(journalentry.FieldNode, field.TypeString, value)
		_node.Node = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(journalentry.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(journalentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(journalentry.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(journalentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// JournalEntryCreateBulk is the builder for creating many JournalEntry entities in bulk.
type JournalEntryCreateBulk struct {
	config
	err      error
	builders []*JournalEntryCreate
}

// Save creates the JournalEntry entities in the database.
func (_c *JournalEntryCreateBulk) Save(ctx context.Context) ([]*JournalEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JournalEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JournalEntryMutation)
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
func (_c *JournalEntryCreateBulk) SaveX(ctx context.Context) []*JournalEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JournalEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JournalEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
