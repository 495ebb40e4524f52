// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
	"github.com/sitekeeper/sitekeeper/ent/predicate"
)

// MasterActionRecordDelete is the builder for deleting a MasterActionRecord entity.
type MasterActionRecordDelete struct {
	config
	hooks    []Hook
	mutation *MasterActionRecordMutation
}

// Where appends a list predicates to the MasterActionRecordDelete builder.
func (_d *MasterActionRecordDelete) Where(ps ...predicate.MasterActionRecord) *MasterActionRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MasterActionRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MasterActionRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MasterActionRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(masteractionrecord.Table, sqlgraph.NewFieldSpec(masteractionrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MasterActionRecordDeleteOne is the builder for deleting a single MasterActionRecord entity.
type MasterActionRecordDeleteOne struct {
	_d *MasterActionRecordDelete
}

// Where appends a list predicates to the MasterActionRecordDelete builder.
func (_d *MasterActionRecordDeleteOne) Where(ps ...predicate.MasterActionRecord) *MasterActionRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MasterActionRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{masteractionrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MasterActionRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
