// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
)

// RescheduleBatchDelete is the builder for deleting a RescheduleBatch entity.
type RescheduleBatchDelete struct {
	config
	hooks    []Hook
	mutation *RescheduleBatchMutation
}

// Where appends a list predicates to the RescheduleBatchDelete builder.
func (_d *RescheduleBatchDelete) Where(ps ...predicate.RescheduleBatch) *RescheduleBatchDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RescheduleBatchDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RescheduleBatchDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RescheduleBatchDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reschedulebatch.Table, sqlgraph.NewFieldSpec(reschedulebatch.FieldID, field.TypeUUID))
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

// RescheduleBatchDeleteOne is the builder for deleting a single RescheduleBatch entity.
type RescheduleBatchDeleteOne struct {
	_d *RescheduleBatchDelete
}

// Where appends a list predicates to the RescheduleBatchDelete builder.
func (_d *RescheduleBatchDeleteOne) Where(ps ...predicate.RescheduleBatch) *RescheduleBatchDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RescheduleBatchDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reschedulebatch.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RescheduleBatchDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
