// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
)

// FreezeWindowDelete is the builder for deleting a FreezeWindow entity.
type FreezeWindowDelete struct {
	config
	hooks    []Hook
	mutation *FreezeWindowMutation
}

// Where appends a list predicates to the FreezeWindowDelete builder.
func (_d *FreezeWindowDelete) Where(ps ...predicate.FreezeWindow) *FreezeWindowDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FreezeWindowDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FreezeWindowDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FreezeWindowDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(freezewindow.Table, sqlgraph.NewFieldSpec(freezewindow.FieldID, field.TypeUUID))
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

// FreezeWindowDeleteOne is the builder for deleting a single FreezeWindow entity.
type FreezeWindowDeleteOne struct {
	_d *FreezeWindowDelete
}

// Where appends a list predicates to the FreezeWindowDelete builder.
func (_d *FreezeWindowDeleteOne) Where(ps ...predicate.FreezeWindow) *FreezeWindowDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FreezeWindowDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{freezewindow.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FreezeWindowDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
