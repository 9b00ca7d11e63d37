// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/lingo/ent/predicate"
	"github.com/smehra/lingo/ent/progresssnapshot"
)

// ProgressSnapshotDelete is the builder for deleting a ProgressSnapshot entity.
type ProgressSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// Where appends a list predicates to the ProgressSnapshotDelete builder.
func (psd *ProgressSnapshotDelete) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotDelete {
	psd.mutation.Where(ps...)
	return psd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (psd *ProgressSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, psd.sqlExec, psd.mutation, psd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (psd *ProgressSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := psd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (psd *ProgressSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(progresssnapshot.Table, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	if ps := psd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, psd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	psd.mutation.done = true
	return affected, err
}

// ProgressSnapshotDeleteOne is the builder for deleting a single ProgressSnapshot entity.
type ProgressSnapshotDeleteOne struct {
	psd *ProgressSnapshotDelete
}

// Where appends a list predicates to the ProgressSnapshotDelete builder.
func (psdo *ProgressSnapshotDeleteOne) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotDeleteOne {
	psdo.psd.mutation.Where(ps...)
	return psdo
}

// Exec executes the deletion query.
func (psdo *ProgressSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := psdo.psd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{progresssnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (psdo *ProgressSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := psdo.Exec(ctx); err != nil {
		panic(err)
	}
}
