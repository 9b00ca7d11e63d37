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
	"github.com/smehra/lingo/ent/predicate"
	"github.com/smehra/lingo/ent/progresssnapshot"
)

// ProgressSnapshotUpdate is the builder for updating ProgressSnapshot entities.
type ProgressSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// Where appends a list predicates to the ProgressSnapshotUpdate builder.
func (psu *ProgressSnapshotUpdate) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetSequence sets the "sequence" field.
func (psu *ProgressSnapshotUpdate) SetSequence(i int64) *ProgressSnapshotUpdate {
	psu.mutation.ResetSequence()
	psu.mutation.SetSequence(i)
	return psu
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (psu *ProgressSnapshotUpdate) SetNillableSequence(i *int64) *ProgressSnapshotUpdate {
	if i != nil {
		psu.SetSequence(*i)
	}
	return psu
}

// AddSequence adds i to the "sequence" field.
func (psu *ProgressSnapshotUpdate) AddSequence(i int64) *ProgressSnapshotUpdate {
	psu.mutation.AddSequence(i)
	return psu
}

// SetTimestamp sets the "timestamp" field.
func (psu *ProgressSnapshotUpdate) SetTimestamp(t time.Time) *ProgressSnapshotUpdate {
	psu.mutation.SetTimestamp(t)
	return psu
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psu *ProgressSnapshotUpdate) SetNillableTimestamp(t *time.Time) *ProgressSnapshotUpdate {
	if t != nil {
		psu.SetTimestamp(*t)
	}
	return psu
}

// SetData sets the "data" field.
func (psu *ProgressSnapshotUpdate) SetData(m map[string]interface{}) *ProgressSnapshotUpdate {
	psu.mutation.SetData(m)
	return psu
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (psu *ProgressSnapshotUpdate) Mutation() *ProgressSnapshotMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *ProgressSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *ProgressSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *ProgressSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *ProgressSnapshotUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psu *ProgressSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progresssnapshot.Table, progresssnapshot.Columns, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.Sequence(); ok {
		_spec.SetField(progresssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedSequence(); ok {
		_spec.AddField(progresssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.Timestamp(); ok {
		_spec.SetField(progresssnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := psu.mutation.Data(); ok {
		_spec.SetField(progresssnapshot.FieldData, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progresssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// ProgressSnapshotUpdateOne is the builder for updating a single ProgressSnapshot entity.
type ProgressSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (psuo *ProgressSnapshotUpdateOne) SetSequence(i int64) *ProgressSnapshotUpdateOne {
	psuo.mutation.ResetSequence()
	psuo.mutation.SetSequence(i)
	return psuo
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (psuo *ProgressSnapshotUpdateOne) SetNillableSequence(i *int64) *ProgressSnapshotUpdateOne {
	if i != nil {
		psuo.SetSequence(*i)
	}
	return psuo
}

// AddSequence adds i to the "sequence" field.
func (psuo *ProgressSnapshotUpdateOne) AddSequence(i int64) *ProgressSnapshotUpdateOne {
	psuo.mutation.AddSequence(i)
	return psuo
}

// SetTimestamp sets the "timestamp" field.
func (psuo *ProgressSnapshotUpdateOne) SetTimestamp(t time.Time) *ProgressSnapshotUpdateOne {
	psuo.mutation.SetTimestamp(t)
	return psuo
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psuo *ProgressSnapshotUpdateOne) SetNillableTimestamp(t *time.Time) *ProgressSnapshotUpdateOne {
	if t != nil {
		psuo.SetTimestamp(*t)
	}
	return psuo
}

// SetData sets the "data" field.
func (psuo *ProgressSnapshotUpdateOne) SetData(m map[string]interface{}) *ProgressSnapshotUpdateOne {
	psuo.mutation.SetData(m)
	return psuo
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (psuo *ProgressSnapshotUpdateOne) Mutation() *ProgressSnapshotMutation {
	return psuo.mutation
}

// Where appends a list predicates to the ProgressSnapshotUpdate builder.
func (psuo *ProgressSnapshotUpdateOne) Where(ps ...predicate.ProgressSnapshot) *ProgressSnapshotUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *ProgressSnapshotUpdateOne) Select(field string, fields ...string) *ProgressSnapshotUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated ProgressSnapshot entity.
func (psuo *ProgressSnapshotUpdateOne) Save(ctx context.Context) (*ProgressSnapshot, error) {
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *ProgressSnapshotUpdateOne) SaveX(ctx context.Context) *ProgressSnapshot {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *ProgressSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *ProgressSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psuo *ProgressSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProgressSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(progresssnapshot.Table, progresssnapshot.Columns, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progresssnapshot.FieldID)
		for _, f := range fields {
			if !progresssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progresssnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.Sequence(); ok {
		_spec.SetField(progresssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedSequence(); ok {
		_spec.AddField(progresssnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.Timestamp(); ok {
		_spec.SetField(progresssnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := psuo.mutation.Data(); ok {
		_spec.SetField(progresssnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &ProgressSnapshot{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progresssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
