// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/lingo/ent/completionevent"
)

// CompletionEventCreate is the builder for creating a CompletionEvent entity.
type CompletionEventCreate struct {
	config
	mutation *CompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (cec *CompletionEventCreate) SetSequence(i int64) *CompletionEventCreate {
	cec.mutation.SetSequence(i)
	return cec
}

// SetTimestamp sets the "timestamp" field.
func (cec *CompletionEventCreate) SetTimestamp(t time.Time) *CompletionEventCreate {
	cec.mutation.SetTimestamp(t)
	return cec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (cec *CompletionEventCreate) SetNillableTimestamp(t *time.Time) *CompletionEventCreate {
	if t != nil {
		cec.SetTimestamp(*t)
	}
	return cec
}

// SetAction sets the "action" field.
func (cec *CompletionEventCreate) SetAction(s string) *CompletionEventCreate {
	cec.mutation.SetAction(s)
	return cec
}

// SetModuleID sets the "module_id" field.
func (cec *CompletionEventCreate) SetModuleID(s string) *CompletionEventCreate {
	cec.mutation.SetModuleID(s)
	return cec
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (cec *CompletionEventCreate) SetNillableModuleID(s *string) *CompletionEventCreate {
	if s != nil {
		cec.SetModuleID(*s)
	}
	return cec
}

// SetNewlyUnlocked sets the "newly_unlocked" field.
func (cec *CompletionEventCreate) SetNewlyUnlocked(i int) *CompletionEventCreate {
	cec.mutation.SetNewlyUnlocked(i)
	return cec
}

// SetNillableNewlyUnlocked sets the "newly_unlocked" field if the given value is not nil.
func (cec *CompletionEventCreate) SetNillableNewlyUnlocked(i *int) *CompletionEventCreate {
	if i != nil {
		cec.SetNewlyUnlocked(*i)
	}
	return cec
}

// SetSessionID sets the "session_id" field.
func (cec *CompletionEventCreate) SetSessionID(s string) *CompletionEventCreate {
	cec.mutation.SetSessionID(s)
	return cec
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (cec *CompletionEventCreate) SetNillableSessionID(s *string) *CompletionEventCreate {
	if s != nil {
		cec.SetSessionID(*s)
	}
	return cec
}

// Mutation returns the CompletionEventMutation object of the builder.
func (cec *CompletionEventCreate) Mutation() *CompletionEventMutation {
	return cec.mutation
}

// Save creates the CompletionEvent in the database.
func (cec *CompletionEventCreate) Save(ctx context.Context) (*CompletionEvent, error) {
	cec.defaults()
	return withHooks(ctx, cec.sqlSave, cec.mutation, cec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cec *CompletionEventCreate) SaveX(ctx context.Context) *CompletionEvent {
	v, err := cec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cec *CompletionEventCreate) Exec(ctx context.Context) error {
	_, err := cec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cec *CompletionEventCreate) ExecX(ctx context.Context) {
	if err := cec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cec *CompletionEventCreate) defaults() {
	if _, ok := cec.mutation.Timestamp(); !ok {
		v := completionevent.DefaultTimestamp()
		cec.mutation.SetTimestamp(v)
	}
	if _, ok := cec.mutation.NewlyUnlocked(); !ok {
		v := completionevent.DefaultNewlyUnlocked
		cec.mutation.SetNewlyUnlocked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cec *CompletionEventCreate) check() error {
	if _, ok := cec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CompletionEvent.sequence"`)}
	}
	if _, ok := cec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CompletionEvent.timestamp"`)}
	}
	if _, ok := cec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "CompletionEvent.action"`)}
	}
	if v, ok := cec.mutation.Action(); ok {
		if err := completionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.action": %w`, err)}
		}
	}
	if _, ok := cec.mutation.NewlyUnlocked(); !ok {
		return &ValidationError{Name: "newly_unlocked", err: errors.New(`ent: missing required field "CompletionEvent.newly_unlocked"`)}
	}
	return nil
}

func (cec *CompletionEventCreate) sqlSave(ctx context.Context) (*CompletionEvent, error) {
	if err := cec.check(); err != nil {
		return nil, err
	}
	_node, _spec := cec.createSpec()
	if err := sqlgraph.CreateNode(ctx, cec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	cec.mutation.id = &_node.ID
	cec.mutation.done = true
	return _node, nil
}

func (cec *CompletionEventCreate) createSpec() (*CompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionEvent{config: cec.config}
		_spec = sqlgraph.NewCreateSpec(completionevent.Table, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	)
	if value, ok := cec.mutation.Sequence(); ok {
		_spec.SetField(completionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := cec.mutation.Timestamp(); ok {
		_spec.SetField(completionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := cec.mutation.Action(); ok {
		_spec.SetField(completionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := cec.mutation.ModuleID(); ok {
		_spec.SetField(completionevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := cec.mutation.NewlyUnlocked(); ok {
		_spec.SetField(completionevent.FieldNewlyUnlocked, field.TypeInt, value)
		_node.NewlyUnlocked = value
	}
	if value, ok := cec.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// CompletionEventCreateBulk is the builder for creating many CompletionEvent entities in bulk.
type CompletionEventCreateBulk struct {
	config
	err      error
	builders []*CompletionEventCreate
}

// Save creates the CompletionEvent entities in the database.
func (cecb *CompletionEventCreateBulk) Save(ctx context.Context) ([]*CompletionEvent, error) {
	if cecb.err != nil {
		return nil, cecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cecb.builders))
	nodes := make([]*CompletionEvent, len(cecb.builders))
	mutators := make([]Mutator, len(cecb.builders))
	for i := range cecb.builders {
		func(i int, root context.Context) {
			builder := cecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, cecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, cecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cecb *CompletionEventCreateBulk) SaveX(ctx context.Context) []*CompletionEvent {
	v, err := cecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cecb *CompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := cecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cecb *CompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := cecb.Exec(ctx); err != nil {
		panic(err)
	}
}
