// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/lingo/ent/completionevent"
	"github.com/smehra/lingo/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (ceu *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	ceu.mutation.Where(ps...)
	return ceu
}

// SetAction sets the "action" field.
func (ceu *CompletionEventUpdate) SetAction(s string) *CompletionEventUpdate {
	ceu.mutation.SetAction(s)
	return ceu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableAction(s *string) *CompletionEventUpdate {
	if s != nil {
		ceu.SetAction(*s)
	}
	return ceu
}

// SetModuleID sets the "module_id" field.
func (ceu *CompletionEventUpdate) SetModuleID(s string) *CompletionEventUpdate {
	ceu.mutation.SetModuleID(s)
	return ceu
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableModuleID(s *string) *CompletionEventUpdate {
	if s != nil {
		ceu.SetModuleID(*s)
	}
	return ceu
}

// ClearModuleID clears the value of the "module_id" field.
func (ceu *CompletionEventUpdate) ClearModuleID() *CompletionEventUpdate {
	ceu.mutation.ClearModuleID()
	return ceu
}

// SetNewlyUnlocked sets the "newly_unlocked" field.
func (ceu *CompletionEventUpdate) SetNewlyUnlocked(i int) *CompletionEventUpdate {
	ceu.mutation.ResetNewlyUnlocked()
	ceu.mutation.SetNewlyUnlocked(i)
	return ceu
}

// SetNillableNewlyUnlocked sets the "newly_unlocked" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableNewlyUnlocked(i *int) *CompletionEventUpdate {
	if i != nil {
		ceu.SetNewlyUnlocked(*i)
	}
	return ceu
}

// AddNewlyUnlocked adds i to the "newly_unlocked" field.
func (ceu *CompletionEventUpdate) AddNewlyUnlocked(i int) *CompletionEventUpdate {
	ceu.mutation.AddNewlyUnlocked(i)
	return ceu
}

// SetSessionID sets the "session_id" field.
func (ceu *CompletionEventUpdate) SetSessionID(s string) *CompletionEventUpdate {
	ceu.mutation.SetSessionID(s)
	return ceu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ceu *CompletionEventUpdate) SetNillableSessionID(s *string) *CompletionEventUpdate {
	if s != nil {
		ceu.SetSessionID(*s)
	}
	return ceu
}

// ClearSessionID clears the value of the "session_id" field.
func (ceu *CompletionEventUpdate) ClearSessionID() *CompletionEventUpdate {
	ceu.mutation.ClearSessionID()
	return ceu
}

// Mutation returns the CompletionEventMutation object of the builder.
func (ceu *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return ceu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ceu *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ceu.sqlSave, ceu.mutation, ceu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceu *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := ceu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ceu *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := ceu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceu *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := ceu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceu *CompletionEventUpdate) check() error {
	if v, ok := ceu.mutation.Action(); ok {
		if err := completionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (ceu *CompletionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ceu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := ceu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceu.mutation.Action(); ok {
		_spec.SetField(completionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := ceu.mutation.ModuleID(); ok {
		_spec.SetField(completionevent.FieldModuleID, field.TypeString, value)
	}
	if ceu.mutation.ModuleIDCleared() {
		_spec.ClearField(completionevent.FieldModuleID, field.TypeString)
	}
	if value, ok := ceu.mutation.NewlyUnlocked(); ok {
		_spec.SetField(completionevent.FieldNewlyUnlocked, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.AddedNewlyUnlocked(); ok {
		_spec.AddField(completionevent.FieldNewlyUnlocked, field.TypeInt, value)
	}
	if value, ok := ceu.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if ceu.mutation.SessionIDCleared() {
		_spec.ClearField(completionevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ceu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ceu.mutation.done = true
	return n, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetAction sets the "action" field.
func (ceuo *CompletionEventUpdateOne) SetAction(s string) *CompletionEventUpdateOne {
	ceuo.mutation.SetAction(s)
	return ceuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableAction(s *string) *CompletionEventUpdateOne {
	if s != nil {
		ceuo.SetAction(*s)
	}
	return ceuo
}

// SetModuleID sets the "module_id" field.
func (ceuo *CompletionEventUpdateOne) SetModuleID(s string) *CompletionEventUpdateOne {
	ceuo.mutation.SetModuleID(s)
	return ceuo
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableModuleID(s *string) *CompletionEventUpdateOne {
	if s != nil {
		ceuo.SetModuleID(*s)
	}
	return ceuo
}

// ClearModuleID clears the value of the "module_id" field.
func (ceuo *CompletionEventUpdateOne) ClearModuleID() *CompletionEventUpdateOne {
	ceuo.mutation.ClearModuleID()
	return ceuo
}

// SetNewlyUnlocked sets the "newly_unlocked" field.
func (ceuo *CompletionEventUpdateOne) SetNewlyUnlocked(i int) *CompletionEventUpdateOne {
	ceuo.mutation.ResetNewlyUnlocked()
	ceuo.mutation.SetNewlyUnlocked(i)
	return ceuo
}

// SetNillableNewlyUnlocked sets the "newly_unlocked" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableNewlyUnlocked(i *int) *CompletionEventUpdateOne {
	if i != nil {
		ceuo.SetNewlyUnlocked(*i)
	}
	return ceuo
}

// AddNewlyUnlocked adds i to the "newly_unlocked" field.
func (ceuo *CompletionEventUpdateOne) AddNewlyUnlocked(i int) *CompletionEventUpdateOne {
	ceuo.mutation.AddNewlyUnlocked(i)
	return ceuo
}

// SetSessionID sets the "session_id" field.
func (ceuo *CompletionEventUpdateOne) SetSessionID(s string) *CompletionEventUpdateOne {
	ceuo.mutation.SetSessionID(s)
	return ceuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ceuo *CompletionEventUpdateOne) SetNillableSessionID(s *string) *CompletionEventUpdateOne {
	if s != nil {
		ceuo.SetSessionID(*s)
	}
	return ceuo
}

// ClearSessionID clears the value of the "session_id" field.
func (ceuo *CompletionEventUpdateOne) ClearSessionID() *CompletionEventUpdateOne {
	ceuo.mutation.ClearSessionID()
	return ceuo
}

// Mutation returns the CompletionEventMutation object of the builder.
func (ceuo *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return ceuo.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (ceuo *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	ceuo.mutation.Where(ps...)
	return ceuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ceuo *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	ceuo.fields = append([]string{field}, fields...)
	return ceuo
}

// Save executes the query and returns the updated CompletionEvent entity.
func (ceuo *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, ceuo.sqlSave, ceuo.mutation, ceuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ceuo *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := ceuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ceuo *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := ceuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ceuo *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := ceuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ceuo *CompletionEventUpdateOne) check() error {
	if v, ok := ceuo.mutation.Action(); ok {
		if err := completionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (ceuo *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := ceuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := ceuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ceuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ceuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ceuo.mutation.Action(); ok {
		_spec.SetField(completionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := ceuo.mutation.ModuleID(); ok {
		_spec.SetField(completionevent.FieldModuleID, field.TypeString, value)
	}
	if ceuo.mutation.ModuleIDCleared() {
		_spec.ClearField(completionevent.FieldModuleID, field.TypeString)
	}
	if value, ok := ceuo.mutation.NewlyUnlocked(); ok {
		_spec.SetField(completionevent.FieldNewlyUnlocked, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.AddedNewlyUnlocked(); ok {
		_spec.AddField(completionevent.FieldNewlyUnlocked, field.TypeInt, value)
	}
	if value, ok := ceuo.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if ceuo.mutation.SessionIDCleared() {
		_spec.ClearField(completionevent.FieldSessionID, field.TypeString)
	}
	_node = &CompletionEvent{config: ceuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ceuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ceuo.mutation.done = true
	return _node, nil
}
