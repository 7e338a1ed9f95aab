// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/clincase/ent/decisionevent"
	"github.com/abhisek/clincase/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdate) SetSessionID(v string) *DecisionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableSessionID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *DecisionEventUpdate) SetCaseID(v string) *DecisionEventUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableCaseID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *DecisionEventUpdate) SetStepIndex(v int) *DecisionEventUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStepIndex(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *DecisionEventUpdate) AddStepIndex(v int) *DecisionEventUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *DecisionEventUpdate) SetStage(v string) *DecisionEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStage(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *DecisionEventUpdate) SetDecision(v string) *DecisionEventUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableDecision(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetMatchedOptimal sets the "matched_optimal" field.
func (_u *DecisionEventUpdate) SetMatchedOptimal(v bool) *DecisionEventUpdate {
	_u.mutation.SetMatchedOptimal(v)
	return _u
}

// SetNillableMatchedOptimal sets the "matched_optimal" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableMatchedOptimal(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetMatchedOptimal(*v)
	}
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *DecisionEventUpdate) SetTerminal(v bool) *DecisionEventUpdate {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableTerminal(v *bool) *DecisionEventUpdate {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := decisionevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := decisionevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := decisionevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(decisionevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(decisionevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(decisionevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(decisionevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(decisionevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedOptimal(); ok {
		_spec.SetField(decisionevent.FieldMatchedOptimal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(decisionevent.FieldTerminal, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdateOne) SetSessionID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableSessionID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *DecisionEventUpdateOne) SetCaseID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableCaseID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *DecisionEventUpdateOne) SetStepIndex(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStepIndex(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *DecisionEventUpdateOne) AddStepIndex(v int) *DecisionEventUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *DecisionEventUpdateOne) SetStage(v string) *DecisionEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStage(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *DecisionEventUpdateOne) SetDecision(v string) *DecisionEventUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableDecision(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetMatchedOptimal sets the "matched_optimal" field.
func (_u *DecisionEventUpdateOne) SetMatchedOptimal(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetMatchedOptimal(v)
	return _u
}

// SetNillableMatchedOptimal sets the "matched_optimal" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableMatchedOptimal(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetMatchedOptimal(*v)
	}
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *DecisionEventUpdateOne) SetTerminal(v bool) *DecisionEventUpdateOne {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableTerminal(v *bool) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := decisionevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := decisionevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := decisionevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(decisionevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(decisionevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(decisionevent.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(decisionevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(decisionevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedOptimal(); ok {
		_spec.SetField(decisionevent.FieldMatchedOptimal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(decisionevent.FieldTerminal, field.TypeBool, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
