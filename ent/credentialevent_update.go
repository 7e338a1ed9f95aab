// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/clincase/ent/credentialevent"
	"github.com/abhisek/clincase/ent/predicate"
)

// CredentialEventUpdate is the builder for updating CredentialEvent entities.
type CredentialEventUpdate struct {
	config
	hooks    []Hook
	mutation *CredentialEventMutation
}

// Where appends a list predicates to the CredentialEventUpdate builder.
func (_u *CredentialEventUpdate) Where(ps ...predicate.CredentialEvent) *CredentialEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CredentialEventUpdate) SetSessionID(v string) *CredentialEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CredentialEventUpdate) SetNillableSessionID(v *string) *CredentialEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CredentialEventUpdate) SetCaseID(v string) *CredentialEventUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CredentialEventUpdate) SetNillableCaseID(v *string) *CredentialEventUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetCaseTitle sets the "case_title" field.
func (_u *CredentialEventUpdate) SetCaseTitle(v string) *CredentialEventUpdate {
	_u.mutation.SetCaseTitle(v)
	return _u
}

// SetNillableCaseTitle sets the "case_title" field if the given value is not nil.
func (_u *CredentialEventUpdate) SetNillableCaseTitle(v *string) *CredentialEventUpdate {
	if v != nil {
		_u.SetCaseTitle(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *CredentialEventUpdate) SetCredits(v float64) *CredentialEventUpdate {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *CredentialEventUpdate) SetNillableCredits(v *float64) *CredentialEventUpdate {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *CredentialEventUpdate) AddCredits(v float64) *CredentialEventUpdate {
	_u.mutation.AddCredits(v)
	return _u
}

// SetStepsTaken sets the "steps_taken" field.
func (_u *CredentialEventUpdate) SetStepsTaken(v int) *CredentialEventUpdate {
	_u.mutation.ResetStepsTaken()
	_u.mutation.SetStepsTaken(v)
	return _u
}

// SetNillableStepsTaken sets the "steps_taken" field if the given value is not nil.
func (_u *CredentialEventUpdate) SetNillableStepsTaken(v *int) *CredentialEventUpdate {
	if v != nil {
		_u.SetStepsTaken(*v)
	}
	return _u
}

// AddStepsTaken adds value to the "steps_taken" field.
func (_u *CredentialEventUpdate) AddStepsTaken(v int) *CredentialEventUpdate {
	_u.mutation.AddStepsTaken(v)
	return _u
}

// Mutation returns the CredentialEventMutation object of the builder.
func (_u *CredentialEventUpdate) Mutation() *CredentialEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CredentialEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CredentialEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := credentialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := credentialevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseTitle(); ok {
		if err := credentialevent.CaseTitleValidator(v); err != nil {
			return &ValidationError{Name: "case_title", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_title": %w`, err)}
		}
	}
	return nil
}

func (_u *CredentialEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credentialevent.Table, credentialevent.Columns, sqlgraph.NewFieldSpec(credentialevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(credentialevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(credentialevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseTitle(); ok {
		_spec.SetField(credentialevent.FieldCaseTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(credentialevent.FieldCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(credentialevent.FieldCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StepsTaken(); ok {
		_spec.SetField(credentialevent.FieldStepsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsTaken(); ok {
		_spec.AddField(credentialevent.FieldStepsTaken, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credentialevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CredentialEventUpdateOne is the builder for updating a single CredentialEvent entity.
type CredentialEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CredentialEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CredentialEventUpdateOne) SetSessionID(v string) *CredentialEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CredentialEventUpdateOne) SetNillableSessionID(v *string) *CredentialEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CredentialEventUpdateOne) SetCaseID(v string) *CredentialEventUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CredentialEventUpdateOne) SetNillableCaseID(v *string) *CredentialEventUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetCaseTitle sets the "case_title" field.
func (_u *CredentialEventUpdateOne) SetCaseTitle(v string) *CredentialEventUpdateOne {
	_u.mutation.SetCaseTitle(v)
	return _u
}

// SetNillableCaseTitle sets the "case_title" field if the given value is not nil.
func (_u *CredentialEventUpdateOne) SetNillableCaseTitle(v *string) *CredentialEventUpdateOne {
	if v != nil {
		_u.SetCaseTitle(*v)
	}
	return _u
}

// SetCredits sets the "credits" field.
func (_u *CredentialEventUpdateOne) SetCredits(v float64) *CredentialEventUpdateOne {
	_u.mutation.ResetCredits()
	_u.mutation.SetCredits(v)
	return _u
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (_u *CredentialEventUpdateOne) SetNillableCredits(v *float64) *CredentialEventUpdateOne {
	if v != nil {
		_u.SetCredits(*v)
	}
	return _u
}

// AddCredits adds value to the "credits" field.
func (_u *CredentialEventUpdateOne) AddCredits(v float64) *CredentialEventUpdateOne {
	_u.mutation.AddCredits(v)
	return _u
}

// SetStepsTaken sets the "steps_taken" field.
func (_u *CredentialEventUpdateOne) SetStepsTaken(v int) *CredentialEventUpdateOne {
	_u.mutation.ResetStepsTaken()
	_u.mutation.SetStepsTaken(v)
	return _u
}

// SetNillableStepsTaken sets the "steps_taken" field if the given value is not nil.
func (_u *CredentialEventUpdateOne) SetNillableStepsTaken(v *int) *CredentialEventUpdateOne {
	if v != nil {
		_u.SetStepsTaken(*v)
	}
	return _u
}

// AddStepsTaken adds value to the "steps_taken" field.
func (_u *CredentialEventUpdateOne) AddStepsTaken(v int) *CredentialEventUpdateOne {
	_u.mutation.AddStepsTaken(v)
	return _u
}

// Mutation returns the CredentialEventMutation object of the builder.
func (_u *CredentialEventUpdateOne) Mutation() *CredentialEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CredentialEventUpdate builder.
func (_u *CredentialEventUpdateOne) Where(ps ...predicate.CredentialEvent) *CredentialEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CredentialEventUpdateOne) Select(field string, fields ...string) *CredentialEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CredentialEvent entity.
func (_u *CredentialEventUpdateOne) Save(ctx context.Context) (*CredentialEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CredentialEventUpdateOne) SaveX(ctx context.Context) *CredentialEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CredentialEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CredentialEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CredentialEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := credentialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := credentialevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseTitle(); ok {
		if err := credentialevent.CaseTitleValidator(v); err != nil {
			return &ValidationError{Name: "case_title", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_title": %w`, err)}
		}
	}
	return nil
}

func (_u *CredentialEventUpdateOne) sqlSave(ctx context.Context) (_node *CredentialEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credentialevent.Table, credentialevent.Columns, sqlgraph.NewFieldSpec(credentialevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CredentialEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credentialevent.FieldID)
		for _, f := range fields {
			if !credentialevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credentialevent.FieldID {
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
		_spec.SetField(credentialevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(credentialevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaseTitle(); ok {
		_spec.SetField(credentialevent.FieldCaseTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Credits(); ok {
		_spec.SetField(credentialevent.FieldCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCredits(); ok {
		_spec.AddField(credentialevent.FieldCredits, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StepsTaken(); ok {
		_spec.SetField(credentialevent.FieldStepsTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepsTaken(); ok {
		_spec.AddField(credentialevent.FieldStepsTaken, field.TypeInt, value)
	}
	_node = &CredentialEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credentialevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
