// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/clincase/ent/credentialevent"
)

// CredentialEventCreate is the builder for creating a CredentialEvent entity.
type CredentialEventCreate struct {
	config
	mutation *CredentialEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CredentialEventCreate) SetSequence(v int64) *CredentialEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CredentialEventCreate) SetTimestamp(v time.Time) *CredentialEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CredentialEventCreate) SetNillableTimestamp(v *time.Time) *CredentialEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CredentialEventCreate) SetSessionID(v string) *CredentialEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *CredentialEventCreate) SetCaseID(v string) *CredentialEventCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetCaseTitle sets the "case_title" field.
func (_c *CredentialEventCreate) SetCaseTitle(v string) *CredentialEventCreate {
	_c.mutation.SetCaseTitle(v)
	return _c
}

// SetCredits sets the "credits" field.
func (_c *CredentialEventCreate) SetCredits(v float64) *CredentialEventCreate {
	_c.mutation.SetCredits(v)
	return _c
}

// SetStepsTaken sets the "steps_taken" field.
func (_c *CredentialEventCreate) SetStepsTaken(v int) *CredentialEventCreate {
	_c.mutation.SetStepsTaken(v)
	return _c
}

// SetNillableStepsTaken sets the "steps_taken" field if the given value is not nil.
func (_c *CredentialEventCreate) SetNillableStepsTaken(v *int) *CredentialEventCreate {
	if v != nil {
		_c.SetStepsTaken(*v)
	}
	return _c
}

// Mutation returns the CredentialEventMutation object of the builder.
func (_c *CredentialEventCreate) Mutation() *CredentialEventMutation {
	return _c.mutation
}

// Save creates the CredentialEvent in the database.
func (_c *CredentialEventCreate) Save(ctx context.Context) (*CredentialEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CredentialEventCreate) SaveX(ctx context.Context) *CredentialEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CredentialEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CredentialEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CredentialEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := credentialevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StepsTaken(); !ok {
		v := credentialevent.DefaultStepsTaken
		_c.mutation.SetStepsTaken(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CredentialEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CredentialEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CredentialEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CredentialEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := credentialevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "CredentialEvent.case_id"`)}
	}
	if v, ok := _c.mutation.CaseID(); ok {
		if err := credentialevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseTitle(); !ok {
		return &ValidationError{Name: "case_title", err: errors.New(`ent: missing required field "CredentialEvent.case_title"`)}
	}
	if v, ok := _c.mutation.CaseTitle(); ok {
		if err := credentialevent.CaseTitleValidator(v); err != nil {
			return &ValidationError{Name: "case_title", err: fmt.Errorf(`ent: validator failed for field "CredentialEvent.case_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Credits(); !ok {
		return &ValidationError{Name: "credits", err: errors.New(`ent: missing required field "CredentialEvent.credits"`)}
	}
	if _, ok := _c.mutation.StepsTaken(); !ok {
		return &ValidationError{Name: "steps_taken", err: errors.New(`ent: missing required field "CredentialEvent.steps_taken"`)}
	}
	return nil
}

func (_c *CredentialEventCreate) sqlSave(ctx context.Context) (*CredentialEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CredentialEventCreate) createSpec() (*CredentialEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CredentialEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(credentialevent.Table, sqlgraph.NewFieldSpec(credentialevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(credentialevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(credentialevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(credentialevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(credentialevent.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.CaseTitle(); ok {
		_spec.SetField(credentialevent.FieldCaseTitle, field.TypeString, value)
		_node.CaseTitle = value
	}
	if value, ok := _c.mutation.Credits(); ok {
		_spec.SetField(credentialevent.FieldCredits, field.TypeFloat64, value)
		_node.Credits = value
	}
	if value, ok := _c.mutation.StepsTaken(); ok {
		_spec.SetField(credentialevent.FieldStepsTaken, field.TypeInt, value)
		_node.StepsTaken = value
	}
	return _node, _spec
}

// CredentialEventCreateBulk is the builder for creating many CredentialEvent entities in bulk.
type CredentialEventCreateBulk struct {
	config
	err      error
	builders []*CredentialEventCreate
}

// Save creates the CredentialEvent entities in the database.
func (_c *CredentialEventCreateBulk) Save(ctx context.Context) ([]*CredentialEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CredentialEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CredentialEventMutation)
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CredentialEventCreateBulk) SaveX(ctx context.Context) []*CredentialEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CredentialEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CredentialEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
