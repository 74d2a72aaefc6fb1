// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptEventCreate) SetAttemptID(v string) *AttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptEventCreate) SetScore(v float64) *AttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_c *AttemptEventCreate) SetMarksAwarded(v float64) *AttemptEventCreate {
	_c.mutation.SetMarksAwarded(v)
	return _c
}

// SetMaxMarks sets the "max_marks" field.
func (_c *AttemptEventCreate) SetMaxMarks(v float64) *AttemptEventCreate {
	_c.mutation.SetMaxMarks(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *AttemptEventCreate) SetCorrectAnswers(v int) *AttemptEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetIncorrectAnswers sets the "incorrect_answers" field.
func (_c *AttemptEventCreate) SetIncorrectAnswers(v int) *AttemptEventCreate {
	_c.mutation.SetIncorrectAnswers(v)
	return _c
}

// SetUnanswered sets the "unanswered" field.
func (_c *AttemptEventCreate) SetUnanswered(v int) *AttemptEventCreate {
	_c.mutation.SetUnanswered(v)
	return _c
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_c *AttemptEventCreate) SetTotalTimeSecs(v int) *AttemptEventCreate {
	_c.mutation.SetTotalTimeSecs(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AttemptEventCreate) SetStatus(v string) *AttemptEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.MarksAwarded(); !ok {
		return &ValidationError{Name: "marks_awarded", err: errors.New(`ent: missing required field "AttemptEvent.marks_awarded"`)}
	}
	if _, ok := _c.mutation.MaxMarks(); !ok {
		return &ValidationError{Name: "max_marks", err: errors.New(`ent: missing required field "AttemptEvent.max_marks"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "AttemptEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.IncorrectAnswers(); !ok {
		return &ValidationError{Name: "incorrect_answers", err: errors.New(`ent: missing required field "AttemptEvent.incorrect_answers"`)}
	}
	if _, ok := _c.mutation.Unanswered(); !ok {
		return &ValidationError{Name: "unanswered", err: errors.New(`ent: missing required field "AttemptEvent.unanswered"`)}
	}
	if _, ok := _c.mutation.TotalTimeSecs(); !ok {
		return &ValidationError{Name: "total_time_secs", err: errors.New(`ent: missing required field "AttemptEvent.total_time_secs"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AttemptEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := attemptevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MarksAwarded(); ok {
		_spec.SetField(attemptevent.FieldMarksAwarded, field.TypeFloat64, value)
		_node.MarksAwarded = value
	}
	if value, ok := _c.mutation.MaxMarks(); ok {
		_spec.SetField(attemptevent.FieldMaxMarks, field.TypeFloat64, value)
		_node.MaxMarks = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.IncorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAnswers, field.TypeInt, value)
		_node.IncorrectAnswers = value
	}
	if value, ok := _c.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
		_node.Unanswered = value
	}
	if value, ok := _c.mutation.TotalTimeSecs(); ok {
		_spec.SetField(attemptevent.FieldTotalTimeSecs, field.TypeInt, value)
		_node.TotalTimeSecs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(attemptevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
