// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/attemptevent"
	"github.com/prepdeck/prepdeck/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_u *AttemptEventUpdate) SetMarksAwarded(v float64) *AttemptEventUpdate {
	_u.mutation.ResetMarksAwarded()
	_u.mutation.SetMarksAwarded(v)
	return _u
}

// SetNillableMarksAwarded sets the "marks_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMarksAwarded(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetMarksAwarded(*v)
	}
	return _u
}

// AddMarksAwarded adds value to the "marks_awarded" field.
func (_u *AttemptEventUpdate) AddMarksAwarded(v float64) *AttemptEventUpdate {
	_u.mutation.AddMarksAwarded(v)
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *AttemptEventUpdate) SetMaxMarks(v float64) *AttemptEventUpdate {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMaxMarks(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *AttemptEventUpdate) AddMaxMarks(v float64) *AttemptEventUpdate {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdate) SetCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswers(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdate) AddCorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetIncorrectAnswers sets the "incorrect_answers" field.
func (_u *AttemptEventUpdate) SetIncorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.ResetIncorrectAnswers()
	_u.mutation.SetIncorrectAnswers(v)
	return _u
}

// SetNillableIncorrectAnswers sets the "incorrect_answers" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIncorrectAnswers(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetIncorrectAnswers(*v)
	}
	return _u
}

// AddIncorrectAnswers adds value to the "incorrect_answers" field.
func (_u *AttemptEventUpdate) AddIncorrectAnswers(v int) *AttemptEventUpdate {
	_u.mutation.AddIncorrectAnswers(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptEventUpdate) SetUnanswered(v int) *AttemptEventUpdate {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUnanswered(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptEventUpdate) AddUnanswered(v int) *AttemptEventUpdate {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *AttemptEventUpdate) SetTotalTimeSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotalTimeSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *AttemptEventUpdate) AddTotalTimeSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptEventUpdate) SetStatus(v string) *AttemptEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStatus(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attemptevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MarksAwarded(); ok {
		_spec.SetField(attemptevent.FieldMarksAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarksAwarded(); ok {
		_spec.AddField(attemptevent.FieldMarksAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(attemptevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(attemptevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(attemptevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attemptevent.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_u *AttemptEventUpdateOne) SetMarksAwarded(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetMarksAwarded()
	_u.mutation.SetMarksAwarded(v)
	return _u
}

// SetNillableMarksAwarded sets the "marks_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMarksAwarded(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMarksAwarded(*v)
	}
	return _u
}

// AddMarksAwarded adds value to the "marks_awarded" field.
func (_u *AttemptEventUpdateOne) AddMarksAwarded(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddMarksAwarded(v)
	return _u
}

// SetMaxMarks sets the "max_marks" field.
func (_u *AttemptEventUpdateOne) SetMaxMarks(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetMaxMarks()
	_u.mutation.SetMaxMarks(v)
	return _u
}

// SetNillableMaxMarks sets the "max_marks" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMaxMarks(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMaxMarks(*v)
	}
	return _u
}

// AddMaxMarks adds value to the "max_marks" field.
func (_u *AttemptEventUpdateOne) AddMaxMarks(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddMaxMarks(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswers(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptEventUpdateOne) AddCorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetIncorrectAnswers sets the "incorrect_answers" field.
func (_u *AttemptEventUpdateOne) SetIncorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetIncorrectAnswers()
	_u.mutation.SetIncorrectAnswers(v)
	return _u
}

// SetNillableIncorrectAnswers sets the "incorrect_answers" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIncorrectAnswers(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIncorrectAnswers(*v)
	}
	return _u
}

// AddIncorrectAnswers adds value to the "incorrect_answers" field.
func (_u *AttemptEventUpdateOne) AddIncorrectAnswers(v int) *AttemptEventUpdateOne {
	_u.mutation.AddIncorrectAnswers(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptEventUpdateOne) SetUnanswered(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUnanswered(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptEventUpdateOne) AddUnanswered(v int) *AttemptEventUpdateOne {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *AttemptEventUpdateOne) SetTotalTimeSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotalTimeSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *AttemptEventUpdateOne) AddTotalTimeSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptEventUpdateOne) SetStatus(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStatus(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attemptevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MarksAwarded(); ok {
		_spec.SetField(attemptevent.FieldMarksAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMarksAwarded(); ok {
		_spec.AddField(attemptevent.FieldMarksAwarded, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxMarks(); ok {
		_spec.SetField(attemptevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxMarks(); ok {
		_spec.AddField(attemptevent.FieldMaxMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAnswers(); ok {
		_spec.SetField(attemptevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAnswers(); ok {
		_spec.AddField(attemptevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attemptevent.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(attemptevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(attemptevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attemptevent.FieldStatus, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
