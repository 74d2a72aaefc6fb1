// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/genrequestevent"
	"github.com/prepdeck/prepdeck/ent/predicate"
)

// GenRequestEventUpdate is the builder for updating GenRequestEvent entities.
type GenRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenRequestEventMutation
}

// Where appends a list predicates to the GenRequestEventUpdate builder.
func (_u *GenRequestEventUpdate) Where(ps ...predicate.GenRequestEvent) *GenRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *GenRequestEventUpdate) SetProvider(v string) *GenRequestEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableProvider(v *string) *GenRequestEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *GenRequestEventUpdate) SetModel(v string) *GenRequestEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableModel(v *string) *GenRequestEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *GenRequestEventUpdate) SetPurpose(v string) *GenRequestEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillablePurpose(v *string) *GenRequestEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *GenRequestEventUpdate) SetInputTokens(v int) *GenRequestEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableInputTokens(v *int) *GenRequestEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *GenRequestEventUpdate) AddInputTokens(v int) *GenRequestEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *GenRequestEventUpdate) SetOutputTokens(v int) *GenRequestEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableOutputTokens(v *int) *GenRequestEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *GenRequestEventUpdate) AddOutputTokens(v int) *GenRequestEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenRequestEventUpdate) SetLatencyMs(v int64) *GenRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableLatencyMs(v *int64) *GenRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenRequestEventUpdate) AddLatencyMs(v int64) *GenRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenRequestEventUpdate) SetSuccess(v bool) *GenRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableSuccess(v *bool) *GenRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenRequestEventUpdate) SetErrorMessage(v string) *GenRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableErrorMessage(v *string) *GenRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenRequestEventUpdate) ClearErrorMessage() *GenRequestEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetItemsGenerated sets the "items_generated" field.
func (_u *GenRequestEventUpdate) SetItemsGenerated(v int) *GenRequestEventUpdate {
	_u.mutation.ResetItemsGenerated()
	_u.mutation.SetItemsGenerated(v)
	return _u
}

// SetNillableItemsGenerated sets the "items_generated" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableItemsGenerated(v *int) *GenRequestEventUpdate {
	if v != nil {
		_u.SetItemsGenerated(*v)
	}
	return _u
}

// AddItemsGenerated adds value to the "items_generated" field.
func (_u *GenRequestEventUpdate) AddItemsGenerated(v int) *GenRequestEventUpdate {
	_u.mutation.AddItemsGenerated(v)
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *GenRequestEventUpdate) SetFallbackUsed(v bool) *GenRequestEventUpdate {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *GenRequestEventUpdate) SetNillableFallbackUsed(v *bool) *GenRequestEventUpdate {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the GenRequestEventMutation object of the builder.
func (_u *GenRequestEventUpdate) Mutation() *GenRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenRequestEventUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := genrequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "GenRequestEvent.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *GenRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(genrequestevent.Table, genrequestevent.Columns, sqlgraph.NewFieldSpec(genrequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(genrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(genrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(genrequestevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(genrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(genrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(genrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(genrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(genrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(genrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(genrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(genrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(genrequestevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsGenerated(); ok {
		_spec.SetField(genrequestevent.FieldItemsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsGenerated(); ok {
		_spec.AddField(genrequestevent.FieldItemsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(genrequestevent.FieldFallbackUsed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{genrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenRequestEventUpdateOne is the builder for updating a single GenRequestEvent entity.
type GenRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenRequestEventMutation
}

// SetProvider sets the "provider" field.
func (_u *GenRequestEventUpdateOne) SetProvider(v string) *GenRequestEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableProvider(v *string) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *GenRequestEventUpdateOne) SetModel(v string) *GenRequestEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableModel(v *string) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *GenRequestEventUpdateOne) SetPurpose(v string) *GenRequestEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillablePurpose(v *string) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *GenRequestEventUpdateOne) SetInputTokens(v int) *GenRequestEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableInputTokens(v *int) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *GenRequestEventUpdateOne) AddInputTokens(v int) *GenRequestEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *GenRequestEventUpdateOne) SetOutputTokens(v int) *GenRequestEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableOutputTokens(v *int) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *GenRequestEventUpdateOne) AddOutputTokens(v int) *GenRequestEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GenRequestEventUpdateOne) SetLatencyMs(v int64) *GenRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GenRequestEventUpdateOne) AddLatencyMs(v int64) *GenRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenRequestEventUpdateOne) SetSuccess(v bool) *GenRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableSuccess(v *bool) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *GenRequestEventUpdateOne) SetErrorMessage(v string) *GenRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableErrorMessage(v *string) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *GenRequestEventUpdateOne) ClearErrorMessage() *GenRequestEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetItemsGenerated sets the "items_generated" field.
func (_u *GenRequestEventUpdateOne) SetItemsGenerated(v int) *GenRequestEventUpdateOne {
	_u.mutation.ResetItemsGenerated()
	_u.mutation.SetItemsGenerated(v)
	return _u
}

// SetNillableItemsGenerated sets the "items_generated" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableItemsGenerated(v *int) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetItemsGenerated(*v)
	}
	return _u
}

// AddItemsGenerated adds value to the "items_generated" field.
func (_u *GenRequestEventUpdateOne) AddItemsGenerated(v int) *GenRequestEventUpdateOne {
	_u.mutation.AddItemsGenerated(v)
	return _u
}

// SetFallbackUsed sets the "fallback_used" field.
func (_u *GenRequestEventUpdateOne) SetFallbackUsed(v bool) *GenRequestEventUpdateOne {
	_u.mutation.SetFallbackUsed(v)
	return _u
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_u *GenRequestEventUpdateOne) SetNillableFallbackUsed(v *bool) *GenRequestEventUpdateOne {
	if v != nil {
		_u.SetFallbackUsed(*v)
	}
	return _u
}

// Mutation returns the GenRequestEventMutation object of the builder.
func (_u *GenRequestEventUpdateOne) Mutation() *GenRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenRequestEventUpdate builder.
func (_u *GenRequestEventUpdateOne) Where(ps ...predicate.GenRequestEvent) *GenRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenRequestEventUpdateOne) Select(field string, fields ...string) *GenRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenRequestEvent entity.
func (_u *GenRequestEventUpdateOne) Save(ctx context.Context) (*GenRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenRequestEventUpdateOne) SaveX(ctx context.Context) *GenRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenRequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := genrequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "GenRequestEvent.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *GenRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *GenRequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(genrequestevent.Table, genrequestevent.Columns, sqlgraph.NewFieldSpec(genrequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, genrequestevent.FieldID)
		for _, f := range fields {
			if !genrequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != genrequestevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(genrequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(genrequestevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(genrequestevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(genrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(genrequestevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(genrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(genrequestevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(genrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(genrequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(genrequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(genrequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(genrequestevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ItemsGenerated(); ok {
		_spec.SetField(genrequestevent.FieldItemsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsGenerated(); ok {
		_spec.AddField(genrequestevent.FieldItemsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackUsed(); ok {
		_spec.SetField(genrequestevent.FieldFallbackUsed, field.TypeBool, value)
	}
	_node = &GenRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{genrequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
