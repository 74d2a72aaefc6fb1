// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prepdeck/prepdeck/ent/genrequestevent"
)

// GenRequestEventCreate is the builder for creating a GenRequestEvent entity.
type GenRequestEventCreate struct {
	config
	mutation *GenRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GenRequestEventCreate) SetSequence(v int64) *GenRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GenRequestEventCreate) SetTimestamp(v time.Time) *GenRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GenRequestEventCreate) SetNillableTimestamp(v *time.Time) *GenRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *GenRequestEventCreate) SetProvider(v string) *GenRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *GenRequestEventCreate) SetModel(v string) *GenRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *GenRequestEventCreate) SetPurpose(v string) *GenRequestEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *GenRequestEventCreate) SetInputTokens(v int) *GenRequestEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *GenRequestEventCreate) SetOutputTokens(v int) *GenRequestEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GenRequestEventCreate) SetLatencyMs(v int64) *GenRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *GenRequestEventCreate) SetSuccess(v bool) *GenRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *GenRequestEventCreate) SetErrorMessage(v string) *GenRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *GenRequestEventCreate) SetNillableErrorMessage(v *string) *GenRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetItemsGenerated sets the "items_generated" field.
func (_c *GenRequestEventCreate) SetItemsGenerated(v int) *GenRequestEventCreate {
	_c.mutation.SetItemsGenerated(v)
	return _c
}

// SetNillableItemsGenerated sets the "items_generated" field if the given value is not nil.
func (_c *GenRequestEventCreate) SetNillableItemsGenerated(v *int) *GenRequestEventCreate {
	if v != nil {
		_c.SetItemsGenerated(*v)
	}
	return _c
}

// SetFallbackUsed sets the "fallback_used" field.
func (_c *GenRequestEventCreate) SetFallbackUsed(v bool) *GenRequestEventCreate {
	_c.mutation.SetFallbackUsed(v)
	return _c
}

// SetNillableFallbackUsed sets the "fallback_used" field if the given value is not nil.
func (_c *GenRequestEventCreate) SetNillableFallbackUsed(v *bool) *GenRequestEventCreate {
	if v != nil {
		_c.SetFallbackUsed(*v)
	}
	return _c
}

// Mutation returns the GenRequestEventMutation object of the builder.
func (_c *GenRequestEventCreate) Mutation() *GenRequestEventMutation {
	return _c.mutation
}

// Save creates the GenRequestEvent in the database.
func (_c *GenRequestEventCreate) Save(ctx context.Context) (*GenRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenRequestEventCreate) SaveX(ctx context.Context) *GenRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := genrequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ItemsGenerated(); !ok {
		v := genrequestevent.DefaultItemsGenerated
		_c.mutation.SetItemsGenerated(v)
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		v := genrequestevent.DefaultFallbackUsed
		_c.mutation.SetFallbackUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GenRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GenRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "GenRequestEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := genrequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "GenRequestEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "GenRequestEvent.model"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "GenRequestEvent.purpose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "GenRequestEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "GenRequestEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GenRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "GenRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ItemsGenerated(); !ok {
		return &ValidationError{Name: "items_generated", err: errors.New(`ent: missing required field "GenRequestEvent.items_generated"`)}
	}
	if _, ok := _c.mutation.FallbackUsed(); !ok {
		return &ValidationError{Name: "fallback_used", err: errors.New(`ent: missing required field "GenRequestEvent.fallback_used"`)}
	}
	return nil
}

func (_c *GenRequestEventCreate) sqlSave(ctx context.Context) (*GenRequestEvent, error) {
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

func (_c *GenRequestEventCreate) createSpec() (*GenRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GenRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(genrequestevent.Table, sqlgraph.NewFieldSpec(genrequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(genrequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(genrequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(genrequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(genrequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(genrequestevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(genrequestevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(genrequestevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(genrequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(genrequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(genrequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ItemsGenerated(); ok {
		_spec.SetField(genrequestevent.FieldItemsGenerated, field.TypeInt, value)
		_node.ItemsGenerated = value
	}
	if value, ok := _c.mutation.FallbackUsed(); ok {
		_spec.SetField(genrequestevent.FieldFallbackUsed, field.TypeBool, value)
		_node.FallbackUsed = value
	}
	return _node, _spec
}

// GenRequestEventCreateBulk is the builder for creating many GenRequestEvent entities in bulk.
type GenRequestEventCreateBulk struct {
	config
	err      error
	builders []*GenRequestEventCreate
}

// Save creates the GenRequestEvent entities in the database.
func (_c *GenRequestEventCreateBulk) Save(ctx context.Context) ([]*GenRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenRequestEventMutation)
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
func (_c *GenRequestEventCreateBulk) SaveX(ctx context.Context) []*GenRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
