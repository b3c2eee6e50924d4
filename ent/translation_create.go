// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/translation"
)

// TranslationCreate is the builder for creating a Translation entity.
type TranslationCreate struct {
	config
	mutation *TranslationMutation
	hooks    []Hook
}

// SetInputText sets the "input_text" field.
func (_c *TranslationCreate) SetInputText(v string) *TranslationCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetTargetLanguage sets the "target_language" field.
func (_c *TranslationCreate) SetTargetLanguage(v string) *TranslationCreate {
	_c.mutation.SetTargetLanguage(v)
	return _c
}

// SetOutputText sets the "output_text" field.
func (_c *TranslationCreate) SetOutputText(v string) *TranslationCreate {
	_c.mutation.SetOutputText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranslationCreate) SetCreatedAt(v time.Time) *TranslationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranslationCreate) SetNillableCreatedAt(v *time.Time) *TranslationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranslationCreate) SetID(v uuid.UUID) *TranslationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TranslationCreate) SetNillableID(v *uuid.UUID) *TranslationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TranslationMutation object of the builder.
func (_c *TranslationCreate) Mutation() *TranslationMutation {
	return _c.mutation
}

// Save creates the Translation in the database.
func (_c *TranslationCreate) Save(ctx context.Context) (*Translation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranslationCreate) SaveX(ctx context.Context) *Translation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranslationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := translation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := translation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranslationCreate) check() error {
	if _, ok := _c.mutation.InputText(); !ok {
		return &ValidationError{Name: "input_text", err: errors.New(`ent: missing required field "Translation.input_text"`)}
	}
	if v, ok := _c.mutation.InputText(); ok {
		if err := translation.InputTextValidator(v); err != nil {
			return &ValidationError{Name: "input_text", err: fmt.Errorf(`ent: validator failed for field "Translation.input_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetLanguage(); !ok {
		return &ValidationError{Name: "target_language", err: errors.New(`ent: missing required field "Translation.target_language"`)}
	}
	if v, ok := _c.mutation.TargetLanguage(); ok {
		if err := translation.TargetLanguageValidator(v); err != nil {
			return &ValidationError{Name: "target_language", err: fmt.Errorf(`ent: validator failed for field "Translation.target_language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputText(); !ok {
		return &ValidationError{Name: "output_text", err: errors.New(`ent: missing required field "Translation.output_text"`)}
	}
	if v, ok := _c.mutation.OutputText(); ok {
		if err := translation.OutputTextValidator(v); err != nil {
			return &ValidationError{Name: "output_text", err: fmt.Errorf(`ent: validator failed for field "Translation.output_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Translation.created_at"`)}
	}
	return nil
}

func (_c *TranslationCreate) sqlSave(ctx context.Context) (*Translation, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranslationCreate) createSpec() (*Translation, *sqlgraph.CreateSpec) {
	var (
		_node = &Translation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(translation.Table, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(translation.FieldInputText, field.TypeString, value)
		_node.InputText = value
	}
	if value, ok := _c.mutation.TargetLanguage(); ok {
		_spec.SetField(translation.FieldTargetLanguage, field.TypeString, value)
		_node.TargetLanguage = value
	}
	if value, ok := _c.mutation.OutputText(); ok {
		_spec.SetField(translation.FieldOutputText, field.TypeString, value)
		_node.OutputText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(translation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TranslationCreateBulk is the builder for creating many Translation entities in bulk.
type TranslationCreateBulk struct {
	config
	err      error
	builders []*TranslationCreate
}

// Save creates the Translation entities in the database.
func (_c *TranslationCreateBulk) Save(ctx context.Context) ([]*Translation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Translation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranslationMutation)
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
func (_c *TranslationCreateBulk) SaveX(ctx context.Context) []*Translation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranslationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranslationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
