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
	"github.com/lingvoapp/lingvo-api/ent/grammar"
	"github.com/lingvoapp/lingvo-api/ent/pack"
)

// GrammarCreate is the builder for creating a Grammar entity.
type GrammarCreate struct {
	config
	mutation *GrammarMutation
	hooks    []Hook
}

// SetPackID sets the "pack_id" field.
func (_c *GrammarCreate) SetPackID(v uuid.UUID) *GrammarCreate {
	_c.mutation.SetPackID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *GrammarCreate) SetType(v grammar.Type) *GrammarCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *GrammarCreate) SetQuestionText(v string) *GrammarCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableQuestionText(v *string) *GrammarCreate {
	if v != nil {
		_c.SetQuestionText(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *GrammarCreate) SetOptions(v []string) *GrammarCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOption sets the "correct_option" field.
func (_c *GrammarCreate) SetCorrectOption(v int) *GrammarCreate {
	_c.mutation.SetCorrectOption(v)
	return _c
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableCorrectOption(v *int) *GrammarCreate {
	if v != nil {
		_c.SetCorrectOption(*v)
	}
	return _c
}

// SetSentence sets the "sentence" field.
func (_c *GrammarCreate) SetSentence(v string) *GrammarCreate {
	_c.mutation.SetSentence(v)
	return _c
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableSentence(v *string) *GrammarCreate {
	if v != nil {
		_c.SetSentence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GrammarCreate) SetCreatedAt(v time.Time) *GrammarCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableCreatedAt(v *time.Time) *GrammarCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GrammarCreate) SetUpdatedAt(v time.Time) *GrammarCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableUpdatedAt(v *time.Time) *GrammarCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GrammarCreate) SetID(v uuid.UUID) *GrammarCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GrammarCreate) SetNillableID(v *uuid.UUID) *GrammarCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPack sets the "pack" edge to the Pack entity.
func (_c *GrammarCreate) SetPack(v *Pack) *GrammarCreate {
	return _c.SetPackID(v.ID)
}

// Mutation returns the GrammarMutation object of the builder.
func (_c *GrammarCreate) Mutation() *GrammarMutation {
	return _c.mutation
}

// Save creates the Grammar in the database.
func (_c *GrammarCreate) Save(ctx context.Context) (*Grammar, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrammarCreate) SaveX(ctx context.Context) *Grammar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrammarCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := grammar.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := grammar.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := grammar.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrammarCreate) check() error {
	if _, ok := _c.mutation.PackID(); !ok {
		return &ValidationError{Name: "pack_id", err: errors.New(`ent: missing required field "Grammar.pack_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Grammar.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := grammar.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Grammar.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Grammar.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Grammar.updated_at"`)}
	}
	if len(_c.mutation.PackIDs()) == 0 {
		return &ValidationError{Name: "pack", err: errors.New(`ent: missing required edge "Grammar.pack"`)}
	}
	return nil
}

func (_c *GrammarCreate) sqlSave(ctx context.Context) (*Grammar, error) {
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

func (_c *GrammarCreate) createSpec() (*Grammar, *sqlgraph.CreateSpec) {
	var (
		_node = &Grammar{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grammar.Table, sqlgraph.NewFieldSpec(grammar.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(grammar.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(grammar.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(grammar.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOption(); ok {
		_spec.SetField(grammar.FieldCorrectOption, field.TypeInt, value)
		_node.CorrectOption = &value
	}
	if value, ok := _c.mutation.Sentence(); ok {
		_spec.SetField(grammar.FieldSentence, field.TypeString, value)
		_node.Sentence = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(grammar.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(grammar.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grammar.PackTable,
			Columns: []string{grammar.PackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pack.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PackID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GrammarCreateBulk is the builder for creating many Grammar entities in bulk.
type GrammarCreateBulk struct {
	config
	err      error
	builders []*GrammarCreate
}

// Save creates the Grammar entities in the database.
func (_c *GrammarCreateBulk) Save(ctx context.Context) ([]*Grammar, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Grammar, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrammarMutation)
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
func (_c *GrammarCreateBulk) SaveX(ctx context.Context) []*Grammar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
