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
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/pack"
)

// GrammarTopicCreate is the builder for creating a GrammarTopic entity.
type GrammarTopicCreate struct {
	config
	mutation *GrammarTopicMutation
	hooks    []Hook
}

// SetPackID sets the "pack_id" field.
func (_c *GrammarTopicCreate) SetPackID(v uuid.UUID) *GrammarTopicCreate {
	_c.mutation.SetPackID(v)
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *GrammarTopicCreate) SetVideoURL(v string) *GrammarTopicCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *GrammarTopicCreate) SetNillableVideoURL(v *string) *GrammarTopicCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetMarkdownText sets the "markdown_text" field.
func (_c *GrammarTopicCreate) SetMarkdownText(v string) *GrammarTopicCreate {
	_c.mutation.SetMarkdownText(v)
	return _c
}

// SetNillableMarkdownText sets the "markdown_text" field if the given value is not nil.
func (_c *GrammarTopicCreate) SetNillableMarkdownText(v *string) *GrammarTopicCreate {
	if v != nil {
		_c.SetMarkdownText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GrammarTopicCreate) SetCreatedAt(v time.Time) *GrammarTopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GrammarTopicCreate) SetNillableCreatedAt(v *time.Time) *GrammarTopicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GrammarTopicCreate) SetUpdatedAt(v time.Time) *GrammarTopicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GrammarTopicCreate) SetNillableUpdatedAt(v *time.Time) *GrammarTopicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GrammarTopicCreate) SetID(v uuid.UUID) *GrammarTopicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GrammarTopicCreate) SetNillableID(v *uuid.UUID) *GrammarTopicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPack sets the "pack" edge to the Pack entity.
func (_c *GrammarTopicCreate) SetPack(v *Pack) *GrammarTopicCreate {
	return _c.SetPackID(v.ID)
}

// Mutation returns the GrammarTopicMutation object of the builder.
func (_c *GrammarTopicCreate) Mutation() *GrammarTopicMutation {
	return _c.mutation
}

// Save creates the GrammarTopic in the database.
func (_c *GrammarTopicCreate) Save(ctx context.Context) (*GrammarTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrammarTopicCreate) SaveX(ctx context.Context) *GrammarTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrammarTopicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := grammartopic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := grammartopic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := grammartopic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrammarTopicCreate) check() error {
	if _, ok := _c.mutation.PackID(); !ok {
		return &ValidationError{Name: "pack_id", err: errors.New(`ent: missing required field "GrammarTopic.pack_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GrammarTopic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GrammarTopic.updated_at"`)}
	}
	if len(_c.mutation.PackIDs()) == 0 {
		return &ValidationError{Name: "pack", err: errors.New(`ent: missing required edge "GrammarTopic.pack"`)}
	}
	return nil
}

func (_c *GrammarTopicCreate) sqlSave(ctx context.Context) (*GrammarTopic, error) {
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

func (_c *GrammarTopicCreate) createSpec() (*GrammarTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &GrammarTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grammartopic.Table, sqlgraph.NewFieldSpec(grammartopic.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(grammartopic.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = &value
	}
	if value, ok := _c.mutation.MarkdownText(); ok {
		_spec.SetField(grammartopic.FieldMarkdownText, field.TypeString, value)
		_node.MarkdownText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(grammartopic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(grammartopic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grammartopic.PackTable,
			Columns: []string{grammartopic.PackColumn},
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

// GrammarTopicCreateBulk is the builder for creating many GrammarTopic entities in bulk.
type GrammarTopicCreateBulk struct {
	config
	err      error
	builders []*GrammarTopicCreate
}

// Save creates the GrammarTopic entities in the database.
func (_c *GrammarTopicCreateBulk) Save(ctx context.Context) ([]*GrammarTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GrammarTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrammarTopicMutation)
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
func (_c *GrammarTopicCreateBulk) SaveX(ctx context.Context) []*GrammarTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrammarTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrammarTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
