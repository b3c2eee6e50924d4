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
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/lesson"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/progress"
	"github.com/lingvoapp/lingvo-api/ent/word"
)

// PackCreate is the builder for creating a Pack entity.
type PackCreate struct {
	config
	mutation *PackMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *PackCreate) SetTitle(v string) *PackCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetType sets the "type" field.
func (_c *PackCreate) SetType(v pack.Type) *PackCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *PackCreate) SetWordCount(v int) *PackCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *PackCreate) SetNillableWordCount(v *int) *PackCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PackCreate) SetLessonID(v uuid.UUID) *PackCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PackCreate) SetCreatedAt(v time.Time) *PackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PackCreate) SetNillableCreatedAt(v *time.Time) *PackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PackCreate) SetUpdatedAt(v time.Time) *PackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PackCreate) SetNillableUpdatedAt(v *time.Time) *PackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PackCreate) SetID(v uuid.UUID) *PackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PackCreate) SetNillableID(v *uuid.UUID) *PackCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *PackCreate) SetLesson(v *Lesson) *PackCreate {
	return _c.SetLessonID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_c *PackCreate) AddWordIDs(ids ...uuid.UUID) *PackCreate {
	_c.mutation.AddWordIDs(ids...)
	return _c
}

// AddWords adds the "words" edges to the Word entity.
func (_c *PackCreate) AddWords(v ...*Word) *PackCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWordIDs(ids...)
}

// AddGrammarIDs adds the "grammars" edge to the Grammar entity by IDs.
func (_c *PackCreate) AddGrammarIDs(ids ...uuid.UUID) *PackCreate {
	_c.mutation.AddGrammarIDs(ids...)
	return _c
}

// AddGrammars adds the "grammars" edges to the Grammar entity.
func (_c *PackCreate) AddGrammars(v ...*Grammar) *PackCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrammarIDs(ids...)
}

// AddGrammarTopicIDs adds the "grammar_topics" edge to the GrammarTopic entity by IDs.
func (_c *PackCreate) AddGrammarTopicIDs(ids ...uuid.UUID) *PackCreate {
	_c.mutation.AddGrammarTopicIDs(ids...)
	return _c
}

// AddGrammarTopics adds the "grammar_topics" edges to the GrammarTopic entity.
func (_c *PackCreate) AddGrammarTopics(v ...*GrammarTopic) *PackCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrammarTopicIDs(ids...)
}

// AddProgressIDs adds the "progresses" edge to the Progress entity by IDs.
func (_c *PackCreate) AddProgressIDs(ids ...uuid.UUID) *PackCreate {
	_c.mutation.AddProgressIDs(ids...)
	return _c
}

// AddProgresses adds the "progresses" edges to the Progress entity.
func (_c *PackCreate) AddProgresses(v ...*Progress) *PackCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProgressIDs(ids...)
}

// Mutation returns the PackMutation object of the builder.
func (_c *PackCreate) Mutation() *PackMutation {
	return _c.mutation
}

// Save creates the Pack in the database.
func (_c *PackCreate) Save(ctx context.Context) (*Pack, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PackCreate) SaveX(ctx context.Context) *Pack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pack.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pack.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pack.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PackCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Pack.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := pack.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Pack.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Pack.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := pack.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Pack.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Pack.lesson_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pack.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Pack.updated_at"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "Pack.lesson"`)}
	}
	return nil
}

func (_c *PackCreate) sqlSave(ctx context.Context) (*Pack, error) {
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

func (_c *PackCreate) createSpec() (*Pack, *sqlgraph.CreateSpec) {
	var (
		_node = &Pack{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pack.Table, sqlgraph.NewFieldSpec(pack.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(pack.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(pack.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(pack.FieldWordCount, field.TypeInt, value)
		_node.WordCount = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pack.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pack.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pack.LessonTable,
			Columns: []string{pack.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LessonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pack.WordsTable,
			Columns: []string{pack.WordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrammarsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pack.GrammarsTable,
			Columns: []string{pack.GrammarsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grammar.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GrammarTopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pack.GrammarTopicsTable,
			Columns: []string{pack.GrammarTopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grammartopic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProgressesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pack.ProgressesTable,
			Columns: []string{pack.ProgressesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(progress.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PackCreateBulk is the builder for creating many Pack entities in bulk.
type PackCreateBulk struct {
	config
	err      error
	builders []*PackCreate
}

// Save creates the Pack entities in the database.
func (_c *PackCreateBulk) Save(ctx context.Context) ([]*Pack, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pack, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PackMutation)
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
func (_c *PackCreateBulk) SaveX(ctx context.Context) []*Pack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
