// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// GrammarTopicUpdate is the builder for updating GrammarTopic entities.
type GrammarTopicUpdate struct {
	config
	hooks    []Hook
	mutation *GrammarTopicMutation
}

// Where appends a list predicates to the GrammarTopicUpdate builder.
func (_u *GrammarTopicUpdate) Where(ps ...predicate.GrammarTopic) *GrammarTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *GrammarTopicUpdate) SetPackID(v uuid.UUID) *GrammarTopicUpdate {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *GrammarTopicUpdate) SetNillablePackID(v *uuid.UUID) *GrammarTopicUpdate {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *GrammarTopicUpdate) SetVideoURL(v string) *GrammarTopicUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *GrammarTopicUpdate) SetNillableVideoURL(v *string) *GrammarTopicUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *GrammarTopicUpdate) ClearVideoURL() *GrammarTopicUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetMarkdownText sets the "markdown_text" field.
func (_u *GrammarTopicUpdate) SetMarkdownText(v string) *GrammarTopicUpdate {
	_u.mutation.SetMarkdownText(v)
	return _u
}

// SetNillableMarkdownText sets the "markdown_text" field if the given value is not nil.
func (_u *GrammarTopicUpdate) SetNillableMarkdownText(v *string) *GrammarTopicUpdate {
	if v != nil {
		_u.SetMarkdownText(*v)
	}
	return _u
}

// ClearMarkdownText clears the value of the "markdown_text" field.
func (_u *GrammarTopicUpdate) ClearMarkdownText() *GrammarTopicUpdate {
	_u.mutation.ClearMarkdownText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrammarTopicUpdate) SetUpdatedAt(v time.Time) *GrammarTopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *GrammarTopicUpdate) SetPack(v *Pack) *GrammarTopicUpdate {
	return _u.SetPackID(v.ID)
}

// Mutation returns the GrammarTopicMutation object of the builder.
func (_u *GrammarTopicUpdate) Mutation() *GrammarTopicMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *GrammarTopicUpdate) ClearPack() *GrammarTopicUpdate {
	_u.mutation.ClearPack()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrammarTopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrammarTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrammarTopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := grammartopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarTopicUpdate) check() error {
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrammarTopic.pack"`)
	}
	return nil
}

func (_u *GrammarTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammartopic.Table, grammartopic.Columns, sqlgraph.NewFieldSpec(grammartopic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(grammartopic.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(grammartopic.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.MarkdownText(); ok {
		_spec.SetField(grammartopic.FieldMarkdownText, field.TypeString, value)
	}
	if _u.mutation.MarkdownTextCleared() {
		_spec.ClearField(grammartopic.FieldMarkdownText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(grammartopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammartopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrammarTopicUpdateOne is the builder for updating a single GrammarTopic entity.
type GrammarTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrammarTopicMutation
}

// SetPackID sets the "pack_id" field.
func (_u *GrammarTopicUpdateOne) SetPackID(v uuid.UUID) *GrammarTopicUpdateOne {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *GrammarTopicUpdateOne) SetNillablePackID(v *uuid.UUID) *GrammarTopicUpdateOne {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *GrammarTopicUpdateOne) SetVideoURL(v string) *GrammarTopicUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *GrammarTopicUpdateOne) SetNillableVideoURL(v *string) *GrammarTopicUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *GrammarTopicUpdateOne) ClearVideoURL() *GrammarTopicUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetMarkdownText sets the "markdown_text" field.
func (_u *GrammarTopicUpdateOne) SetMarkdownText(v string) *GrammarTopicUpdateOne {
	_u.mutation.SetMarkdownText(v)
	return _u
}

// SetNillableMarkdownText sets the "markdown_text" field if the given value is not nil.
func (_u *GrammarTopicUpdateOne) SetNillableMarkdownText(v *string) *GrammarTopicUpdateOne {
	if v != nil {
		_u.SetMarkdownText(*v)
	}
	return _u
}

// ClearMarkdownText clears the value of the "markdown_text" field.
func (_u *GrammarTopicUpdateOne) ClearMarkdownText() *GrammarTopicUpdateOne {
	_u.mutation.ClearMarkdownText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrammarTopicUpdateOne) SetUpdatedAt(v time.Time) *GrammarTopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *GrammarTopicUpdateOne) SetPack(v *Pack) *GrammarTopicUpdateOne {
	return _u.SetPackID(v.ID)
}

// Mutation returns the GrammarTopicMutation object of the builder.
func (_u *GrammarTopicUpdateOne) Mutation() *GrammarTopicMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *GrammarTopicUpdateOne) ClearPack() *GrammarTopicUpdateOne {
	_u.mutation.ClearPack()
	return _u
}

// Where appends a list predicates to the GrammarTopicUpdate builder.
func (_u *GrammarTopicUpdateOne) Where(ps ...predicate.GrammarTopic) *GrammarTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrammarTopicUpdateOne) Select(field string, fields ...string) *GrammarTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GrammarTopic entity.
func (_u *GrammarTopicUpdateOne) Save(ctx context.Context) (*GrammarTopic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarTopicUpdateOne) SaveX(ctx context.Context) *GrammarTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrammarTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrammarTopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := grammartopic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarTopicUpdateOne) check() error {
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GrammarTopic.pack"`)
	}
	return nil
}

func (_u *GrammarTopicUpdateOne) sqlSave(ctx context.Context) (_node *GrammarTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammartopic.Table, grammartopic.Columns, sqlgraph.NewFieldSpec(grammartopic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GrammarTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grammartopic.FieldID)
		for _, f := range fields {
			if !grammartopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grammartopic.FieldID {
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
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(grammartopic.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(grammartopic.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.MarkdownText(); ok {
		_spec.SetField(grammartopic.FieldMarkdownText, field.TypeString, value)
	}
	if _u.mutation.MarkdownTextCleared() {
		_spec.ClearField(grammartopic.FieldMarkdownText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(grammartopic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GrammarTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammartopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
