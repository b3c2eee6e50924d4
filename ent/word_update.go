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
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
	"github.com/lingvoapp/lingvo-api/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *WordUpdate) SetPackID(v uuid.UUID) *WordUpdate {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *WordUpdate) SetNillablePackID(v *uuid.UUID) *WordUpdate {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetUzText sets the "uz_text" field.
func (_u *WordUpdate) SetUzText(v string) *WordUpdate {
	_u.mutation.SetUzText(v)
	return _u
}

// SetNillableUzText sets the "uz_text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableUzText(v *string) *WordUpdate {
	if v != nil {
		_u.SetUzText(*v)
	}
	return _u
}

// ClearUzText clears the value of the "uz_text" field.
func (_u *WordUpdate) ClearUzText() *WordUpdate {
	_u.mutation.ClearUzText()
	return _u
}

// SetRuText sets the "ru_text" field.
func (_u *WordUpdate) SetRuText(v string) *WordUpdate {
	_u.mutation.SetRuText(v)
	return _u
}

// SetNillableRuText sets the "ru_text" field if the given value is not nil.
func (_u *WordUpdate) SetNillableRuText(v *string) *WordUpdate {
	if v != nil {
		_u.SetRuText(*v)
	}
	return _u
}

// ClearRuText clears the value of the "ru_text" field.
func (_u *WordUpdate) ClearRuText() *WordUpdate {
	_u.mutation.ClearRuText()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *WordUpdate) SetAudioURL(v string) *WordUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *WordUpdate) SetNillableAudioURL(v *string) *WordUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *WordUpdate) ClearAudioURL() *WordUpdate {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WordUpdate) SetUpdatedAt(v time.Time) *WordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *WordUpdate) SetPack(v *Pack) *WordUpdate {
	return _u.SetPackID(v.ID)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *WordUpdate) ClearPack() *WordUpdate {
	_u.mutation.ClearPack()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := word.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.pack"`)
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UzText(); ok {
		_spec.SetField(word.FieldUzText, field.TypeString, value)
	}
	if _u.mutation.UzTextCleared() {
		_spec.ClearField(word.FieldUzText, field.TypeString)
	}
	if value, ok := _u.mutation.RuText(); ok {
		_spec.SetField(word.FieldRuText, field.TypeString, value)
	}
	if _u.mutation.RuTextCleared() {
		_spec.ClearField(word.FieldRuText, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(word.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(word.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(word.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PackTable,
			Columns: []string{word.PackColumn},
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
			Table:   word.PackTable,
			Columns: []string{word.PackColumn},
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
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetPackID sets the "pack_id" field.
func (_u *WordUpdateOne) SetPackID(v uuid.UUID) *WordUpdateOne {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillablePackID(v *uuid.UUID) *WordUpdateOne {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetUzText sets the "uz_text" field.
func (_u *WordUpdateOne) SetUzText(v string) *WordUpdateOne {
	_u.mutation.SetUzText(v)
	return _u
}

// SetNillableUzText sets the "uz_text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableUzText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetUzText(*v)
	}
	return _u
}

// ClearUzText clears the value of the "uz_text" field.
func (_u *WordUpdateOne) ClearUzText() *WordUpdateOne {
	_u.mutation.ClearUzText()
	return _u
}

// SetRuText sets the "ru_text" field.
func (_u *WordUpdateOne) SetRuText(v string) *WordUpdateOne {
	_u.mutation.SetRuText(v)
	return _u
}

// SetNillableRuText sets the "ru_text" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableRuText(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetRuText(*v)
	}
	return _u
}

// ClearRuText clears the value of the "ru_text" field.
func (_u *WordUpdateOne) ClearRuText() *WordUpdateOne {
	_u.mutation.ClearRuText()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *WordUpdateOne) SetAudioURL(v string) *WordUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableAudioURL(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *WordUpdateOne) ClearAudioURL() *WordUpdateOne {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WordUpdateOne) SetUpdatedAt(v time.Time) *WordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *WordUpdateOne) SetPack(v *Pack) *WordUpdateOne {
	return _u.SetPackID(v.ID)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *WordUpdateOne) ClearPack() *WordUpdateOne {
	_u.mutation.ClearPack()
	return _u
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := word.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.pack"`)
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
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
	if value, ok := _u.mutation.UzText(); ok {
		_spec.SetField(word.FieldUzText, field.TypeString, value)
	}
	if _u.mutation.UzTextCleared() {
		_spec.ClearField(word.FieldUzText, field.TypeString)
	}
	if value, ok := _u.mutation.RuText(); ok {
		_spec.SetField(word.FieldRuText, field.TypeString, value)
	}
	if _u.mutation.RuTextCleared() {
		_spec.ClearField(word.FieldRuText, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(word.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(word.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(word.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.PackTable,
			Columns: []string{word.PackColumn},
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
			Table:   word.PackTable,
			Columns: []string{word.PackColumn},
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
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
