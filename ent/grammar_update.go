// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/grammar"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// GrammarUpdate is the builder for updating Grammar entities.
type GrammarUpdate struct {
	config
	hooks    []Hook
	mutation *GrammarMutation
}

// Where appends a list predicates to the GrammarUpdate builder.
func (_u *GrammarUpdate) Where(ps ...predicate.Grammar) *GrammarUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *GrammarUpdate) SetPackID(v uuid.UUID) *GrammarUpdate {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *GrammarUpdate) SetNillablePackID(v *uuid.UUID) *GrammarUpdate {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *GrammarUpdate) SetType(v grammar.Type) *GrammarUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GrammarUpdate) SetNillableType(v *grammar.Type) *GrammarUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GrammarUpdate) SetQuestionText(v string) *GrammarUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GrammarUpdate) SetNillableQuestionText(v *string) *GrammarUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// ClearQuestionText clears the value of the "question_text" field.
func (_u *GrammarUpdate) ClearQuestionText() *GrammarUpdate {
	_u.mutation.ClearQuestionText()
	return _u
}

// SetOptions sets the "options" field.
func (_u *GrammarUpdate) SetOptions(v []string) *GrammarUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *GrammarUpdate) AppendOptions(v []string) *GrammarUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *GrammarUpdate) ClearOptions() *GrammarUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *GrammarUpdate) SetCorrectOption(v int) *GrammarUpdate {
	_u.mutation.ResetCorrectOption()
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *GrammarUpdate) SetNillableCorrectOption(v *int) *GrammarUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// AddCorrectOption adds value to the "correct_option" field.
func (_u *GrammarUpdate) AddCorrectOption(v int) *GrammarUpdate {
	_u.mutation.AddCorrectOption(v)
	return _u
}

// ClearCorrectOption clears the value of the "correct_option" field.
func (_u *GrammarUpdate) ClearCorrectOption() *GrammarUpdate {
	_u.mutation.ClearCorrectOption()
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *GrammarUpdate) SetSentence(v string) *GrammarUpdate {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *GrammarUpdate) SetNillableSentence(v *string) *GrammarUpdate {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// ClearSentence clears the value of the "sentence" field.
func (_u *GrammarUpdate) ClearSentence() *GrammarUpdate {
	_u.mutation.ClearSentence()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrammarUpdate) SetUpdatedAt(v time.Time) *GrammarUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *GrammarUpdate) SetPack(v *Pack) *GrammarUpdate {
	return _u.SetPackID(v.ID)
}

// Mutation returns the GrammarMutation object of the builder.
func (_u *GrammarUpdate) Mutation() *GrammarMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *GrammarUpdate) ClearPack() *GrammarUpdate {
	_u.mutation.ClearPack()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrammarUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrammarUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrammarUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := grammar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := grammar.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Grammar.type": %w`, err)}
		}
	}
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grammar.pack"`)
	}
	return nil
}

func (_u *GrammarUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammar.Table, grammar.Columns, sqlgraph.NewFieldSpec(grammar.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(grammar.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(grammar.FieldQuestionText, field.TypeString, value)
	}
	if _u.mutation.QuestionTextCleared() {
		_spec.ClearField(grammar.FieldQuestionText, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(grammar.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, grammar.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(grammar.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(grammar.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOption(); ok {
		_spec.AddField(grammar.FieldCorrectOption, field.TypeInt, value)
	}
	if _u.mutation.CorrectOptionCleared() {
		_spec.ClearField(grammar.FieldCorrectOption, field.TypeInt)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(grammar.FieldSentence, field.TypeString, value)
	}
	if _u.mutation.SentenceCleared() {
		_spec.ClearField(grammar.FieldSentence, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(grammar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrammarUpdateOne is the builder for updating a single Grammar entity.
type GrammarUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrammarMutation
}

// SetPackID sets the "pack_id" field.
func (_u *GrammarUpdateOne) SetPackID(v uuid.UUID) *GrammarUpdateOne {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *GrammarUpdateOne) SetNillablePackID(v *uuid.UUID) *GrammarUpdateOne {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *GrammarUpdateOne) SetType(v grammar.Type) *GrammarUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GrammarUpdateOne) SetNillableType(v *grammar.Type) *GrammarUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *GrammarUpdateOne) SetQuestionText(v string) *GrammarUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *GrammarUpdateOne) SetNillableQuestionText(v *string) *GrammarUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// ClearQuestionText clears the value of the "question_text" field.
func (_u *GrammarUpdateOne) ClearQuestionText() *GrammarUpdateOne {
	_u.mutation.ClearQuestionText()
	return _u
}

// SetOptions sets the "options" field.
func (_u *GrammarUpdateOne) SetOptions(v []string) *GrammarUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *GrammarUpdateOne) AppendOptions(v []string) *GrammarUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *GrammarUpdateOne) ClearOptions() *GrammarUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *GrammarUpdateOne) SetCorrectOption(v int) *GrammarUpdateOne {
	_u.mutation.ResetCorrectOption()
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *GrammarUpdateOne) SetNillableCorrectOption(v *int) *GrammarUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// AddCorrectOption adds value to the "correct_option" field.
func (_u *GrammarUpdateOne) AddCorrectOption(v int) *GrammarUpdateOne {
	_u.mutation.AddCorrectOption(v)
	return _u
}

// ClearCorrectOption clears the value of the "correct_option" field.
func (_u *GrammarUpdateOne) ClearCorrectOption() *GrammarUpdateOne {
	_u.mutation.ClearCorrectOption()
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *GrammarUpdateOne) SetSentence(v string) *GrammarUpdateOne {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *GrammarUpdateOne) SetNillableSentence(v *string) *GrammarUpdateOne {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// ClearSentence clears the value of the "sentence" field.
func (_u *GrammarUpdateOne) ClearSentence() *GrammarUpdateOne {
	_u.mutation.ClearSentence()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GrammarUpdateOne) SetUpdatedAt(v time.Time) *GrammarUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPack sets the "pack" edge to the Pack entity.
func (_u *GrammarUpdateOne) SetPack(v *Pack) *GrammarUpdateOne {
	return _u.SetPackID(v.ID)
}

// Mutation returns the GrammarMutation object of the builder.
func (_u *GrammarUpdateOne) Mutation() *GrammarMutation {
	return _u.mutation
}

// ClearPack clears the "pack" edge to the Pack entity.
func (_u *GrammarUpdateOne) ClearPack() *GrammarUpdateOne {
	_u.mutation.ClearPack()
	return _u
}

// Where appends a list predicates to the GrammarUpdate builder.
func (_u *GrammarUpdateOne) Where(ps ...predicate.Grammar) *GrammarUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrammarUpdateOne) Select(field string, fields ...string) *GrammarUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grammar entity.
func (_u *GrammarUpdateOne) Save(ctx context.Context) (*Grammar, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrammarUpdateOne) SaveX(ctx context.Context) *Grammar {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrammarUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrammarUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GrammarUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := grammar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrammarUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := grammar.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Grammar.type": %w`, err)}
		}
	}
	if _u.mutation.PackCleared() && len(_u.mutation.PackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grammar.pack"`)
	}
	return nil
}

func (_u *GrammarUpdateOne) sqlSave(ctx context.Context) (_node *Grammar, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grammar.Table, grammar.Columns, sqlgraph.NewFieldSpec(grammar.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grammar.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grammar.FieldID)
		for _, f := range fields {
			if !grammar.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grammar.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(grammar.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(grammar.FieldQuestionText, field.TypeString, value)
	}
	if _u.mutation.QuestionTextCleared() {
		_spec.ClearField(grammar.FieldQuestionText, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(grammar.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, grammar.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(grammar.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(grammar.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOption(); ok {
		_spec.AddField(grammar.FieldCorrectOption, field.TypeInt, value)
	}
	if _u.mutation.CorrectOptionCleared() {
		_spec.ClearField(grammar.FieldCorrectOption, field.TypeInt)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(grammar.FieldSentence, field.TypeString, value)
	}
	if _u.mutation.SentenceCleared() {
		_spec.ClearField(grammar.FieldSentence, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(grammar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Grammar{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grammar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
