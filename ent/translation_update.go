// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
	"github.com/lingvoapp/lingvo-api/ent/translation"
)

// TranslationUpdate is the builder for updating Translation entities.
type TranslationUpdate struct {
	config
	hooks    []Hook
	mutation *TranslationMutation
}

// Where appends a list predicates to the TranslationUpdate builder.
func (_u *TranslationUpdate) Where(ps ...predicate.Translation) *TranslationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputText sets the "input_text" field.
func (_u *TranslationUpdate) SetInputText(v string) *TranslationUpdate {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *TranslationUpdate) SetNillableInputText(v *string) *TranslationUpdate {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *TranslationUpdate) SetTargetLanguage(v string) *TranslationUpdate {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *TranslationUpdate) SetNillableTargetLanguage(v *string) *TranslationUpdate {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *TranslationUpdate) SetOutputText(v string) *TranslationUpdate {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *TranslationUpdate) SetNillableOutputText(v *string) *TranslationUpdate {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// Mutation returns the TranslationMutation object of the builder.
func (_u *TranslationUpdate) Mutation() *TranslationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranslationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranslationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationUpdate) check() error {
	if v, ok := _u.mutation.InputText(); ok {
		if err := translation.InputTextValidator(v); err != nil {
			return &ValidationError{Name: "input_text", err: fmt.Errorf(`ent: validator failed for field "Translation.input_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetLanguage(); ok {
		if err := translation.TargetLanguageValidator(v); err != nil {
			return &ValidationError{Name: "target_language", err: fmt.Errorf(`ent: validator failed for field "Translation.target_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputText(); ok {
		if err := translation.OutputTextValidator(v); err != nil {
			return &ValidationError{Name: "output_text", err: fmt.Errorf(`ent: validator failed for field "Translation.output_text": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translation.Table, translation.Columns, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(translation.FieldInputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(translation.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(translation.FieldOutputText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranslationUpdateOne is the builder for updating a single Translation entity.
type TranslationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranslationMutation
}

// SetInputText sets the "input_text" field.
func (_u *TranslationUpdateOne) SetInputText(v string) *TranslationUpdateOne {
	_u.mutation.SetInputText(v)
	return _u
}

// SetNillableInputText sets the "input_text" field if the given value is not nil.
func (_u *TranslationUpdateOne) SetNillableInputText(v *string) *TranslationUpdateOne {
	if v != nil {
		_u.SetInputText(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *TranslationUpdateOne) SetTargetLanguage(v string) *TranslationUpdateOne {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *TranslationUpdateOne) SetNillableTargetLanguage(v *string) *TranslationUpdateOne {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *TranslationUpdateOne) SetOutputText(v string) *TranslationUpdateOne {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *TranslationUpdateOne) SetNillableOutputText(v *string) *TranslationUpdateOne {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// Mutation returns the TranslationMutation object of the builder.
func (_u *TranslationUpdateOne) Mutation() *TranslationMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranslationUpdate builder.
func (_u *TranslationUpdateOne) Where(ps ...predicate.Translation) *TranslationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranslationUpdateOne) Select(field string, fields ...string) *TranslationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Translation entity.
func (_u *TranslationUpdateOne) Save(ctx context.Context) (*Translation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranslationUpdateOne) SaveX(ctx context.Context) *Translation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranslationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranslationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranslationUpdateOne) check() error {
	if v, ok := _u.mutation.InputText(); ok {
		if err := translation.InputTextValidator(v); err != nil {
			return &ValidationError{Name: "input_text", err: fmt.Errorf(`ent: validator failed for field "Translation.input_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetLanguage(); ok {
		if err := translation.TargetLanguageValidator(v); err != nil {
			return &ValidationError{Name: "target_language", err: fmt.Errorf(`ent: validator failed for field "Translation.target_language": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputText(); ok {
		if err := translation.OutputTextValidator(v); err != nil {
			return &ValidationError{Name: "output_text", err: fmt.Errorf(`ent: validator failed for field "Translation.output_text": %w`, err)}
		}
	}
	return nil
}

func (_u *TranslationUpdateOne) sqlSave(ctx context.Context) (_node *Translation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(translation.Table, translation.Columns, sqlgraph.NewFieldSpec(translation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Translation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, translation.FieldID)
		for _, f := range fields {
			if !translation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != translation.FieldID {
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
	if value, ok := _u.mutation.InputText(); ok {
		_spec.SetField(translation.FieldInputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(translation.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(translation.FieldOutputText, field.TypeString, value)
	}
	_node = &Translation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{translation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
