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
	"github.com/lingvoapp/lingvo-api/ent/businessprofile"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// BusinessProfileUpdate is the builder for updating BusinessProfile entities.
type BusinessProfileUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessProfileMutation
}

// Where appends a list predicates to the BusinessProfileUpdate builder.
func (_u *BusinessProfileUpdate) Where(ps ...predicate.BusinessProfile) *BusinessProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequiredAppVersion sets the "required_app_version" field.
func (_u *BusinessProfileUpdate) SetRequiredAppVersion(v string) *BusinessProfileUpdate {
	_u.mutation.SetRequiredAppVersion(v)
	return _u
}

// SetNillableRequiredAppVersion sets the "required_app_version" field if the given value is not nil.
func (_u *BusinessProfileUpdate) SetNillableRequiredAppVersion(v *string) *BusinessProfileUpdate {
	if v != nil {
		_u.SetRequiredAppVersion(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *BusinessProfileUpdate) SetCompanyName(v string) *BusinessProfileUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *BusinessProfileUpdate) SetNillableCompanyName(v *string) *BusinessProfileUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessProfileUpdate) SetUpdatedAt(v time.Time) *BusinessProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessProfileMutation object of the builder.
func (_u *BusinessProfileUpdate) Mutation() *BusinessProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BusinessProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(businessprofile.Table, businessprofile.Columns, sqlgraph.NewFieldSpec(businessprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequiredAppVersion(); ok {
		_spec.SetField(businessprofile.FieldRequiredAppVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(businessprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessProfileUpdateOne is the builder for updating a single BusinessProfile entity.
type BusinessProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessProfileMutation
}

// SetRequiredAppVersion sets the "required_app_version" field.
func (_u *BusinessProfileUpdateOne) SetRequiredAppVersion(v string) *BusinessProfileUpdateOne {
	_u.mutation.SetRequiredAppVersion(v)
	return _u
}

// SetNillableRequiredAppVersion sets the "required_app_version" field if the given value is not nil.
func (_u *BusinessProfileUpdateOne) SetNillableRequiredAppVersion(v *string) *BusinessProfileUpdateOne {
	if v != nil {
		_u.SetRequiredAppVersion(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *BusinessProfileUpdateOne) SetCompanyName(v string) *BusinessProfileUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *BusinessProfileUpdateOne) SetNillableCompanyName(v *string) *BusinessProfileUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessProfileUpdateOne) SetUpdatedAt(v time.Time) *BusinessProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BusinessProfileMutation object of the builder.
func (_u *BusinessProfileUpdateOne) Mutation() *BusinessProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessProfileUpdate builder.
func (_u *BusinessProfileUpdateOne) Where(ps ...predicate.BusinessProfile) *BusinessProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessProfileUpdateOne) Select(field string, fields ...string) *BusinessProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessProfile entity.
func (_u *BusinessProfileUpdateOne) Save(ctx context.Context) (*BusinessProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessProfileUpdateOne) SaveX(ctx context.Context) *BusinessProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BusinessProfileUpdateOne) sqlSave(ctx context.Context) (_node *BusinessProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(businessprofile.Table, businessprofile.Columns, sqlgraph.NewFieldSpec(businessprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessprofile.FieldID)
		for _, f := range fields {
			if !businessprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businessprofile.FieldID {
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
	if value, ok := _u.mutation.RequiredAppVersion(); ok {
		_spec.SetField(businessprofile.FieldRequiredAppVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(businessprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BusinessProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
