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
	"github.com/lingvoapp/lingvo-api/ent/businessprofile"
)

// BusinessProfileCreate is the builder for creating a BusinessProfile entity.
type BusinessProfileCreate struct {
	config
	mutation *BusinessProfileMutation
	hooks    []Hook
}

// SetRequiredAppVersion sets the "required_app_version" field.
func (_c *BusinessProfileCreate) SetRequiredAppVersion(v string) *BusinessProfileCreate {
	_c.mutation.SetRequiredAppVersion(v)
	return _c
}

// SetNillableRequiredAppVersion sets the "required_app_version" field if the given value is not nil.
func (_c *BusinessProfileCreate) SetNillableRequiredAppVersion(v *string) *BusinessProfileCreate {
	if v != nil {
		_c.SetRequiredAppVersion(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *BusinessProfileCreate) SetCompanyName(v string) *BusinessProfileCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *BusinessProfileCreate) SetNillableCompanyName(v *string) *BusinessProfileCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessProfileCreate) SetUpdatedAt(v time.Time) *BusinessProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessProfileCreate) SetNillableUpdatedAt(v *time.Time) *BusinessProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessProfileCreate) SetID(v uuid.UUID) *BusinessProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessProfileCreate) SetNillableID(v *uuid.UUID) *BusinessProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BusinessProfileMutation object of the builder.
func (_c *BusinessProfileCreate) Mutation() *BusinessProfileMutation {
	return _c.mutation
}

// Save creates the BusinessProfile in the database.
func (_c *BusinessProfileCreate) Save(ctx context.Context) (*BusinessProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessProfileCreate) SaveX(ctx context.Context) *BusinessProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessProfileCreate) defaults() {
	if _, ok := _c.mutation.RequiredAppVersion(); !ok {
		v := businessprofile.DefaultRequiredAppVersion
		_c.mutation.SetRequiredAppVersion(v)
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		v := businessprofile.DefaultCompanyName
		_c.mutation.SetCompanyName(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businessprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businessprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessProfileCreate) check() error {
	if _, ok := _c.mutation.RequiredAppVersion(); !ok {
		return &ValidationError{Name: "required_app_version", err: errors.New(`ent: missing required field "BusinessProfile.required_app_version"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "BusinessProfile.company_name"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessProfile.updated_at"`)}
	}
	return nil
}

func (_c *BusinessProfileCreate) sqlSave(ctx context.Context) (*BusinessProfile, error) {
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

func (_c *BusinessProfileCreate) createSpec() (*BusinessProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessprofile.Table, sqlgraph.NewFieldSpec(businessprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RequiredAppVersion(); ok {
		_spec.SetField(businessprofile.FieldRequiredAppVersion, field.TypeString, value)
		_node.RequiredAppVersion = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(businessprofile.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businessprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BusinessProfileCreateBulk is the builder for creating many BusinessProfile entities in bulk.
type BusinessProfileCreateBulk struct {
	config
	err      error
	builders []*BusinessProfileCreate
}

// Save creates the BusinessProfile entities in the database.
func (_c *BusinessProfileCreateBulk) Save(ctx context.Context) ([]*BusinessProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessProfileMutation)
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
func (_c *BusinessProfileCreateBulk) SaveX(ctx context.Context) []*BusinessProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
