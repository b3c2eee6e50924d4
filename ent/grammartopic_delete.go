// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// GrammarTopicDelete is the builder for deleting a GrammarTopic entity.
type GrammarTopicDelete struct {
	config
	hooks    []Hook
	mutation *GrammarTopicMutation
}

// Where appends a list predicates to the GrammarTopicDelete builder.
func (_d *GrammarTopicDelete) Where(ps ...predicate.GrammarTopic) *GrammarTopicDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GrammarTopicDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GrammarTopicDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GrammarTopicDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(grammartopic.Table, sqlgraph.NewFieldSpec(grammartopic.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GrammarTopicDeleteOne is the builder for deleting a single GrammarTopic entity.
type GrammarTopicDeleteOne struct {
	_d *GrammarTopicDelete
}

// Where appends a list predicates to the GrammarTopicDelete builder.
func (_d *GrammarTopicDeleteOne) Where(ps ...predicate.GrammarTopic) *GrammarTopicDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GrammarTopicDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{grammartopic.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GrammarTopicDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
