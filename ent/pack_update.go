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
	"github.com/lingvoapp/lingvo-api/ent/grammar"
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/lesson"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
	"github.com/lingvoapp/lingvo-api/ent/progress"
	"github.com/lingvoapp/lingvo-api/ent/word"
)

// PackUpdate is the builder for updating Pack entities.
type PackUpdate struct {
	config
	hooks    []Hook
	mutation *PackMutation
}

// Where appends a list predicates to the PackUpdate builder.
func (_u *PackUpdate) Where(ps ...predicate.Pack) *PackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PackUpdate) SetTitle(v string) *PackUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PackUpdate) SetNillableTitle(v *string) *PackUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *PackUpdate) SetType(v pack.Type) *PackUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PackUpdate) SetNillableType(v *pack.Type) *PackUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *PackUpdate) SetWordCount(v int) *PackUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *PackUpdate) SetNillableWordCount(v *int) *PackUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *PackUpdate) AddWordCount(v int) *PackUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// ClearWordCount clears the value of the "word_count" field.
func (_u *PackUpdate) ClearWordCount() *PackUpdate {
	_u.mutation.ClearWordCount()
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PackUpdate) SetLessonID(v uuid.UUID) *PackUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PackUpdate) SetNillableLessonID(v *uuid.UUID) *PackUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PackUpdate) SetUpdatedAt(v time.Time) *PackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *PackUpdate) SetLesson(v *Lesson) *PackUpdate {
	return _u.SetLessonID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_u *PackUpdate) AddWordIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.AddWordIDs(ids...)
	return _u
}

// AddWords adds the "words" edges to the Word entity.
func (_u *PackUpdate) AddWords(v ...*Word) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordIDs(ids...)
}

// AddGrammarIDs adds the "grammars" edge to the Grammar entity by IDs.
func (_u *PackUpdate) AddGrammarIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.AddGrammarIDs(ids...)
	return _u
}

// AddGrammars adds the "grammars" edges to the Grammar entity.
func (_u *PackUpdate) AddGrammars(v ...*Grammar) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrammarIDs(ids...)
}

// AddGrammarTopicIDs adds the "grammar_topics" edge to the GrammarTopic entity by IDs.
func (_u *PackUpdate) AddGrammarTopicIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.AddGrammarTopicIDs(ids...)
	return _u
}

// AddGrammarTopics adds the "grammar_topics" edges to the GrammarTopic entity.
func (_u *PackUpdate) AddGrammarTopics(v ...*GrammarTopic) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrammarTopicIDs(ids...)
}

// AddProgressIDs adds the "progresses" edge to the Progress entity by IDs.
func (_u *PackUpdate) AddProgressIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.AddProgressIDs(ids...)
	return _u
}

// AddProgresses adds the "progresses" edges to the Progress entity.
func (_u *PackUpdate) AddProgresses(v ...*Progress) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressIDs(ids...)
}

// Mutation returns the PackMutation object of the builder.
func (_u *PackUpdate) Mutation() *PackMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *PackUpdate) ClearLesson() *PackUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// ClearWords clears all "words" edges to the Word entity.
func (_u *PackUpdate) ClearWords() *PackUpdate {
	_u.mutation.ClearWords()
	return _u
}

// RemoveWordIDs removes the "words" edge to Word entities by IDs.
func (_u *PackUpdate) RemoveWordIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.RemoveWordIDs(ids...)
	return _u
}

// RemoveWords removes "words" edges to Word entities.
func (_u *PackUpdate) RemoveWords(v ...*Word) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordIDs(ids...)
}

// ClearGrammars clears all "grammars" edges to the Grammar entity.
func (_u *PackUpdate) ClearGrammars() *PackUpdate {
	_u.mutation.ClearGrammars()
	return _u
}

// RemoveGrammarIDs removes the "grammars" edge to Grammar entities by IDs.
func (_u *PackUpdate) RemoveGrammarIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.RemoveGrammarIDs(ids...)
	return _u
}

// RemoveGrammars removes "grammars" edges to Grammar entities.
func (_u *PackUpdate) RemoveGrammars(v ...*Grammar) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrammarIDs(ids...)
}

// ClearGrammarTopics clears all "grammar_topics" edges to the GrammarTopic entity.
func (_u *PackUpdate) ClearGrammarTopics() *PackUpdate {
	_u.mutation.ClearGrammarTopics()
	return _u
}

// RemoveGrammarTopicIDs removes the "grammar_topics" edge to GrammarTopic entities by IDs.
func (_u *PackUpdate) RemoveGrammarTopicIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.RemoveGrammarTopicIDs(ids...)
	return _u
}

// RemoveGrammarTopics removes "grammar_topics" edges to GrammarTopic entities.
func (_u *PackUpdate) RemoveGrammarTopics(v ...*GrammarTopic) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrammarTopicIDs(ids...)
}

// ClearProgresses clears all "progresses" edges to the Progress entity.
func (_u *PackUpdate) ClearProgresses() *PackUpdate {
	_u.mutation.ClearProgresses()
	return _u
}

// RemoveProgressIDs removes the "progresses" edge to Progress entities by IDs.
func (_u *PackUpdate) RemoveProgressIDs(ids ...uuid.UUID) *PackUpdate {
	_u.mutation.RemoveProgressIDs(ids...)
	return _u
}

// RemoveProgresses removes "progresses" edges to Progress entities.
func (_u *PackUpdate) RemoveProgresses(v ...*Progress) *PackUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PackUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := pack.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Pack.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := pack.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Pack.type": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Pack.lesson"`)
	}
	return nil
}

func (_u *PackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pack.Table, pack.Columns, sqlgraph.NewFieldSpec(pack.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pack.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(pack.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(pack.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(pack.FieldWordCount, field.TypeInt, value)
	}
	if _u.mutation.WordCountCleared() {
		_spec.ClearField(pack.FieldWordCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pack.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordsIDs(); len(nodes) > 0 && !_u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrammarsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrammarsIDs(); len(nodes) > 0 && !_u.mutation.GrammarsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrammarsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrammarTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrammarTopicsIDs(); len(nodes) > 0 && !_u.mutation.GrammarTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrammarTopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressesIDs(); len(nodes) > 0 && !_u.mutation.ProgressesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PackUpdateOne is the builder for updating a single Pack entity.
type PackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PackMutation
}

// SetTitle sets the "title" field.
func (_u *PackUpdateOne) SetTitle(v string) *PackUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PackUpdateOne) SetNillableTitle(v *string) *PackUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *PackUpdateOne) SetType(v pack.Type) *PackUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PackUpdateOne) SetNillableType(v *pack.Type) *PackUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *PackUpdateOne) SetWordCount(v int) *PackUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *PackUpdateOne) SetNillableWordCount(v *int) *PackUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *PackUpdateOne) AddWordCount(v int) *PackUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// ClearWordCount clears the value of the "word_count" field.
func (_u *PackUpdateOne) ClearWordCount() *PackUpdateOne {
	_u.mutation.ClearWordCount()
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PackUpdateOne) SetLessonID(v uuid.UUID) *PackUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PackUpdateOne) SetNillableLessonID(v *uuid.UUID) *PackUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PackUpdateOne) SetUpdatedAt(v time.Time) *PackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *PackUpdateOne) SetLesson(v *Lesson) *PackUpdateOne {
	return _u.SetLessonID(v.ID)
}

// AddWordIDs adds the "words" edge to the Word entity by IDs.
func (_u *PackUpdateOne) AddWordIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.AddWordIDs(ids...)
	return _u
}

// AddWords adds the "words" edges to the Word entity.
func (_u *PackUpdateOne) AddWords(v ...*Word) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordIDs(ids...)
}

// AddGrammarIDs adds the "grammars" edge to the Grammar entity by IDs.
func (_u *PackUpdateOne) AddGrammarIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.AddGrammarIDs(ids...)
	return _u
}

// AddGrammars adds the "grammars" edges to the Grammar entity.
func (_u *PackUpdateOne) AddGrammars(v ...*Grammar) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrammarIDs(ids...)
}

// AddGrammarTopicIDs adds the "grammar_topics" edge to the GrammarTopic entity by IDs.
func (_u *PackUpdateOne) AddGrammarTopicIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.AddGrammarTopicIDs(ids...)
	return _u
}

// AddGrammarTopics adds the "grammar_topics" edges to the GrammarTopic entity.
func (_u *PackUpdateOne) AddGrammarTopics(v ...*GrammarTopic) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrammarTopicIDs(ids...)
}

// AddProgressIDs adds the "progresses" edge to the Progress entity by IDs.
func (_u *PackUpdateOne) AddProgressIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.AddProgressIDs(ids...)
	return _u
}

// AddProgresses adds the "progresses" edges to the Progress entity.
func (_u *PackUpdateOne) AddProgresses(v ...*Progress) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProgressIDs(ids...)
}

// Mutation returns the PackMutation object of the builder.
func (_u *PackUpdateOne) Mutation() *PackMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *PackUpdateOne) ClearLesson() *PackUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// ClearWords clears all "words" edges to the Word entity.
func (_u *PackUpdateOne) ClearWords() *PackUpdateOne {
	_u.mutation.ClearWords()
	return _u
}

// RemoveWordIDs removes the "words" edge to Word entities by IDs.
func (_u *PackUpdateOne) RemoveWordIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.RemoveWordIDs(ids...)
	return _u
}

// RemoveWords removes "words" edges to Word entities.
func (_u *PackUpdateOne) RemoveWords(v ...*Word) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordIDs(ids...)
}

// ClearGrammars clears all "grammars" edges to the Grammar entity.
func (_u *PackUpdateOne) ClearGrammars() *PackUpdateOne {
	_u.mutation.ClearGrammars()
	return _u
}

// RemoveGrammarIDs removes the "grammars" edge to Grammar entities by IDs.
func (_u *PackUpdateOne) RemoveGrammarIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.RemoveGrammarIDs(ids...)
	return _u
}

// RemoveGrammars removes "grammars" edges to Grammar entities.
func (_u *PackUpdateOne) RemoveGrammars(v ...*Grammar) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrammarIDs(ids...)
}

// ClearGrammarTopics clears all "grammar_topics" edges to the GrammarTopic entity.
func (_u *PackUpdateOne) ClearGrammarTopics() *PackUpdateOne {
	_u.mutation.ClearGrammarTopics()
	return _u
}

// RemoveGrammarTopicIDs removes the "grammar_topics" edge to GrammarTopic entities by IDs.
func (_u *PackUpdateOne) RemoveGrammarTopicIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.RemoveGrammarTopicIDs(ids...)
	return _u
}

// RemoveGrammarTopics removes "grammar_topics" edges to GrammarTopic entities.
func (_u *PackUpdateOne) RemoveGrammarTopics(v ...*GrammarTopic) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrammarTopicIDs(ids...)
}

// ClearProgresses clears all "progresses" edges to the Progress entity.
func (_u *PackUpdateOne) ClearProgresses() *PackUpdateOne {
	_u.mutation.ClearProgresses()
	return _u
}

// RemoveProgressIDs removes the "progresses" edge to Progress entities by IDs.
func (_u *PackUpdateOne) RemoveProgressIDs(ids ...uuid.UUID) *PackUpdateOne {
	_u.mutation.RemoveProgressIDs(ids...)
	return _u
}

// RemoveProgresses removes "progresses" edges to Progress entities.
func (_u *PackUpdateOne) RemoveProgresses(v ...*Progress) *PackUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProgressIDs(ids...)
}

// Where appends a list predicates to the PackUpdate builder.
func (_u *PackUpdateOne) Where(ps ...predicate.Pack) *PackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PackUpdateOne) Select(field string, fields ...string) *PackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pack entity.
func (_u *PackUpdateOne) Save(ctx context.Context) (*Pack, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PackUpdateOne) SaveX(ctx context.Context) *Pack {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PackUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := pack.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Pack.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := pack.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Pack.type": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Pack.lesson"`)
	}
	return nil
}

func (_u *PackUpdateOne) sqlSave(ctx context.Context) (_node *Pack, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pack.Table, pack.Columns, sqlgraph.NewFieldSpec(pack.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pack.FieldID)
		for _, f := range fields {
			if !pack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pack.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(pack.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(pack.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(pack.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(pack.FieldWordCount, field.TypeInt, value)
	}
	if _u.mutation.WordCountCleared() {
		_spec.ClearField(pack.FieldWordCount, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pack.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.LessonCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordsIDs(); len(nodes) > 0 && !_u.mutation.WordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrammarsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrammarsIDs(); len(nodes) > 0 && !_u.mutation.GrammarsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrammarsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GrammarTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrammarTopicsIDs(); len(nodes) > 0 && !_u.mutation.GrammarTopicsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrammarTopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProgressesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProgressesIDs(); len(nodes) > 0 && !_u.mutation.ProgressesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProgressesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pack{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
