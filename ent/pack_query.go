// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
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

// PackQuery is the builder for querying Pack entities.
type PackQuery struct {
	config
	ctx               *QueryContext
	order             []pack.OrderOption
	inters            []Interceptor
	predicates        []predicate.Pack
	withLesson        *LessonQuery
	withWords         *WordQuery
	withGrammars      *GrammarQuery
	withGrammarTopics *GrammarTopicQuery
	withProgresses    *ProgressQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PackQuery builder.
func (_q *PackQuery) Where(ps ...predicate.Pack) *PackQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PackQuery) Limit(limit int) *PackQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PackQuery) Offset(offset int) *PackQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PackQuery) Unique(unique bool) *PackQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PackQuery) Order(o ...pack.OrderOption) *PackQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLesson chains the current query on the "lesson" edge.
func (_q *PackQuery) QueryLesson() *LessonQuery {
	query := (&LessonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pack.Table, pack.FieldID, selector),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pack.LessonTable, pack.LessonColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWords chains the current query on the "words" edge.
func (_q *PackQuery) QueryWords() *WordQuery {
	query := (&WordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pack.Table, pack.FieldID, selector),
			sqlgraph.To(word.Table, word.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pack.WordsTable, pack.WordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrammars chains the current query on the "grammars" edge.
func (_q *PackQuery) QueryGrammars() *GrammarQuery {
	query := (&GrammarClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pack.Table, pack.FieldID, selector),
			sqlgraph.To(grammar.Table, grammar.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pack.GrammarsTable, pack.GrammarsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrammarTopics chains the current query on the "grammar_topics" edge.
func (_q *PackQuery) QueryGrammarTopics() *GrammarTopicQuery {
	query := (&GrammarTopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pack.Table, pack.FieldID, selector),
			sqlgraph.To(grammartopic.Table, grammartopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pack.GrammarTopicsTable, pack.GrammarTopicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProgresses chains the current query on the "progresses" edge.
func (_q *PackQuery) QueryProgresses() *ProgressQuery {
	query := (&ProgressClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pack.Table, pack.FieldID, selector),
			sqlgraph.To(progress.Table, progress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, pack.ProgressesTable, pack.ProgressesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Pack entity from the query.
// Returns a *NotFoundError when no Pack was found.
func (_q *PackQuery) First(ctx context.Context) (*Pack, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pack.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PackQuery) FirstX(ctx context.Context) *Pack {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Pack ID from the query.
// Returns a *NotFoundError when no Pack ID was found.
func (_q *PackQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pack.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PackQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Pack entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Pack entity is found.
// Returns a *NotFoundError when no Pack entities are found.
func (_q *PackQuery) Only(ctx context.Context) (*Pack, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pack.Label}
	default:
		return nil, &NotSingularError{pack.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PackQuery) OnlyX(ctx context.Context) *Pack {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Pack ID in the query.
// Returns a *NotSingularError when more than one Pack ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PackQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pack.Label}
	default:
		err = &NotSingularError{pack.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PackQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Packs.
func (_q *PackQuery) All(ctx context.Context) ([]*Pack, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Pack, *PackQuery]()
	return withInterceptors[[]*Pack](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PackQuery) AllX(ctx context.Context) []*Pack {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Pack IDs.
func (_q *PackQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pack.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PackQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PackQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PackQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PackQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PackQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PackQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PackQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PackQuery) Clone() *PackQuery {
	if _q == nil {
		return nil
	}
	return &PackQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]pack.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Pack{}, _q.predicates...),
		withLesson:        _q.withLesson.Clone(),
		withWords:         _q.withWords.Clone(),
		withGrammars:      _q.withGrammars.Clone(),
		withGrammarTopics: _q.withGrammarTopics.Clone(),
		withProgresses:    _q.withProgresses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLesson tells the query-builder to eager-load the nodes that are connected to
// the "lesson" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PackQuery) WithLesson(opts ...func(*LessonQuery)) *PackQuery {
	query := (&LessonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLesson = query
	return _q
}

// WithWords tells the query-builder to eager-load the nodes that are connected to
// the "words" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PackQuery) WithWords(opts ...func(*WordQuery)) *PackQuery {
	query := (&WordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWords = query
	return _q
}

// WithGrammars tells the query-builder to eager-load the nodes that are connected to
// the "grammars" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PackQuery) WithGrammars(opts ...func(*GrammarQuery)) *PackQuery {
	query := (&GrammarClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrammars = query
	return _q
}

// WithGrammarTopics tells the query-builder to eager-load the nodes that are connected to
// the "grammar_topics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PackQuery) WithGrammarTopics(opts ...func(*GrammarTopicQuery)) *PackQuery {
	query := (&GrammarTopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrammarTopics = query
	return _q
}

// WithProgresses tells the query-builder to eager-load the nodes that are connected to
// the "progresses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PackQuery) WithProgresses(opts ...func(*ProgressQuery)) *PackQuery {
	query := (&ProgressClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProgresses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Pack.Query().
//		GroupBy(pack.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PackQuery) GroupBy(field string, fields ...string) *PackGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PackGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pack.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.Pack.Query().
//		Select(pack.FieldTitle).
//		Scan(ctx, &v)
func (_q *PackQuery) Select(fields ...string) *PackSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PackSelect{PackQuery: _q}
	sbuild.label = pack.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PackSelect configured with the given aggregations.
func (_q *PackQuery) Aggregate(fns ...AggregateFunc) *PackSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PackQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !pack.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PackQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Pack, error) {
	var (
		nodes       = []*Pack{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withLesson != nil,
			_q.withWords != nil,
			_q.withGrammars != nil,
			_q.withGrammarTopics != nil,
			_q.withProgresses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Pack).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Pack{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withLesson; query != nil {
		if err := _q.loadLesson(ctx, query, nodes, nil,
			func(n *Pack, e *Lesson) { n.Edges.Lesson = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWords; query != nil {
		if err := _q.loadWords(ctx, query, nodes,
			func(n *Pack) { n.Edges.Words = []*Word{} },
			func(n *Pack, e *Word) { n.Edges.Words = append(n.Edges.Words, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrammars; query != nil {
		if err := _q.loadGrammars(ctx, query, nodes,
			func(n *Pack) { n.Edges.Grammars = []*Grammar{} },
			func(n *Pack, e *Grammar) { n.Edges.Grammars = append(n.Edges.Grammars, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrammarTopics; query != nil {
		if err := _q.loadGrammarTopics(ctx, query, nodes,
			func(n *Pack) { n.Edges.GrammarTopics = []*GrammarTopic{} },
			func(n *Pack, e *GrammarTopic) { n.Edges.GrammarTopics = append(n.Edges.GrammarTopics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProgresses; query != nil {
		if err := _q.loadProgresses(ctx, query, nodes,
			func(n *Pack) { n.Edges.Progresses = []*Progress{} },
			func(n *Pack, e *Progress) { n.Edges.Progresses = append(n.Edges.Progresses, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PackQuery) loadLesson(ctx context.Context, query *LessonQuery, nodes []*Pack, init func(*Pack), assign func(*Pack, *Lesson)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Pack)
	for i := range nodes {
		fk := nodes[i].LessonID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lesson.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lesson_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PackQuery) loadWords(ctx context.Context, query *WordQuery, nodes []*Pack, init func(*Pack), assign func(*Pack, *Word)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Pack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(word.FieldPackID)
	}
	query.Where(predicate.Word(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pack.WordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PackQuery) loadGrammars(ctx context.Context, query *GrammarQuery, nodes []*Pack, init func(*Pack), assign func(*Pack, *Grammar)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Pack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(grammar.FieldPackID)
	}
	query.Where(predicate.Grammar(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pack.GrammarsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PackQuery) loadGrammarTopics(ctx context.Context, query *GrammarTopicQuery, nodes []*Pack, init func(*Pack), assign func(*Pack, *GrammarTopic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Pack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(grammartopic.FieldPackID)
	}
	query.Where(predicate.GrammarTopic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pack.GrammarTopicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PackQuery) loadProgresses(ctx context.Context, query *ProgressQuery, nodes []*Pack, init func(*Pack), assign func(*Pack, *Progress)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Pack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(progress.FieldPackID)
	}
	query.Where(predicate.Progress(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(pack.ProgressesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "pack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PackQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PackQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pack.Table, pack.Columns, sqlgraph.NewFieldSpec(pack.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pack.FieldID)
		for i := range fields {
			if fields[i] != pack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLesson != nil {
			_spec.Node.AddColumnOnce(pack.FieldLessonID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PackQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pack.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pack.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PackGroupBy is the group-by builder for Pack entities.
type PackGroupBy struct {
	selector
	build *PackQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PackGroupBy) Aggregate(fns ...AggregateFunc) *PackGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PackGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PackQuery, *PackGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PackGroupBy) sqlScan(ctx context.Context, root *PackQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PackSelect is the builder for selecting fields of Pack entities.
type PackSelect struct {
	*PackQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PackSelect) Aggregate(fns ...AggregateFunc) *PackSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PackSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PackQuery, *PackSelect](ctx, _s.PackQuery, _s, _s.inters, v)
}

func (_s *PackSelect) sqlScan(ctx context.Context, root *PackQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
