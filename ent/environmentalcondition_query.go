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
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
)

// EnvironmentalConditionQuery is the builder for querying EnvironmentalCondition entities.
type EnvironmentalConditionQuery struct {
	config
	ctx           *QueryContext
	order         []environmentalcondition.OrderOption
	inters        []Interceptor
	predicates    []predicate.EnvironmentalCondition
	withSpecimens *SpecimenQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EnvironmentalConditionQuery builder.
func (_q *EnvironmentalConditionQuery) Where(ps ...predicate.EnvironmentalCondition) *EnvironmentalConditionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EnvironmentalConditionQuery) Limit(limit int) *EnvironmentalConditionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EnvironmentalConditionQuery) Offset(offset int) *EnvironmentalConditionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EnvironmentalConditionQuery) Unique(unique bool) *EnvironmentalConditionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EnvironmentalConditionQuery) Order(o ...environmentalcondition.OrderOption) *EnvironmentalConditionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySpecimens chains the current query on the "specimens" edge.
func (_q *EnvironmentalConditionQuery) QuerySpecimens() *SpecimenQuery {
	query := (&SpecimenClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(environmentalcondition.Table, environmentalcondition.FieldID, selector),
			sqlgraph.To(specimen.Table, specimen.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, environmentalcondition.SpecimensTable, environmentalcondition.SpecimensColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EnvironmentalCondition entity from the query.
// Returns a *NotFoundError when no EnvironmentalCondition was found.
func (_q *EnvironmentalConditionQuery) First(ctx context.Context) (*EnvironmentalCondition, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{environmentalcondition.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) FirstX(ctx context.Context) *EnvironmentalCondition {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EnvironmentalCondition ID from the query.
// Returns a *NotFoundError when no EnvironmentalCondition ID was found.
func (_q *EnvironmentalConditionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{environmentalcondition.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EnvironmentalCondition entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EnvironmentalCondition entity is found.
// Returns a *NotFoundError when no EnvironmentalCondition entities are found.
func (_q *EnvironmentalConditionQuery) Only(ctx context.Context) (*EnvironmentalCondition, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{environmentalcondition.Label}
	default:
		return nil, &NotSingularError{environmentalcondition.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) OnlyX(ctx context.Context) *EnvironmentalCondition {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EnvironmentalCondition ID in the query.
// Returns a *NotSingularError when more than one EnvironmentalCondition ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EnvironmentalConditionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{environmentalcondition.Label}
	default:
		err = &NotSingularError{environmentalcondition.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EnvironmentalConditions.
func (_q *EnvironmentalConditionQuery) All(ctx context.Context) ([]*EnvironmentalCondition, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EnvironmentalCondition, *EnvironmentalConditionQuery]()
	return withInterceptors[[]*EnvironmentalCondition](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) AllX(ctx context.Context) []*EnvironmentalCondition {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EnvironmentalCondition IDs.
func (_q *EnvironmentalConditionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(environmentalcondition.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EnvironmentalConditionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EnvironmentalConditionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EnvironmentalConditionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EnvironmentalConditionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *EnvironmentalConditionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EnvironmentalConditionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EnvironmentalConditionQuery) Clone() *EnvironmentalConditionQuery {
	if _q == nil {
		return nil
	}
	return &EnvironmentalConditionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]environmentalcondition.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.EnvironmentalCondition{}, _q.predicates...),
		withSpecimens: _q.withSpecimens.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSpecimens tells the query-builder to eager-load the nodes that are connected to
// the "specimens" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EnvironmentalConditionQuery) WithSpecimens(opts ...func(*SpecimenQuery)) *EnvironmentalConditionQuery {
	query := (&SpecimenClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSpecimens = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EnvironmentalCondition.Query().
//		GroupBy(environmentalcondition.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EnvironmentalConditionQuery) GroupBy(field string, fields ...string) *EnvironmentalConditionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EnvironmentalConditionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = environmentalcondition.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.EnvironmentalCondition.Query().
//		Select(environmentalcondition.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *EnvironmentalConditionQuery) Select(fields ...string) *EnvironmentalConditionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EnvironmentalConditionSelect{EnvironmentalConditionQuery: _q}
	sbuild.label = environmentalcondition.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EnvironmentalConditionSelect configured with the given aggregations.
func (_q *EnvironmentalConditionQuery) Aggregate(fns ...AggregateFunc) *EnvironmentalConditionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EnvironmentalConditionQuery) prepareQuery(ctx context.Context) error {
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
		if !environmentalcondition.ValidColumn(f) {
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

func (_q *EnvironmentalConditionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EnvironmentalCondition, error) {
	var (
		nodes       = []*EnvironmentalCondition{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSpecimens != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EnvironmentalCondition).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EnvironmentalCondition{config: _q.config}
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
	if query := _q.withSpecimens; query != nil {
		if err := _q.loadSpecimens(ctx, query, nodes,
			func(n *EnvironmentalCondition) { n.Edges.Specimens = []*Specimen{} },
			func(n *EnvironmentalCondition, e *Specimen) { n.Edges.Specimens = append(n.Edges.Specimens, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EnvironmentalConditionQuery) loadSpecimens(ctx context.Context, query *SpecimenQuery, nodes []*EnvironmentalCondition, init func(*EnvironmentalCondition), assign func(*EnvironmentalCondition, *Specimen)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EnvironmentalCondition)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(specimen.FieldConditionID)
	}
	query.Where(predicate.Specimen(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(environmentalcondition.SpecimensColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConditionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "condition_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EnvironmentalConditionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EnvironmentalConditionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(environmentalcondition.Table, environmentalcondition.Columns, sqlgraph.NewFieldSpec(environmentalcondition.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, environmentalcondition.FieldID)
		for i := range fields {
			if fields[i] != environmentalcondition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *EnvironmentalConditionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(environmentalcondition.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = environmentalcondition.Columns
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

// EnvironmentalConditionGroupBy is the group-by builder for EnvironmentalCondition entities.
type EnvironmentalConditionGroupBy struct {
	selector
	build *EnvironmentalConditionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EnvironmentalConditionGroupBy) Aggregate(fns ...AggregateFunc) *EnvironmentalConditionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EnvironmentalConditionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnvironmentalConditionQuery, *EnvironmentalConditionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EnvironmentalConditionGroupBy) sqlScan(ctx context.Context, root *EnvironmentalConditionQuery, v any) error {
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

// EnvironmentalConditionSelect is the builder for selecting fields of EnvironmentalCondition entities.
type EnvironmentalConditionSelect struct {
	*EnvironmentalConditionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EnvironmentalConditionSelect) Aggregate(fns ...AggregateFunc) *EnvironmentalConditionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EnvironmentalConditionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EnvironmentalConditionQuery, *EnvironmentalConditionSelect](ctx, _s.EnvironmentalConditionQuery, _s, _s.inters, v)
}

func (_s *EnvironmentalConditionSelect) sqlScan(ctx context.Context, root *EnvironmentalConditionQuery, v any) error {
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
