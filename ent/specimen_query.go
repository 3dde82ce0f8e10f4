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
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// SpecimenQuery is the builder for querying Specimen entities.
type SpecimenQuery struct {
	config
	ctx                 *QueryContext
	order               []specimen.OrderOption
	inters              []Interceptor
	predicates          []predicate.Specimen
	withLocation        *LocationQuery
	withCondition       *EnvironmentalConditionQuery
	withGrowthMetrics   *GrowthMetricQuery
	withResearcherLinks *SpecimenResearcherQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SpecimenQuery builder.
func (_q *SpecimenQuery) Where(ps ...predicate.Specimen) *SpecimenQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SpecimenQuery) Limit(limit int) *SpecimenQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SpecimenQuery) Offset(offset int) *SpecimenQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SpecimenQuery) Unique(unique bool) *SpecimenQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SpecimenQuery) Order(o ...specimen.OrderOption) *SpecimenQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLocation chains the current query on the "location" edge.
func (_q *SpecimenQuery) QueryLocation() *LocationQuery {
	query := (&LocationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, selector),
			sqlgraph.To(location.Table, location.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimen.LocationTable, specimen.LocationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCondition chains the current query on the "condition" edge.
func (_q *SpecimenQuery) QueryCondition() *EnvironmentalConditionQuery {
	query := (&EnvironmentalConditionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, selector),
			sqlgraph.To(environmentalcondition.Table, environmentalcondition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimen.ConditionTable, specimen.ConditionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrowthMetrics chains the current query on the "growth_metrics" edge.
func (_q *SpecimenQuery) QueryGrowthMetrics() *GrowthMetricQuery {
	query := (&GrowthMetricClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, selector),
			sqlgraph.To(growthmetric.Table, growthmetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, specimen.GrowthMetricsTable, specimen.GrowthMetricsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResearcherLinks chains the current query on the "researcher_links" edge.
func (_q *SpecimenQuery) QueryResearcherLinks() *SpecimenResearcherQuery {
	query := (&SpecimenResearcherClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, selector),
			sqlgraph.To(specimenresearcher.Table, specimenresearcher.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, specimen.ResearcherLinksTable, specimen.ResearcherLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Specimen entity from the query.
// Returns a *NotFoundError when no Specimen was found.
func (_q *SpecimenQuery) First(ctx context.Context) (*Specimen, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{specimen.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SpecimenQuery) FirstX(ctx context.Context) *Specimen {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Specimen ID from the query.
// Returns a *NotFoundError when no Specimen ID was found.
func (_q *SpecimenQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{specimen.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SpecimenQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Specimen entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Specimen entity is found.
// Returns a *NotFoundError when no Specimen entities are found.
func (_q *SpecimenQuery) Only(ctx context.Context) (*Specimen, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{specimen.Label}
	default:
		return nil, &NotSingularError{specimen.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SpecimenQuery) OnlyX(ctx context.Context) *Specimen {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Specimen ID in the query.
// Returns a *NotSingularError when more than one Specimen ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SpecimenQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{specimen.Label}
	default:
		err = &NotSingularError{specimen.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SpecimenQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SpecimenSlice.
func (_q *SpecimenQuery) All(ctx context.Context) ([]*Specimen, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Specimen, *SpecimenQuery]()
	return withInterceptors[[]*Specimen](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SpecimenQuery) AllX(ctx context.Context) []*Specimen {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Specimen IDs.
func (_q *SpecimenQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(specimen.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SpecimenQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SpecimenQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SpecimenQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SpecimenQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SpecimenQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SpecimenQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SpecimenQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SpecimenQuery) Clone() *SpecimenQuery {
	if _q == nil {
		return nil
	}
	return &SpecimenQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]specimen.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Specimen{}, _q.predicates...),
		withLocation:        _q.withLocation.Clone(),
		withCondition:       _q.withCondition.Clone(),
		withGrowthMetrics:   _q.withGrowthMetrics.Clone(),
		withResearcherLinks: _q.withResearcherLinks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLocation tells the query-builder to eager-load the nodes that are connected to
// the "location" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpecimenQuery) WithLocation(opts ...func(*LocationQuery)) *SpecimenQuery {
	query := (&LocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLocation = query
	return _q
}

// WithCondition tells the query-builder to eager-load the nodes that are connected to
// the "condition" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpecimenQuery) WithCondition(opts ...func(*EnvironmentalConditionQuery)) *SpecimenQuery {
	query := (&EnvironmentalConditionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCondition = query
	return _q
}

// WithGrowthMetrics tells the query-builder to eager-load the nodes that are connected to
// the "growth_metrics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpecimenQuery) WithGrowthMetrics(opts ...func(*GrowthMetricQuery)) *SpecimenQuery {
	query := (&GrowthMetricClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrowthMetrics = query
	return _q
}

// WithResearcherLinks tells the query-builder to eager-load the nodes that are connected to
// the "researcher_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SpecimenQuery) WithResearcherLinks(opts ...func(*SpecimenResearcherQuery)) *SpecimenQuery {
	query := (&SpecimenResearcherClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResearcherLinks = query
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
//	client.Specimen.Query().
//		GroupBy(specimen.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SpecimenQuery) GroupBy(field string, fields ...string) *SpecimenGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SpecimenGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = specimen.Label
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
//	client.Specimen.Query().
//		Select(specimen.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *SpecimenQuery) Select(fields ...string) *SpecimenSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SpecimenSelect{SpecimenQuery: _q}
	sbuild.label = specimen.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SpecimenSelect configured with the given aggregations.
func (_q *SpecimenQuery) Aggregate(fns ...AggregateFunc) *SpecimenSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SpecimenQuery) prepareQuery(ctx context.Context) error {
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
		if !specimen.ValidColumn(f) {
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

func (_q *SpecimenQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Specimen, error) {
	var (
		nodes       = []*Specimen{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withLocation != nil,
			_q.withCondition != nil,
			_q.withGrowthMetrics != nil,
			_q.withResearcherLinks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Specimen).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Specimen{config: _q.config}
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
	if query := _q.withLocation; query != nil {
		if err := _q.loadLocation(ctx, query, nodes, nil,
			func(n *Specimen, e *Location) { n.Edges.Location = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCondition; query != nil {
		if err := _q.loadCondition(ctx, query, nodes, nil,
			func(n *Specimen, e *EnvironmentalCondition) { n.Edges.Condition = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrowthMetrics; query != nil {
		if err := _q.loadGrowthMetrics(ctx, query, nodes,
			func(n *Specimen) { n.Edges.GrowthMetrics = []*GrowthMetric{} },
			func(n *Specimen, e *GrowthMetric) { n.Edges.GrowthMetrics = append(n.Edges.GrowthMetrics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResearcherLinks; query != nil {
		if err := _q.loadResearcherLinks(ctx, query, nodes,
			func(n *Specimen) { n.Edges.ResearcherLinks = []*SpecimenResearcher{} },
			func(n *Specimen, e *SpecimenResearcher) { n.Edges.ResearcherLinks = append(n.Edges.ResearcherLinks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SpecimenQuery) loadLocation(ctx context.Context, query *LocationQuery, nodes []*Specimen, init func(*Specimen), assign func(*Specimen, *Location)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Specimen)
	for i := range nodes {
		fk := nodes[i].LocationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(location.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "location_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SpecimenQuery) loadCondition(ctx context.Context, query *EnvironmentalConditionQuery, nodes []*Specimen, init func(*Specimen), assign func(*Specimen, *EnvironmentalCondition)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Specimen)
	for i := range nodes {
		fk := nodes[i].ConditionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(environmentalcondition.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "condition_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SpecimenQuery) loadGrowthMetrics(ctx context.Context, query *GrowthMetricQuery, nodes []*Specimen, init func(*Specimen), assign func(*Specimen, *GrowthMetric)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Specimen)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(growthmetric.FieldSpecimenID)
	}
	query.Where(predicate.GrowthMetric(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(specimen.GrowthMetricsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SpecimenID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "specimen_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SpecimenQuery) loadResearcherLinks(ctx context.Context, query *SpecimenResearcherQuery, nodes []*Specimen, init func(*Specimen), assign func(*Specimen, *SpecimenResearcher)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Specimen)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(specimenresearcher.FieldSpecimenID)
	}
	query.Where(predicate.SpecimenResearcher(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(specimen.ResearcherLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SpecimenID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "specimen_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SpecimenQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SpecimenQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(specimen.Table, specimen.Columns, sqlgraph.NewFieldSpec(specimen.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, specimen.FieldID)
		for i := range fields {
			if fields[i] != specimen.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withLocation != nil {
			_spec.Node.AddColumnOnce(specimen.FieldLocationID)
		}
		if _q.withCondition != nil {
			_spec.Node.AddColumnOnce(specimen.FieldConditionID)
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

func (_q *SpecimenQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(specimen.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = specimen.Columns
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

// SpecimenGroupBy is the group-by builder for Specimen entities.
type SpecimenGroupBy struct {
	selector
	build *SpecimenQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SpecimenGroupBy) Aggregate(fns ...AggregateFunc) *SpecimenGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SpecimenGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpecimenQuery, *SpecimenGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SpecimenGroupBy) sqlScan(ctx context.Context, root *SpecimenQuery, v any) error {
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

// SpecimenSelect is the builder for selecting fields of Specimen entities.
type SpecimenSelect struct {
	*SpecimenQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SpecimenSelect) Aggregate(fns ...AggregateFunc) *SpecimenSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SpecimenSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SpecimenQuery, *SpecimenSelect](ctx, _s.SpecimenQuery, _s, _s.inters, v)
}

func (_s *SpecimenSelect) sqlScan(ctx context.Context, root *SpecimenQuery, v any) error {
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
