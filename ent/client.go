// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Kurty-byte/plant-sampling/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// EnvironmentalCondition is the client for interacting with the EnvironmentalCondition builders.
	EnvironmentalCondition *EnvironmentalConditionClient
	// GrowthMetric is the client for interacting with the GrowthMetric builders.
	GrowthMetric *GrowthMetricClient
	// Location is the client for interacting with the Location builders.
	Location *LocationClient
	// Researcher is the client for interacting with the Researcher builders.
	Researcher *ResearcherClient
	// Specimen is the client for interacting with the Specimen builders.
	Specimen *SpecimenClient
	// SpecimenResearcher is the client for interacting with the SpecimenResearcher builders.
	SpecimenResearcher *SpecimenResearcherClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.EnvironmentalCondition = NewEnvironmentalConditionClient(c.config)
	c.GrowthMetric = NewGrowthMetricClient(c.config)
	c.Location = NewLocationClient(c.config)
	c.Researcher = NewResearcherClient(c.config)
	c.Specimen = NewSpecimenClient(c.config)
	c.SpecimenResearcher = NewSpecimenResearcherClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		EnvironmentalCondition: NewEnvironmentalConditionClient(cfg),
		GrowthMetric:           NewGrowthMetricClient(cfg),
		Location:               NewLocationClient(cfg),
		Researcher:             NewResearcherClient(cfg),
		Specimen:               NewSpecimenClient(cfg),
		SpecimenResearcher:     NewSpecimenResearcherClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		AuditLog:               NewAuditLogClient(cfg),
		EnvironmentalCondition: NewEnvironmentalConditionClient(cfg),
		GrowthMetric:           NewGrowthMetricClient(cfg),
		Location:               NewLocationClient(cfg),
		Researcher:             NewResearcherClient(cfg),
		Specimen:               NewSpecimenClient(cfg),
		SpecimenResearcher:     NewSpecimenResearcherClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.EnvironmentalCondition, c.GrowthMetric, c.Location, c.Researcher,
		c.Specimen, c.SpecimenResearcher,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.EnvironmentalCondition, c.GrowthMetric, c.Location, c.Researcher,
		c.Specimen, c.SpecimenResearcher,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *EnvironmentalConditionMutation:
		return c.EnvironmentalCondition.mutate(ctx, m)
	case *GrowthMetricMutation:
		return c.GrowthMetric.mutate(ctx, m)
	case *LocationMutation:
		return c.Location.mutate(ctx, m)
	case *ResearcherMutation:
		return c.Researcher.mutate(ctx, m)
	case *SpecimenMutation:
		return c.Specimen.mutate(ctx, m)
	case *SpecimenResearcherMutation:
		return c.SpecimenResearcher.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// EnvironmentalConditionClient is a client for the EnvironmentalCondition schema.
type EnvironmentalConditionClient struct {
	config
}

// NewEnvironmentalConditionClient returns a client for the EnvironmentalCondition from the given config.
func NewEnvironmentalConditionClient(c config) *EnvironmentalConditionClient {
	return &EnvironmentalConditionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `environmentalcondition.Hooks(f(g(h())))`.
func (c *EnvironmentalConditionClient) Use(hooks ...Hook) {
	c.hooks.EnvironmentalCondition = append(c.hooks.EnvironmentalCondition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `environmentalcondition.Intercept(f(g(h())))`.
func (c *EnvironmentalConditionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnvironmentalCondition = append(c.inters.EnvironmentalCondition, interceptors...)
}

// Create returns a builder for creating a EnvironmentalCondition entity.
func (c *EnvironmentalConditionClient) Create() *EnvironmentalConditionCreate {
	mutation := newEnvironmentalConditionMutation(c.config, OpCreate)
	return &EnvironmentalConditionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnvironmentalCondition entities.
func (c *EnvironmentalConditionClient) CreateBulk(builders ...*EnvironmentalConditionCreate) *EnvironmentalConditionCreateBulk {
	return &EnvironmentalConditionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvironmentalConditionClient) MapCreateBulk(slice any, setFunc func(*EnvironmentalConditionCreate, int)) *EnvironmentalConditionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvironmentalConditionCreateBulk{err: fmt.Errorf("calling to EnvironmentalConditionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvironmentalConditionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvironmentalConditionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnvironmentalCondition.
func (c *EnvironmentalConditionClient) Update() *EnvironmentalConditionUpdate {
	mutation := newEnvironmentalConditionMutation(c.config, OpUpdate)
	return &EnvironmentalConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvironmentalConditionClient) UpdateOne(_m *EnvironmentalCondition) *EnvironmentalConditionUpdateOne {
	mutation := newEnvironmentalConditionMutation(c.config, OpUpdateOne, withEnvironmentalCondition(_m))
	return &EnvironmentalConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvironmentalConditionClient) UpdateOneID(id string) *EnvironmentalConditionUpdateOne {
	mutation := newEnvironmentalConditionMutation(c.config, OpUpdateOne, withEnvironmentalConditionID(id))
	return &EnvironmentalConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnvironmentalCondition.
func (c *EnvironmentalConditionClient) Delete() *EnvironmentalConditionDelete {
	mutation := newEnvironmentalConditionMutation(c.config, OpDelete)
	return &EnvironmentalConditionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvironmentalConditionClient) DeleteOne(_m *EnvironmentalCondition) *EnvironmentalConditionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvironmentalConditionClient) DeleteOneID(id string) *EnvironmentalConditionDeleteOne {
	builder := c.Delete().Where(environmentalcondition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvironmentalConditionDeleteOne{builder}
}

// Query returns a query builder for EnvironmentalCondition.
func (c *EnvironmentalConditionClient) Query() *EnvironmentalConditionQuery {
	return &EnvironmentalConditionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvironmentalCondition},
		inters: c.Interceptors(),
	}
}

// Get returns a EnvironmentalCondition entity by its id.
func (c *EnvironmentalConditionClient) Get(ctx context.Context, id string) (*EnvironmentalCondition, error) {
	return c.Query().Where(environmentalcondition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvironmentalConditionClient) GetX(ctx context.Context, id string) *EnvironmentalCondition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpecimens queries the specimens edge of a EnvironmentalCondition.
func (c *EnvironmentalConditionClient) QuerySpecimens(_m *EnvironmentalCondition) *SpecimenQuery {
	query := (&SpecimenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(environmentalcondition.Table, environmentalcondition.FieldID, id),
			sqlgraph.To(specimen.Table, specimen.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, environmentalcondition.SpecimensTable, environmentalcondition.SpecimensColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EnvironmentalConditionClient) Hooks() []Hook {
	return c.hooks.EnvironmentalCondition
}

// Interceptors returns the client interceptors.
func (c *EnvironmentalConditionClient) Interceptors() []Interceptor {
	return c.inters.EnvironmentalCondition
}

func (c *EnvironmentalConditionClient) mutate(ctx context.Context, m *EnvironmentalConditionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvironmentalConditionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvironmentalConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvironmentalConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvironmentalConditionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnvironmentalCondition mutation op: %q", m.Op())
	}
}

// GrowthMetricClient is a client for the GrowthMetric schema.
type GrowthMetricClient struct {
	config
}

// NewGrowthMetricClient returns a client for the GrowthMetric from the given config.
func NewGrowthMetricClient(c config) *GrowthMetricClient {
	return &GrowthMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `growthmetric.Hooks(f(g(h())))`.
func (c *GrowthMetricClient) Use(hooks ...Hook) {
	c.hooks.GrowthMetric = append(c.hooks.GrowthMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `growthmetric.Intercept(f(g(h())))`.
func (c *GrowthMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.GrowthMetric = append(c.inters.GrowthMetric, interceptors...)
}

// Create returns a builder for creating a GrowthMetric entity.
func (c *GrowthMetricClient) Create() *GrowthMetricCreate {
	mutation := newGrowthMetricMutation(c.config, OpCreate)
	return &GrowthMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GrowthMetric entities.
func (c *GrowthMetricClient) CreateBulk(builders ...*GrowthMetricCreate) *GrowthMetricCreateBulk {
	return &GrowthMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GrowthMetricClient) MapCreateBulk(slice any, setFunc func(*GrowthMetricCreate, int)) *GrowthMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GrowthMetricCreateBulk{err: fmt.Errorf("calling to GrowthMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GrowthMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GrowthMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GrowthMetric.
func (c *GrowthMetricClient) Update() *GrowthMetricUpdate {
	mutation := newGrowthMetricMutation(c.config, OpUpdate)
	return &GrowthMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GrowthMetricClient) UpdateOne(_m *GrowthMetric) *GrowthMetricUpdateOne {
	mutation := newGrowthMetricMutation(c.config, OpUpdateOne, withGrowthMetric(_m))
	return &GrowthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GrowthMetricClient) UpdateOneID(id string) *GrowthMetricUpdateOne {
	mutation := newGrowthMetricMutation(c.config, OpUpdateOne, withGrowthMetricID(id))
	return &GrowthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GrowthMetric.
func (c *GrowthMetricClient) Delete() *GrowthMetricDelete {
	mutation := newGrowthMetricMutation(c.config, OpDelete)
	return &GrowthMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GrowthMetricClient) DeleteOne(_m *GrowthMetric) *GrowthMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GrowthMetricClient) DeleteOneID(id string) *GrowthMetricDeleteOne {
	builder := c.Delete().Where(growthmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GrowthMetricDeleteOne{builder}
}

// Query returns a query builder for GrowthMetric.
func (c *GrowthMetricClient) Query() *GrowthMetricQuery {
	return &GrowthMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrowthMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a GrowthMetric entity by its id.
func (c *GrowthMetricClient) Get(ctx context.Context, id string) (*GrowthMetric, error) {
	return c.Query().Where(growthmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GrowthMetricClient) GetX(ctx context.Context, id string) *GrowthMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpecimen queries the specimen edge of a GrowthMetric.
func (c *GrowthMetricClient) QuerySpecimen(_m *GrowthMetric) *SpecimenQuery {
	query := (&SpecimenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(growthmetric.Table, growthmetric.FieldID, id),
			sqlgraph.To(specimen.Table, specimen.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, growthmetric.SpecimenTable, growthmetric.SpecimenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GrowthMetricClient) Hooks() []Hook {
	return c.hooks.GrowthMetric
}

// Interceptors returns the client interceptors.
func (c *GrowthMetricClient) Interceptors() []Interceptor {
	return c.inters.GrowthMetric
}

func (c *GrowthMetricClient) mutate(ctx context.Context, m *GrowthMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GrowthMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GrowthMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GrowthMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GrowthMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GrowthMetric mutation op: %q", m.Op())
	}
}

// LocationClient is a client for the Location schema.
type LocationClient struct {
	config
}

// NewLocationClient returns a client for the Location from the given config.
func NewLocationClient(c config) *LocationClient {
	return &LocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `location.Hooks(f(g(h())))`.
func (c *LocationClient) Use(hooks ...Hook) {
	c.hooks.Location = append(c.hooks.Location, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `location.Intercept(f(g(h())))`.
func (c *LocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Location = append(c.inters.Location, interceptors...)
}

// Create returns a builder for creating a Location entity.
func (c *LocationClient) Create() *LocationCreate {
	mutation := newLocationMutation(c.config, OpCreate)
	return &LocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Location entities.
func (c *LocationClient) CreateBulk(builders ...*LocationCreate) *LocationCreateBulk {
	return &LocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocationClient) MapCreateBulk(slice any, setFunc func(*LocationCreate, int)) *LocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocationCreateBulk{err: fmt.Errorf("calling to LocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Location.
func (c *LocationClient) Update() *LocationUpdate {
	mutation := newLocationMutation(c.config, OpUpdate)
	return &LocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocationClient) UpdateOne(_m *Location) *LocationUpdateOne {
	mutation := newLocationMutation(c.config, OpUpdateOne, withLocation(_m))
	return &LocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocationClient) UpdateOneID(id string) *LocationUpdateOne {
	mutation := newLocationMutation(c.config, OpUpdateOne, withLocationID(id))
	return &LocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Location.
func (c *LocationClient) Delete() *LocationDelete {
	mutation := newLocationMutation(c.config, OpDelete)
	return &LocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocationClient) DeleteOne(_m *Location) *LocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocationClient) DeleteOneID(id string) *LocationDeleteOne {
	builder := c.Delete().Where(location.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocationDeleteOne{builder}
}

// Query returns a query builder for Location.
func (c *LocationClient) Query() *LocationQuery {
	return &LocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocation},
		inters: c.Interceptors(),
	}
}

// Get returns a Location entity by its id.
func (c *LocationClient) Get(ctx context.Context, id string) (*Location, error) {
	return c.Query().Where(location.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocationClient) GetX(ctx context.Context, id string) *Location {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpecimens queries the specimens edge of a Location.
func (c *LocationClient) QuerySpecimens(_m *Location) *SpecimenQuery {
	query := (&SpecimenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(location.Table, location.FieldID, id),
			sqlgraph.To(specimen.Table, specimen.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, location.SpecimensTable, location.SpecimensColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LocationClient) Hooks() []Hook {
	return c.hooks.Location
}

// Interceptors returns the client interceptors.
func (c *LocationClient) Interceptors() []Interceptor {
	return c.inters.Location
}

func (c *LocationClient) mutate(ctx context.Context, m *LocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Location mutation op: %q", m.Op())
	}
}

// ResearcherClient is a client for the Researcher schema.
type ResearcherClient struct {
	config
}

// NewResearcherClient returns a client for the Researcher from the given config.
func NewResearcherClient(c config) *ResearcherClient {
	return &ResearcherClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researcher.Hooks(f(g(h())))`.
func (c *ResearcherClient) Use(hooks ...Hook) {
	c.hooks.Researcher = append(c.hooks.Researcher, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researcher.Intercept(f(g(h())))`.
func (c *ResearcherClient) Intercept(interceptors ...Interceptor) {
	c.inters.Researcher = append(c.inters.Researcher, interceptors...)
}

// Create returns a builder for creating a Researcher entity.
func (c *ResearcherClient) Create() *ResearcherCreate {
	mutation := newResearcherMutation(c.config, OpCreate)
	return &ResearcherCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Researcher entities.
func (c *ResearcherClient) CreateBulk(builders ...*ResearcherCreate) *ResearcherCreateBulk {
	return &ResearcherCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearcherClient) MapCreateBulk(slice any, setFunc func(*ResearcherCreate, int)) *ResearcherCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearcherCreateBulk{err: fmt.Errorf("calling to ResearcherClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearcherCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearcherCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Researcher.
func (c *ResearcherClient) Update() *ResearcherUpdate {
	mutation := newResearcherMutation(c.config, OpUpdate)
	return &ResearcherUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearcherClient) UpdateOne(_m *Researcher) *ResearcherUpdateOne {
	mutation := newResearcherMutation(c.config, OpUpdateOne, withResearcher(_m))
	return &ResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearcherClient) UpdateOneID(id string) *ResearcherUpdateOne {
	mutation := newResearcherMutation(c.config, OpUpdateOne, withResearcherID(id))
	return &ResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Researcher.
func (c *ResearcherClient) Delete() *ResearcherDelete {
	mutation := newResearcherMutation(c.config, OpDelete)
	return &ResearcherDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearcherClient) DeleteOne(_m *Researcher) *ResearcherDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearcherClient) DeleteOneID(id string) *ResearcherDeleteOne {
	builder := c.Delete().Where(researcher.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearcherDeleteOne{builder}
}

// Query returns a query builder for Researcher.
func (c *ResearcherClient) Query() *ResearcherQuery {
	return &ResearcherQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearcher},
		inters: c.Interceptors(),
	}
}

// Get returns a Researcher entity by its id.
func (c *ResearcherClient) Get(ctx context.Context, id string) (*Researcher, error) {
	return c.Query().Where(researcher.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearcherClient) GetX(ctx context.Context, id string) *Researcher {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignments queries the assignments edge of a Researcher.
func (c *ResearcherClient) QueryAssignments(_m *Researcher) *SpecimenResearcherQuery {
	query := (&SpecimenResearcherClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researcher.Table, researcher.FieldID, id),
			sqlgraph.To(specimenresearcher.Table, specimenresearcher.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researcher.AssignmentsTable, researcher.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearcherClient) Hooks() []Hook {
	return c.hooks.Researcher
}

// Interceptors returns the client interceptors.
func (c *ResearcherClient) Interceptors() []Interceptor {
	return c.inters.Researcher
}

func (c *ResearcherClient) mutate(ctx context.Context, m *ResearcherMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearcherCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearcherUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearcherDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Researcher mutation op: %q", m.Op())
	}
}

// SpecimenClient is a client for the Specimen schema.
type SpecimenClient struct {
	config
}

// NewSpecimenClient returns a client for the Specimen from the given config.
func NewSpecimenClient(c config) *SpecimenClient {
	return &SpecimenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specimen.Hooks(f(g(h())))`.
func (c *SpecimenClient) Use(hooks ...Hook) {
	c.hooks.Specimen = append(c.hooks.Specimen, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specimen.Intercept(f(g(h())))`.
func (c *SpecimenClient) Intercept(interceptors ...Interceptor) {
	c.inters.Specimen = append(c.inters.Specimen, interceptors...)
}

// Create returns a builder for creating a Specimen entity.
func (c *SpecimenClient) Create() *SpecimenCreate {
	mutation := newSpecimenMutation(c.config, OpCreate)
	return &SpecimenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Specimen entities.
func (c *SpecimenClient) CreateBulk(builders ...*SpecimenCreate) *SpecimenCreateBulk {
	return &SpecimenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecimenClient) MapCreateBulk(slice any, setFunc func(*SpecimenCreate, int)) *SpecimenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecimenCreateBulk{err: fmt.Errorf("calling to SpecimenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecimenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecimenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Specimen.
func (c *SpecimenClient) Update() *SpecimenUpdate {
	mutation := newSpecimenMutation(c.config, OpUpdate)
	return &SpecimenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecimenClient) UpdateOne(_m *Specimen) *SpecimenUpdateOne {
	mutation := newSpecimenMutation(c.config, OpUpdateOne, withSpecimen(_m))
	return &SpecimenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecimenClient) UpdateOneID(id string) *SpecimenUpdateOne {
	mutation := newSpecimenMutation(c.config, OpUpdateOne, withSpecimenID(id))
	return &SpecimenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Specimen.
func (c *SpecimenClient) Delete() *SpecimenDelete {
	mutation := newSpecimenMutation(c.config, OpDelete)
	return &SpecimenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecimenClient) DeleteOne(_m *Specimen) *SpecimenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecimenClient) DeleteOneID(id string) *SpecimenDeleteOne {
	builder := c.Delete().Where(specimen.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecimenDeleteOne{builder}
}

// Query returns a query builder for Specimen.
func (c *SpecimenClient) Query() *SpecimenQuery {
	return &SpecimenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecimen},
		inters: c.Interceptors(),
	}
}

// Get returns a Specimen entity by its id.
func (c *SpecimenClient) Get(ctx context.Context, id string) (*Specimen, error) {
	return c.Query().Where(specimen.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecimenClient) GetX(ctx context.Context, id string) *Specimen {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLocation queries the location edge of a Specimen.
func (c *SpecimenClient) QueryLocation(_m *Specimen) *LocationQuery {
	query := (&LocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, id),
			sqlgraph.To(location.Table, location.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimen.LocationTable, specimen.LocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCondition queries the condition edge of a Specimen.
func (c *SpecimenClient) QueryCondition(_m *Specimen) *EnvironmentalConditionQuery {
	query := (&EnvironmentalConditionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, id),
			sqlgraph.To(environmentalcondition.Table, environmentalcondition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimen.ConditionTable, specimen.ConditionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrowthMetrics queries the growth_metrics edge of a Specimen.
func (c *SpecimenClient) QueryGrowthMetrics(_m *Specimen) *GrowthMetricQuery {
	query := (&GrowthMetricClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, id),
			sqlgraph.To(growthmetric.Table, growthmetric.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, specimen.GrowthMetricsTable, specimen.GrowthMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResearcherLinks queries the researcher_links edge of a Specimen.
func (c *SpecimenClient) QueryResearcherLinks(_m *Specimen) *SpecimenResearcherQuery {
	query := (&SpecimenResearcherClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimen.Table, specimen.FieldID, id),
			sqlgraph.To(specimenresearcher.Table, specimenresearcher.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, specimen.ResearcherLinksTable, specimen.ResearcherLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpecimenClient) Hooks() []Hook {
	return c.hooks.Specimen
}

// Interceptors returns the client interceptors.
func (c *SpecimenClient) Interceptors() []Interceptor {
	return c.inters.Specimen
}

func (c *SpecimenClient) mutate(ctx context.Context, m *SpecimenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecimenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecimenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecimenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecimenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Specimen mutation op: %q", m.Op())
	}
}

// SpecimenResearcherClient is a client for the SpecimenResearcher schema.
type SpecimenResearcherClient struct {
	config
}

// NewSpecimenResearcherClient returns a client for the SpecimenResearcher from the given config.
func NewSpecimenResearcherClient(c config) *SpecimenResearcherClient {
	return &SpecimenResearcherClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specimenresearcher.Hooks(f(g(h())))`.
func (c *SpecimenResearcherClient) Use(hooks ...Hook) {
	c.hooks.SpecimenResearcher = append(c.hooks.SpecimenResearcher, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specimenresearcher.Intercept(f(g(h())))`.
func (c *SpecimenResearcherClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpecimenResearcher = append(c.inters.SpecimenResearcher, interceptors...)
}

// Create returns a builder for creating a SpecimenResearcher entity.
func (c *SpecimenResearcherClient) Create() *SpecimenResearcherCreate {
	mutation := newSpecimenResearcherMutation(c.config, OpCreate)
	return &SpecimenResearcherCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpecimenResearcher entities.
func (c *SpecimenResearcherClient) CreateBulk(builders ...*SpecimenResearcherCreate) *SpecimenResearcherCreateBulk {
	return &SpecimenResearcherCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecimenResearcherClient) MapCreateBulk(slice any, setFunc func(*SpecimenResearcherCreate, int)) *SpecimenResearcherCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecimenResearcherCreateBulk{err: fmt.Errorf("calling to SpecimenResearcherClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecimenResearcherCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecimenResearcherCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpecimenResearcher.
func (c *SpecimenResearcherClient) Update() *SpecimenResearcherUpdate {
	mutation := newSpecimenResearcherMutation(c.config, OpUpdate)
	return &SpecimenResearcherUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecimenResearcherClient) UpdateOne(_m *SpecimenResearcher) *SpecimenResearcherUpdateOne {
	mutation := newSpecimenResearcherMutation(c.config, OpUpdateOne, withSpecimenResearcher(_m))
	return &SpecimenResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecimenResearcherClient) UpdateOneID(id string) *SpecimenResearcherUpdateOne {
	mutation := newSpecimenResearcherMutation(c.config, OpUpdateOne, withSpecimenResearcherID(id))
	return &SpecimenResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpecimenResearcher.
func (c *SpecimenResearcherClient) Delete() *SpecimenResearcherDelete {
	mutation := newSpecimenResearcherMutation(c.config, OpDelete)
	return &SpecimenResearcherDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecimenResearcherClient) DeleteOne(_m *SpecimenResearcher) *SpecimenResearcherDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecimenResearcherClient) DeleteOneID(id string) *SpecimenResearcherDeleteOne {
	builder := c.Delete().Where(specimenresearcher.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecimenResearcherDeleteOne{builder}
}

// Query returns a query builder for SpecimenResearcher.
func (c *SpecimenResearcherClient) Query() *SpecimenResearcherQuery {
	return &SpecimenResearcherQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecimenResearcher},
		inters: c.Interceptors(),
	}
}

// Get returns a SpecimenResearcher entity by its id.
func (c *SpecimenResearcherClient) Get(ctx context.Context, id string) (*SpecimenResearcher, error) {
	return c.Query().Where(specimenresearcher.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecimenResearcherClient) GetX(ctx context.Context, id string) *SpecimenResearcher {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySpecimen queries the specimen edge of a SpecimenResearcher.
func (c *SpecimenResearcherClient) QuerySpecimen(_m *SpecimenResearcher) *SpecimenQuery {
	query := (&SpecimenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimenresearcher.Table, specimenresearcher.FieldID, id),
			sqlgraph.To(specimen.Table, specimen.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimenresearcher.SpecimenTable, specimenresearcher.SpecimenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResearcher queries the researcher edge of a SpecimenResearcher.
func (c *SpecimenResearcherClient) QueryResearcher(_m *SpecimenResearcher) *ResearcherQuery {
	query := (&ResearcherClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(specimenresearcher.Table, specimenresearcher.FieldID, id),
			sqlgraph.To(researcher.Table, researcher.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, specimenresearcher.ResearcherTable, specimenresearcher.ResearcherColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SpecimenResearcherClient) Hooks() []Hook {
	return c.hooks.SpecimenResearcher
}

// Interceptors returns the client interceptors.
func (c *SpecimenResearcherClient) Interceptors() []Interceptor {
	return c.inters.SpecimenResearcher
}

func (c *SpecimenResearcherClient) mutate(ctx context.Context, m *SpecimenResearcherMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecimenResearcherCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecimenResearcherUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecimenResearcherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecimenResearcherDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpecimenResearcher mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, EnvironmentalCondition, GrowthMetric, Location, Researcher, Specimen,
		SpecimenResearcher []ent.Hook
	}
	inters struct {
		AuditLog, EnvironmentalCondition, GrowthMetric, Location, Researcher, Specimen,
		SpecimenResearcher []ent.Interceptor
	}
)
