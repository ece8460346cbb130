// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/devaun0506/blackstar/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/milestoneevent"
	"github.com/devaun0506/blackstar/ent/shiftevent"
	"github.com/devaun0506/blackstar/ent/snapshot"
	"github.com/devaun0506/blackstar/ent/unlockevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MilestoneEvent is the client for interacting with the MilestoneEvent builders.
	MilestoneEvent *MilestoneEventClient
	// ShiftEvent is the client for interacting with the ShiftEvent builders.
	ShiftEvent *ShiftEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// UnlockEvent is the client for interacting with the UnlockEvent builders.
	UnlockEvent *UnlockEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MilestoneEvent = NewMilestoneEventClient(c.config)
	c.ShiftEvent = NewShiftEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.UnlockEvent = NewUnlockEventClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		MilestoneEvent: NewMilestoneEventClient(cfg),
		ShiftEvent:     NewShiftEventClient(cfg),
		Snapshot:       NewSnapshotClient(cfg),
		UnlockEvent:    NewUnlockEventClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		MilestoneEvent: NewMilestoneEventClient(cfg),
		ShiftEvent:     NewShiftEventClient(cfg),
		Snapshot:       NewSnapshotClient(cfg),
		UnlockEvent:    NewUnlockEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MilestoneEvent.
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
	c.MilestoneEvent.Use(hooks...)
	c.ShiftEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.UnlockEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.MilestoneEvent.Intercept(interceptors...)
	c.ShiftEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.UnlockEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MilestoneEventMutation:
		return c.MilestoneEvent.mutate(ctx, m)
	case *ShiftEventMutation:
		return c.ShiftEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *UnlockEventMutation:
		return c.UnlockEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// MilestoneEventClient is a client for the MilestoneEvent schema.
type MilestoneEventClient struct {
	config
}

// NewMilestoneEventClient returns a client for the MilestoneEvent from the given config.
func NewMilestoneEventClient(c config) *MilestoneEventClient {
	return &MilestoneEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `milestoneevent.Hooks(f(g(h())))`.
func (c *MilestoneEventClient) Use(hooks ...Hook) {
	c.hooks.MilestoneEvent = append(c.hooks.MilestoneEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `milestoneevent.Intercept(f(g(h())))`.
func (c *MilestoneEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MilestoneEvent = append(c.inters.MilestoneEvent, interceptors...)
}

// Create returns a builder for creating a MilestoneEvent entity.
func (c *MilestoneEventClient) Create() *MilestoneEventCreate {
	mutation := newMilestoneEventMutation(c.config, OpCreate)
	return &MilestoneEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MilestoneEvent entities.
func (c *MilestoneEventClient) CreateBulk(builders ...*MilestoneEventCreate) *MilestoneEventCreateBulk {
	return &MilestoneEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MilestoneEventClient) MapCreateBulk(slice any, setFunc func(*MilestoneEventCreate, int)) *MilestoneEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MilestoneEventCreateBulk{err: fmt.Errorf("calling to MilestoneEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MilestoneEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MilestoneEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MilestoneEvent.
func (c *MilestoneEventClient) Update() *MilestoneEventUpdate {
	mutation := newMilestoneEventMutation(c.config, OpUpdate)
	return &MilestoneEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MilestoneEventClient) UpdateOne(_m *MilestoneEvent) *MilestoneEventUpdateOne {
	mutation := newMilestoneEventMutation(c.config, OpUpdateOne, withMilestoneEvent(_m))
	return &MilestoneEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MilestoneEventClient) UpdateOneID(id int) *MilestoneEventUpdateOne {
	mutation := newMilestoneEventMutation(c.config, OpUpdateOne, withMilestoneEventID(id))
	return &MilestoneEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MilestoneEvent.
func (c *MilestoneEventClient) Delete() *MilestoneEventDelete {
	mutation := newMilestoneEventMutation(c.config, OpDelete)
	return &MilestoneEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MilestoneEventClient) DeleteOne(_m *MilestoneEvent) *MilestoneEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MilestoneEventClient) DeleteOneID(id int) *MilestoneEventDeleteOne {
	builder := c.Delete().Where(milestoneevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MilestoneEventDeleteOne{builder}
}

// Query returns a query builder for MilestoneEvent.
func (c *MilestoneEventClient) Query() *MilestoneEventQuery {
	return &MilestoneEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMilestoneEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MilestoneEvent entity by its id.
func (c *MilestoneEventClient) Get(ctx context.Context, id int) (*MilestoneEvent, error) {
	return c.Query().Where(milestoneevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MilestoneEventClient) GetX(ctx context.Context, id int) *MilestoneEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MilestoneEventClient) Hooks() []Hook {
	return c.hooks.MilestoneEvent
}

// Interceptors returns the client interceptors.
func (c *MilestoneEventClient) Interceptors() []Interceptor {
	return c.inters.MilestoneEvent
}

func (c *MilestoneEventClient) mutate(ctx context.Context, m *MilestoneEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MilestoneEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MilestoneEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MilestoneEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MilestoneEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MilestoneEvent mutation op: %q", m.Op())
	}
}

// ShiftEventClient is a client for the ShiftEvent schema.
type ShiftEventClient struct {
	config
}

// NewShiftEventClient returns a client for the ShiftEvent from the given config.
func NewShiftEventClient(c config) *ShiftEventClient {
	return &ShiftEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shiftevent.Hooks(f(g(h())))`.
func (c *ShiftEventClient) Use(hooks ...Hook) {
	c.hooks.ShiftEvent = append(c.hooks.ShiftEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shiftevent.Intercept(f(g(h())))`.
func (c *ShiftEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ShiftEvent = append(c.inters.ShiftEvent, interceptors...)
}

// Create returns a builder for creating a ShiftEvent entity.
func (c *ShiftEventClient) Create() *ShiftEventCreate {
	mutation := newShiftEventMutation(c.config, OpCreate)
	return &ShiftEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ShiftEvent entities.
func (c *ShiftEventClient) CreateBulk(builders ...*ShiftEventCreate) *ShiftEventCreateBulk {
	return &ShiftEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShiftEventClient) MapCreateBulk(slice any, setFunc func(*ShiftEventCreate, int)) *ShiftEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShiftEventCreateBulk{err: fmt.Errorf("calling to ShiftEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShiftEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShiftEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ShiftEvent.
func (c *ShiftEventClient) Update() *ShiftEventUpdate {
	mutation := newShiftEventMutation(c.config, OpUpdate)
	return &ShiftEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShiftEventClient) UpdateOne(_m *ShiftEvent) *ShiftEventUpdateOne {
	mutation := newShiftEventMutation(c.config, OpUpdateOne, withShiftEvent(_m))
	return &ShiftEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShiftEventClient) UpdateOneID(id int) *ShiftEventUpdateOne {
	mutation := newShiftEventMutation(c.config, OpUpdateOne, withShiftEventID(id))
	return &ShiftEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ShiftEvent.
func (c *ShiftEventClient) Delete() *ShiftEventDelete {
	mutation := newShiftEventMutation(c.config, OpDelete)
	return &ShiftEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShiftEventClient) DeleteOne(_m *ShiftEvent) *ShiftEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShiftEventClient) DeleteOneID(id int) *ShiftEventDeleteOne {
	builder := c.Delete().Where(shiftevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShiftEventDeleteOne{builder}
}

// Query returns a query builder for ShiftEvent.
func (c *ShiftEventClient) Query() *ShiftEventQuery {
	return &ShiftEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShiftEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ShiftEvent entity by its id.
func (c *ShiftEventClient) Get(ctx context.Context, id int) (*ShiftEvent, error) {
	return c.Query().Where(shiftevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShiftEventClient) GetX(ctx context.Context, id int) *ShiftEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ShiftEventClient) Hooks() []Hook {
	return c.hooks.ShiftEvent
}

// Interceptors returns the client interceptors.
func (c *ShiftEventClient) Interceptors() []Interceptor {
	return c.inters.ShiftEvent
}

func (c *ShiftEventClient) mutate(ctx context.Context, m *ShiftEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShiftEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShiftEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShiftEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShiftEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ShiftEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// UnlockEventClient is a client for the UnlockEvent schema.
type UnlockEventClient struct {
	config
}

// NewUnlockEventClient returns a client for the UnlockEvent from the given config.
func NewUnlockEventClient(c config) *UnlockEventClient {
	return &UnlockEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unlockevent.Hooks(f(g(h())))`.
func (c *UnlockEventClient) Use(hooks ...Hook) {
	c.hooks.UnlockEvent = append(c.hooks.UnlockEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unlockevent.Intercept(f(g(h())))`.
func (c *UnlockEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnlockEvent = append(c.inters.UnlockEvent, interceptors...)
}

// Create returns a builder for creating a UnlockEvent entity.
func (c *UnlockEventClient) Create() *UnlockEventCreate {
	mutation := newUnlockEventMutation(c.config, OpCreate)
	return &UnlockEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnlockEvent entities.
func (c *UnlockEventClient) CreateBulk(builders ...*UnlockEventCreate) *UnlockEventCreateBulk {
	return &UnlockEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnlockEventClient) MapCreateBulk(slice any, setFunc func(*UnlockEventCreate, int)) *UnlockEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnlockEventCreateBulk{err: fmt.Errorf("calling to UnlockEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnlockEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnlockEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnlockEvent.
func (c *UnlockEventClient) Update() *UnlockEventUpdate {
	mutation := newUnlockEventMutation(c.config, OpUpdate)
	return &UnlockEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnlockEventClient) UpdateOne(_m *UnlockEvent) *UnlockEventUpdateOne {
	mutation := newUnlockEventMutation(c.config, OpUpdateOne, withUnlockEvent(_m))
	return &UnlockEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnlockEventClient) UpdateOneID(id int) *UnlockEventUpdateOne {
	mutation := newUnlockEventMutation(c.config, OpUpdateOne, withUnlockEventID(id))
	return &UnlockEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnlockEvent.
func (c *UnlockEventClient) Delete() *UnlockEventDelete {
	mutation := newUnlockEventMutation(c.config, OpDelete)
	return &UnlockEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnlockEventClient) DeleteOne(_m *UnlockEvent) *UnlockEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnlockEventClient) DeleteOneID(id int) *UnlockEventDeleteOne {
	builder := c.Delete().Where(unlockevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnlockEventDeleteOne{builder}
}

// Query returns a query builder for UnlockEvent.
func (c *UnlockEventClient) Query() *UnlockEventQuery {
	return &UnlockEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnlockEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a UnlockEvent entity by its id.
func (c *UnlockEventClient) Get(ctx context.Context, id int) (*UnlockEvent, error) {
	return c.Query().Where(unlockevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnlockEventClient) GetX(ctx context.Context, id int) *UnlockEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnlockEventClient) Hooks() []Hook {
	return c.hooks.UnlockEvent
}

// Interceptors returns the client interceptors.
func (c *UnlockEventClient) Interceptors() []Interceptor {
	return c.inters.UnlockEvent
}

func (c *UnlockEventClient) mutate(ctx context.Context, m *UnlockEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnlockEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnlockEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnlockEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnlockEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnlockEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MilestoneEvent, ShiftEvent, Snapshot, UnlockEvent []ent.Hook
	}
	inters struct {
		MilestoneEvent, ShiftEvent, Snapshot, UnlockEvent []ent.Interceptor
	}
)
