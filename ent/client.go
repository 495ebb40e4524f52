// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sitekeeper/sitekeeper/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/sitekeeper/sitekeeper/ent/journalentry"
	"github.com/sitekeeper/sitekeeper/ent/masteractionrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// JournalEntry is the client for interacting with the JournalEntry builders.
	JournalEntry *JournalEntryClient
	// MasterActionRecord is the client for interacting with the MasterActionRecord builders.
	MasterActionRecord *MasterActionRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.JournalEntry = NewJournalEntryClient(c.config)
	c.MasterActionRecord = NewMasterActionRecordClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		JournalEntry:       NewJournalEntryClient(cfg),
		MasterActionRecord: NewMasterActionRecordClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		JournalEntry:       NewJournalEntryClient(cfg),
		MasterActionRecord: NewMasterActionRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		JournalEntry.
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
	c.JournalEntry.Use(hooks...)
	c.MasterActionRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.JournalEntry.Intercept(interceptors...)
	c.MasterActionRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JournalEntryMutation:
		return c.JournalEntry.mutate(ctx, m)
	case *MasterActionRecordMutation:
		return c.MasterActionRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JournalEntryClient is a client for the JournalEntry schema.
type JournalEntryClient struct {
	config
}

// NewJournalEntryClient returns a client for the JournalEntry from the given config.
func NewJournalEntryClient(c config) *JournalEntryClient {
	return &JournalEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `journalentry.Hooks(f(g(h())))`.
func (c *JournalEntryClient) Use(hooks ...Hook) {
	c.hooks.JournalEntry = append(c.hooks.JournalEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `journalentry.Intercept(f(g(h())))`.
func (c *JournalEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.JournalEntry = append(c.inters.JournalEntry, interceptors...)
}

// Create returns a builder for creating a JournalEntry entity.
func (c *JournalEntryClient) Create() *JournalEntryCreate {
	mutation := newJournalEntryMutation(c.config, OpCreate)
	return &JournalEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JournalEntry entities.
func (c *JournalEntryClient) CreateBulk(builders ...*JournalEntryCreate) *JournalEntryCreateBulk {
	return &JournalEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JournalEntryClient) MapCreateBulk(slice any, setFunc func(*JournalEntryCreate, int)) *JournalEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JournalEntryCreateBulk{err: fmt.Errorf("calling to JournalEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JournalEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JournalEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JournalEntry.
func (c *JournalEntryClient) Update() *JournalEntryUpdate {
	mutation := newJournalEntryMutation(c.config, OpUpdate)
	return &JournalEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JournalEntryClient) UpdateOne(_m *JournalEntry) *JournalEntryUpdateOne {
	mutation := newJournalEntryMutation(c.config, OpUpdateOne, withJournalEntry(_m))
	return &JournalEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JournalEntryClient) UpdateOneID(id string) *JournalEntryUpdateOne {
	mutation := newJournalEntryMutation(c.config, OpUpdateOne, withJournalEntryID(id))
	return &JournalEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JournalEntry.
func (c *JournalEntryClient) Delete() *JournalEntryDelete {
	mutation := newJournalEntryMutation(c.config, OpDelete)
	return &JournalEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JournalEntryClient) DeleteOne(_m *JournalEntry) *JournalEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JournalEntryClient) DeleteOneID(id string) *JournalEntryDeleteOne {
	builder := c.Delete().Where(journalentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JournalEntryDeleteOne{builder}
}

// Query returns a query builder for JournalEntry.
func (c *JournalEntryClient) Query() *JournalEntryQuery {
	return &JournalEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJournalEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a JournalEntry entity by its id.
func (c *JournalEntryClient) Get(ctx context.Context, id string) (*JournalEntry, error) {
	return c.Query().Where(journalentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JournalEntryClient) GetX(ctx context.Context, id string) *JournalEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JournalEntryClient) Hooks() []Hook {
	return c.hooks.JournalEntry
}

// Interceptors returns the client interceptors.
func (c *JournalEntryClient) Interceptors() []Interceptor {
	return c.inters.JournalEntry
}

func (c *JournalEntryClient) mutate(ctx context.Context, m *JournalEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JournalEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JournalEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JournalEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JournalEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JournalEntry mutation op: %q", m.Op())
	}
}

// MasterActionRecordClient is a client for the MasterActionRecord schema.
type MasterActionRecordClient struct {
	config
}

// NewMasterActionRecordClient returns a client for the MasterActionRecord from the given config.
func NewMasterActionRecordClient(c config) *MasterActionRecordClient {
	return &MasterActionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteractionrecord.Hooks(f(g(h())))`.
func (c *MasterActionRecordClient) Use(hooks ...Hook) {
	c.hooks.MasterActionRecord = append(c.hooks.MasterActionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteractionrecord.Intercept(f(g(h())))`.
func (c *MasterActionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasterActionRecord = append(c.inters.MasterActionRecord, interceptors...)
}

// Create returns a builder for creating a MasterActionRecord entity.
func (c *MasterActionRecordClient) Create() *MasterActionRecordCreate {
	mutation := newMasterActionRecordMutation(c.config, OpCreate)
	return &MasterActionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasterActionRecord entities.
func (c *MasterActionRecordClient) CreateBulk(builders ...*MasterActionRecordCreate) *MasterActionRecordCreateBulk {
	return &MasterActionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasterActionRecordClient) MapCreateBulk(slice any, setFunc func(*MasterActionRecordCreate, int)) *MasterActionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasterActionRecordCreateBulk{err: fmt.Errorf("calling to MasterActionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasterActionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasterActionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasterActionRecord.
func (c *MasterActionRecordClient) Update() *MasterActionRecordUpdate {
	mutation := newMasterActionRecordMutation(c.config, OpUpdate)
	return &MasterActionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasterActionRecordClient) UpdateOne(_m *MasterActionRecord) *MasterActionRecordUpdateOne {
	mutation := newMasterActionRecordMutation(c.config, OpUpdateOne, withMasterActionRecord(_m))
	return &MasterActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasterActionRecordClient) UpdateOneID(id string) *MasterActionRecordUpdateOne {
	mutation := newMasterActionRecordMutation(c.config, OpUpdateOne, withMasterActionRecordID(id))
	return &MasterActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasterActionRecord.
func (c *MasterActionRecordClient) Delete() *MasterActionRecordDelete {
	mutation := newMasterActionRecordMutation(c.config, OpDelete)
	return &MasterActionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasterActionRecordClient) DeleteOne(_m *MasterActionRecord) *MasterActionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasterActionRecordClient) DeleteOneID(id string) *MasterActionRecordDeleteOne {
	builder := c.Delete().Where(masteractionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasterActionRecordDeleteOne{builder}
}

// Query returns a query builder for MasterActionRecord.
func (c *MasterActionRecordClient) Query() *MasterActionRecordQuery {
	return &MasterActionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasterActionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasterActionRecord entity by its id.
func (c *MasterActionRecordClient) Get(ctx context.Context, id string) (*MasterActionRecord, error) {
	return c.Query().Where(masteractionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasterActionRecordClient) GetX(ctx context.Context, id string) *MasterActionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasterActionRecordClient) Hooks() []Hook {
	return c.hooks.MasterActionRecord
}

// Interceptors returns the client interceptors.
func (c *MasterActionRecordClient) Interceptors() []Interceptor {
	return c.inters.MasterActionRecord
}

func (c *MasterActionRecordClient) mutate(ctx context.Context, m *MasterActionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasterActionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasterActionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasterActionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasterActionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasterActionRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		JournalEntry, MasterActionRecord []ent.Hook
	}
	inters struct {
		JournalEntry, MasterActionRecord []ent.Interceptor
	}
)
