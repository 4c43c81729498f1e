// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/docflowhq/docflow/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/docflowhq/docflow/gen/ent/pushattempt"
	"github.com/docflowhq/docflow/gen/ent/queuemessage"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/docflowhq/docflow/gen/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Fingerprint is the client for interacting with the Fingerprint builders.
	Fingerprint *FingerprintClient
	// PageResult is the client for interacting with the PageResult builders.
	PageResult *PageResultClient
	// PushAttempt is the client for interacting with the PushAttempt builders.
	PushAttempt *PushAttemptClient
	// QueueMessage is the client for interacting with the QueueMessage builders.
	QueueMessage *QueueMessageClient
	// Receiver is the client for interacting with the Receiver builders.
	Receiver *ReceiverClient
	// Rule is the client for interacting with the Rule builders.
	Rule *RuleClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Fingerprint = NewFingerprintClient(c.config)
	c.PageResult = NewPageResultClient(c.config)
	c.PushAttempt = NewPushAttemptClient(c.config)
	c.QueueMessage = NewQueueMessageClient(c.config)
	c.Receiver = NewReceiverClient(c.config)
	c.Rule = NewRuleClient(c.config)
	c.Task = NewTaskClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		Fingerprint:  NewFingerprintClient(cfg),
		PageResult:   NewPageResultClient(cfg),
		PushAttempt:  NewPushAttemptClient(cfg),
		QueueMessage: NewQueueMessageClient(cfg),
		Receiver:     NewReceiverClient(cfg),
		Rule:         NewRuleClient(cfg),
		Task:         NewTaskClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		Fingerprint:  NewFingerprintClient(cfg),
		PageResult:   NewPageResultClient(cfg),
		PushAttempt:  NewPushAttemptClient(cfg),
		QueueMessage: NewQueueMessageClient(cfg),
		Receiver:     NewReceiverClient(cfg),
		Rule:         NewRuleClient(cfg),
		Task:         NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Fingerprint.
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
		c.Fingerprint, c.PageResult, c.PushAttempt, c.QueueMessage, c.Receiver, c.Rule,
		c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Fingerprint, c.PageResult, c.PushAttempt, c.QueueMessage, c.Receiver, c.Rule,
		c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FingerprintMutation:
		return c.Fingerprint.mutate(ctx, m)
	case *PageResultMutation:
		return c.PageResult.mutate(ctx, m)
	case *PushAttemptMutation:
		return c.PushAttempt.mutate(ctx, m)
	case *QueueMessageMutation:
		return c.QueueMessage.mutate(ctx, m)
	case *ReceiverMutation:
		return c.Receiver.mutate(ctx, m)
	case *RuleMutation:
		return c.Rule.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FingerprintClient is a client for the Fingerprint schema.
type FingerprintClient struct {
	config
}

// NewFingerprintClient returns a client for the Fingerprint from the given config.
func NewFingerprintClient(c config) *FingerprintClient {
	return &FingerprintClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fingerprint.Hooks(f(g(h())))`.
func (c *FingerprintClient) Use(hooks ...Hook) {
	c.hooks.Fingerprint = append(c.hooks.Fingerprint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fingerprint.Intercept(f(g(h())))`.
func (c *FingerprintClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fingerprint = append(c.inters.Fingerprint, interceptors...)
}

// Create returns a builder for creating a Fingerprint entity.
func (c *FingerprintClient) Create() *FingerprintCreate {
	mutation := newFingerprintMutation(c.config, OpCreate)
	return &FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fingerprint entities.
func (c *FingerprintClient) CreateBulk(builders ...*FingerprintCreate) *FingerprintCreateBulk {
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FingerprintClient) MapCreateBulk(slice any, setFunc func(*FingerprintCreate, int)) *FingerprintCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FingerprintCreateBulk{err: fmt.Errorf("calling to FingerprintClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FingerprintCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FingerprintCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fingerprint.
func (c *FingerprintClient) Update() *FingerprintUpdate {
	mutation := newFingerprintMutation(c.config, OpUpdate)
	return &FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FingerprintClient) UpdateOne(_m *Fingerprint) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprint(_m))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FingerprintClient) UpdateOneID(id uuid.UUID) *FingerprintUpdateOne {
	mutation := newFingerprintMutation(c.config, OpUpdateOne, withFingerprintID(id))
	return &FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fingerprint.
func (c *FingerprintClient) Delete() *FingerprintDelete {
	mutation := newFingerprintMutation(c.config, OpDelete)
	return &FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FingerprintClient) DeleteOne(_m *Fingerprint) *FingerprintDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FingerprintClient) DeleteOneID(id uuid.UUID) *FingerprintDeleteOne {
	builder := c.Delete().Where(fingerprint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FingerprintDeleteOne{builder}
}

// Query returns a query builder for Fingerprint.
func (c *FingerprintClient) Query() *FingerprintQuery {
	return &FingerprintQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFingerprint},
		inters: c.Interceptors(),
	}
}

// Get returns a Fingerprint entity by its id.
func (c *FingerprintClient) Get(ctx context.Context, id uuid.UUID) (*Fingerprint, error) {
	return c.Query().Where(fingerprint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FingerprintClient) GetX(ctx context.Context, id uuid.UUID) *Fingerprint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FingerprintClient) Hooks() []Hook {
	return c.hooks.Fingerprint
}

// Interceptors returns the client interceptors.
func (c *FingerprintClient) Interceptors() []Interceptor {
	return c.inters.Fingerprint
}

func (c *FingerprintClient) mutate(ctx context.Context, m *FingerprintMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FingerprintCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FingerprintUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FingerprintUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FingerprintDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fingerprint mutation op: %q", m.Op())
	}
}

// PageResultClient is a client for the PageResult schema.
type PageResultClient struct {
	config
}

// NewPageResultClient returns a client for the PageResult from the given config.
func NewPageResultClient(c config) *PageResultClient {
	return &PageResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pageresult.Hooks(f(g(h())))`.
func (c *PageResultClient) Use(hooks ...Hook) {
	c.hooks.PageResult = append(c.hooks.PageResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pageresult.Intercept(f(g(h())))`.
func (c *PageResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.PageResult = append(c.inters.PageResult, interceptors...)
}

// Create returns a builder for creating a PageResult entity.
func (c *PageResultClient) Create() *PageResultCreate {
	mutation := newPageResultMutation(c.config, OpCreate)
	return &PageResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PageResult entities.
func (c *PageResultClient) CreateBulk(builders ...*PageResultCreate) *PageResultCreateBulk {
	return &PageResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PageResultClient) MapCreateBulk(slice any, setFunc func(*PageResultCreate, int)) *PageResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PageResultCreateBulk{err: fmt.Errorf("calling to PageResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PageResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PageResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PageResult.
func (c *PageResultClient) Update() *PageResultUpdate {
	mutation := newPageResultMutation(c.config, OpUpdate)
	return &PageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PageResultClient) UpdateOne(_m *PageResult) *PageResultUpdateOne {
	mutation := newPageResultMutation(c.config, OpUpdateOne, withPageResult(_m))
	return &PageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PageResultClient) UpdateOneID(id uuid.UUID) *PageResultUpdateOne {
	mutation := newPageResultMutation(c.config, OpUpdateOne, withPageResultID(id))
	return &PageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PageResult.
func (c *PageResultClient) Delete() *PageResultDelete {
	mutation := newPageResultMutation(c.config, OpDelete)
	return &PageResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PageResultClient) DeleteOne(_m *PageResult) *PageResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PageResultClient) DeleteOneID(id uuid.UUID) *PageResultDeleteOne {
	builder := c.Delete().Where(pageresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PageResultDeleteOne{builder}
}

// Query returns a query builder for PageResult.
func (c *PageResultClient) Query() *PageResultQuery {
	return &PageResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePageResult},
		inters: c.Interceptors(),
	}
}

// Get returns a PageResult entity by its id.
func (c *PageResultClient) Get(ctx context.Context, id uuid.UUID) (*PageResult, error) {
	return c.Query().Where(pageresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PageResultClient) GetX(ctx context.Context, id uuid.UUID) *PageResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PageResultClient) Hooks() []Hook {
	return c.hooks.PageResult
}

// Interceptors returns the client interceptors.
func (c *PageResultClient) Interceptors() []Interceptor {
	return c.inters.PageResult
}

func (c *PageResultClient) mutate(ctx context.Context, m *PageResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PageResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PageResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PageResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PageResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PageResult mutation op: %q", m.Op())
	}
}

// PushAttemptClient is a client for the PushAttempt schema.
type PushAttemptClient struct {
	config
}

// NewPushAttemptClient returns a client for the PushAttempt from the given config.
func NewPushAttemptClient(c config) *PushAttemptClient {
	return &PushAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pushattempt.Hooks(f(g(h())))`.
func (c *PushAttemptClient) Use(hooks ...Hook) {
	c.hooks.PushAttempt = append(c.hooks.PushAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pushattempt.Intercept(f(g(h())))`.
func (c *PushAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.PushAttempt = append(c.inters.PushAttempt, interceptors...)
}

// Create returns a builder for creating a PushAttempt entity.
func (c *PushAttemptClient) Create() *PushAttemptCreate {
	mutation := newPushAttemptMutation(c.config, OpCreate)
	return &PushAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PushAttempt entities.
func (c *PushAttemptClient) CreateBulk(builders ...*PushAttemptCreate) *PushAttemptCreateBulk {
	return &PushAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PushAttemptClient) MapCreateBulk(slice any, setFunc func(*PushAttemptCreate, int)) *PushAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PushAttemptCreateBulk{err: fmt.Errorf("calling to PushAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PushAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PushAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PushAttempt.
func (c *PushAttemptClient) Update() *PushAttemptUpdate {
	mutation := newPushAttemptMutation(c.config, OpUpdate)
	return &PushAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PushAttemptClient) UpdateOne(_m *PushAttempt) *PushAttemptUpdateOne {
	mutation := newPushAttemptMutation(c.config, OpUpdateOne, withPushAttempt(_m))
	return &PushAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PushAttemptClient) UpdateOneID(id uuid.UUID) *PushAttemptUpdateOne {
	mutation := newPushAttemptMutation(c.config, OpUpdateOne, withPushAttemptID(id))
	return &PushAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PushAttempt.
func (c *PushAttemptClient) Delete() *PushAttemptDelete {
	mutation := newPushAttemptMutation(c.config, OpDelete)
	return &PushAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PushAttemptClient) DeleteOne(_m *PushAttempt) *PushAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PushAttemptClient) DeleteOneID(id uuid.UUID) *PushAttemptDeleteOne {
	builder := c.Delete().Where(pushattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PushAttemptDeleteOne{builder}
}

// Query returns a query builder for PushAttempt.
func (c *PushAttemptClient) Query() *PushAttemptQuery {
	return &PushAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePushAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a PushAttempt entity by its id.
func (c *PushAttemptClient) Get(ctx context.Context, id uuid.UUID) (*PushAttempt, error) {
	return c.Query().Where(pushattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PushAttemptClient) GetX(ctx context.Context, id uuid.UUID) *PushAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PushAttemptClient) Hooks() []Hook {
	return c.hooks.PushAttempt
}

// Interceptors returns the client interceptors.
func (c *PushAttemptClient) Interceptors() []Interceptor {
	return c.inters.PushAttempt
}

func (c *PushAttemptClient) mutate(ctx context.Context, m *PushAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PushAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PushAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PushAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PushAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PushAttempt mutation op: %q", m.Op())
	}
}

// QueueMessageClient is a client for the QueueMessage schema.
type QueueMessageClient struct {
	config
}

// NewQueueMessageClient returns a client for the QueueMessage from the given config.
func NewQueueMessageClient(c config) *QueueMessageClient {
	return &QueueMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuemessage.Hooks(f(g(h())))`.
func (c *QueueMessageClient) Use(hooks ...Hook) {
	c.hooks.QueueMessage = append(c.hooks.QueueMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuemessage.Intercept(f(g(h())))`.
func (c *QueueMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueMessage = append(c.inters.QueueMessage, interceptors...)
}

// Create returns a builder for creating a QueueMessage entity.
func (c *QueueMessageClient) Create() *QueueMessageCreate {
	mutation := newQueueMessageMutation(c.config, OpCreate)
	return &QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueMessage entities.
func (c *QueueMessageClient) CreateBulk(builders ...*QueueMessageCreate) *QueueMessageCreateBulk {
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueMessageClient) MapCreateBulk(slice any, setFunc func(*QueueMessageCreate, int)) *QueueMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueMessageCreateBulk{err: fmt.Errorf("calling to QueueMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueMessage.
func (c *QueueMessageClient) Update() *QueueMessageUpdate {
	mutation := newQueueMessageMutation(c.config, OpUpdate)
	return &QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueMessageClient) UpdateOne(_m *QueueMessage) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessage(_m))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueMessageClient) UpdateOneID(id uuid.UUID) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessageID(id))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueMessage.
func (c *QueueMessageClient) Delete() *QueueMessageDelete {
	mutation := newQueueMessageMutation(c.config, OpDelete)
	return &QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueMessageClient) DeleteOne(_m *QueueMessage) *QueueMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueMessageClient) DeleteOneID(id uuid.UUID) *QueueMessageDeleteOne {
	builder := c.Delete().Where(queuemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueMessageDeleteOne{builder}
}

// Query returns a query builder for QueueMessage.
func (c *QueueMessageClient) Query() *QueueMessageQuery {
	return &QueueMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueMessage entity by its id.
func (c *QueueMessageClient) Get(ctx context.Context, id uuid.UUID) (*QueueMessage, error) {
	return c.Query().Where(queuemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueMessageClient) GetX(ctx context.Context, id uuid.UUID) *QueueMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueMessageClient) Hooks() []Hook {
	return c.hooks.QueueMessage
}

// Interceptors returns the client interceptors.
func (c *QueueMessageClient) Interceptors() []Interceptor {
	return c.inters.QueueMessage
}

func (c *QueueMessageClient) mutate(ctx context.Context, m *QueueMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueMessage mutation op: %q", m.Op())
	}
}

// ReceiverClient is a client for the Receiver schema.
type ReceiverClient struct {
	config
}

// NewReceiverClient returns a client for the Receiver from the given config.
func NewReceiverClient(c config) *ReceiverClient {
	return &ReceiverClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receiver.Hooks(f(g(h())))`.
func (c *ReceiverClient) Use(hooks ...Hook) {
	c.hooks.Receiver = append(c.hooks.Receiver, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receiver.Intercept(f(g(h())))`.
func (c *ReceiverClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receiver = append(c.inters.Receiver, interceptors...)
}

// Create returns a builder for creating a Receiver entity.
func (c *ReceiverClient) Create() *ReceiverCreate {
	mutation := newReceiverMutation(c.config, OpCreate)
	return &ReceiverCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receiver entities.
func (c *ReceiverClient) CreateBulk(builders ...*ReceiverCreate) *ReceiverCreateBulk {
	return &ReceiverCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiverClient) MapCreateBulk(slice any, setFunc func(*ReceiverCreate, int)) *ReceiverCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiverCreateBulk{err: fmt.Errorf("calling to ReceiverClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiverCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiverCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receiver.
func (c *ReceiverClient) Update() *ReceiverUpdate {
	mutation := newReceiverMutation(c.config, OpUpdate)
	return &ReceiverUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiverClient) UpdateOne(_m *Receiver) *ReceiverUpdateOne {
	mutation := newReceiverMutation(c.config, OpUpdateOne, withReceiver(_m))
	return &ReceiverUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiverClient) UpdateOneID(id uuid.UUID) *ReceiverUpdateOne {
	mutation := newReceiverMutation(c.config, OpUpdateOne, withReceiverID(id))
	return &ReceiverUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receiver.
func (c *ReceiverClient) Delete() *ReceiverDelete {
	mutation := newReceiverMutation(c.config, OpDelete)
	return &ReceiverDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiverClient) DeleteOne(_m *Receiver) *ReceiverDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiverClient) DeleteOneID(id uuid.UUID) *ReceiverDeleteOne {
	builder := c.Delete().Where(receiver.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiverDeleteOne{builder}
}

// Query returns a query builder for Receiver.
func (c *ReceiverClient) Query() *ReceiverQuery {
	return &ReceiverQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceiver},
		inters: c.Interceptors(),
	}
}

// Get returns a Receiver entity by its id.
func (c *ReceiverClient) Get(ctx context.Context, id uuid.UUID) (*Receiver, error) {
	return c.Query().Where(receiver.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiverClient) GetX(ctx context.Context, id uuid.UUID) *Receiver {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRules queries the rules edge of a Receiver.
func (c *ReceiverClient) QueryRules(_m *Receiver) *RuleQuery {
	query := (&RuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(receiver.Table, receiver.FieldID, id),
			sqlgraph.To(rule.Table, rule.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, receiver.RulesTable, receiver.RulesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReceiverClient) Hooks() []Hook {
	return c.hooks.Receiver
}

// Interceptors returns the client interceptors.
func (c *ReceiverClient) Interceptors() []Interceptor {
	return c.inters.Receiver
}

func (c *ReceiverClient) mutate(ctx context.Context, m *ReceiverMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiverCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiverUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiverUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiverDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receiver mutation op: %q", m.Op())
	}
}

// RuleClient is a client for the Rule schema.
type RuleClient struct {
	config
}

// NewRuleClient returns a client for the Rule from the given config.
func NewRuleClient(c config) *RuleClient {
	return &RuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rule.Hooks(f(g(h())))`.
func (c *RuleClient) Use(hooks ...Hook) {
	c.hooks.Rule = append(c.hooks.Rule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rule.Intercept(f(g(h())))`.
func (c *RuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rule = append(c.inters.Rule, interceptors...)
}

// Create returns a builder for creating a Rule entity.
func (c *RuleClient) Create() *RuleCreate {
	mutation := newRuleMutation(c.config, OpCreate)
	return &RuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rule entities.
func (c *RuleClient) CreateBulk(builders ...*RuleCreate) *RuleCreateBulk {
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleClient) MapCreateBulk(slice any, setFunc func(*RuleCreate, int)) *RuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleCreateBulk{err: fmt.Errorf("calling to RuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rule.
func (c *RuleClient) Update() *RuleUpdate {
	mutation := newRuleMutation(c.config, OpUpdate)
	return &RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleClient) UpdateOne(_m *Rule) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRule(_m))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleClient) UpdateOneID(id uuid.UUID) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRuleID(id))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rule.
func (c *RuleClient) Delete() *RuleDelete {
	mutation := newRuleMutation(c.config, OpDelete)
	return &RuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleClient) DeleteOne(_m *Rule) *RuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleClient) DeleteOneID(id uuid.UUID) *RuleDeleteOne {
	builder := c.Delete().Where(rule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleDeleteOne{builder}
}

// Query returns a query builder for Rule.
func (c *RuleClient) Query() *RuleQuery {
	return &RuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRule},
		inters: c.Interceptors(),
	}
}

// Get returns a Rule entity by its id.
func (c *RuleClient) Get(ctx context.Context, id uuid.UUID) (*Rule, error) {
	return c.Query().Where(rule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleClient) GetX(ctx context.Context, id uuid.UUID) *Rule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReceivers queries the receivers edge of a Rule.
func (c *RuleClient) QueryReceivers(_m *Rule) *ReceiverQuery {
	query := (&ReceiverClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rule.Table, rule.FieldID, id),
			sqlgraph.To(receiver.Table, receiver.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, rule.ReceiversTable, rule.ReceiversPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleClient) Hooks() []Hook {
	return c.hooks.Rule
}

// Interceptors returns the client interceptors.
func (c *RuleClient) Interceptors() []Interceptor {
	return c.inters.Rule
}

func (c *RuleClient) mutate(ctx context.Context, m *RuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rule mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Fingerprint, PageResult, PushAttempt, QueueMessage, Receiver, Rule,
		Task []ent.Hook
	}
	inters struct {
		Fingerprint, PageResult, PushAttempt, QueueMessage, Receiver, Rule,
		Task []ent.Interceptor
	}
)
