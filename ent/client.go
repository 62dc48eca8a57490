// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/streamgate/streamgate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/ent/channelstate"
	"github.com/streamgate/streamgate/ent/serviceaccount"
	"github.com/streamgate/streamgate/ent/servicebotaccess"
	"github.com/streamgate/streamgate/ent/serviceinterest"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BotAccount is the client for interacting with the BotAccount builders.
	BotAccount *BotAccountClient
	// ChannelState is the client for interacting with the ChannelState builders.
	ChannelState *ChannelStateClient
	// ServiceAccount is the client for interacting with the ServiceAccount builders.
	ServiceAccount *ServiceAccountClient
	// ServiceBotAccess is the client for interacting with the ServiceBotAccess builders.
	ServiceBotAccess *ServiceBotAccessClient
	// ServiceInterest is the client for interacting with the ServiceInterest builders.
	ServiceInterest *ServiceInterestClient
	// ServiceRuntimeStats is the client for interacting with the ServiceRuntimeStats builders.
	ServiceRuntimeStats *ServiceRuntimeStatsClient
	// TwitchSubscription is the client for interacting with the TwitchSubscription builders.
	TwitchSubscription *TwitchSubscriptionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BotAccount = NewBotAccountClient(c.config)
	c.ChannelState = NewChannelStateClient(c.config)
	c.ServiceAccount = NewServiceAccountClient(c.config)
	c.ServiceBotAccess = NewServiceBotAccessClient(c.config)
	c.ServiceInterest = NewServiceInterestClient(c.config)
	c.ServiceRuntimeStats = NewServiceRuntimeStatsClient(c.config)
	c.TwitchSubscription = NewTwitchSubscriptionClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		BotAccount:          NewBotAccountClient(cfg),
		ChannelState:        NewChannelStateClient(cfg),
		ServiceAccount:      NewServiceAccountClient(cfg),
		ServiceBotAccess:    NewServiceBotAccessClient(cfg),
		ServiceInterest:     NewServiceInterestClient(cfg),
		ServiceRuntimeStats: NewServiceRuntimeStatsClient(cfg),
		TwitchSubscription:  NewTwitchSubscriptionClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		BotAccount:          NewBotAccountClient(cfg),
		ChannelState:        NewChannelStateClient(cfg),
		ServiceAccount:      NewServiceAccountClient(cfg),
		ServiceBotAccess:    NewServiceBotAccessClient(cfg),
		ServiceInterest:     NewServiceInterestClient(cfg),
		ServiceRuntimeStats: NewServiceRuntimeStatsClient(cfg),
		TwitchSubscription:  NewTwitchSubscriptionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BotAccount.
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
		c.BotAccount, c.ChannelState, c.ServiceAccount, c.ServiceBotAccess,
		c.ServiceInterest, c.ServiceRuntimeStats, c.TwitchSubscription,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BotAccount, c.ChannelState, c.ServiceAccount, c.ServiceBotAccess,
		c.ServiceInterest, c.ServiceRuntimeStats, c.TwitchSubscription,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BotAccountMutation:
		return c.BotAccount.mutate(ctx, m)
	case *ChannelStateMutation:
		return c.ChannelState.mutate(ctx, m)
	case *ServiceAccountMutation:
		return c.ServiceAccount.mutate(ctx, m)
	case *ServiceBotAccessMutation:
		return c.ServiceBotAccess.mutate(ctx, m)
	case *ServiceInterestMutation:
		return c.ServiceInterest.mutate(ctx, m)
	case *ServiceRuntimeStatsMutation:
		return c.ServiceRuntimeStats.mutate(ctx, m)
	case *TwitchSubscriptionMutation:
		return c.TwitchSubscription.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BotAccountClient is a client for the BotAccount schema.
type BotAccountClient struct {
	config
}

// NewBotAccountClient returns a client for the BotAccount from the given config.
func NewBotAccountClient(c config) *BotAccountClient {
	return &BotAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `botaccount.Hooks(f(g(h())))`.
func (c *BotAccountClient) Use(hooks ...Hook) {
	c.hooks.BotAccount = append(c.hooks.BotAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `botaccount.Intercept(f(g(h())))`.
func (c *BotAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.BotAccount = append(c.inters.BotAccount, interceptors...)
}

// Create returns a builder for creating a BotAccount entity.
func (c *BotAccountClient) Create() *BotAccountCreate {
	mutation := newBotAccountMutation(c.config, OpCreate)
	return &BotAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BotAccount entities.
func (c *BotAccountClient) CreateBulk(builders ...*BotAccountCreate) *BotAccountCreateBulk {
	return &BotAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BotAccountClient) MapCreateBulk(slice any, setFunc func(*BotAccountCreate, int)) *BotAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BotAccountCreateBulk{err: fmt.Errorf("calling to BotAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BotAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BotAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BotAccount.
func (c *BotAccountClient) Update() *BotAccountUpdate {
	mutation := newBotAccountMutation(c.config, OpUpdate)
	return &BotAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BotAccountClient) UpdateOne(_m *BotAccount) *BotAccountUpdateOne {
	mutation := newBotAccountMutation(c.config, OpUpdateOne, withBotAccount(_m))
	return &BotAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BotAccountClient) UpdateOneID(id uuid.UUID) *BotAccountUpdateOne {
	mutation := newBotAccountMutation(c.config, OpUpdateOne, withBotAccountID(id))
	return &BotAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BotAccount.
func (c *BotAccountClient) Delete() *BotAccountDelete {
	mutation := newBotAccountMutation(c.config, OpDelete)
	return &BotAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BotAccountClient) DeleteOne(_m *BotAccount) *BotAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BotAccountClient) DeleteOneID(id uuid.UUID) *BotAccountDeleteOne {
	builder := c.Delete().Where(botaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BotAccountDeleteOne{builder}
}

// Query returns a query builder for BotAccount.
func (c *BotAccountClient) Query() *BotAccountQuery {
	return &BotAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBotAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a BotAccount entity by its id.
func (c *BotAccountClient) Get(ctx context.Context, id uuid.UUID) (*BotAccount, error) {
	return c.Query().Where(botaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BotAccountClient) GetX(ctx context.Context, id uuid.UUID) *BotAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BotAccountClient) Hooks() []Hook {
	return c.hooks.BotAccount
}

// Interceptors returns the client interceptors.
func (c *BotAccountClient) Interceptors() []Interceptor {
	return c.inters.BotAccount
}

func (c *BotAccountClient) mutate(ctx context.Context, m *BotAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BotAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BotAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BotAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BotAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BotAccount mutation op: %q", m.Op())
	}
}

// ChannelStateClient is a client for the ChannelState schema.
type ChannelStateClient struct {
	config
}

// NewChannelStateClient returns a client for the ChannelState from the given config.
func NewChannelStateClient(c config) *ChannelStateClient {
	return &ChannelStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `channelstate.Hooks(f(g(h())))`.
func (c *ChannelStateClient) Use(hooks ...Hook) {
	c.hooks.ChannelState = append(c.hooks.ChannelState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `channelstate.Intercept(f(g(h())))`.
func (c *ChannelStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChannelState = append(c.inters.ChannelState, interceptors...)
}

// Create returns a builder for creating a ChannelState entity.
func (c *ChannelStateClient) Create() *ChannelStateCreate {
	mutation := newChannelStateMutation(c.config, OpCreate)
	return &ChannelStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChannelState entities.
func (c *ChannelStateClient) CreateBulk(builders ...*ChannelStateCreate) *ChannelStateCreateBulk {
	return &ChannelStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChannelStateClient) MapCreateBulk(slice any, setFunc func(*ChannelStateCreate, int)) *ChannelStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChannelStateCreateBulk{err: fmt.Errorf("calling to ChannelStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChannelStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChannelStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChannelState.
func (c *ChannelStateClient) Update() *ChannelStateUpdate {
	mutation := newChannelStateMutation(c.config, OpUpdate)
	return &ChannelStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChannelStateClient) UpdateOne(_m *ChannelState) *ChannelStateUpdateOne {
	mutation := newChannelStateMutation(c.config, OpUpdateOne, withChannelState(_m))
	return &ChannelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChannelStateClient) UpdateOneID(id uuid.UUID) *ChannelStateUpdateOne {
	mutation := newChannelStateMutation(c.config, OpUpdateOne, withChannelStateID(id))
	return &ChannelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChannelState.
func (c *ChannelStateClient) Delete() *ChannelStateDelete {
	mutation := newChannelStateMutation(c.config, OpDelete)
	return &ChannelStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChannelStateClient) DeleteOne(_m *ChannelState) *ChannelStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChannelStateClient) DeleteOneID(id uuid.UUID) *ChannelStateDeleteOne {
	builder := c.Delete().Where(channelstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChannelStateDeleteOne{builder}
}

// Query returns a query builder for ChannelState.
func (c *ChannelStateClient) Query() *ChannelStateQuery {
	return &ChannelStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChannelState},
		inters: c.Interceptors(),
	}
}

// Get returns a ChannelState entity by its id.
func (c *ChannelStateClient) Get(ctx context.Context, id uuid.UUID) (*ChannelState, error) {
	return c.Query().Where(channelstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChannelStateClient) GetX(ctx context.Context, id uuid.UUID) *ChannelState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChannelStateClient) Hooks() []Hook {
	return c.hooks.ChannelState
}

// Interceptors returns the client interceptors.
func (c *ChannelStateClient) Interceptors() []Interceptor {
	return c.inters.ChannelState
}

func (c *ChannelStateClient) mutate(ctx context.Context, m *ChannelStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChannelStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChannelStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChannelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChannelStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChannelState mutation op: %q", m.Op())
	}
}

// ServiceAccountClient is a client for the ServiceAccount schema.
type ServiceAccountClient struct {
	config
}

// NewServiceAccountClient returns a client for the ServiceAccount from the given config.
func NewServiceAccountClient(c config) *ServiceAccountClient {
	return &ServiceAccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceaccount.Hooks(f(g(h())))`.
func (c *ServiceAccountClient) Use(hooks ...Hook) {
	c.hooks.ServiceAccount = append(c.hooks.ServiceAccount, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceaccount.Intercept(f(g(h())))`.
func (c *ServiceAccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceAccount = append(c.inters.ServiceAccount, interceptors...)
}

// Create returns a builder for creating a ServiceAccount entity.
func (c *ServiceAccountClient) Create() *ServiceAccountCreate {
	mutation := newServiceAccountMutation(c.config, OpCreate)
	return &ServiceAccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceAccount entities.
func (c *ServiceAccountClient) CreateBulk(builders ...*ServiceAccountCreate) *ServiceAccountCreateBulk {
	return &ServiceAccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceAccountClient) MapCreateBulk(slice any, setFunc func(*ServiceAccountCreate, int)) *ServiceAccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceAccountCreateBulk{err: fmt.Errorf("calling to ServiceAccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceAccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceAccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceAccount.
func (c *ServiceAccountClient) Update() *ServiceAccountUpdate {
	mutation := newServiceAccountMutation(c.config, OpUpdate)
	return &ServiceAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceAccountClient) UpdateOne(_m *ServiceAccount) *ServiceAccountUpdateOne {
	mutation := newServiceAccountMutation(c.config, OpUpdateOne, withServiceAccount(_m))
	return &ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceAccountClient) UpdateOneID(id uuid.UUID) *ServiceAccountUpdateOne {
	mutation := newServiceAccountMutation(c.config, OpUpdateOne, withServiceAccountID(id))
	return &ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceAccount.
func (c *ServiceAccountClient) Delete() *ServiceAccountDelete {
	mutation := newServiceAccountMutation(c.config, OpDelete)
	return &ServiceAccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceAccountClient) DeleteOne(_m *ServiceAccount) *ServiceAccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceAccountClient) DeleteOneID(id uuid.UUID) *ServiceAccountDeleteOne {
	builder := c.Delete().Where(serviceaccount.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceAccountDeleteOne{builder}
}

// Query returns a query builder for ServiceAccount.
func (c *ServiceAccountClient) Query() *ServiceAccountQuery {
	return &ServiceAccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceAccount entity by its id.
func (c *ServiceAccountClient) Get(ctx context.Context, id uuid.UUID) (*ServiceAccount, error) {
	return c.Query().Where(serviceaccount.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceAccountClient) GetX(ctx context.Context, id uuid.UUID) *ServiceAccount {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceAccountClient) Hooks() []Hook {
	return c.hooks.ServiceAccount
}

// Interceptors returns the client interceptors.
func (c *ServiceAccountClient) Interceptors() []Interceptor {
	return c.inters.ServiceAccount
}

func (c *ServiceAccountClient) mutate(ctx context.Context, m *ServiceAccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceAccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceAccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceAccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceAccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceAccount mutation op: %q", m.Op())
	}
}

// ServiceBotAccessClient is a client for the ServiceBotAccess schema.
type ServiceBotAccessClient struct {
	config
}

// NewServiceBotAccessClient returns a client for the ServiceBotAccess from the given config.
func NewServiceBotAccessClient(c config) *ServiceBotAccessClient {
	return &ServiceBotAccessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `servicebotaccess.Hooks(f(g(h())))`.
func (c *ServiceBotAccessClient) Use(hooks ...Hook) {
	c.hooks.ServiceBotAccess = append(c.hooks.ServiceBotAccess, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `servicebotaccess.Intercept(f(g(h())))`.
func (c *ServiceBotAccessClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceBotAccess = append(c.inters.ServiceBotAccess, interceptors...)
}

// Create returns a builder for creating a ServiceBotAccess entity.
func (c *ServiceBotAccessClient) Create() *ServiceBotAccessCreate {
	mutation := newServiceBotAccessMutation(c.config, OpCreate)
	return &ServiceBotAccessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceBotAccess entities.
func (c *ServiceBotAccessClient) CreateBulk(builders ...*ServiceBotAccessCreate) *ServiceBotAccessCreateBulk {
	return &ServiceBotAccessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceBotAccessClient) MapCreateBulk(slice any, setFunc func(*ServiceBotAccessCreate, int)) *ServiceBotAccessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceBotAccessCreateBulk{err: fmt.Errorf("calling to ServiceBotAccessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceBotAccessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceBotAccessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceBotAccess.
func (c *ServiceBotAccessClient) Update() *ServiceBotAccessUpdate {
	mutation := newServiceBotAccessMutation(c.config, OpUpdate)
	return &ServiceBotAccessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceBotAccessClient) UpdateOne(_m *ServiceBotAccess) *ServiceBotAccessUpdateOne {
	mutation := newServiceBotAccessMutation(c.config, OpUpdateOne, withServiceBotAccess(_m))
	return &ServiceBotAccessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceBotAccessClient) UpdateOneID(id uuid.UUID) *ServiceBotAccessUpdateOne {
	mutation := newServiceBotAccessMutation(c.config, OpUpdateOne, withServiceBotAccessID(id))
	return &ServiceBotAccessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceBotAccess.
func (c *ServiceBotAccessClient) Delete() *ServiceBotAccessDelete {
	mutation := newServiceBotAccessMutation(c.config, OpDelete)
	return &ServiceBotAccessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceBotAccessClient) DeleteOne(_m *ServiceBotAccess) *ServiceBotAccessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceBotAccessClient) DeleteOneID(id uuid.UUID) *ServiceBotAccessDeleteOne {
	builder := c.Delete().Where(servicebotaccess.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceBotAccessDeleteOne{builder}
}

// Query returns a query builder for ServiceBotAccess.
func (c *ServiceBotAccessClient) Query() *ServiceBotAccessQuery {
	return &ServiceBotAccessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceBotAccess},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceBotAccess entity by its id.
func (c *ServiceBotAccessClient) Get(ctx context.Context, id uuid.UUID) (*ServiceBotAccess, error) {
	return c.Query().Where(servicebotaccess.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceBotAccessClient) GetX(ctx context.Context, id uuid.UUID) *ServiceBotAccess {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceBotAccessClient) Hooks() []Hook {
	return c.hooks.ServiceBotAccess
}

// Interceptors returns the client interceptors.
func (c *ServiceBotAccessClient) Interceptors() []Interceptor {
	return c.inters.ServiceBotAccess
}

func (c *ServiceBotAccessClient) mutate(ctx context.Context, m *ServiceBotAccessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceBotAccessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceBotAccessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceBotAccessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceBotAccessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceBotAccess mutation op: %q", m.Op())
	}
}

// ServiceInterestClient is a client for the ServiceInterest schema.
type ServiceInterestClient struct {
	config
}

// NewServiceInterestClient returns a client for the ServiceInterest from the given config.
func NewServiceInterestClient(c config) *ServiceInterestClient {
	return &ServiceInterestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceinterest.Hooks(f(g(h())))`.
func (c *ServiceInterestClient) Use(hooks ...Hook) {
	c.hooks.ServiceInterest = append(c.hooks.ServiceInterest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceinterest.Intercept(f(g(h())))`.
func (c *ServiceInterestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceInterest = append(c.inters.ServiceInterest, interceptors...)
}

// Create returns a builder for creating a ServiceInterest entity.
func (c *ServiceInterestClient) Create() *ServiceInterestCreate {
	mutation := newServiceInterestMutation(c.config, OpCreate)
	return &ServiceInterestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceInterest entities.
func (c *ServiceInterestClient) CreateBulk(builders ...*ServiceInterestCreate) *ServiceInterestCreateBulk {
	return &ServiceInterestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceInterestClient) MapCreateBulk(slice any, setFunc func(*ServiceInterestCreate, int)) *ServiceInterestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceInterestCreateBulk{err: fmt.Errorf("calling to ServiceInterestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceInterestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceInterestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceInterest.
func (c *ServiceInterestClient) Update() *ServiceInterestUpdate {
	mutation := newServiceInterestMutation(c.config, OpUpdate)
	return &ServiceInterestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceInterestClient) UpdateOne(_m *ServiceInterest) *ServiceInterestUpdateOne {
	mutation := newServiceInterestMutation(c.config, OpUpdateOne, withServiceInterest(_m))
	return &ServiceInterestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceInterestClient) UpdateOneID(id uuid.UUID) *ServiceInterestUpdateOne {
	mutation := newServiceInterestMutation(c.config, OpUpdateOne, withServiceInterestID(id))
	return &ServiceInterestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceInterest.
func (c *ServiceInterestClient) Delete() *ServiceInterestDelete {
	mutation := newServiceInterestMutation(c.config, OpDelete)
	return &ServiceInterestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceInterestClient) DeleteOne(_m *ServiceInterest) *ServiceInterestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceInterestClient) DeleteOneID(id uuid.UUID) *ServiceInterestDeleteOne {
	builder := c.Delete().Where(serviceinterest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceInterestDeleteOne{builder}
}

// Query returns a query builder for ServiceInterest.
func (c *ServiceInterestClient) Query() *ServiceInterestQuery {
	return &ServiceInterestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceInterest},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceInterest entity by its id.
func (c *ServiceInterestClient) Get(ctx context.Context, id uuid.UUID) (*ServiceInterest, error) {
	return c.Query().Where(serviceinterest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceInterestClient) GetX(ctx context.Context, id uuid.UUID) *ServiceInterest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceInterestClient) Hooks() []Hook {
	return c.hooks.ServiceInterest
}

// Interceptors returns the client interceptors.
func (c *ServiceInterestClient) Interceptors() []Interceptor {
	return c.inters.ServiceInterest
}

func (c *ServiceInterestClient) mutate(ctx context.Context, m *ServiceInterestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceInterestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceInterestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceInterestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceInterestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceInterest mutation op: %q", m.Op())
	}
}

// ServiceRuntimeStatsClient is a client for the ServiceRuntimeStats schema.
type ServiceRuntimeStatsClient struct {
	config
}

// NewServiceRuntimeStatsClient returns a client for the ServiceRuntimeStats from the given config.
func NewServiceRuntimeStatsClient(c config) *ServiceRuntimeStatsClient {
	return &ServiceRuntimeStatsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `serviceruntimestats.Hooks(f(g(h())))`.
func (c *ServiceRuntimeStatsClient) Use(hooks ...Hook) {
	c.hooks.ServiceRuntimeStats = append(c.hooks.ServiceRuntimeStats, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `serviceruntimestats.Intercept(f(g(h())))`.
func (c *ServiceRuntimeStatsClient) Intercept(interceptors ...Interceptor) {
	c.inters.ServiceRuntimeStats = append(c.inters.ServiceRuntimeStats, interceptors...)
}

// Create returns a builder for creating a ServiceRuntimeStats entity.
func (c *ServiceRuntimeStatsClient) Create() *ServiceRuntimeStatsCreate {
	mutation := newServiceRuntimeStatsMutation(c.config, OpCreate)
	return &ServiceRuntimeStatsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ServiceRuntimeStats entities.
func (c *ServiceRuntimeStatsClient) CreateBulk(builders ...*ServiceRuntimeStatsCreate) *ServiceRuntimeStatsCreateBulk {
	return &ServiceRuntimeStatsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServiceRuntimeStatsClient) MapCreateBulk(slice any, setFunc func(*ServiceRuntimeStatsCreate, int)) *ServiceRuntimeStatsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServiceRuntimeStatsCreateBulk{err: fmt.Errorf("calling to ServiceRuntimeStatsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServiceRuntimeStatsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServiceRuntimeStatsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ServiceRuntimeStats.
func (c *ServiceRuntimeStatsClient) Update() *ServiceRuntimeStatsUpdate {
	mutation := newServiceRuntimeStatsMutation(c.config, OpUpdate)
	return &ServiceRuntimeStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServiceRuntimeStatsClient) UpdateOne(_m *ServiceRuntimeStats) *ServiceRuntimeStatsUpdateOne {
	mutation := newServiceRuntimeStatsMutation(c.config, OpUpdateOne, withServiceRuntimeStats(_m))
	return &ServiceRuntimeStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServiceRuntimeStatsClient) UpdateOneID(id uuid.UUID) *ServiceRuntimeStatsUpdateOne {
	mutation := newServiceRuntimeStatsMutation(c.config, OpUpdateOne, withServiceRuntimeStatsID(id))
	return &ServiceRuntimeStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ServiceRuntimeStats.
func (c *ServiceRuntimeStatsClient) Delete() *ServiceRuntimeStatsDelete {
	mutation := newServiceRuntimeStatsMutation(c.config, OpDelete)
	return &ServiceRuntimeStatsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServiceRuntimeStatsClient) DeleteOne(_m *ServiceRuntimeStats) *ServiceRuntimeStatsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServiceRuntimeStatsClient) DeleteOneID(id uuid.UUID) *ServiceRuntimeStatsDeleteOne {
	builder := c.Delete().Where(serviceruntimestats.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServiceRuntimeStatsDeleteOne{builder}
}

// Query returns a query builder for ServiceRuntimeStats.
func (c *ServiceRuntimeStatsClient) Query() *ServiceRuntimeStatsQuery {
	return &ServiceRuntimeStatsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServiceRuntimeStats},
		inters: c.Interceptors(),
	}
}

// Get returns a ServiceRuntimeStats entity by its id.
func (c *ServiceRuntimeStatsClient) Get(ctx context.Context, id uuid.UUID) (*ServiceRuntimeStats, error) {
	return c.Query().Where(serviceruntimestats.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServiceRuntimeStatsClient) GetX(ctx context.Context, id uuid.UUID) *ServiceRuntimeStats {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServiceRuntimeStatsClient) Hooks() []Hook {
	return c.hooks.ServiceRuntimeStats
}

// Interceptors returns the client interceptors.
func (c *ServiceRuntimeStatsClient) Interceptors() []Interceptor {
	return c.inters.ServiceRuntimeStats
}

func (c *ServiceRuntimeStatsClient) mutate(ctx context.Context, m *ServiceRuntimeStatsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServiceRuntimeStatsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServiceRuntimeStatsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServiceRuntimeStatsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServiceRuntimeStatsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ServiceRuntimeStats mutation op: %q", m.Op())
	}
}

// TwitchSubscriptionClient is a client for the TwitchSubscription schema.
type TwitchSubscriptionClient struct {
	config
}

// NewTwitchSubscriptionClient returns a client for the TwitchSubscription from the given config.
func NewTwitchSubscriptionClient(c config) *TwitchSubscriptionClient {
	return &TwitchSubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `twitchsubscription.Hooks(f(g(h())))`.
func (c *TwitchSubscriptionClient) Use(hooks ...Hook) {
	c.hooks.TwitchSubscription = append(c.hooks.TwitchSubscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `twitchsubscription.Intercept(f(g(h())))`.
func (c *TwitchSubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TwitchSubscription = append(c.inters.TwitchSubscription, interceptors...)
}

// Create returns a builder for creating a TwitchSubscription entity.
func (c *TwitchSubscriptionClient) Create() *TwitchSubscriptionCreate {
	mutation := newTwitchSubscriptionMutation(c.config, OpCreate)
	return &TwitchSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TwitchSubscription entities.
func (c *TwitchSubscriptionClient) CreateBulk(builders ...*TwitchSubscriptionCreate) *TwitchSubscriptionCreateBulk {
	return &TwitchSubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TwitchSubscriptionClient) MapCreateBulk(slice any, setFunc func(*TwitchSubscriptionCreate, int)) *TwitchSubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TwitchSubscriptionCreateBulk{err: fmt.Errorf("calling to TwitchSubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TwitchSubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TwitchSubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TwitchSubscription.
func (c *TwitchSubscriptionClient) Update() *TwitchSubscriptionUpdate {
	mutation := newTwitchSubscriptionMutation(c.config, OpUpdate)
	return &TwitchSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TwitchSubscriptionClient) UpdateOne(_m *TwitchSubscription) *TwitchSubscriptionUpdateOne {
	mutation := newTwitchSubscriptionMutation(c.config, OpUpdateOne, withTwitchSubscription(_m))
	return &TwitchSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TwitchSubscriptionClient) UpdateOneID(id uuid.UUID) *TwitchSubscriptionUpdateOne {
	mutation := newTwitchSubscriptionMutation(c.config, OpUpdateOne, withTwitchSubscriptionID(id))
	return &TwitchSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TwitchSubscription.
func (c *TwitchSubscriptionClient) Delete() *TwitchSubscriptionDelete {
	mutation := newTwitchSubscriptionMutation(c.config, OpDelete)
	return &TwitchSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TwitchSubscriptionClient) DeleteOne(_m *TwitchSubscription) *TwitchSubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TwitchSubscriptionClient) DeleteOneID(id uuid.UUID) *TwitchSubscriptionDeleteOne {
	builder := c.Delete().Where(twitchsubscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TwitchSubscriptionDeleteOne{builder}
}

// Query returns a query builder for TwitchSubscription.
func (c *TwitchSubscriptionClient) Query() *TwitchSubscriptionQuery {
	return &TwitchSubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTwitchSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a TwitchSubscription entity by its id.
func (c *TwitchSubscriptionClient) Get(ctx context.Context, id uuid.UUID) (*TwitchSubscription, error) {
	return c.Query().Where(twitchsubscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TwitchSubscriptionClient) GetX(ctx context.Context, id uuid.UUID) *TwitchSubscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TwitchSubscriptionClient) Hooks() []Hook {
	return c.hooks.TwitchSubscription
}

// Interceptors returns the client interceptors.
func (c *TwitchSubscriptionClient) Interceptors() []Interceptor {
	return c.inters.TwitchSubscription
}

func (c *TwitchSubscriptionClient) mutate(ctx context.Context, m *TwitchSubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TwitchSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TwitchSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TwitchSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TwitchSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TwitchSubscription mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BotAccount, ChannelState, ServiceAccount, ServiceBotAccess, ServiceInterest,
		ServiceRuntimeStats, TwitchSubscription []ent.Hook
	}
	inters struct {
		BotAccount, ChannelState, ServiceAccount, ServiceBotAccess, ServiceInterest,
		ServiceRuntimeStats, TwitchSubscription []ent.Interceptor
	}
)
