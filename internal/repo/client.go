// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/arkanhealth/jadwal_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	"github.com/arkanhealth/jadwal_backend/internal/repo/center"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/arkanhealth/jadwal_backend/internal/repo/notification"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/repo/room"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AvailabilityRule is the client for interacting with the AvailabilityRule builders.
	AvailabilityRule *AvailabilityRuleClient
	// Center is the client for interacting with the Center builders.
	Center *CenterClient
	// Enrollment is the client for interacting with the Enrollment builders.
	Enrollment *EnrollmentClient
	// FreezeWindow is the client for interacting with the FreezeWindow builders.
	FreezeWindow *FreezeWindowClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// RescheduleBatch is the client for interacting with the RescheduleBatch builders.
	RescheduleBatch *RescheduleBatchClient
	// Room is the client for interacting with the Room builders.
	Room *RoomClient
	// Therapist is the client for interacting with the Therapist builders.
	Therapist *TherapistClient
	// TherapySession is the client for interacting with the TherapySession builders.
	TherapySession *TherapySessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AvailabilityRule = NewAvailabilityRuleClient(c.config)
	c.Center = NewCenterClient(c.config)
	c.Enrollment = NewEnrollmentClient(c.config)
	c.FreezeWindow = NewFreezeWindowClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.RescheduleBatch = NewRescheduleBatchClient(c.config)
	c.Room = NewRoomClient(c.config)
	c.Therapist = NewTherapistClient(c.config)
	c.TherapySession = NewTherapySessionClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		Center:           NewCenterClient(cfg),
		Enrollment:       NewEnrollmentClient(cfg),
		FreezeWindow:     NewFreezeWindowClient(cfg),
		Notification:     NewNotificationClient(cfg),
		RescheduleBatch:  NewRescheduleBatchClient(cfg),
		Room:             NewRoomClient(cfg),
		Therapist:        NewTherapistClient(cfg),
		TherapySession:   NewTherapySessionClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AvailabilityRule: NewAvailabilityRuleClient(cfg),
		Center:           NewCenterClient(cfg),
		Enrollment:       NewEnrollmentClient(cfg),
		FreezeWindow:     NewFreezeWindowClient(cfg),
		Notification:     NewNotificationClient(cfg),
		RescheduleBatch:  NewRescheduleBatchClient(cfg),
		Room:             NewRoomClient(cfg),
		Therapist:        NewTherapistClient(cfg),
		TherapySession:   NewTherapySessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AvailabilityRule.
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
		c.AvailabilityRule, c.Center, c.Enrollment, c.FreezeWindow, c.Notification,
		c.RescheduleBatch, c.Room, c.Therapist, c.TherapySession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AvailabilityRule, c.Center, c.Enrollment, c.FreezeWindow, c.Notification,
		c.RescheduleBatch, c.Room, c.Therapist, c.TherapySession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AvailabilityRuleMutation:
		return c.AvailabilityRule.mutate(ctx, m)
	case *CenterMutation:
		return c.Center.mutate(ctx, m)
	case *EnrollmentMutation:
		return c.Enrollment.mutate(ctx, m)
	case *FreezeWindowMutation:
		return c.FreezeWindow.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *RescheduleBatchMutation:
		return c.RescheduleBatch.mutate(ctx, m)
	case *RoomMutation:
		return c.Room.mutate(ctx, m)
	case *TherapistMutation:
		return c.Therapist.mutate(ctx, m)
	case *TherapySessionMutation:
		return c.TherapySession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AvailabilityRuleClient is a client for the AvailabilityRule schema.
type AvailabilityRuleClient struct {
	config
}

// NewAvailabilityRuleClient returns a client for the AvailabilityRule from the given config.
func NewAvailabilityRuleClient(c config) *AvailabilityRuleClient {
	return &AvailabilityRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `availabilityrule.Hooks(f(g(h())))`.
func (c *AvailabilityRuleClient) Use(hooks ...Hook) {
	c.hooks.AvailabilityRule = append(c.hooks.AvailabilityRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `availabilityrule.Intercept(f(g(h())))`.
func (c *AvailabilityRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AvailabilityRule = append(c.inters.AvailabilityRule, interceptors...)
}

// Create returns a builder for creating a AvailabilityRule entity.
func (c *AvailabilityRuleClient) Create() *AvailabilityRuleCreate {
	mutation := newAvailabilityRuleMutation(c.config, OpCreate)
	return &AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AvailabilityRule entities.
func (c *AvailabilityRuleClient) CreateBulk(builders ...*AvailabilityRuleCreate) *AvailabilityRuleCreateBulk {
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AvailabilityRuleClient) MapCreateBulk(slice any, setFunc func(*AvailabilityRuleCreate, int)) *AvailabilityRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AvailabilityRuleCreateBulk{err: fmt.Errorf("calling to AvailabilityRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AvailabilityRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AvailabilityRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Update() *AvailabilityRuleUpdate {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdate)
	return &AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AvailabilityRuleClient) UpdateOne(_m *AvailabilityRule) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRule(_m))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AvailabilityRuleClient) UpdateOneID(id uuid.UUID) *AvailabilityRuleUpdateOne {
	mutation := newAvailabilityRuleMutation(c.config, OpUpdateOne, withAvailabilityRuleID(id))
	return &AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Delete() *AvailabilityRuleDelete {
	mutation := newAvailabilityRuleMutation(c.config, OpDelete)
	return &AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AvailabilityRuleClient) DeleteOne(_m *AvailabilityRule) *AvailabilityRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AvailabilityRuleClient) DeleteOneID(id uuid.UUID) *AvailabilityRuleDeleteOne {
	builder := c.Delete().Where(availabilityrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AvailabilityRuleDeleteOne{builder}
}

// Query returns a query builder for AvailabilityRule.
func (c *AvailabilityRuleClient) Query() *AvailabilityRuleQuery {
	return &AvailabilityRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAvailabilityRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AvailabilityRule entity by its id.
func (c *AvailabilityRuleClient) Get(ctx context.Context, id uuid.UUID) (*AvailabilityRule, error) {
	return c.Query().Where(availabilityrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AvailabilityRuleClient) GetX(ctx context.Context, id uuid.UUID) *AvailabilityRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AvailabilityRuleClient) Hooks() []Hook {
	return c.hooks.AvailabilityRule
}

// Interceptors returns the client interceptors.
func (c *AvailabilityRuleClient) Interceptors() []Interceptor {
	return c.inters.AvailabilityRule
}

func (c *AvailabilityRuleClient) mutate(ctx context.Context, m *AvailabilityRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AvailabilityRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AvailabilityRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AvailabilityRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AvailabilityRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AvailabilityRule mutation op: %q", m.Op())
	}
}

// CenterClient is a client for the Center schema.
type CenterClient struct {
	config
}

// NewCenterClient returns a client for the Center from the given config.
func NewCenterClient(c config) *CenterClient {
	return &CenterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `center.Hooks(f(g(h())))`.
func (c *CenterClient) Use(hooks ...Hook) {
	c.hooks.Center = append(c.hooks.Center, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `center.Intercept(f(g(h())))`.
func (c *CenterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Center = append(c.inters.Center, interceptors...)
}

// Create returns a builder for creating a Center entity.
func (c *CenterClient) Create() *CenterCreate {
	mutation := newCenterMutation(c.config, OpCreate)
	return &CenterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Center entities.
func (c *CenterClient) CreateBulk(builders ...*CenterCreate) *CenterCreateBulk {
	return &CenterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CenterClient) MapCreateBulk(slice any, setFunc func(*CenterCreate, int)) *CenterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CenterCreateBulk{err: fmt.Errorf("calling to CenterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CenterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CenterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Center.
func (c *CenterClient) Update() *CenterUpdate {
	mutation := newCenterMutation(c.config, OpUpdate)
	return &CenterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CenterClient) UpdateOne(_m *Center) *CenterUpdateOne {
	mutation := newCenterMutation(c.config, OpUpdateOne, withCenter(_m))
	return &CenterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CenterClient) UpdateOneID(id uuid.UUID) *CenterUpdateOne {
	mutation := newCenterMutation(c.config, OpUpdateOne, withCenterID(id))
	return &CenterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Center.
func (c *CenterClient) Delete() *CenterDelete {
	mutation := newCenterMutation(c.config, OpDelete)
	return &CenterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CenterClient) DeleteOne(_m *Center) *CenterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CenterClient) DeleteOneID(id uuid.UUID) *CenterDeleteOne {
	builder := c.Delete().Where(center.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CenterDeleteOne{builder}
}

// Query returns a query builder for Center.
func (c *CenterClient) Query() *CenterQuery {
	return &CenterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCenter},
		inters: c.Interceptors(),
	}
}

// Get returns a Center entity by its id.
func (c *CenterClient) Get(ctx context.Context, id uuid.UUID) (*Center, error) {
	return c.Query().Where(center.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CenterClient) GetX(ctx context.Context, id uuid.UUID) *Center {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CenterClient) Hooks() []Hook {
	return c.hooks.Center
}

// Interceptors returns the client interceptors.
func (c *CenterClient) Interceptors() []Interceptor {
	return c.inters.Center
}

func (c *CenterClient) mutate(ctx context.Context, m *CenterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CenterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CenterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CenterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CenterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Center mutation op: %q", m.Op())
	}
}

// EnrollmentClient is a client for the Enrollment schema.
type EnrollmentClient struct {
	config
}

// NewEnrollmentClient returns a client for the Enrollment from the given config.
func NewEnrollmentClient(c config) *EnrollmentClient {
	return &EnrollmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrollment.Hooks(f(g(h())))`.
func (c *EnrollmentClient) Use(hooks ...Hook) {
	c.hooks.Enrollment = append(c.hooks.Enrollment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrollment.Intercept(f(g(h())))`.
func (c *EnrollmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Enrollment = append(c.inters.Enrollment, interceptors...)
}

// Create returns a builder for creating a Enrollment entity.
func (c *EnrollmentClient) Create() *EnrollmentCreate {
	mutation := newEnrollmentMutation(c.config, OpCreate)
	return &EnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Enrollment entities.
func (c *EnrollmentClient) CreateBulk(builders ...*EnrollmentCreate) *EnrollmentCreateBulk {
	return &EnrollmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrollmentClient) MapCreateBulk(slice any, setFunc func(*EnrollmentCreate, int)) *EnrollmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrollmentCreateBulk{err: fmt.Errorf("calling to EnrollmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrollmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrollmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Enrollment.
func (c *EnrollmentClient) Update() *EnrollmentUpdate {
	mutation := newEnrollmentMutation(c.config, OpUpdate)
	return &EnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrollmentClient) UpdateOne(_m *Enrollment) *EnrollmentUpdateOne {
	mutation := newEnrollmentMutation(c.config, OpUpdateOne, withEnrollment(_m))
	return &EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrollmentClient) UpdateOneID(id uuid.UUID) *EnrollmentUpdateOne {
	mutation := newEnrollmentMutation(c.config, OpUpdateOne, withEnrollmentID(id))
	return &EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Enrollment.
func (c *EnrollmentClient) Delete() *EnrollmentDelete {
	mutation := newEnrollmentMutation(c.config, OpDelete)
	return &EnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrollmentClient) DeleteOne(_m *Enrollment) *EnrollmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrollmentClient) DeleteOneID(id uuid.UUID) *EnrollmentDeleteOne {
	builder := c.Delete().Where(enrollment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrollmentDeleteOne{builder}
}

// Query returns a query builder for Enrollment.
func (c *EnrollmentClient) Query() *EnrollmentQuery {
	return &EnrollmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrollment},
		inters: c.Interceptors(),
	}
}

// Get returns a Enrollment entity by its id.
func (c *EnrollmentClient) Get(ctx context.Context, id uuid.UUID) (*Enrollment, error) {
	return c.Query().Where(enrollment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrollmentClient) GetX(ctx context.Context, id uuid.UUID) *Enrollment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnrollmentClient) Hooks() []Hook {
	return c.hooks.Enrollment
}

// Interceptors returns the client interceptors.
func (c *EnrollmentClient) Interceptors() []Interceptor {
	return c.inters.Enrollment
}

func (c *EnrollmentClient) mutate(ctx context.Context, m *EnrollmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrollmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrollmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrollmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrollmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Enrollment mutation op: %q", m.Op())
	}
}

// FreezeWindowClient is a client for the FreezeWindow schema.
type FreezeWindowClient struct {
	config
}

// NewFreezeWindowClient returns a client for the FreezeWindow from the given config.
func NewFreezeWindowClient(c config) *FreezeWindowClient {
	return &FreezeWindowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `freezewindow.Hooks(f(g(h())))`.
func (c *FreezeWindowClient) Use(hooks ...Hook) {
	c.hooks.FreezeWindow = append(c.hooks.FreezeWindow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `freezewindow.Intercept(f(g(h())))`.
func (c *FreezeWindowClient) Intercept(interceptors ...Interceptor) {
	c.inters.FreezeWindow = append(c.inters.FreezeWindow, interceptors...)
}

// Create returns a builder for creating a FreezeWindow entity.
func (c *FreezeWindowClient) Create() *FreezeWindowCreate {
	mutation := newFreezeWindowMutation(c.config, OpCreate)
	return &FreezeWindowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FreezeWindow entities.
func (c *FreezeWindowClient) CreateBulk(builders ...*FreezeWindowCreate) *FreezeWindowCreateBulk {
	return &FreezeWindowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FreezeWindowClient) MapCreateBulk(slice any, setFunc func(*FreezeWindowCreate, int)) *FreezeWindowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FreezeWindowCreateBulk{err: fmt.Errorf("calling to FreezeWindowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FreezeWindowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FreezeWindowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FreezeWindow.
func (c *FreezeWindowClient) Update() *FreezeWindowUpdate {
	mutation := newFreezeWindowMutation(c.config, OpUpdate)
	return &FreezeWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FreezeWindowClient) UpdateOne(_m *FreezeWindow) *FreezeWindowUpdateOne {
	mutation := newFreezeWindowMutation(c.config, OpUpdateOne, withFreezeWindow(_m))
	return &FreezeWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FreezeWindowClient) UpdateOneID(id uuid.UUID) *FreezeWindowUpdateOne {
	mutation := newFreezeWindowMutation(c.config, OpUpdateOne, withFreezeWindowID(id))
	return &FreezeWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FreezeWindow.
func (c *FreezeWindowClient) Delete() *FreezeWindowDelete {
	mutation := newFreezeWindowMutation(c.config, OpDelete)
	return &FreezeWindowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FreezeWindowClient) DeleteOne(_m *FreezeWindow) *FreezeWindowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FreezeWindowClient) DeleteOneID(id uuid.UUID) *FreezeWindowDeleteOne {
	builder := c.Delete().Where(freezewindow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FreezeWindowDeleteOne{builder}
}

// Query returns a query builder for FreezeWindow.
func (c *FreezeWindowClient) Query() *FreezeWindowQuery {
	return &FreezeWindowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFreezeWindow},
		inters: c.Interceptors(),
	}
}

// Get returns a FreezeWindow entity by its id.
func (c *FreezeWindowClient) Get(ctx context.Context, id uuid.UUID) (*FreezeWindow, error) {
	return c.Query().Where(freezewindow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FreezeWindowClient) GetX(ctx context.Context, id uuid.UUID) *FreezeWindow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FreezeWindowClient) Hooks() []Hook {
	return c.hooks.FreezeWindow
}

// Interceptors returns the client interceptors.
func (c *FreezeWindowClient) Interceptors() []Interceptor {
	return c.inters.FreezeWindow
}

func (c *FreezeWindowClient) mutate(ctx context.Context, m *FreezeWindowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FreezeWindowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FreezeWindowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FreezeWindowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FreezeWindowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown FreezeWindow mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// RescheduleBatchClient is a client for the RescheduleBatch schema.
type RescheduleBatchClient struct {
	config
}

// NewRescheduleBatchClient returns a client for the RescheduleBatch from the given config.
func NewRescheduleBatchClient(c config) *RescheduleBatchClient {
	return &RescheduleBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reschedulebatch.Hooks(f(g(h())))`.
func (c *RescheduleBatchClient) Use(hooks ...Hook) {
	c.hooks.RescheduleBatch = append(c.hooks.RescheduleBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reschedulebatch.Intercept(f(g(h())))`.
func (c *RescheduleBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.RescheduleBatch = append(c.inters.RescheduleBatch, interceptors...)
}

// Create returns a builder for creating a RescheduleBatch entity.
func (c *RescheduleBatchClient) Create() *RescheduleBatchCreate {
	mutation := newRescheduleBatchMutation(c.config, OpCreate)
	return &RescheduleBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RescheduleBatch entities.
func (c *RescheduleBatchClient) CreateBulk(builders ...*RescheduleBatchCreate) *RescheduleBatchCreateBulk {
	return &RescheduleBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RescheduleBatchClient) MapCreateBulk(slice any, setFunc func(*RescheduleBatchCreate, int)) *RescheduleBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RescheduleBatchCreateBulk{err: fmt.Errorf("calling to RescheduleBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RescheduleBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RescheduleBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RescheduleBatch.
func (c *RescheduleBatchClient) Update() *RescheduleBatchUpdate {
	mutation := newRescheduleBatchMutation(c.config, OpUpdate)
	return &RescheduleBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RescheduleBatchClient) UpdateOne(_m *RescheduleBatch) *RescheduleBatchUpdateOne {
	mutation := newRescheduleBatchMutation(c.config, OpUpdateOne, withRescheduleBatch(_m))
	return &RescheduleBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RescheduleBatchClient) UpdateOneID(id uuid.UUID) *RescheduleBatchUpdateOne {
	mutation := newRescheduleBatchMutation(c.config, OpUpdateOne, withRescheduleBatchID(id))
	return &RescheduleBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RescheduleBatch.
func (c *RescheduleBatchClient) Delete() *RescheduleBatchDelete {
	mutation := newRescheduleBatchMutation(c.config, OpDelete)
	return &RescheduleBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RescheduleBatchClient) DeleteOne(_m *RescheduleBatch) *RescheduleBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RescheduleBatchClient) DeleteOneID(id uuid.UUID) *RescheduleBatchDeleteOne {
	builder := c.Delete().Where(reschedulebatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RescheduleBatchDeleteOne{builder}
}

// Query returns a query builder for RescheduleBatch.
func (c *RescheduleBatchClient) Query() *RescheduleBatchQuery {
	return &RescheduleBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRescheduleBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a RescheduleBatch entity by its id.
func (c *RescheduleBatchClient) Get(ctx context.Context, id uuid.UUID) (*RescheduleBatch, error) {
	return c.Query().Where(reschedulebatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RescheduleBatchClient) GetX(ctx context.Context, id uuid.UUID) *RescheduleBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RescheduleBatchClient) Hooks() []Hook {
	return c.hooks.RescheduleBatch
}

// Interceptors returns the client interceptors.
func (c *RescheduleBatchClient) Interceptors() []Interceptor {
	return c.inters.RescheduleBatch
}

func (c *RescheduleBatchClient) mutate(ctx context.Context, m *RescheduleBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RescheduleBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RescheduleBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RescheduleBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RescheduleBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RescheduleBatch mutation op: %q", m.Op())
	}
}

// RoomClient is a client for the Room schema.
type RoomClient struct {
	config
}

// NewRoomClient returns a client for the Room from the given config.
func NewRoomClient(c config) *RoomClient {
	return &RoomClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `room.Hooks(f(g(h())))`.
func (c *RoomClient) Use(hooks ...Hook) {
	c.hooks.Room = append(c.hooks.Room, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `room.Intercept(f(g(h())))`.
func (c *RoomClient) Intercept(interceptors ...Interceptor) {
	c.inters.Room = append(c.inters.Room, interceptors...)
}

// Create returns a builder for creating a Room entity.
func (c *RoomClient) Create() *RoomCreate {
	mutation := newRoomMutation(c.config, OpCreate)
	return &RoomCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Room entities.
func (c *RoomClient) CreateBulk(builders ...*RoomCreate) *RoomCreateBulk {
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomClient) MapCreateBulk(slice any, setFunc func(*RoomCreate, int)) *RoomCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomCreateBulk{err: fmt.Errorf("calling to RoomClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Room.
func (c *RoomClient) Update() *RoomUpdate {
	mutation := newRoomMutation(c.config, OpUpdate)
	return &RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomClient) UpdateOne(_m *Room) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoom(_m))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomClient) UpdateOneID(id uuid.UUID) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoomID(id))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Room.
func (c *RoomClient) Delete() *RoomDelete {
	mutation := newRoomMutation(c.config, OpDelete)
	return &RoomDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomClient) DeleteOne(_m *Room) *RoomDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomClient) DeleteOneID(id uuid.UUID) *RoomDeleteOne {
	builder := c.Delete().Where(room.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomDeleteOne{builder}
}

// Query returns a query builder for Room.
func (c *RoomClient) Query() *RoomQuery {
	return &RoomQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoom},
		inters: c.Interceptors(),
	}
}

// Get returns a Room entity by its id.
func (c *RoomClient) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	return c.Query().Where(room.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomClient) GetX(ctx context.Context, id uuid.UUID) *Room {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoomClient) Hooks() []Hook {
	return c.hooks.Room
}

// Interceptors returns the client interceptors.
func (c *RoomClient) Interceptors() []Interceptor {
	return c.inters.Room
}

func (c *RoomClient) mutate(ctx context.Context, m *RoomMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Room mutation op: %q", m.Op())
	}
}

// TherapistClient is a client for the Therapist schema.
type TherapistClient struct {
	config
}

// NewTherapistClient returns a client for the Therapist from the given config.
func NewTherapistClient(c config) *TherapistClient {
	return &TherapistClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `therapist.Hooks(f(g(h())))`.
func (c *TherapistClient) Use(hooks ...Hook) {
	c.hooks.Therapist = append(c.hooks.Therapist, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `therapist.Intercept(f(g(h())))`.
func (c *TherapistClient) Intercept(interceptors ...Interceptor) {
	c.inters.Therapist = append(c.inters.Therapist, interceptors...)
}

// Create returns a builder for creating a Therapist entity.
func (c *TherapistClient) Create() *TherapistCreate {
	mutation := newTherapistMutation(c.config, OpCreate)
	return &TherapistCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Therapist entities.
func (c *TherapistClient) CreateBulk(builders ...*TherapistCreate) *TherapistCreateBulk {
	return &TherapistCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TherapistClient) MapCreateBulk(slice any, setFunc func(*TherapistCreate, int)) *TherapistCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TherapistCreateBulk{err: fmt.Errorf("calling to TherapistClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TherapistCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TherapistCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Therapist.
func (c *TherapistClient) Update() *TherapistUpdate {
	mutation := newTherapistMutation(c.config, OpUpdate)
	return &TherapistUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TherapistClient) UpdateOne(_m *Therapist) *TherapistUpdateOne {
	mutation := newTherapistMutation(c.config, OpUpdateOne, withTherapist(_m))
	return &TherapistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TherapistClient) UpdateOneID(id uuid.UUID) *TherapistUpdateOne {
	mutation := newTherapistMutation(c.config, OpUpdateOne, withTherapistID(id))
	return &TherapistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Therapist.
func (c *TherapistClient) Delete() *TherapistDelete {
	mutation := newTherapistMutation(c.config, OpDelete)
	return &TherapistDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TherapistClient) DeleteOne(_m *Therapist) *TherapistDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TherapistClient) DeleteOneID(id uuid.UUID) *TherapistDeleteOne {
	builder := c.Delete().Where(therapist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TherapistDeleteOne{builder}
}

// Query returns a query builder for Therapist.
func (c *TherapistClient) Query() *TherapistQuery {
	return &TherapistQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTherapist},
		inters: c.Interceptors(),
	}
}

// Get returns a Therapist entity by its id.
func (c *TherapistClient) Get(ctx context.Context, id uuid.UUID) (*Therapist, error) {
	return c.Query().Where(therapist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TherapistClient) GetX(ctx context.Context, id uuid.UUID) *Therapist {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TherapistClient) Hooks() []Hook {
	return c.hooks.Therapist
}

// Interceptors returns the client interceptors.
func (c *TherapistClient) Interceptors() []Interceptor {
	return c.inters.Therapist
}

func (c *TherapistClient) mutate(ctx context.Context, m *TherapistMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TherapistCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TherapistUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TherapistUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TherapistDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Therapist mutation op: %q", m.Op())
	}
}

// TherapySessionClient is a client for the TherapySession schema.
type TherapySessionClient struct {
	config
}

// NewTherapySessionClient returns a client for the TherapySession from the given config.
func NewTherapySessionClient(c config) *TherapySessionClient {
	return &TherapySessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `therapysession.Hooks(f(g(h())))`.
func (c *TherapySessionClient) Use(hooks ...Hook) {
	c.hooks.TherapySession = append(c.hooks.TherapySession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `therapysession.Intercept(f(g(h())))`.
func (c *TherapySessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TherapySession = append(c.inters.TherapySession, interceptors...)
}

// Create returns a builder for creating a TherapySession entity.
func (c *TherapySessionClient) Create() *TherapySessionCreate {
	mutation := newTherapySessionMutation(c.config, OpCreate)
	return &TherapySessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TherapySession entities.
func (c *TherapySessionClient) CreateBulk(builders ...*TherapySessionCreate) *TherapySessionCreateBulk {
	return &TherapySessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TherapySessionClient) MapCreateBulk(slice any, setFunc func(*TherapySessionCreate, int)) *TherapySessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TherapySessionCreateBulk{err: fmt.Errorf("calling to TherapySessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TherapySessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TherapySessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TherapySession.
func (c *TherapySessionClient) Update() *TherapySessionUpdate {
	mutation := newTherapySessionMutation(c.config, OpUpdate)
	return &TherapySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TherapySessionClient) UpdateOne(_m *TherapySession) *TherapySessionUpdateOne {
	mutation := newTherapySessionMutation(c.config, OpUpdateOne, withTherapySession(_m))
	return &TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TherapySessionClient) UpdateOneID(id uuid.UUID) *TherapySessionUpdateOne {
	mutation := newTherapySessionMutation(c.config, OpUpdateOne, withTherapySessionID(id))
	return &TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TherapySession.
func (c *TherapySessionClient) Delete() *TherapySessionDelete {
	mutation := newTherapySessionMutation(c.config, OpDelete)
	return &TherapySessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TherapySessionClient) DeleteOne(_m *TherapySession) *TherapySessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TherapySessionClient) DeleteOneID(id uuid.UUID) *TherapySessionDeleteOne {
	builder := c.Delete().Where(therapysession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TherapySessionDeleteOne{builder}
}

// Query returns a query builder for TherapySession.
func (c *TherapySessionClient) Query() *TherapySessionQuery {
	return &TherapySessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTherapySession},
		inters: c.Interceptors(),
	}
}

// Get returns a TherapySession entity by its id.
func (c *TherapySessionClient) Get(ctx context.Context, id uuid.UUID) (*TherapySession, error) {
	return c.Query().Where(therapysession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TherapySessionClient) GetX(ctx context.Context, id uuid.UUID) *TherapySession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TherapySessionClient) Hooks() []Hook {
	return c.hooks.TherapySession
}

// Interceptors returns the client interceptors.
func (c *TherapySessionClient) Interceptors() []Interceptor {
	return c.inters.TherapySession
}

func (c *TherapySessionClient) mutate(ctx context.Context, m *TherapySessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TherapySessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TherapySessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TherapySessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TherapySessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TherapySession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AvailabilityRule, Center, Enrollment, FreezeWindow, Notification,
		RescheduleBatch, Room, Therapist, TherapySession []ent.Hook
	}
	inters struct {
		AvailabilityRule, Center, Enrollment, FreezeWindow, Notification,
		RescheduleBatch, Room, Therapist, TherapySession []ent.Interceptor
	}
)
