package nav

import (
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/internal/logging"
)

var (
	ErrNotInitialized   = errors.New("nav: container not initialized")
	ErrRoutesRegistered = errors.New("nav: routes already registered")
	ErrNoRouteTable     = errors.New("nav: nil route table")
)

// NotFoundPolicy decides what the container mounts when nothing matches.
type NotFoundPolicy int

const (
	// NotFoundBlank renders an empty region.
	NotFoundBlank NotFoundPolicy = iota
	// NotFoundPage mounts the configured fallback content.
	NotFoundPage
)

func (p NotFoundPolicy) String() string {
	switch p {
	case NotFoundPage:
		return "page"
	default:
		return "blank"
	}
}

// ParseNotFoundPolicy maps a config value onto a policy. Unknown values are blank.
func ParseNotFoundPolicy(s string) NotFoundPolicy {
	if s == "page" {
		return NotFoundPage
	}
	return NotFoundBlank
}

// Outcome is the result of the latest match.
type Outcome struct {
	Location Location
	Match    route.Match
	Found    bool
}

// Container owns the location store and mounts whichever registered route
// matches the current location. Matching re-runs synchronously on every
// location change.
type Container struct {
	store       LocationStore
	table       *route.Table
	unsubscribe func()
	outcome     Outcome
	listeners   []listenerFn
	nextID      int
	policy      NotFoundPolicy
	fallback    route.Content
	logger      *zap.Logger
}

type listenerFn struct {
	id int
	fn func(Outcome)
}

type Option func(*Container)

// WithNotFound sets the no-match policy. fallback is only used by NotFoundPage.
func WithNotFound(policy NotFoundPolicy, fallback route.Content) Option {
	return func(c *Container) {
		c.policy = policy
		c.fallback = fallback
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		c.logger = logging.OrNop(logger)
	}
}

func NewContainer(opts ...Option) *Container {
	c := &Container{logger: logging.OrNop(nil)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize takes ownership of store. It must be called once, before routes
// are registered. A nil store is a silent no-op so hosts without a history
// mechanism can substitute one later; later calls are ignored.
func (c *Container) Initialize(store LocationStore) {
	if store == nil {
		c.logger.Debug("no location store supplied")
		return
	}
	if c.store != nil {
		c.logger.Warn("container already initialized; ignoring store")
		return
	}
	c.store = store
	c.outcome = Outcome{Location: store.Current()}
}

func (c *Container) Initialized() bool {
	return c.store != nil
}

// RegisterRoutes sets the static table evaluated against the current
// location. It renders nothing by itself.
func (c *Container) RegisterRoutes(table *route.Table) error {
	if c.store == nil {
		return ErrNotInitialized
	}
	if table == nil {
		return ErrNoRouteTable
	}
	if c.table != nil {
		return ErrRoutesRegistered
	}
	c.table = table
	c.unsubscribe = c.store.Subscribe(c.evaluate)
	c.evaluate(c.store.Current())
	return nil
}

func (c *Container) evaluate(loc Location) {
	m, ok := c.table.Match(loc.Path)
	c.outcome = Outcome{Location: loc, Match: m, Found: ok}
	if ok {
		c.logger.Debug("route matched",
			zap.String("location", loc.String()),
			zap.String("pattern", m.Route.Pattern))
	} else {
		c.logger.Debug("no route matched",
			zap.String("location", loc.String()),
			zap.Stringer("policy", c.policy))
	}
	ls := slices.Clone(c.listeners)
	for _, l := range ls {
		l.fn(c.outcome)
	}
}

// OnChange registers fn to observe every outcome after a location change.
func (c *Container) OnChange(fn func(Outcome)) func() {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerFn{id: id, fn: fn})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(l listenerFn) bool { return l.id == id })
	}
}

func (c *Container) Outcome() Outcome {
	return c.outcome
}

func (c *Container) Location() Location {
	if c.store == nil {
		return Location{}
	}
	return c.store.Current()
}

func (c *Container) Table() *route.Table {
	return c.table
}

func (c *Container) Policy() NotFoundPolicy {
	return c.policy
}

// Content returns the content currently mounted, or nil for a blank render.
func (c *Container) Content() route.Content {
	if c.table == nil {
		return nil
	}
	if c.outcome.Found {
		return c.outcome.Match.Route.Content
	}
	if c.policy == NotFoundPage {
		return c.fallback
	}
	return nil
}

// Render draws the mounted content. No match under the blank policy, or a
// container that has no routes yet, renders an empty string.
func (c *Container) Render(width, height int) string {
	content := c.Content()
	if content == nil {
		return ""
	}
	loc := c.outcome.Location
	ctx := route.Context{
		Path:   route.Canonical(loc.Path),
		Query:  loc.Query(),
		Params: c.outcome.Match.Params,
		Width:  width,
		Height: height,
	}
	return content.View(ctx)
}

func (c *Container) Navigate(path string) error {
	if c.store == nil {
		return ErrNotInitialized
	}
	return c.store.Navigate(path)
}

func (c *Container) Replace(path string) error {
	if c.store == nil {
		return ErrNotInitialized
	}
	return c.store.Replace(path)
}

func (c *Container) Back() bool {
	if c.store == nil {
		return false
	}
	return c.store.Back()
}

func (c *Container) Forward() bool {
	if c.store == nil {
		return false
	}
	return c.store.Forward()
}

// Close detaches the container from its store.
func (c *Container) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
