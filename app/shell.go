// Package app is the composition root: it bootstraps the theme, owns the
// route table and hands both to the navigation container.
package app

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jask/pageshell/core"
	"github.com/jask/pageshell/core/nav"
	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/internal/logging"
	"github.com/jask/pageshell/pages"
)

// Steps reported to Shell.Trace, in the order Start performs them.
const (
	StepBootstrap        = "bootstrap"
	StepBootstrapSkipped = "bootstrap:skipped"
	StepInitialize       = "initialize"
	StepRegister         = "register"
	StepCompose          = "compose"
	StepRender           = "render"
)

var ErrNoRoutes = errors.New("app: route table is empty")

// Shell wires the application together. The zero value starts the default
// table on an in-memory history at "/".
type Shell struct {
	Title string
	// Routes is the ordered table. Nil means DefaultRoutes.
	Routes []route.Route
	// Theme names an embedded theme. Empty means theme.DefaultName.
	Theme string
	// Store supplies the current location. Nil substitutes a MemoryHistory
	// starting at Initial.
	Store    nav.LocationStore
	Initial  string
	NotFound nav.NotFoundPolicy
	Logger   *zap.Logger
	// Keys replaces the default keys of the named actions.
	Keys map[string][]string

	// Trace observes each startup step and every render.
	Trace func(step string)
	// Bootstrap applies the theme process-wide. Nil uses theme.Bootstrap.
	Bootstrap func(theme.Theme) bool

	mu        sync.Mutex
	model     *core.Model
	container *nav.Container
	table     *route.Table
}

// DefaultRoutes is the reference table: the homepage at "/". Extend it by
// appending routes.
func DefaultRoutes() []route.Route {
	return []route.Route{
		{Pattern: "/", Content: pages.NewHomepage("")},
	}
}

// Start bootstraps the theme, initializes navigation, registers the routes and
// builds the model, in that order. Later calls return the same model.
func (s *Shell) Start() (*core.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.model != nil {
		return s.model, nil
	}
	logger := logging.OrNop(s.Logger)

	routes := s.Routes
	if routes == nil {
		routes = DefaultRoutes()
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}
	table, err := route.New(routes...)
	if err != nil {
		return nil, fmt.Errorf("declare routes: %w", err)
	}

	name := s.Theme
	if name == "" {
		name = theme.DefaultName
	}
	th, err := theme.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	bootstrap := s.Bootstrap
	if bootstrap == nil {
		bootstrap = theme.Bootstrap
	}
	if bootstrap(th) {
		logger.Info("theme applied", zap.String("theme", th.Name), zap.Bool("dark", th.Dark))
		s.trace(StepBootstrap)
	} else {
		s.trace(StepBootstrapSkipped)
	}

	store := s.Store
	if store == nil {
		store = nav.NewMemoryHistory(s.Initial)
	}
	opts := []nav.Option{nav.WithLogger(logger.Named("nav"))}
	if s.NotFound == nav.NotFoundPage {
		nf := pages.NewNotFound()
		nf.SetTable(table)
		opts = append(opts, nav.WithNotFound(nav.NotFoundPage, nf))
	}
	container := nav.NewContainer(opts...)
	container.Initialize(store)
	s.trace(StepInitialize)

	bindTable(table)
	if err := container.RegisterRoutes(table); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}
	s.trace(StepRegister)

	m := core.NewModel(core.Options{
		Title:    s.Title,
		Nav:      container,
		Keys:     core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), s.Keys)),
		Commands: core.NewCommandRegistry(nil),
		Logger:   logger,
		OnRender: func() { s.trace(StepRender) },
	})
	ConfigureModel(&m)
	s.trace(StepCompose)

	logger.Info("shell started",
		zap.Int("routes", table.Len()),
		zap.String("location", container.Location().String()),
		zap.Stringer("not_found", container.Policy()))

	s.container = container
	s.table = table
	s.model = &m
	return s.model, nil
}

// Started reports whether Start has completed.
func (s *Shell) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model != nil
}

// Container returns the navigation container, or nil before Start.
func (s *Shell) Container() *nav.Container {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.container
}

// Table returns the registered route table, or nil before Start.
func (s *Shell) Table() *route.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

func (s *Shell) trace(step string) {
	if s.Trace != nil {
		s.Trace(step)
	}
}

// bindTable hands the table to pages that link to their siblings.
func bindTable(table *route.Table) {
	for _, r := range table.Routes() {
		switch c := r.Content.(type) {
		case *pages.Homepage:
			c.SetLinks(table)
		case *pages.NotFound:
			c.SetTable(table)
		}
	}
}
