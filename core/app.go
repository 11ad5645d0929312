package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/pageshell/core/nav"
	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/internal/logging"
)

// Screen is an overlay drawn above the mounted page. Returning true from
// Update pops it.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// KeyHandler is implemented by pages that react to keys while mounted.
type KeyHandler interface {
	HandleKey(ctx route.Context, msg tea.KeyMsg) (bool, tea.Cmd)
}

// Options configures a Model. Nav is required.
type Options struct {
	Title    string
	Nav      *nav.Container
	Keys     *KeyRegistry
	Commands *CommandRegistry
	Logger   *zap.Logger
	// OnRender runs before every frame is drawn.
	OnRender func()
}

type Model struct {
	width     int
	height    int
	title     string
	nav       *nav.Container
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	logger    *zap.Logger
	onRender  func()

	OpenGoTo         func(m *Model) Screen
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(opts Options) Model {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	commands := opts.Commands
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	logger := logging.OrNop(opts.Logger)
	title := opts.Title
	if title == "" {
		title = "pageshell"
	}
	return Model{
		title:    title,
		nav:      opts.Nav,
		keys:     keys,
		commands: commands,
		logger:   logger,
		onRender: opts.OnRender,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// ActiveScope is the top overlay's scope, else the mounted route's scope.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.nav == nil {
		return ScopeNoMatch
	}
	o := m.nav.Outcome()
	if !o.Found {
		return ScopeNoMatch
	}
	return PageScope(o.Match.Route.Pattern)
}

func (m Model) Nav() *nav.Container {
	return m.nav
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Screens() int {
	return m.screens.Len()
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) Quitting() bool {
	return m.quitting
}

// pageContext describes the mounted page at the current terminal size.
func (m Model) pageContext() route.Context {
	o := m.nav.Outcome()
	return route.Context{
		Path:   o.Location.Path,
		Query:  o.Location.Query(),
		Params: o.Match.Params,
		Width:  m.width,
		Height: m.height,
	}
}
