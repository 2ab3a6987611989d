package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/keymap"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/messages"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/views/login"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/views/search"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// searchView is the query and results view.
	searchView *search.View

	// loginView is the session-gate login form, nil unless the session
	// gate is configured.
	loginView *login.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// prevView is the view to return to from help.
	prevView messages.ViewType

	// verifying guards against overlapping verification attempts under
	// the token gate.
	verifying bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchView:  search.NewView(s, km, ports.Search),
		currentView: messages.ViewSearch,
	}

	if ports.GateMode == domain.GateModeSession {
		app.loginView = login.NewView(s, km, ports.Session)
	}

	return app, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	if a.loginView != nil {
		a.loginView.WithContext(ctx)
	}
	return a
}

// Init implements tea.Model.
// It mounts the configured gate and runs initial commands.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("studentsearch"),
		a.searchView.Init(),
	}

	switch a.ports.GateMode {
	case domain.GateModeToken:
		a.searchView.SetVerifying()
		a.verifying = true
		cmds = append(cmds, a.startVerification())
	case domain.GateModeSession:
		cmds = append(cmds, a.probeSession())
	case domain.GateModeNone:
		// Nothing to gate.
	}

	return tea.Batch(cmds...)
}

// startVerification mounts the challenge widget and waits for a token.
func (a *App) startVerification() tea.Cmd {
	verify := a.ports.Verify
	ctx := a.ctx
	return func() tea.Msg {
		if err := verify.Begin(ctx); err != nil {
			return messages.VerificationFailed{Err: err}
		}
		if err := verify.AwaitToken(ctx); err != nil {
			return messages.VerificationFailed{Err: err}
		}
		return messages.VerificationCompleted{}
	}
}

// probeSession runs the one-time startup auth check.
func (a *App) probeSession() tea.Cmd {
	session := a.ports.Session
	ctx := a.ctx
	return func() tea.Msg {
		return messages.SessionChecked{State: session.Check(ctx)}
	}
}

// logout ends the session and returns to the login form.
func (a *App) logout() tea.Cmd {
	session := a.ports.Session
	ctx := a.ctx
	return func() tea.Msg {
		session.Logout(ctx)
		return messages.LoggedOut{}
	}
}

// gateSatisfied reports whether the configured gate currently admits
// searches. The open gate always does.
func (a *App) gateSatisfied() bool {
	switch a.ports.GateMode {
	case domain.GateModeToken:
		return a.ports.Verify.Satisfied()
	case domain.GateModeSession:
		return a.ports.Session.State().Authenticated
	}
	return true
}

// reengageGate recovers from a rejected or invalidated gate. Under the
// session gate the login form comes back; under the token gate a fresh
// verification round starts.
func (a *App) reengageGate() tea.Cmd {
	switch a.ports.GateMode {
	case domain.GateModeToken:
		if a.verifying {
			return nil
		}
		a.searchView.SetVerifying()
		a.verifying = true
		return a.startVerification()
	case domain.GateModeSession:
		a.loginView.Reset()
		a.currentView = messages.ViewLogin
		return a.loginView.Init()
	}
	return nil
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		if a.loginView != nil {
			a.loginView.SetDimensions(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.VerificationCompleted:
		// A fresh token clears any stale gate error
		a.verifying = false
		a.ports.Search.ClearError()
		a.searchView.ClearError()
		a.searchView.SetNotice("Verified")
		return a, nil

	case messages.VerificationFailed:
		// The gate stays unsatisfied; submits will read the fixed message
		a.verifying = false
		a.searchView, cmd = a.searchView.Update(messages.ErrorOccurred{Err: msg.Err})
		return a, cmd

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		if msg.State.State == domain.StateFailed && !a.gateSatisfied() {
			return a, tea.Batch(cmd, a.reengageGate())
		}
		return a, cmd

	case messages.SessionChecked:
		if !msg.State.Authenticated && a.loginView != nil {
			a.currentView = messages.ViewLogin
			return a, a.loginView.Init()
		}
		// An already-authenticated session counts as gate acceptance
		a.ports.Search.ClearError()
		return a, nil

	case messages.LoginCompleted:
		a.loginView, cmd = a.loginView.Update(msg)
		if msg.Err == nil {
			a.ports.Search.ClearError()
			a.searchView.ClearError()
			a.currentView = messages.ViewSearch
			return a, tea.Batch(cmd, a.searchView.Init())
		}
		return a, cmd

	case messages.LoggedOut:
		a.ports.Search.Reset()
		a.searchView.Reset()
		if a.loginView != nil {
			a.loginView.Reset()
			a.currentView = messages.ViewLogin
			return a, a.loginView.Init()
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}

	return a, cmd
}

// handleKeyMsg routes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit
	if keymap.Matches(msg.String(), a.keymap.Quit) {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewSearch:
		// Logout only applies under the session gate
		if a.loginView != nil && keymap.Matches(msg.String(), a.keymap.Logout) {
			return a, a.logout()
		}
		if msg.String() == "?" && !a.searchView.InputFocused() {
			a.prevView = a.currentView
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = a.prevView
		}
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Search:
  (type)      Enter a roll number
  enter       Submit search
  ?           Toggle help (results mode)

Results:
  j/k, ↑/↓    Navigate records
  n           New search

Session:
  ctrl+l      Log out (session gate only)

Global:
  ctrl+c      Quit

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer func() {
		if a.ports.Verify != nil {
			a.ports.Verify.Close()
		}
	}()

	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view (for testing).
func (a *App) SearchView() *search.View {
	return a.searchView
}

// LoginView returns the login view, nil without the session gate.
func (a *App) LoginView() *login.View {
	return a.loginView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	if a.loginView != nil {
		a.loginView.SetDimensions(width, height)
	}
}
