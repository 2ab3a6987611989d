// Package login provides the session-gate login form for the TUI.
package login

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/components/input"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/keymap"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/messages"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
)

// field identifies which form field has focus.
type field int

const (
	fieldUsername field = iota
	fieldPassword
)

// View is the login form shown while the session gate is unsatisfied.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	username *input.CredentialInput
	password *input.CredentialInput

	session driving.SessionService
	ctx     context.Context

	focused    field
	submitting bool
	errMsg     string

	width  int
	height int
	ready  bool
}

// NewView creates a new login view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:   s,
		keymap:   km,
		username: input.NewCredentialInput(s, "Username", false),
		password: input.NewCredentialInput(s, "Password", true),
		session:  session,
		ctx:      context.Background(),
		focused:  fieldUsername,
	}
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.username.Focus()
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LoginCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.errMsg = msg.Err.Error()
			// Password never survives a failed attempt
			v.password.Reset()
			v.focused = fieldPassword
			return v, v.focusField()
		}
		v.errMsg = ""
		v.password.Reset()
		return v, nil
	}

	return v, v.updateFocused(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.submitting {
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		if v.focused == fieldUsername {
			v.focused = fieldPassword
		} else {
			v.focused = fieldUsername
		}
		return v, v.focusField()

	case tea.KeyEnter:
		if v.focused == fieldUsername {
			v.focused = fieldPassword
			return v, v.focusField()
		}
		return v, v.submit()
	}

	return v, v.updateFocused(msg)
}

// focusField moves terminal focus to the selected field.
func (v *View) focusField() tea.Cmd {
	if v.focused == fieldUsername {
		v.password.Blur()
		return v.username.Focus()
	}
	v.username.Blur()
	return v.password.Focus()
}

// updateFocused forwards a message to the focused field.
func (v *View) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.focused == fieldUsername {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return cmd
}

// submit attempts the login with the entered credentials.
func (v *View) submit() tea.Cmd {
	username := strings.TrimSpace(v.username.Value())
	password := v.password.Value()
	if username == "" || password == "" {
		v.errMsg = domain.MsgLoginFailed
		return nil
	}

	v.submitting = true
	v.errMsg = ""

	session := v.session
	ctx := v.ctx
	return func() tea.Msg {
		return messages.LoginCompleted{Err: session.Login(ctx, username, password)}
	}
}

// View renders the login form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Student Search Login")
	sections = append(sections, header, "")

	sections = append(sections, v.username.View(), v.password.View(), "")

	if v.submitting {
		sections = append(sections, v.styles.Muted.Render("Logging in..."), "")
	} else if v.errMsg != "" {
		sections = append(sections, v.styles.Error.Render(v.errMsg), "")
	}

	hints := v.styles.Muted.Render("tab: next field | enter: log in | ctrl+c: quit")
	sections = append(sections, hints)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// ErrMsg returns the current inline error, empty when none.
func (v *View) ErrMsg() string {
	return v.errMsg
}

// Submitting returns whether a login attempt is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Reset clears both fields and any error.
func (v *View) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.errMsg = ""
	v.submitting = false
	v.focused = fieldUsername
}
