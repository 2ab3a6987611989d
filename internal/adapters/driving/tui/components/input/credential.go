package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
)

// CredentialInput is a labelled single-line field for the login form.
// Password fields mask their input.
type CredentialInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewCredentialInput creates a credential field. When secret is true the
// input is masked.
func NewCredentialInput(s *styles.Styles, label string, secret bool) *CredentialInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 30
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}

	return &CredentialInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Update handles input messages.
func (c *CredentialInput) Update(msg tea.Msg) (*CredentialInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the field with its label.
func (c *CredentialInput) View() string {
	label := c.styles.Subtitle.Render(c.label + ": ")
	field := c.styles.InputField.Render(c.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (c *CredentialInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *CredentialInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// Focus sets focus on the field.
func (c *CredentialInput) Focus() tea.Cmd {
	return c.textinput.Focus()
}

// Blur removes focus from the field.
func (c *CredentialInput) Blur() {
	c.textinput.Blur()
}

// Focused returns whether the field is focused.
func (c *CredentialInput) Focused() bool {
	return c.textinput.Focused()
}

// Reset clears the field.
func (c *CredentialInput) Reset() {
	c.textinput.Reset()
}
