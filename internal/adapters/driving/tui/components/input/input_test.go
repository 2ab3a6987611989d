package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
)

func typeRunes(s *SearchInput, text string) *SearchInput {
	for _, r := range text {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

func TestSearchInput_AcceptsTypedText(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())
	s.Focus()

	s = typeRunes(s, "21BCE1001")
	assert.Equal(t, "21BCE1001", s.Value())
}

func TestSearchInput_IgnoresInputWhenBlurred(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())
	s.Focus()
	s.Blur()

	s = typeRunes(s, "abc")
	assert.Empty(t, s.Value())
}

func TestSearchInput_Reset(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())
	s.Focus()
	s = typeRunes(s, "21BCE1001")
	require.NotEmpty(t, s.Value())

	s.Reset()
	assert.Empty(t, s.Value())
}

func TestSearchInput_ShowsPlaceholder(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())

	assert.Contains(t, s.View(), "Enter roll number")
}

func TestCredentialInput_MasksSecret(t *testing.T) {
	c := NewCredentialInput(styles.DefaultStyles(), "Password", true)
	c.Focus()
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hunter2")})

	assert.Equal(t, "hunter2", c.Value())
	view := c.View()
	assert.NotContains(t, view, "hunter2")
	assert.True(t, strings.Contains(view, "*******"), "masked field renders echo characters")
}

func TestCredentialInput_PlainFieldShowsValue(t *testing.T) {
	c := NewCredentialInput(styles.DefaultStyles(), "Username", false)
	c.Focus()
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rahul")})

	assert.Equal(t, "rahul", c.Value())
	assert.Contains(t, c.View(), "rahul")
	assert.Contains(t, c.View(), "Username")
}

func TestCredentialInput_Reset(t *testing.T) {
	c := NewCredentialInput(styles.DefaultStyles(), "Password", true)
	c.Focus()
	c.SetValue("secret")
	require.Equal(t, "secret", c.Value())

	c.Reset()
	assert.Empty(t, c.Value())
}
