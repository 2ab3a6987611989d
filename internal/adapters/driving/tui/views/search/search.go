// Package search provides the query and results view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/components/input"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/components/list"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/components/status"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/keymap"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/messages"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driving"
)

// View is the search screen: identifier input, record list and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RecordList
	statusbar *status.Bar

	pipeline driving.SearchPipeline
	ctx      context.Context

	// cancelSearch aborts the in-flight request when a new submit
	// supersedes it. The stale completion is dropped by sequence number.
	cancelSearch context.CancelFunc
	seq          int

	width      int
	height     int
	ready      bool
	errMsg     string
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, pipeline driving.SearchPipeline) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewRecordList(s),
		statusbar:  status.NewBar(s, km),
		pipeline:   pipeline,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.errMsg = msg.Err.Error()
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.errMsg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Enter in input mode submits
	if msg.Type == tea.KeyEnter && v.focusInput {
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			// Empty query is a no-op, nothing changes
			return v, nil
		}
		return v, v.submit(query)
	}

	// Input mode: all keys go to the input field
	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode: navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		// New search: clear input and focus it
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	}

	return v, nil
}

// submit cancels any in-flight request and starts a new one.
func (v *View) submit(query string) tea.Cmd {
	if v.cancelSearch != nil {
		v.cancelSearch()
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelSearch = cancel
	v.seq++

	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")
	v.errMsg = ""

	seq := v.seq
	pipeline := v.pipeline
	return func() tea.Msg {
		state := pipeline.Submit(ctx, query)
		return messages.SearchCompleted{Seq: seq, State: state}
	}
}

// handleSearchCompleted applies the settled pipeline state.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Seq != v.seq {
		// Superseded submit, a newer one is in flight or settled
		return
	}
	v.cancelSearch = nil

	state := msg.State
	if state.State == domain.StateFailed || state.Err != "" {
		v.errMsg = state.Err
		v.list.Clear()
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(state.Err)
		return
	}

	v.errMsg = ""
	v.list.SetRecords(state.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(state.Results))
	v.statusbar.SetMessage("")

	// Move to results mode after a successful search
	v.focusInput = false
	v.input.Blur()
}

// ClearError empties the error display. Called when a token or session
// is newly accepted.
func (v *View) ClearError() {
	v.errMsg = ""
	if v.statusbar.State() == status.StateError {
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
	}
}

// SetVerifying marks the status bar while the challenge runs.
func (v *View) SetVerifying() {
	v.statusbar.SetState(status.StateVerifying)
}

// SetNotice shows a transient success message in the status bar.
func (v *View) SetNotice(msg string) {
	if v.statusbar.State() == status.StateVerifying || v.statusbar.State() == status.StateReady {
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage(msg)
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Student Search")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.errMsg != "" {
		sections = append(sections, v.styles.Error.Render(v.errMsg), "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Records returns the currently displayed records.
func (v *View) Records() []domain.Record {
	return v.list.Records()
}

// SelectedIndex returns the index of the selected record.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// ErrMsg returns the current error message, empty when none.
func (v *View) ErrMsg() string {
	return v.errMsg
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Reset returns the view to a fresh input state.
func (v *View) Reset() {
	if v.cancelSearch != nil {
		v.cancelSearch()
		v.cancelSearch = nil
	}
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.Clear()
	v.errMsg = ""
	v.statusbar.Clear()
}
