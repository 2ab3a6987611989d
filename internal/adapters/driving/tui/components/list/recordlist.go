// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

// RecordList displays parsed student records in a navigable list.
type RecordList struct {
	records   []domain.Record
	selected  int
	attempted bool
	styles    *styles.Styles
	width     int
	height    int
}

// NewRecordList creates a new record list component.
func NewRecordList(s *styles.Styles) *RecordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecordList{
		records:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the record list.
func (r *RecordList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecordList) Update(msg tea.Msg) (*RecordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the record list.
func (r *RecordList) View() string {
	if len(r.records) == 0 {
		if r.attempted {
			return r.styles.Muted.Render("No records found")
		}
		return ""
	}

	lines := make([]string, 0, len(r.records)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Records (%d)", len(r.records)))
	lines = append(lines, header, "")

	// Each record takes 2 lines (name line + detail line)
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.records) {
		end = len(r.records)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.records[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single record.
func (r *RecordList) renderRecord(index int, record *domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(indicator + record.Name)
	} else {
		nameLine = r.styles.Normal.Render(indicator + record.Name)
	}

	detail := fmt.Sprintf("    %s · %s", record.Roll, record.Hometown)
	detailLine := r.styles.Muted.Render(detail)

	return nameLine + "\n" + detailLine
}

// SetRecords updates the record list. An empty list after a settled
// attempt renders as "No records found".
func (r *RecordList) SetRecords(records []domain.Record) {
	r.records = records
	r.selected = 0
	r.attempted = true
}

// Records returns the current records.
func (r *RecordList) Records() []domain.Record {
	return r.records
}

// Selected returns the index of the selected record.
func (r *RecordList) Selected() int {
	return r.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *RecordList) SelectedRecord() *domain.Record {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *RecordList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecordList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecordList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *RecordList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *RecordList) IsEmpty() bool {
	return len(r.records) == 0
}

// Clear empties the list and forgets that an attempt was made.
func (r *RecordList) Clear() {
	r.records = nil
	r.selected = 0
	r.attempted = false
}
