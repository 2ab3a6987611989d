package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/San-Shiro/studentsearch/internal/adapters/driving/tui/styles"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Name: "Rahul Sharma", Roll: "21BCE1001", Hometown: "Pune"},
		{Name: "Priya Patel", Roll: "21BCE1002", Hometown: "Surat"},
		{Name: "Arjun Nair", Roll: "21BCE1003", Hometown: "Kochi"},
	}
}

func TestRecordList_EmptyBeforeAnySearch(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())

	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.View(), "no placeholder before the first search settles")
}

func TestRecordList_EmptyAfterSearchShowsPlaceholder(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	l.SetRecords(nil)

	assert.True(t, l.IsEmpty())
	assert.Contains(t, l.View(), "No records found")
}

func TestRecordList_RendersRecords(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	l.SetRecords(sampleRecords())

	view := l.View()
	assert.Contains(t, view, "Records (3)")
	assert.Contains(t, view, "Rahul Sharma")
	assert.Contains(t, view, "21BCE1002")
	assert.Contains(t, view, "Kochi")
}

func TestRecordList_Navigation(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	l.SetRecords(sampleRecords())
	require.Equal(t, 0, l.Selected())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected(), "cannot move above the first record")

	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Selected())

	l.MoveDown()
	assert.Equal(t, 2, l.Selected(), "cannot move below the last record")

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())
}

func TestRecordList_SelectedRecord(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	assert.Nil(t, l.SelectedRecord())

	l.SetRecords(sampleRecords())
	l.MoveDown()

	selected := l.SelectedRecord()
	require.NotNil(t, selected)
	assert.Equal(t, "Priya Patel", selected.Name)
}

func TestRecordList_SetRecordsResetsSelection(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	l.SetRecords(sampleRecords())
	l.MoveDown()
	require.Equal(t, 1, l.Selected())

	l.SetRecords(sampleRecords()[:1])
	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 1, l.Count())
}

func TestRecordList_Clear(t *testing.T) {
	l := NewRecordList(styles.DefaultStyles())
	l.SetRecords(sampleRecords())
	require.False(t, l.IsEmpty())

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.View(), "clearing also resets the attempted flag")
}
