package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Normalise(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected Record
	}{
		{
			name:     "all fields present are untouched",
			record:   Record{Name: "ravi", Roll: "210123", Hometown: "delhi"},
			expected: Record{Name: "ravi", Roll: "210123", Hometown: "delhi"},
		},
		{
			name:     "missing name gets placeholder",
			record:   Record{Roll: "210123", Hometown: "delhi"},
			expected: Record{Name: FieldPlaceholder, Roll: "210123", Hometown: "delhi"},
		},
		{
			name:     "missing roll gets placeholder",
			record:   Record{Name: "ravi", Hometown: "delhi"},
			expected: Record{Name: "ravi", Roll: FieldPlaceholder, Hometown: "delhi"},
		},
		{
			name:     "missing hometown gets placeholder",
			record:   Record{Name: "ravi", Roll: "210123"},
			expected: Record{Name: "ravi", Roll: "210123", Hometown: FieldPlaceholder},
		},
		{
			name:     "empty record gets all placeholders",
			record:   Record{},
			expected: Record{Name: FieldPlaceholder, Roll: FieldPlaceholder, Hometown: FieldPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Normalise())
		})
	}
}
