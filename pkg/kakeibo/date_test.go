package kakeibo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateNormalization(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{"preformatted string", DateString("2026-03-01"), "2026-03-01"},
		{"calendar date", DateYMD(2026, time.March, 1), "2026-03-01"},
		{"date with time of day", DateOf(time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)), "2026-03-01"},
		{"midnight", DateOf(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)), "2026-03-01"},
		{"single digit padding", DateYMD(2026, time.January, 5), "2026-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.String())
		})
	}
}

func TestDateStringPassthrough(t *testing.T) {
	// No client-side validation: the server is the authority on format.
	assert.Equal(t, "not-a-date", DateString("not-a-date").String())
	assert.Equal(t, "2026/03/01", DateString("2026/03/01").String())
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, DateString("2026-03-01").IsZero())
	assert.False(t, DateOf(time.Time{}).IsZero())
}
