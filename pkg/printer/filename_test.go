package printer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileTitle(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 8, 0, 0, time.UTC)

	cases := []struct {
		name, customer, clock, date, want string
	}{
		{"punctuation stripped", "Jane Doe!!", "09:15", "2024-02-18", "Jane_Doe_0915_2024-02-18"},
		{"blank name", "   ", "09:15", "2024-02-18", "BILL_0915_2024-02-18"},
		{"name of only symbols", "!!!", "09:15", "2024-02-18", "BILL_0915_2024-02-18"},
		{"defaults from clock", "Ravi", "", "", "Ravi_0708_2024-03-05"},
		{"underscores collapse", "a  _ b", "10:00", "2024-01-01", "a_b_1000_2024-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FileTitle(tc.customer, tc.clock, tc.date, now))
		})
	}
}

func TestSanitizeTitle_Cap(t *testing.T) {
	got := SanitizeTitle(strings.Repeat("x", 200))
	assert.Len(t, got, 80)
}

func TestSanitizeTitle_UnicodeSpaces(t *testing.T) {
	cases := map[string]string{
		"Jane\u00a0Doe":   "Jane_Doe",
		"Jane\vDoe":       "Jane_Doe",
		"Jane\u2003Doe":   "Jane_Doe",
		"Jane\ufeffDoe":   "Jane_Doe",
		"Jane \u00a0 Doe": "Jane_Doe",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeTitle(in), "SanitizeTitle(%q)", in)
	}

	assert.Equal(t, "Jane_Doe_0915_2024-02-18", FileTitle("Jane\u00a0Doe", "09:15", "2024-02-18", time.Now()))
}
