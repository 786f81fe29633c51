package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want Key
	}{
		{date(2016, 1, 4), Key{2016, 1}},  // Monday
		{date(2016, 1, 10), Key{2016, 1}}, // Sunday, same week
		{date(2016, 1, 11), Key{2016, 2}},
		{date(2014, 12, 31), Key{2015, 1}}, // ISO year differs from calendar year
		{date(2015, 1, 1), Key{2015, 1}},
		{date(2016, 1, 3), Key{2015, 53}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Of(tt.date), "Of(%s)", tt.date.Format("2006-01-02"))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "2016-W01", Key{2016, 1}.String())
	assert.Equal(t, "2015-W53", Key{2015, 53}.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"2016-W01", Key{2016, 1}},
		{"2015-W53", Key{2015, 53}},
		{"2020-W7", Key{2020, 7}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"2016-01",
		"xxxx-W01",
		"2016-Wxx",
		"2016-W00",
		"2016-W54",
	}
	for _, input := range badInputs {
		_, err := Parse(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}
