package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	y, m, err := ParseYearMonth("2023-04")
	require.NoError(t, err)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 4, m)

	for _, bad := range []string{"", "2023", "2023-13", "2023-00", "abcd-ef", "2023/04"} {
		_, _, err := ParseYearMonth(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMonthsBetweenIsExclusive(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    int
	}{
		{"same month", "2024-01", "2024-01", false, 0},
		{"adjacent months", "2024-01", "2024-02", false, 1},
		{"one year", "2023-03", "2024-03", false, 12},
		{"across years", "2022-11", "2024-02", false, 15},
		{"current uses now", "2024-01", "", true, 5},
		{"empty end falls back to start", "2024-03", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthsBetween(tt.start, tt.end, tt.current, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "Less than a month"},
		{-1, "Less than a month"},
		{1, "1 month"},
		{5, "5 months"},
		{11, "11 months"},
		{12, "1 year"},
		{13, "1 year 1 month"},
		{18, "1 year 6 months"},
		{24, "2 years"},
		{27, "2 years 3 months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.months), "months=%d", tt.months)
	}
}

func TestDuration(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := "2023-01"

	assert.Equal(t, "1 year", Duration("2022-01", &end, false, now))
	assert.Equal(t, "2 years 5 months", Duration("2022-01", nil, true, now))
	assert.Equal(t, "", Duration("garbage", nil, false, now))
}
