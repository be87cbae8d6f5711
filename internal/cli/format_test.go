package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{999.5, "$999.50"},
		{10000, "$10,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-2500, "-$2,500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.amount))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+5.00%", FormatPercent(5))
	assert.Equal(t, "-12.34%", FormatPercent(-12.34))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "28-Aug-2026", FormatDate(d))
	assert.Equal(t, "28-Aug-2026 14:30:05", FormatDateTime(d))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Memecoin...", TruncateString("Memecoin Madness", 11))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░]", ProgressBar(0, 4))
	assert.Equal(t, "[██░░]", ProgressBar(50, 4))
	assert.Equal(t, "[████]", ProgressBar(100, 4))
	assert.Equal(t, "[████]", ProgressBar(140, 4))
	assert.Equal(t, "[░░░░]", ProgressBar(-5, 4))
}
