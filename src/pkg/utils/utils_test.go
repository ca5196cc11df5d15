package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{8, "8m"},
		{59, "59m"},
		{60, "1h 0m"},
		{75, "1h 15m"},
		{135, "2h 15m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatDuration(tc.minutes))
	}
}

func TestISTNowOffset(t *testing.T) {
	now := ISTNow()
	_, offset := now.Zone()
	assert.Equal(t, 5*3600+30*60, offset)
}

func TestFormatISTTimestamp(t *testing.T) {
	utc := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	formatted := FormatISTTimestamp(utc)
	assert.Equal(t, "2025-03-01 17:30:00 IST", formatted)
}

func TestConvertString(t *testing.T) {
	assert.Equal(t, "plain", ConvertString("plain"))
	assert.Equal(t, `{"a":1}`, ConvertString(map[string]int{"a": 1}))
	assert.Equal(t, "42", ConvertString(42))
}

func TestConvertInt(t *testing.T) {
	assert.Equal(t, 7, ConvertInt(7))
	assert.Equal(t, 7, ConvertInt(int64(7)))
	assert.Equal(t, 7, ConvertInt("7"))
	assert.Equal(t, 0, ConvertInt("not a number"))
}
