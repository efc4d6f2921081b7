package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.0000034, "$0.000003"},
		{0.5, "$0.500000"},
		{45210.7, "$45,210.7"},
		{1, "$1"},
		{1234567.891234, "$1,234,567.891"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), "price %v", tt.in)
	}
}

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2_500_000_000, "$2.50B"},
		{1_200_000_000_000, "$1.20T"},
		{3_450_000, "$3.45M"},
		{999_999, "$999,999"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMarketCap(tt.in), "market cap %v", tt.in)
	}
}

func TestFormatChange(t *testing.T) {
	s, trend := FormatChange(1.256)
	assert.Equal(t, "1.26%", s)
	assert.Equal(t, "up", trend)

	s, trend = FormatChange(-0.5)
	assert.Equal(t, "-0.50%", s)
	assert.Equal(t, "down", trend)

	_, trend = FormatChange(0)
	assert.Equal(t, "down", trend)
}
