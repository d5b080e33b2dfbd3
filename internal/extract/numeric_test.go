package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"4500", 4500, true},
		{"4,500", 4500, true},
		{"1,234,567", 1234567, true},
		{"12,3", 12.3, true},
		{"3.20", 3.2, true},
		{"25.4", 25.4, true},
		{"9,900원", 9900, true},
		{"₩1,000", 1000, true},
		{"", 0, false},
		{"원", 0, false},
		{"1,2,3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.2, Round2(3.2000001))
	assert.Equal(t, 12.35, Round2(12.345001))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}
