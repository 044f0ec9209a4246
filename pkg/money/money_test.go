package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rxbryan/galoy/pkg/money"
)

func TestMinorToMajor(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		expected string
	}{
		{"whole dollars", 1200, "12"},
		{"with cents", 1235, "12.35"},
		{"zero", 0, "0"},
		{"negative", -1010, "-10.1"},
		{"single cent", 1, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.MinorToMajor(tt.minor).String())
		})
	}
}

func TestMajorToMinor_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name     string
		major    float64
		expected int64
	}{
		{"exact", 12.34, 1234},
		{"half rounds up", 12.345, 1235},
		{"below half rounds down", 12.344, 1234},
		{"negative half rounds away", -12.345, -1235},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.MajorToMinor(tt.major))
		})
	}
}

func TestApplyRatio(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		ratio    float64
		expected int64
	}{
		{"typical deposit fee", 20000, 0.001, 20},
		{"rounds half up", 2500, 0.001, 3},
		{"rounds down", 2400, 0.001, 2},
		{"zero ratio", 20000, 0, 0},
		{"zero amount", 0, 0.001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, money.ApplyRatio(tt.amount, tt.ratio))
		})
	}
}
