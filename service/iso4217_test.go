package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitIsRecognisedCurrency(t *testing.T) {
	tests := []struct {
		code       string
		recognised bool
	}{
		{"GBP", true},
		{"USD", true},
		{"CAD", true},
		{"cad", true},
		{"Eur", true},
		{"", false},
		{"ZZZ", false},
		{"GB", false},
		{"GBPX", false},
		{"123", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.recognised, IsRecognisedCurrency(tt.code), "code %q", tt.code)
	}
}

func TestUnitNormaliseCurrency(t *testing.T) {
	assert.Equal(t, "GBP", NormaliseCurrency("gbp"))
	assert.Equal(t, "GBP", NormaliseCurrency("GBP"))
	assert.Equal(t, "ZZZ", NormaliseCurrency("zzz"))
	assert.Equal(t, "", NormaliseCurrency(""))
}
