package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBusinessNumberFormat(t *testing.T) {
	tests := []struct {
		name           string
		businessNumber string
		want           bool
	}{
		{name: "Valid business number", businessNumber: "1248100998", want: true},
		{name: "Wrong check digit", businessNumber: "1248100997", want: false},
		{name: "Too short", businessNumber: "124810099", want: false},
		{name: "Too long", businessNumber: "12481009981", want: false},
		{name: "With hyphen", businessNumber: "124-81-009", want: false},
		{name: "Non-numeric", businessNumber: "12481009ab", want: false},
		{name: "Empty", businessNumber: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBusinessNumberFormat(tt.businessNumber))
		})
	}
}
