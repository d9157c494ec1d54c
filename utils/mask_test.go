package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCard(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"plain number", "4111111111111234", "**** **** **** 1234"},
		{"spaced number", "4111 1111 1111 9876", "**** **** **** 9876"},
		{"dashed number", "4111-1111-1111-5555", "**** **** **** 5555"},
		{"too short", "123", "**** **** **** ****"},
		{"empty", "", "**** **** **** ****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCard(tt.number))
		})
	}
}
