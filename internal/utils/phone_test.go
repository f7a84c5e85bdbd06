package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
		wantErr  bool
	}{
		{"national with trunk zero", "011 4555-1234", "541145551234", false},
		{"international plus", "+54 9 351 555 1234", "5493515551234", false},
		{"international double zero", "0054 11 4555 1234", "541145551234", false},
		{"already normalized", "541145551234", "541145551234", false},
		{"local without prefix", "1145551234", "541145551234", false},
		{"letters", "11-CALL-NOW", "", true},
		{"too short", "123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
