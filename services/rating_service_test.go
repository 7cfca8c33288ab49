package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRatingInput(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		comment string
		wantErr bool
	}{
		{"minimum value", 1, "", false},
		{"maximum value", 5, "tasty", false},
		{"below scale", 0, "", true},
		{"above scale", 6, "", true},
		{"negative", -3, "", true},
		{"comment at limit", 3, strings.Repeat("a", 1000), false},
		{"comment too long", 3, strings.Repeat("a", 1001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatingInput(tt.value, tt.comment)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
