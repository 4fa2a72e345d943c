package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name       string
		violations []string
		want       string
	}{
		{
			name:       "正常系: 単一の違反",
			violations: []string{"The card number is invalid"},
			want:       "The card number is invalid",
		},
		{
			name:       "正常系: 複数の違反は改行で結合される",
			violations: []string{"The card number is invalid", "The Cvv is invalid"},
			want:       "The card number is invalid\nThe Cvv is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.violations)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	var err error = NewValidationError([]string{"The amount is invalid"})

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"The amount is invalid"}, validationErr.Violations)
}
