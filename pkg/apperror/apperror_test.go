package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "validation",
			err:      Validation("bad input: %d", 42),
			expected: KindValidation,
		},
		{
			name:     "state",
			err:      State("cannot %s an event in status %s", "lock", "DRAFT"),
			expected: KindState,
		},
		{
			name:     "notFound",
			err:      NotFound("event not found"),
			expected: KindNotFound,
		},
		{
			name:     "wrappedErrorKeepsItsKind",
			err:      fmt.Errorf("finalize failed: %w", State("wrong status")),
			expected: KindState,
		},
		{
			name:     "plainErrorIsInternal",
			err:      errors.New("connection refused"),
			expected: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorMessageFormatting(t *testing.T) {
	err := Validation("expected %d picks, got %d", 3, 2)
	assert.Equal(t, "expected 3 picks, got 2", err.Error())
}
