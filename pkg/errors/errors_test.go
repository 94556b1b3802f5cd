package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &ErrNotFound{Resource: "order", ID: "abc"}, "order not found: abc"},
		{"validation with message", &ErrValidation{Message: "bad id"}, "bad id"},
		{"validation without message", &ErrValidation{}, "validation failed"},
		{"confirmation required", &ErrConfirmationRequired{Resource: "order", ID: "abc"}, "deleting order abc requires confirmation"},
		{"nothing to export", &ErrNothingToExport{}, "nothing to export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrPersistenceWraps(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := &ErrPersistence{Op: "insert", Err: cause}

	assert.Equal(t, "persistence failure during insert: connection refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}
