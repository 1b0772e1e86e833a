package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	cause := os.ErrNotExist
	err := NewNotFound("outputs.json", cause)

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindMalformedInput))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "outputs.json")
}

func TestKindMatchingForeignError(t *testing.T) {
	assert.False(t, IsKind(stderrors.New("plain"), KindWriteFailure))
	assert.False(t, IsKind(nil, KindNotFound))
}

func TestValidationFailureHasNoPath(t *testing.T) {
	err := NewValidationFailure("Inventory validation failed")
	assert.Equal(t, "Inventory validation failed", err.Error())
	assert.Nil(t, stderrors.Unwrap(err))
}
