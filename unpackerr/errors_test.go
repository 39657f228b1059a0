package unpackerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/unpack/unpackerr"
)

func TestMismatchError(t *testing.T) {
	err := unpackerr.NewMismatch(3, "source exhausted before pattern")
	assert.Equal(t, unpackerr.TypeMismatch, err.Type())
	assert.Equal(t, 3, err.Depth)
	assert.Equal(t, "[MismatchError] source exhausted before pattern (depth 3)", err.Error())
}

func TestMismatchErrorAs(t *testing.T) {
	var err error = unpackerr.NewMismatch(5, "too many")
	var mm *unpackerr.MismatchError
	assert.True(t, errors.As(err, &mm))
	assert.Equal(t, 5, mm.Depth)
}

func TestUsageError(t *testing.T) {
	err := unpackerr.NewUsageError("pattern has more than one variable middle")
	assert.Equal(t, unpackerr.TypeUsage, err.Type())
	assert.Equal(t, "[UsageError] pattern has more than one variable middle", err.Error())
}

func TestSyntaxError(t *testing.T) {
	err := unpackerr.NewSyntaxError(12, "unrecognized pattern element \"&\"")
	assert.Equal(t, unpackerr.TypeSyntax, err.Type())
	assert.Equal(t, 12, err.Pos)
	assert.Contains(t, err.Error(), "[SyntaxError] pos 12:")
}

func TestErrorsAreUnpackErrors(t *testing.T) {
	for _, err := range []unpackerr.UnpackError{
		unpackerr.NewMismatch(0, "m"),
		unpackerr.NewUsageError("u"),
		unpackerr.NewSyntaxError(0, "s"),
	} {
		assert.NotEmpty(t, err.Error())
		assert.NotEmpty(t, string(err.Type()))
	}
}
