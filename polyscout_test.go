package polyscout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/polyscout"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := polyscout.Errorf(polyscout.ENOTFOUND, "feature %q not found", "test")

	assert.Equal(t, polyscout.ENOTFOUND, polyscout.ErrorCode(err))
	assert.Equal(t, "feature \"test\" not found", polyscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, polyscout.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, polyscout.ErrorMessage(nil))
}
