package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(StationNotFound, "no station for city")
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, StationNotFound, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(NoDataInRange, "empty partition")
	wrapped := fmt.Errorf("query failed: %w", inner)

	assert.True(t, Is(wrapped, NoDataInRange))
	assert.False(t, Is(wrapped, DownstreamQueryError))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("tcp reset")
	err := Wrap(DownstreamQueryError, "archive query failed", cause)

	assert.True(t, Is(err, DownstreamQueryError))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "archive query failed")
	assert.Contains(t, err.Error(), "tcp reset")
}
