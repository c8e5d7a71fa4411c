package ierrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSentinel = New("sentinel")

func TestWrap(t *testing.T) {
	err := Wrap(errSentinel, "outer")
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "outer: sentinel", err.Error())

	require.NoError(t, Wrap(nil, "outer"))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(Wrapf(errSentinel, "layer %d", 1), "layer %d", 2)
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "layer 2: layer 1: sentinel", err.Error())
}

func TestErrorf(t *testing.T) {
	err := Errorf("failed with %w", errSentinel)
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "failed with sentinel", err.Error())
}

func TestWithStack(t *testing.T) {
	err := WithStack(errSentinel)
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "sentinel", err.Error())
	require.Contains(t, fmt.Sprintf("%+v", err), "TestWithStack")

	require.NoError(t, WithStack(nil))
}

func TestNewIsDistinct(t *testing.T) {
	require.False(t, Is(New("sentinel"), New("other")))
}
