package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testObject struct {
	name  string
	count int
	ready bool
}

func withName(name string) Option[testObject] {
	return func(o *testObject) {
		o.name = name
	}
}

func withCount(count int) Option[testObject] {
	return func(o *testObject) {
		o.count = count
	}
}

func TestApply(t *testing.T) {
	object := Apply(&testObject{name: "default"}, []Option[testObject]{withName("custom"), nil, withCount(3)}, func(o *testObject) {
		o.ready = o.count > 0
	})

	require.Equal(t, "custom", object.name)
	require.Equal(t, 3, object.count)
	require.True(t, object.ready)
}

func TestApplyKeepsDefaults(t *testing.T) {
	object := Apply(&testObject{name: "default"}, nil)

	require.Equal(t, "default", object.name)
	require.Zero(t, object.count)
}
