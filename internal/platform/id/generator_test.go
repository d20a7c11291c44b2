package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()
	a, err := gen.NewID()
	require.NoError(t, err)
	b, err := gen.NewID()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())
}

func TestStaticGenerator(t *testing.T) {
	gen := &StaticGenerator{IDs: []string{"run-1"}}
	got, err := gen.NewID()
	require.NoError(t, err)
	require.Equal(t, "run-1", got)

	_, err = gen.NewID()
	require.Error(t, err)
}
