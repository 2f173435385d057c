package finder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphfinder/core"
)

func TestPositionCache_FirstWriterWins(t *testing.T) {
	c := newPositionCache()
	got := c.store("A", Position{1, 2})
	require.Equal(t, Position{1, 2}, got)

	got = c.store("A", Position{9, 9})
	require.Equal(t, Position{1, 2}, got, "existing entry is never overwritten")

	p, ok := c.load("A")
	require.True(t, ok)
	require.Equal(t, Position{1, 2}, p)
	require.Equal(t, 1, c.len())
}

func TestPositionOf_UnknownNodeLeavesCacheEmpty(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	env, err := NewEnvironment(g)
	require.NoError(t, err)

	_, err = env.PositionOf("ghost")
	require.ErrorIs(t, err, ErrUnknownNode)
	require.Zero(t, env.cache.len())

	_, err = env.PositionOf("A")
	require.NoError(t, err)
	require.Equal(t, 1, env.cache.len())
	_, ok := env.cache.load("ghost")
	require.False(t, ok)
}

func TestTranslate(t *testing.T) {
	require.NoError(t, translate(nil, "A"))
	require.ErrorIs(t, translate(core.ErrVertexNotFound, "A"), ErrUnknownNode)
	require.ErrorIs(t, translate(core.ErrEmptyVertexID, ""), ErrUnknownNode)

	err := translate(core.ErrAttributeNotNumeric, "A")
	require.ErrorIs(t, err, core.ErrAttributeNotNumeric)
	require.False(t, isUnknown(err))
}
