package tinybt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tinybt"
)

func TestFallback_FirstSuccessShortCircuits(t *testing.T) {
	first := alwaysFailure[struct{}, int, string]("x")
	second := alwaysSuccess[struct{}, int, string](2)
	third := alwaysSuccess[struct{}, int, string](3)

	fb, err := tinybt.NewFallback(tinybt.Children[struct{}, int, string](first, second, third))
	require.NoError(t, err)

	res := fb.Tick(struct{}{})

	value, ok := res.Success()
	require.True(t, ok, "expected success, got %s", res)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, first.ticks)
	assert.Equal(t, 1, second.ticks)
	assert.Equal(t, 0, third.ticks, "children after the success must not tick this round")
}

func TestFallback_AllFailure(t *testing.T) {
	first := alwaysFailure[struct{}, int, string]("a")
	second := alwaysFailure[struct{}, int, string]("b")

	fb, err := tinybt.NewFallback(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	res := fb.Tick(struct{}{})

	reason, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "b", reason, "fallback carries the last child's reason")
	assert.Equal(t, 1, first.ticks)
	assert.Equal(t, 1, second.ticks)
}

func TestFallback_RunningShortCircuits(t *testing.T) {
	first := alwaysFailure[struct{}, int, string]("x")
	second := alwaysRunning[struct{}, int, string]()
	third := alwaysFailure[struct{}, int, string]("y")

	fb, err := tinybt.NewFallback(tinybt.Children[struct{}, int, string](first, second, third))
	require.NoError(t, err)

	res := fb.Tick(struct{}{})

	assert.Equal(t, tinybt.StatusRunning, res.Status())
	assert.Equal(t, 0, third.ticks)
}

func TestFallback_IdleChildSkipped(t *testing.T) {
	first := alwaysIdle[struct{}, int, string]()
	second := alwaysFailure[struct{}, int, string]("x")

	fb, err := tinybt.NewFallback(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	res := fb.Tick(struct{}{})

	reason, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "x", reason)
}

func TestFallback_CombineOption(t *testing.T) {
	first := alwaysFailure[struct{}, int, []string]([]string{"a"})
	second := alwaysFailure[struct{}, int, []string]([]string{"b"})

	fb, err := tinybt.NewFallback(
		tinybt.Children[struct{}, int, []string](first, second),
		tinybt.WithFallbackCombine(func(acc *[]string, next []string) {
			*acc = append(*acc, next...)
		}),
	)
	require.NoError(t, err)

	res := fb.Tick(struct{}{})

	reason, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, reason, "combine folds in tick order")
}

func TestNewFallback_ConstructionErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := tinybt.NewFallback[struct{}, int, string](nil)
		assert.ErrorIs(t, err, tinybt.ErrNoChildren)
	})

	t.Run("NilChild", func(t *testing.T) {
		_, err := tinybt.NewFallback(tinybt.Children[struct{}, int, string](nil))
		assert.ErrorIs(t, err, tinybt.ErrNilChild)
	})
}
