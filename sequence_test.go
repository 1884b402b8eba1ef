package tinybt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tinybt"
)

func TestSequence_AllSuccess(t *testing.T) {
	first := alwaysSuccess[struct{}, int, string](1)
	second := alwaysSuccess[struct{}, int, string](2)

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	value, ok := res.Success()
	require.True(t, ok, "expected success, got %s", res)
	assert.Equal(t, 2, value, "sequence carries the last child's value")
	assert.Equal(t, 1, first.ticks)
	assert.Equal(t, 1, second.ticks)
}

func TestSequence_FailureShortCircuits(t *testing.T) {
	first := alwaysFailure[struct{}, int, string]("x")
	second := alwaysSuccess[struct{}, int, string](2)

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	reason, ok := res.Failure()
	require.True(t, ok, "expected failure, got %s", res)
	assert.Equal(t, "x", reason)
	assert.Equal(t, 1, first.ticks)
	assert.Equal(t, 0, second.ticks, "children after the failure must not tick this round")
}

func TestSequence_FailureMidway(t *testing.T) {
	first := alwaysSuccess[struct{}, int, string](1)
	second := alwaysFailure[struct{}, int, string]("mid")
	third := alwaysSuccess[struct{}, int, string](3)

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second, third))
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	reason, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "mid", reason)
	assert.Equal(t, 1, first.ticks, "children before the failure tick exactly once")
	assert.Equal(t, 1, second.ticks)
	assert.Equal(t, 0, third.ticks)
}

func TestSequence_RunningShortCircuits(t *testing.T) {
	first := alwaysSuccess[struct{}, int, string](1)
	second := alwaysRunning[struct{}, int, string]()
	third := alwaysSuccess[struct{}, int, string](3)

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second, third))
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	assert.Equal(t, tinybt.StatusRunning, res.Status())
	assert.Equal(t, 0, third.ticks, "running short-circuits exactly like a decisive failure")
}

func TestSequence_IdleChildSkipped(t *testing.T) {
	first := alwaysIdle[struct{}, int, string]()
	second := alwaysSuccess[struct{}, int, string](2)

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	value, ok := res.Success()
	require.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, second.ticks)
}

func TestSequence_RestartsFromFirstChild(t *testing.T) {
	// No running-child index is retained: a re-tick after Running starts
	// over at the first child.
	first := alwaysSuccess[struct{}, int, string](1)
	second := alwaysRunning[struct{}, int, string]()

	seq, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](first, second))
	require.NoError(t, err)

	seq.Tick(struct{}{})
	seq.Tick(struct{}{})

	assert.Equal(t, 2, first.ticks)
	assert.Equal(t, 2, second.ticks)
}

func TestSequence_CombineOption(t *testing.T) {
	first := alwaysSuccess[struct{}, []string, string]([]string{"a"})
	second := alwaysSuccess[struct{}, []string, string]([]string{"b", "c"})

	seq, err := tinybt.NewSequence(
		tinybt.Children[struct{}, []string, string](first, second),
		tinybt.WithSequenceCombine(func(acc *[]string, next []string) {
			*acc = append(*acc, next...)
		}),
	)
	require.NoError(t, err)

	res := seq.Tick(struct{}{})

	value, ok := res.Success()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, value, "combine folds in tick order")
}

func TestNewSequence_ConstructionErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := tinybt.NewSequence[struct{}, int, string](nil)
		assert.ErrorIs(t, err, tinybt.ErrNoChildren)
	})

	t.Run("NilChild", func(t *testing.T) {
		_, err := tinybt.NewSequence(tinybt.Children[struct{}, int, string](
			alwaysSuccess[struct{}, int, string](1),
			nil,
		))
		assert.ErrorIs(t, err, tinybt.ErrNilChild)
	})
}

func TestNewSequence_ChildListIsCopied(t *testing.T) {
	children := tinybt.Children[struct{}, int, string](
		alwaysSuccess[struct{}, int, string](1),
	)
	seq, err := tinybt.NewSequence(children)
	require.NoError(t, err)

	// Mutating the caller's slice must not alter the assembled tree.
	children[0] = alwaysFailure[struct{}, int, string]("swapped")

	res := seq.Tick(struct{}{})
	value, ok := res.Success()
	require.True(t, ok)
	assert.Equal(t, 1, value)
}
