package harness

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Runner_StartsEachScenarioOnce(t *testing.T) {
	runner := NewRunner()
	var calls atomic.Int32

	require.NoError(t, runner.Register(NewScenario("counting", func(context.Context) error {
		calls.Add(1)
		return nil
	})))

	require.NoError(t, runner.Run(context.Background()))
	require.NoError(t, runner.Run(context.Background()), "second run is a no-op")
	assert.EqualValues(t, 1, calls.Load())
}

func Test_Runner_SequentialOrder(t *testing.T) {
	runner := NewRunner()
	var order []string

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, runner.Register(NewScenario(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})))
	}

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, []string{"a", "b", "c"}, runner.Names())
}

func Test_Runner_DuplicateName(t *testing.T) {
	runner := NewRunner()
	noop := func(context.Context) error { return nil }

	require.NoError(t, runner.Register(NewScenario("demo", noop)))
	assert.Error(t, runner.Register(NewScenario("demo", noop)))
}

func Test_Runner_FailureStopsSequentialRun(t *testing.T) {
	runner := NewRunner()
	boom := errors.New("boom")
	var ranLast bool

	require.NoError(t, runner.Register(NewScenario("fails", func(context.Context) error { return boom })))
	require.NoError(t, runner.Register(NewScenario("after", func(context.Context) error {
		ranLast = true
		return nil
	})))

	err := runner.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fails")
	assert.False(t, ranLast)
}

func Test_Runner_RunParallel(t *testing.T) {
	runner := NewRunner()
	var calls atomic.Int32

	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, runner.Register(NewScenario(name, func(context.Context) error {
			calls.Add(1)
			return nil
		})))
	}

	require.NoError(t, runner.RunParallel(context.Background()))
	assert.EqualValues(t, 4, calls.Load())
}

func Test_Runner_RunOne(t *testing.T) {
	runner := NewRunner()
	var calls atomic.Int32

	require.NoError(t, runner.Register(NewScenario("only", func(context.Context) error {
		calls.Add(1)
		return nil
	})))

	require.NoError(t, runner.RunOne(context.Background(), "only"))
	require.NoError(t, runner.RunOne(context.Background(), "only"), "repeat start is a no-op")
	assert.EqualValues(t, 1, calls.Load())

	assert.Error(t, runner.RunOne(context.Background(), "missing"))
}
