package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_RoundTrip(t *testing.T) {
	store := NewStore[string, int](Reject)

	require.NoError(t, store.Add("sword", 12))

	got, err := store.Get("sword")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	removed, err := store.Remove("sword")
	require.NoError(t, err)
	assert.Equal(t, 12, removed)

	_, err = store.Get("sword")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "sword", notFound.Key)
}

func Test_Store_DuplicatePolicies(t *testing.T) {
	t.Run("reject fails with DuplicateKeyError", func(t *testing.T) {
		store := NewStore[string, int](Reject)
		require.NoError(t, store.Add("k", 1))

		err := store.Add("k", 2)
		var dup *DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "k", dup.Key)

		// The stored value is untouched by the failed Add.
		got, err := store.Get("k")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("overwrite replaces silently", func(t *testing.T) {
		store := NewStore[string, int](Overwrite)
		require.NoError(t, store.Add("k", 1))
		require.NoError(t, store.Add("k", 2))

		got, err := store.Get("k")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, 1, store.Len())
	})
}

func Test_Store_RemoveAbsent(t *testing.T) {
	store := NewStore[int, string](Overwrite)

	_, err := store.Remove(7)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Store_IterationOrderIsStable(t *testing.T) {
	store := NewStore[string, int](Overwrite)
	keys := []string{"c", "a", "b", "e", "d"}
	for i, k := range keys {
		require.NoError(t, store.Add(k, i))
	}

	collect := func() []string {
		var out []string
		for k := range store.All() {
			out = append(out, k)
		}
		return out
	}

	first := collect()
	assert.Equal(t, keys, first, "iteration follows insertion order")
	assert.Equal(t, first, collect(), "sequence is restartable with the same order")

	// Overwriting keeps the key's original position.
	require.NoError(t, store.Add("a", 99))
	assert.Equal(t, keys, collect())

	// Removal drops the key without disturbing the rest.
	_, err := store.Remove("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "e", "d"}, collect())
}

func Test_Store_IterationEarlyStop(t *testing.T) {
	store := NewStore[int, int](Overwrite)
	for i := 0; i < 10; i++ {
		require.NoError(t, store.Add(i, i))
	}

	var seen int
	for range store.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func Test_Log_AppendOnly(t *testing.T) {
	log := NewLog[string]()

	assert.Equal(t, 0, log.Append("first"))
	assert.Equal(t, 1, log.Append("second"))
	assert.Equal(t, 2, log.Append("third"))
	assert.Equal(t, 3, log.Len())

	got, err := log.At(1)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = log.At(3)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = log.At(-1)
	assert.ErrorAs(t, err, &notFound)
}

func Test_Log_IterationIsInsertionOrder(t *testing.T) {
	log := NewLog[int]()
	for i := 0; i < 5; i++ {
		log.Append(i * 10)
	}

	var indices []int
	var values []int
	for i, v := range log.All() {
		indices = append(indices, i)
		values = append(values, v)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, indices)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, values)
}
