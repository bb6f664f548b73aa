package trade

import (
	"testing"
	"time"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Transaction_Fields(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	tx := NewTransaction("Iron Sword", 120, at)

	assert.Equal(t, "Iron Sword", tx.Item())
	assert.EqualValues(t, 120, tx.Price())
	assert.True(t, tx.ExecutedAt().Equal(at))

	id, err := tx.ID()
	require.NoError(t, err)
	assert.False(t, id.IsZero())
}

func Test_Transaction_Equals(t *testing.T) {
	at := time.Now()
	a := NewTransaction("Potion", 10, at)
	b := NewTransaction("Potion", 10, at)

	// Fresh transactions carry fresh IDs, so they are distinct values.
	assert.False(t, a.Equals(b))

	// A round-trip through FromRecord preserves equality.
	same, err := FromRecord(a.Record())
	require.NoError(t, err)
	assert.True(t, a.Equals(same))
}

func Test_Ledger_AppendOnlyHistory(t *testing.T) {
	ledger := NewLedger()
	now := time.Now()

	first := NewTransaction("Sword", 120, now)
	second := NewTransaction("Shield", 80, now.Add(time.Minute))

	assert.Equal(t, 0, ledger.Record(first))
	assert.Equal(t, 1, ledger.Record(second))
	assert.Equal(t, 2, ledger.Len())

	got, err := ledger.At(0)
	require.NoError(t, err)
	assert.True(t, got.Equals(first))

	_, err = ledger.At(2)
	var notFound *collection.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Ledger_IterationAndVolume(t *testing.T) {
	ledger := NewLedger()
	now := time.Now()

	prices := []int64{120, 80, 50}
	for _, p := range prices {
		ledger.Record(NewTransaction("Item", p, now))
	}

	var seen []int64
	for _, tx := range ledger.All() {
		seen = append(seen, tx.Price())
	}
	assert.Equal(t, prices, seen, "history iterates in insertion order")
	assert.EqualValues(t, 250, ledger.Volume())
}
