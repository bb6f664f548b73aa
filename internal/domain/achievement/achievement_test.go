package achievement

import (
	"testing"
	"time"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Board_UnlockOnce(t *testing.T) {
	board := NewBoard()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, board.Unlock(New("First Blood", 10, at)))

	err := board.Unlock(New("First Blood", 10, at.Add(time.Hour)))
	var dup *collection.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "First Blood", dup.Key)

	got, err := board.Get("First Blood")
	require.NoError(t, err)
	assert.True(t, got.UnlockedAt().Equal(at), "first unlock wins")
}

func Test_Board_TotalPoints(t *testing.T) {
	board := NewBoard()
	now := time.Now()

	require.NoError(t, board.Unlock(New("Explorer", 5, now)))
	require.NoError(t, board.Unlock(New("Collector", 15, now)))

	assert.EqualValues(t, 20, board.TotalPoints())
	assert.Equal(t, 2, board.Len())
}

func Test_Achievement_Rendering(t *testing.T) {
	a := New("Explorer", 5, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	assert.Equal(t,
		`Achievement(Name: "Explorer", Points: 5, UnlockedAt: 2024-01-02T03:04:05Z)`,
		a.String(),
	)
}
