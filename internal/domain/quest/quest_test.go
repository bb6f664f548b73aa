package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Quest_Advance(t *testing.T) {
	q := New("Slay the Dragon", 500)
	assert.Equal(t, StageNotStarted, q.Stage())

	active, err := q.Advance()
	require.NoError(t, err)
	assert.Equal(t, StageActive, active.Stage())
	assert.Equal(t, StageNotStarted, q.Stage(), "source quest is untouched")

	done, err := active.Advance()
	require.NoError(t, err)
	assert.Equal(t, StageComplete, done.Stage())

	_, err = done.Advance()
	assert.Error(t, err, "completed quests cannot advance")
}

func Test_Quest_Rendering(t *testing.T) {
	q := New("Fetch Herbs", 25)
	assert.Equal(t, `Quest(Title: "Fetch Herbs", Stage: not_started, RewardGold: 25)`, q.String())
}

func Test_Quest_Equals(t *testing.T) {
	a := New("Fetch Herbs", 25)
	b := New("Fetch Herbs", 25)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(a.WithStage(StageActive)))
}
