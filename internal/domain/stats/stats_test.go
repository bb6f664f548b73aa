package stats

import (
	"testing"

	"github.com/Ddemon26/recordkit/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PlayerStats_DeriveScenario(t *testing.T) {
	original := New(100, 50)

	boosted := original.WithHealth(120)

	assert.Equal(t, "PlayerStats(Health: 120, AttackPower: 50)", boosted.String())
	assert.Equal(t, "PlayerStats(Health: 100, AttackPower: 50)", original.String(),
		"derivation must not touch the source")
	assert.EqualValues(t, 120, boosted.Health())
	assert.EqualValues(t, 50, boosted.AttackPower())
}

func Test_PlayerStats_Equals(t *testing.T) {
	a := New(100, 50)
	b := New(100, 50)
	c := New(100, 51)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, a.Record().Hash(), b.Record().Hash())
}

func Test_PlayerStats_FromRecord(t *testing.T) {
	r := record.MustNew(Shape(), record.Int(80), record.Int(30))

	p, err := FromRecord(r)
	require.NoError(t, err)
	assert.EqualValues(t, 80, p.Health())

	other := record.MustNew(
		record.MustShape("Monster", record.Field{Name: "Health", Kind: record.KindInt}),
		record.Int(10),
	)
	_, err = FromRecord(other)
	assert.Error(t, err)
}

func Test_PlayerStats_ChainedDerivation(t *testing.T) {
	base := New(100, 50)
	tuned := base.WithHealth(150).WithAttackPower(75)

	assert.Equal(t, "PlayerStats(Health: 150, AttackPower: 75)", tuned.String())
	assert.Equal(t, "PlayerStats(Health: 100, AttackPower: 50)", base.String())
}
