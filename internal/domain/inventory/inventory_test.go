package inventory

import (
	"testing"

	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Item_Rendering(t *testing.T) {
	sword := NewItem("Iron Sword", RarityCommon, 12, 3.5)

	assert.Equal(t,
		`Item(Name: "Iron Sword", Rarity: common, Damage: 12, Weight: 3.5)`,
		sword.String(),
	)
}

func Test_Item_Derive(t *testing.T) {
	sword := NewItem("Iron Sword", RarityCommon, 12, 3.5)

	enchanted := sword.WithDamage(20).WithRarity(RarityRare)

	assert.EqualValues(t, 20, enchanted.Damage())
	assert.Equal(t, RarityRare, enchanted.Rarity())
	assert.EqualValues(t, 12, sword.Damage(), "source item is untouched")
	assert.Equal(t, RarityCommon, sword.Rarity())
	assert.Equal(t, sword.Name(), enchanted.Name(), "unlisted fields carry over")
}

func Test_Bag_RoundTrip(t *testing.T) {
	bag := NewBag()
	id := values.MustNewItemID("sword-01")
	sword := NewItem("Iron Sword", RarityCommon, 12, 3.5)

	require.NoError(t, bag.Add(id, sword))

	got, err := bag.Get(id)
	require.NoError(t, err)
	assert.True(t, got.Equals(sword))

	removed, err := bag.Remove(id)
	require.NoError(t, err)
	assert.True(t, removed.Equals(sword))

	_, err = bag.Get(id)
	var notFound *collection.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func Test_Bag_DuplicatePolicies(t *testing.T) {
	id := values.MustNewItemID("slot-1")
	first := NewItem("Dagger", RarityCommon, 4, 0.5)
	second := NewItem("Axe", RarityUncommon, 9, 4)

	t.Run("default bag overwrites", func(t *testing.T) {
		bag := NewBag()
		require.NoError(t, bag.Add(id, first))
		require.NoError(t, bag.Add(id, second))

		got, err := bag.Get(id)
		require.NoError(t, err)
		assert.True(t, got.Equals(second))
		assert.Equal(t, 1, bag.Len())
	})

	t.Run("strict bag rejects", func(t *testing.T) {
		bag := NewStrictBag()
		require.NoError(t, bag.Add(id, first))

		err := bag.Add(id, second)
		var dup *collection.DuplicateKeyError
		require.ErrorAs(t, err, &dup)

		got, err := bag.Get(id)
		require.NoError(t, err)
		assert.True(t, got.Equals(first))
	})
}

func Test_Bag_IterationOrder(t *testing.T) {
	bag := NewBag()
	ids := []string{"c", "a", "b"}
	for _, s := range ids {
		require.NoError(t, bag.Add(values.MustNewItemID(s), NewItem(s, RarityCommon, 1, 1)))
	}

	var seen []string
	for id := range bag.All() {
		seen = append(seen, id.String())
	}
	assert.Equal(t, ids, seen)
}
