//go:build unit

package catalog_test

import (
	"testing"

	"fieldbook/internal/domain/listing"
	"fieldbook/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := catalog.NewSeededStore()

	t.Run("get", func(t *testing.T) {
		l, ok := s.Get("1")
		require.True(t, ok)
		assert.Equal(t, "Green Arena", l.Name)

		_, ok = s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("search", func(t *testing.T) {
		got := s.Search("arena")
		require.Len(t, got, 2)
		assert.Equal(t, []string{"1", "8"}, []string{got[0].ID, got[1].ID})
		assert.Len(t, s.Search(""), len(catalog.SeedListings()))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		ls := s.List()
		ls[0].Name = "changed"
		l, _ := s.Get("1")
		assert.Equal(t, "Green Arena", l.Name)
	})

	t.Run("owned by", func(t *testing.T) {
		for _, l := range s.OwnedBy("owner1") {
			assert.Equal(t, "owner1", l.OwnerID)
		}
		assert.Len(t, s.OwnedBy("owner1"), 3)
	})

	t.Run("set promoted", func(t *testing.T) {
		l, ok := s.SetPromoted("5")
		require.True(t, ok)
		assert.True(t, l.IsPromoted)
		assert.Equal(t, listing.PromotionNone, l.PromotionLevel)

		_, ok = s.SetPromoted("missing")
		assert.False(t, ok)
	})
}
