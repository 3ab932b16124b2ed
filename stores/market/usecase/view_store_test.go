package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nftique/storefront/domain/marketplace"
)

func TestViewStore_epochGuard(t *testing.T) {
	req := require.New(t)
	s := newViewStore()

	first := s.Begin()
	second := s.Begin()

	// the slower, older load must be rejected
	req.True(s.Apply(second, []marketplace.View{marketplace.TokenView{Name: "fresh"}}))
	req.False(s.Apply(first, []marketplace.View{marketplace.TokenView{Name: "stale"}}))

	snapshot := s.Snapshot()
	req.Len(snapshot, 1)
	req.Equal("fresh", snapshot[0].(marketplace.TokenView).Name)
}

func TestViewStore_filter(t *testing.T) {
	req := require.New(t)
	s := newViewStore()
	epoch := s.Begin()
	s.Apply(epoch, []marketplace.View{
		marketplace.TokenView{Name: "Cosmic Cat", Description: "a cat in space"},
		marketplace.TokenView{Name: "Moon Dog", Description: "a dog on the moon"},
		marketplace.TokenView{Name: "Plain", Description: "mentions cats too"},
	})

	req.Len(s.Filter(""), 3)
	req.Len(s.Filter("   "), 3)

	// case-insensitive, matches name or description
	matched := s.Filter("CAT")
	req.Len(matched, 2)
	req.Equal("Cosmic Cat", matched[0].(marketplace.TokenView).Name)
	req.Equal("Plain", matched[1].(marketplace.TokenView).Name)

	// filtering is derived from the snapshot, repeating it is stable
	req.Equal(matched, s.Filter("cat"))

	req.Empty(s.Filter("dinosaur"))
}
