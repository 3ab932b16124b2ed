package usecase

import (
	"strings"
	"sync"

	"github.com/nftique/storefront/domain/marketplace"
)

// viewStore holds the snapshot a screen renders from. Loads are
// epoch-guarded: Begin hands out a ticket, Apply only installs the
// result if no newer load started in the meantime, so a slow response
// can never clobber a fresher one.
type viewStore struct {
	mu    sync.RWMutex
	epoch uint64
	views []marketplace.View
}

func newViewStore() *viewStore {
	return &viewStore{}
}

func (s *viewStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	return s.epoch
}

// Apply installs views and reports whether they were accepted.
func (s *viewStore) Apply(epoch uint64, views []marketplace.View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	s.views = views
	return true
}

func (s *viewStore) Snapshot() []marketplace.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.views
}

// Filter returns the views matching query, or the full snapshot when
// query is blank. Matching is case-insensitive.
func (s *viewStore) Filter(query string) []marketplace.View {
	views := s.Snapshot()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return views
	}
	matched := make([]marketplace.View, 0, len(views))
	for _, v := range views {
		if v.Matches(q) {
			matched = append(matched, v)
		}
	}
	return matched
}
