package workers

import "sync"

// seenEvents is a bounded set of event ids; the oldest id is evicted first.
type seenEvents struct {
	mu    sync.Mutex
	limit int
	ids   map[string]struct{}
	order []string
}

func newSeenEvents(limit int) *seenEvents {
	return &seenEvents{
		limit: limit,
		ids:   make(map[string]struct{}, limit),
	}
}

// add reports false when id was already recorded. Empty ids are never deduped.
func (s *seenEvents) add(id string) bool {
	if s == nil || id == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	if len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.ids, oldest)
	}
	return true
}
