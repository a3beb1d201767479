package gate

import (
	"sort"
	"strings"
	"sync"
)

// Normalize returns the canonical form of an identifier: whitespace trimmed
// and case-folded. An empty result means the identifier is malformed.
func Normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// PolicySet is the set of denied identifiers. Reads are concurrent; mutations
// take an exclusive lock, so every lookup observes a consistent snapshot of
// the set and a torn read cannot occur.
type PolicySet struct {
	mu     sync.RWMutex
	denied map[string]struct{}
}

// NewPolicySet creates a PolicySet seeded with the given identifiers.
func NewPolicySet(identifiers ...string) *PolicySet {
	s := &PolicySet{denied: make(map[string]struct{}, len(identifiers))}
	for _, identifier := range identifiers {
		s.Add(identifier)
	}
	return s
}

// Add marks an identifier as denied. Normalization happens here, never at the
// caller. Malformed identifiers are ignored.
func (s *PolicySet) Add(identifier string) {
	norm := Normalize(identifier)
	if norm == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied[norm] = struct{}{}
}

// Remove clears an identifier from the set. Removing an absent identifier is
// a no-op.
func (s *PolicySet) Remove(identifier string) {
	norm := Normalize(identifier)
	if norm == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.denied, norm)
}

// Contains reports whether the identifier is denied. The lookup is O(1) on
// the normalized form.
func (s *PolicySet) Contains(identifier string) bool {
	norm := Normalize(identifier)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.denied[norm]
	return ok
}

// Len returns the number of denied identifiers.
func (s *PolicySet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.denied)
}

// Snapshot returns the denied identifiers in sorted order.
func (s *PolicySet) Snapshot() []string {
	s.mu.RLock()
	identifiers := make([]string, 0, len(s.denied))
	for identifier := range s.denied {
		identifiers = append(identifiers, identifier)
	}
	s.mu.RUnlock()

	sort.Strings(identifiers)
	return identifiers
}
