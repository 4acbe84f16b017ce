// Package partset provides a partitioned set of search states.
package partset

import (
	"github.com/cespare/xxhash"
)

// Key is a comparable state with a stable byte encoding for partitioning.
type Key interface {
	comparable
	AppendBytes(buf []byte) []byte
}

type part[K Key] struct {
	m map[K]struct{}
}

// Set is a set of states partitioned by hash. Lookups are safe from any
// goroutine as long as no Add runs concurrently; Add is reserved for the
// single-threaded merge between search rounds, which is the only mutation
// window the solver has.
type Set[K Key] struct {
	parts []part[K]
}

// New returns an empty set with numPart partitions.
func New[K Key](numPart int) *Set[K] {
	s := &Set[K]{parts: make([]part[K], numPart)}
	for i := range s.parts {
		s.parts[i].m = make(map[K]struct{}, 1024)
	}
	return s
}

func (s *Set[K]) part(k K) *part[K] {
	var buf [24]byte
	return &s.parts[xxhash.Sum64(k.AppendBytes(buf[:0]))%uint64(len(s.parts))]
}

// Has reports whether k is in the set.
func (s *Set[K]) Has(k K) bool {
	_, ok := s.part(k).m[k]
	return ok
}

// Add inserts k.
func (s *Set[K]) Add(k K) {
	s.part(k).m[k] = struct{}{}
}

// Size returns the number of states across all partitions.
func (s *Set[K]) Size() int {
	size := 0
	for i := range s.parts {
		size += len(s.parts[i].m)
	}
	return size
}
