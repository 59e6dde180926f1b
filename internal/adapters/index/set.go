package index

import "go.trai.ch/p2local/internal/core/domain"

// gavSet is a set of GAVs that remembers insertion order.
type gavSet struct {
	order []domain.GAV
	pos   map[domain.GAV]int
}

func newGAVSet() *gavSet {
	return &gavSet{pos: make(map[domain.GAV]int)}
}

func (s *gavSet) add(g domain.GAV) bool {
	if _, ok := s.pos[g]; ok {
		return false
	}
	s.pos[g] = len(s.order)
	s.order = append(s.order, g)
	return true
}

func (s *gavSet) remove(g domain.GAV) bool {
	i, ok := s.pos[g]
	if !ok {
		return false
	}
	delete(s.pos, g)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.pos[s.order[j]] = j
	}
	return true
}

func (s *gavSet) contains(g domain.GAV) bool {
	_, ok := s.pos[g]
	return ok
}

func (s *gavSet) len() int {
	return len(s.order)
}

func (s *gavSet) slice() []domain.GAV {
	out := make([]domain.GAV, len(s.order))
	copy(out, s.order)
	return out
}

func (s *gavSet) clone() *gavSet {
	c := &gavSet{order: s.slice(), pos: make(map[domain.GAV]int, len(s.pos))}
	for g, i := range s.pos {
		c.pos[g] = i
	}
	return c
}
