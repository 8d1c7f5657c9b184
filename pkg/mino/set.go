package mino

import (
	"fmt"
	"sync"
	"time"
)

type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "Next"
	case Previous:
		return "Previous"
	default:
		return "Unknown"
	}
}

// Stats describes the last generation pass.
type Stats struct {
	Order        int
	Slots        int
	Combinations int
	Connected    int
	Accepted     int
	Elapsed      time.Duration
}

// PieceSet holds every distinct piece of one order together with a cursor
// over them. Generate rebuilds the whole set; the new list, order and cursor
// are swapped in together, so readers on other goroutines never see a
// half-built set.
type PieceSet struct {
	opts Options

	pieces []Piece
	order  int
	index  int
	stats  Stats

	sync.RWMutex
}

func NewPieceSet(opts ...Option) *PieceSet {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &PieceSet{opts: o}
}

// BoundingBox returns the width and total slot count searched for order:
// order columns by ceil(order/2) rows.
func BoundingBox(order int) (width, slots int) {
	if order <= 0 {
		return 0, 0
	}

	return order, order * ((order + 1) / 2)
}

// Enumerate returns the distinct connected pieces of the given order in
// discovery order, each recentered on its first cell.
func Enumerate(order int, reflect bool) ([]Piece, Stats, error) {
	start := time.Now()

	width, slots := BoundingBox(order)
	if slots == 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	stats := Stats{Order: order, Slots: slots}

	var accepted []Piece
	EachCombination(slots, order, func(combo []int) bool {
		stats.Combinations++

		candidate := PieceFromIndices(combo, width)
		if !Connected(candidate) {
			return true
		}
		stats.Connected++

		if Unique(candidate, accepted, reflect) {
			accepted = append(accepted, candidate.Recenter(0))
		}

		return true
	})

	stats.Accepted = len(accepted)
	stats.Elapsed = time.Since(start)

	return accepted, stats, nil
}

// Generate replaces the set with every distinct piece of order and moves
// the cursor to the first piece. On error the previous set is untouched.
func (s *PieceSet) Generate(order int) error {
	pieces, stats, err := Enumerate(order, s.opts.Reflections)
	if err != nil {
		return err
	}

	s.opts.Logger.Printf("order %d: %d pieces from %d combinations (%d connected) in %s",
		order, stats.Accepted, stats.Combinations, stats.Connected, stats.Elapsed)

	s.Lock()
	defer s.Unlock()

	s.pieces = pieces
	s.order = order
	s.index = 0
	s.stats = stats

	return nil
}

// Current returns the piece under the cursor.
func (s *PieceSet) Current() (Piece, error) {
	s.RLock()
	defer s.RUnlock()

	if len(s.pieces) == 0 {
		return Piece{}, ErrEmptySet
	}

	return s.pieces[s.index].Clone(), nil
}

// Advance moves the cursor one piece in direction d, wrapping at both ends.
func (s *PieceSet) Advance(d Direction) error {
	s.Lock()
	defer s.Unlock()

	n := len(s.pieces)
	if n == 0 {
		return ErrEmptySet
	}

	switch d {
	case Next:
		s.index = (s.index + 1) % n
	case Previous:
		s.index = (s.index - 1 + n) % n
	default:
		return fmt.Errorf("mino: unknown direction %d", d)
	}

	return nil
}

// Select moves the cursor to piece i, wrapping modulo the set size.
func (s *PieceSet) Select(i int) error {
	s.Lock()
	defer s.Unlock()

	n := len(s.pieces)
	if n == 0 {
		return ErrEmptySet
	}

	s.index = ((i % n) + n) % n

	return nil
}

func (s *PieceSet) Count() int {
	s.RLock()
	defer s.RUnlock()

	return len(s.pieces)
}

func (s *PieceSet) Index() int {
	s.RLock()
	defer s.RUnlock()

	return s.index
}

func (s *PieceSet) Order() int {
	s.RLock()
	defer s.RUnlock()

	return s.order
}

func (s *PieceSet) Stats() Stats {
	s.RLock()
	defer s.RUnlock()

	return s.stats
}

// Snapshot returns the order and a copy of its pieces, read together.
func (s *PieceSet) Snapshot() (int, []Piece) {
	s.RLock()
	defer s.RUnlock()

	return s.order, s.clonePieces()
}

// Pieces returns a copy of the set in discovery order.
func (s *PieceSet) Pieces() []Piece {
	s.RLock()
	defer s.RUnlock()

	return s.clonePieces()
}

func (s *PieceSet) clonePieces() []Piece {
	pieces := make([]Piece, len(s.pieces))
	for i, p := range s.pieces {
		pieces[i] = p.Clone()
	}

	return pieces
}
