package dice

import (
	"math"
	"math/rand"
)

// Source draws dice faces.
//
// Draw returns n faces in [1, sides]. A Source that cannot produce n faces
// returns fewer; callers compare the length before recording.
type Source interface {
	Draw(n int, sides uint64) []uint64
}

// SeededSource draws faces from a seeded pseudo-random generator.
//
// Given the same seed and the same sequence of Draw calls, SeededSource
// always produces the same faces.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a source seeded with seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Draw rolls n dice with the provided number of sides.
func (s *SeededSource) Draw(n int, sides uint64) []uint64 {
	if n <= 0 || sides == 0 {
		return []uint64{}
	}
	faces := make([]uint64, n)
	for i := range faces {
		faces[i] = rollDie(s.rng, sides)
	}
	return faces
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides uint64) uint64 {
	if sides > math.MaxInt64 {
		return rng.Uint64()%sides + 1
	}
	return uint64(rng.Int63n(int64(sides))) + 1
}

// SequenceSource replays a fixed list of faces, ignoring sides.
type SequenceSource struct {
	faces []uint64
}

// NewSequenceSource returns a source replaying faces in order.
func NewSequenceSource(faces ...uint64) *SequenceSource {
	return &SequenceSource{faces: append([]uint64(nil), faces...)}
}

// Draw returns the next n faces, or whatever remains.
func (s *SequenceSource) Draw(n int, _ uint64) []uint64 {
	if n < 0 {
		n = 0
	}
	if n > len(s.faces) {
		n = len(s.faces)
	}
	out := append([]uint64(nil), s.faces[:n]...)
	s.faces = s.faces[n:]
	if out == nil {
		out = []uint64{}
	}
	return out
}
