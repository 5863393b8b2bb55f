// Package random provides seed generation for dice sources.
//
// Seeds come from crypto/rand so that unseeded runs are unpredictable while
// a recorded seed still replays the exact same roll.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return SeedFrom(crand.Reader)
}

// SeedFrom reads a seed from r.
func SeedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns seed unless it is zero, in which case a fresh seed is
// generated.
func Resolve(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	return NewSeed()
}
