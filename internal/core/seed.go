package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NewSeed generates a PRNG seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns seed unchanged unless it is 0, in which case a fresh
// random seed is drawn. It falls back to the clock if crypto/rand fails.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s, err := NewSeed()
	if err != nil || s == 0 {
		return time.Now().UnixNano()
	}
	return s
}
