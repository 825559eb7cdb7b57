// Package entropy provides fresh seeds for map generation when the
// configuration does not pin one.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a non-zero positive int64 drawn from crypto/rand. Falls back
// to the wall clock if the system source fails.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Warn("crypto/rand unavailable, seeding from clock", "error", err)
		return clockSeed()
	}
	// Clear the sign bit so seeds print as positive numbers.
	s := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if s == 0 {
		return clockSeed()
	}
	return s
}

func clockSeed() int64 {
	s := time.Now().UnixNano() & (1<<63 - 1)
	if s == 0 {
		s = 1
	}
	return s
}
