package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyLength is the number of hexadecimal characters in every cache key.
const KeyLength = 16

// Key derives the cache key for an ordered sequence of command tokens.
//
// The token count and every token's length are hashed ahead of the token
// bytes, so {"echo", "a b"} and {"echo", "a", "b"} produce different keys even
// though they join to the same command line. The result is a lowercase,
// zero-padded, fixed-width hex string that is stable across processes.
func Key(tokens []string) string {
	d := xxhash.New()

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(tokens)))
	_, _ = d.Write(lenBuf[:])

	for _, tok := range tokens {
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(tok)))
		_, _ = d.Write(lenBuf[:])
		_, _ = d.WriteString(tok)
	}

	return fmt.Sprintf("%0*x", KeyLength, d.Sum64())
}
