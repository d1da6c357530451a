// Package gameid generates sortable game identifiers: a UUIDv7 encoded as 26
// characters of lowercase Crockford base32, the TypeID suffix format.
package gameid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a game ID.
const Length = 26

// ErrInvalid is wrapped by every Decode and Validate failure.
var ErrInvalid = errors.New("invalid game ID")

// New creates a game ID from a fresh UUIDv7.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID as a 26 character base32 string. The 128 bits are
// left-padded with two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Decode parses a game ID back into its UUID.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != Length {
		return uuid.Nil, fmt.Errorf("%w: must be exactly %d characters, got %d", ErrInvalid, Length, len(s))
	}
	if s[0] > '7' {
		return uuid.Nil, fmt.Errorf("%w: first character must be 0-7, got %c", ErrInvalid, s[0])
	}

	var hi, lo uint64
	for i := 0; i < len(s); i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return uuid.Nil, fmt.Errorf("%w: invalid character %c at position %d", ErrInvalid, s[i], i)
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}

	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id, nil
}

// Validate checks that s is a well-formed game ID.
func Validate(s string) error {
	_, err := Decode(s)
	return err
}
