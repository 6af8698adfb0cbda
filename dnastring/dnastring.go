package dnastring

import (
	"github.com/pkg/errors"
)

// DNAString is a single DNA sequence stored as validated uppercase bytes.
// It is immutable after construction.
type DNAString struct {
	data []byte
}

// New creates a DNAString from s, validating every character against
// Alphabet and normalizing it to uppercase.
func New(s string) (*DNAString, error) {
	data := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		u, ok := Normalize(s[i])
		if !ok {
			return nil, errors.Errorf("dnastring: invalid DNA character %q at position %d", s[i], i)
		}
		data[i] = u
	}
	return &DNAString{data: data}, nil
}

// FromValidated wraps data that is already known to be valid uppercase
// sequence bytes, without copying or re-validating.  It is intended for
// slices of a string-set pool; the caller must not modify data afterwards.
func FromValidated(data []byte) *DNAString {
	return &DNAString{data: data}
}

// Len returns the number of bases.
func (s *DNAString) Len() int { return len(s.data) }

// At returns the base at position i.
func (s *DNAString) At(i int) byte { return s.data[i] }

// Slice returns a copy of the subsequence [start, end).
func (s *DNAString) Slice(start, end int) (*DNAString, error) {
	if start < 0 || end < start || end > len(s.data) {
		return nil, errors.Errorf("dnastring: invalid slice range [%d,%d) for sequence of length %d", start, end, len(s.data))
	}
	data := make([]byte, end-start)
	copy(data, s.data[start:end])
	return &DNAString{data: data}, nil
}

// Equal reports whether s and other hold identical sequences.
func (s *DNAString) Equal(other *DNAString) bool {
	if len(s.data) != len(other.data) {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether s equals raw, compared case-insensitively over
// the DNA alphabet.  raw characters outside the alphabet never match.
func (s *DNAString) EqualString(raw string) bool {
	if len(s.data) != len(raw) {
		return false
	}
	for i := 0; i < len(raw); i++ {
		u, ok := Normalize(raw[i])
		if !ok || u != s.data[i] {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the underlying sequence bytes.
func (s *DNAString) Bytes() []byte {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return data
}

// String returns the sequence as a Go string.
func (s *DNAString) String() string { return string(s.data) }
