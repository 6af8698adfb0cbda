// Package stringset packs collections of DNA sequences into a single
// contiguous byte pool plus a (start, width) index locating each sequence
// within it.  The pool-and-ranges representation avoids per-sequence
// allocation overhead and lets range operations run over many sequences
// stored as one blob.
package stringset

import (
	"fmt"

	"github.com/strandlab/biostrings/dnastring"
)

// RangesFactory constructs the positional index for a freshly encoded pool
// from parallel start/width/name arrays.  The returned value is opaque to the
// encoder and is handed back to the caller untouched; any error the factory
// returns propagates unchanged.  Ownership of all three slices transfers to
// the factory.
//
// Encode does not check len(names) against the number of sequences; whether a
// mismatch is rejected is the factory's contract (the iranges-backed factory
// used by New rejects it).
type RangesFactory func(starts, widths []int, names []string) (interface{}, error)

// InvalidCharacterError reports a sequence character outside the permitted
// DNA alphabet.  Char is the byte as it appeared in the input, before case
// normalization.
type InvalidCharacterError struct {
	SeqIndex int // 0-based position of the offending sequence in the input.
	Char     byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("stringset: sequence %d contains invalid DNA character %q", e.SeqIndex, e.Char)
}

// Encode validates and concatenates seqs into one uppercase byte pool and
// builds the (start, width) index describing each sequence's extent within
// it.  Sequences are processed in input order; starts are assigned by a
// running offset, so the index is a gapless, non-overlapping partition of the
// pool by construction.  Validation is case-insensitive against
// dnastring.Alphabet and the pool always holds the uppercased form.
//
// On the first invalid character the whole call aborts with an
// *InvalidCharacterError and no partial pool or ranges are returned.  After
// all sequences validate, newRanges is invoked with the accumulated starts
// and widths plus the names list passed through verbatim, and its result is
// returned alongside the pool.
func Encode(seqs, names []string, newRanges RangesFactory) ([]byte, interface{}, error) {
	starts := make([]int, len(seqs))
	widths := make([]int, len(seqs))
	total := 0
	for i, seq := range seqs {
		starts[i] = total
		widths[i] = len(seq)
		total += len(seq)
	}

	// The pool is pre-sized from the summed widths and filled by direct
	// indexed writes at each sequence's assigned offset.
	pool := make([]byte, total)
	for i, seq := range seqs {
		off := starts[i]
		for j := 0; j < len(seq); j++ {
			u, ok := dnastring.Normalize(seq[j])
			if !ok {
				return nil, nil, &InvalidCharacterError{SeqIndex: i, Char: seq[j]}
			}
			pool[off+j] = u
		}
	}

	ranges, err := newRanges(starts, widths, names)
	if err != nil {
		return nil, nil, err
	}
	return pool, ranges, nil
}
