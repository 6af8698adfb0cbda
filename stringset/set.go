package stringset

import (
	"fmt"
	"strings"

	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
	"github.com/strandlab/biostrings/dnastring"
	"github.com/strandlab/biostrings/iranges"
)

// DNAStringSet is a collection of DNA sequences stored in a shared pool, with
// an IRanges index locating each sequence.  Sets created by Subset share the
// pool of their parent; the pool is never modified after construction.
type DNAStringSet struct {
	pool   []byte
	ranges *iranges.IRanges
}

// New builds a DNAStringSet from seqs, with optional names (nil for an
// unnamed set).  Validation and encoding follow Encode; the index is backed
// by iranges.New, which rejects a names list whose length differs from seqs.
func New(seqs, names []string) (*DNAStringSet, error) {
	pool, ranges, err := Encode(seqs, names, func(starts, widths []int, names []string) (interface{}, error) {
		return iranges.New(starts, widths, names)
	})
	if err != nil {
		return nil, err
	}
	return &DNAStringSet{pool: pool, ranges: ranges.(*iranges.IRanges)}, nil
}

// Len returns the number of sequences in the set.
func (s *DNAStringSet) Len() int { return s.ranges.Len() }

// Widths returns the length of every sequence, in order.
func (s *DNAStringSet) Widths() []int {
	widths := make([]int, s.ranges.Len())
	for i := range widths {
		widths[i] = s.ranges.Width(i)
	}
	return widths
}

// Names returns the sequence names, or nil for an unnamed set.  The returned
// slice is shared, not copied.
func (s *DNAStringSet) Names() []string { return s.ranges.Names() }

// SetNames replaces the sequence names.  Passing nil clears them.
func (s *DNAStringSet) SetNames(names []string) error { return s.ranges.SetNames(names) }

// Ranges returns the positional index of the set.
func (s *DNAStringSet) Ranges() *iranges.IRanges { return s.ranges }

// Pool returns the underlying pool.  It is shared with the set (and with any
// parent or subset sharing the same storage) and must not be modified.
func (s *DNAStringSet) Pool() []byte { return s.pool }

// At returns sequence i as a freshly copied DNAString.
func (s *DNAStringSet) At(i int) (*dnastring.DNAString, error) {
	if i < 0 || i >= s.ranges.Len() {
		return nil, errors.Errorf("stringset: sequence index %d out of range [0,%d)", i, s.ranges.Len())
	}
	data := make([]byte, s.ranges.Width(i))
	copy(data, s.pool[s.ranges.Start(i):s.ranges.End(i)])
	return dnastring.FromValidated(data), nil
}

// Subset returns a new set containing the sequences at the given positions,
// in the given order.  The result is a view: it shares the pool with s and
// only re-derives the index.
func (s *DNAStringSet) Subset(indices []int) (*DNAStringSet, error) {
	sub, err := s.ranges.Subset(indices)
	if err != nil {
		return nil, err
	}
	return &DNAStringSet{pool: s.pool, ranges: sub}, nil
}

// ToList returns every sequence as a string.  The strings alias the pool
// (which is immutable), so no sequence bytes are copied.
func (s *DNAStringSet) ToList() []string {
	out := make([]string, s.ranges.Len())
	for i := range out {
		out[i] = gunsafe.BytesToString(s.pool[s.ranges.Start(i):s.ranges.End(i)])
	}
	return out
}

// Unlist concatenates all sequences in the set into one DNAString.  When the
// index covers its pool span contiguously (always true for a freshly built
// set) the result is a zero-copy view of the pool; otherwise the sequences
// are joined into a new buffer.
func (s *DNAStringSet) Unlist() *dnastring.DNAString {
	n := s.ranges.Len()
	if n == 0 {
		return dnastring.FromValidated(nil)
	}
	total := 0
	for i := 0; i < n; i++ {
		total += s.ranges.Width(i)
	}
	first := s.ranges.Start(0)
	lastEnd := s.ranges.End(n - 1)
	if lastEnd-first == total {
		return dnastring.FromValidated(s.pool[first:lastEnd])
	}
	joined := make([]byte, 0, total)
	for i := 0; i < n; i++ {
		joined = append(joined, s.pool[s.ranges.Start(i):s.ranges.End(i)]...)
	}
	return dnastring.FromValidated(joined)
}

// String renders the set in the usual head/tail form: all sequences when the
// set holds at most ten, otherwise the first and last five.
func (s *DNAStringSet) String() string {
	n := s.Len()
	if n == 0 {
		return "DNAStringSet of length 0"
	}
	const (
		maxShow  = 10
		halfShow = 5
	)
	widthDigits := 1
	for i := 0; i < n; i++ {
		if d := len(fmt.Sprintf("%d", s.ranges.Width(i))); d > widthDigits {
			widthDigits = d
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "DNAStringSet of length %d", n)
	writeLine := func(i int) {
		w := s.ranges.Width(i)
		seq := s.pool[s.ranges.Start(i):s.ranges.End(i)]
		snippet := string(seq)
		if w > 18 {
			snippet = string(seq[:7]) + "..." + string(seq[w-8:])
		}
		name := ""
		if names := s.ranges.Names(); names != nil {
			name = names[i]
			if len(name) > 10 {
				name = name[:7] + "..."
			}
		}
		fmt.Fprintf(&sb, "\n  [%2d] %*d %-20s %s", i, widthDigits, w, snippet, name)
	}
	if n <= maxShow {
		for i := 0; i < n; i++ {
			writeLine(i)
		}
	} else {
		for i := 0; i < halfShow; i++ {
			writeLine(i)
		}
		fmt.Fprintf(&sb, "\n  ... %d more sequences ...", n-2*halfShow)
		for i := n - halfShow; i < n; i++ {
			writeLine(i)
		}
	}
	return sb.String()
}
