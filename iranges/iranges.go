/*Package iranges implements an array-backed container of integer ranges,
  modeled after Bioconductor's IRanges.  Each range is a (start, width) pair
  with an optional name.  The container is used as the positional index of a
  string-set pool: range i locates sequence i inside the pool.  It assumes
  every coordinate fits in an int.
*/
package iranges

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// IRanges holds parallel start/width arrays plus optional names.  Starts and
// widths are non-negative; nothing else is assumed about them (in particular
// ranges may overlap or leave gaps, e.g. after Subset).
type IRanges struct {
	starts []int
	widths []int
	names  []string // nil when the ranges are unnamed.
}

// New creates an IRanges from parallel start/width/name arrays.  names may be
// nil for unnamed ranges; otherwise it must have the same length as starts.
// New takes ownership of all three slices; the caller must not modify them
// afterwards.
func New(starts, widths []int, names []string) (*IRanges, error) {
	if len(starts) != len(widths) {
		return nil, errors.E(fmt.Sprintf("iranges: got %d starts but %d widths", len(starts), len(widths)))
	}
	if names != nil && len(names) != len(starts) {
		return nil, errors.E(fmt.Sprintf("iranges: got %d names for %d ranges", len(names), len(starts)))
	}
	for i := range starts {
		if starts[i] < 0 {
			return nil, errors.E(fmt.Sprintf("iranges: range %d has negative start %d", i, starts[i]))
		}
		if widths[i] < 0 {
			return nil, errors.E(fmt.Sprintf("iranges: range %d has negative width %d", i, widths[i]))
		}
	}
	return &IRanges{starts: starts, widths: widths, names: names}, nil
}

// Len returns the number of ranges.
func (r *IRanges) Len() int { return len(r.starts) }

// Start returns the start of range i.
func (r *IRanges) Start(i int) int { return r.starts[i] }

// Width returns the width of range i.
func (r *IRanges) Width(i int) int { return r.widths[i] }

// End returns the position one past the last coordinate of range i, i.e.
// Start(i) + Width(i).
func (r *IRanges) End(i int) int { return r.starts[i] + r.widths[i] }

// Names returns the range names, or nil if the ranges are unnamed.  The
// returned slice is shared, not copied.
func (r *IRanges) Names() []string { return r.names }

// SetNames replaces the range names.  Passing nil clears them.
func (r *IRanges) SetNames(names []string) error {
	if names != nil && len(names) != len(r.starts) {
		return errors.E(fmt.Sprintf("iranges: got %d names for %d ranges", len(names), len(r.starts)))
	}
	r.names = names
	return nil
}

// Subset returns a new IRanges containing the ranges at the given positions,
// in the given order.  Positions may repeat.
func (r *IRanges) Subset(indices []int) (*IRanges, error) {
	starts := make([]int, len(indices))
	widths := make([]int, len(indices))
	var names []string
	if r.names != nil {
		names = make([]string, len(indices))
	}
	for j, i := range indices {
		if i < 0 || i >= len(r.starts) {
			return nil, errors.E(fmt.Sprintf("iranges: index %d out of range [0,%d)", i, len(r.starts)))
		}
		starts[j] = r.starts[i]
		widths[j] = r.widths[i]
		if names != nil {
			names[j] = r.names[i]
		}
	}
	return &IRanges{starts: starts, widths: widths, names: names}, nil
}

// String returns a compact one-line-per-range rendering, mainly for
// debugging.
func (r *IRanges) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "IRanges of length %d", r.Len())
	for i := range r.starts {
		name := ""
		if r.names != nil {
			name = " " + r.names[i]
		}
		fmt.Fprintf(&sb, "\n  [%d] start=%d width=%d%s", i, r.starts[i], r.widths[i], name)
	}
	return sb.String()
}
