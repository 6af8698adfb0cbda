// bio-seqset pools a line-oriented list of DNA sequences into a single
// buffer and prints the resulting index as TSV.
//
// Each input line is either "name<TAB>sequence" or a bare sequence (blank
// lines are skipped; sequences without a name are called seq1, seq2, ...).
// The output has one line per sequence: "name<TAB>length<TAB>start<TAB>end",
// where start and end locate the sequence inside the pool.
//
// Example:
//
//	bio-seqset -in reads.txt -out reads.index.tsv
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/pkg/errors"
	"github.com/strandlab/biostrings/stringset"
)

const maxLineSize = 1024 * 1024 * 64 // 64 MB

var (
	inFlag  = flag.String("in", "", "Input sequence list. (default stdin)")
	outFlag = flag.String("out", "", "Output TSV index. (default stdout)")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	flag.Parse()

	ctx := vcontext.Background()
	if err := run(ctx, *inFlag, *outFlag); err != nil {
		log.Panic(err)
	}
}

func run(ctx context.Context, inPath, outPath string) (err error) {
	in := io.Reader(os.Stdin)
	if inPath != "" {
		var f file.File
		if f, err = file.Open(ctx, inPath); err != nil {
			return err
		}
		defer file.CloseAndReport(ctx, f, &err)
		in = f.Reader(ctx)
	}
	out := io.Writer(os.Stdout)
	if outPath != "" {
		var f file.File
		if f, err = file.Create(ctx, outPath); err != nil {
			return err
		}
		defer file.CloseAndReport(ctx, f, &err)
		out = f.Writer(ctx)
	}

	seqs, names, err := readSeqList(in)
	if err != nil {
		return err
	}
	set, err := stringset.New(seqs, names)
	if err != nil {
		return err
	}
	log.Printf("Pooled %d sequences into %d bytes", set.Len(), len(set.Pool()))

	w := tsv.NewWriter(out)
	ranges := set.Ranges()
	for i := 0; i < set.Len(); i++ {
		w.WriteString(names[i])
		w.WriteInt64(int64(ranges.Width(i)))
		w.WriteInt64(int64(ranges.Start(i)))
		w.WriteInt64(int64(ranges.End(i)))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

// readSeqList parses "name<TAB>sequence" or bare-sequence lines.  Sequence
// validation is left to the string-set encoder.
func readSeqList(in io.Reader) (seqs, names []string, err error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		name, seq := "", line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			name, seq = line[:i], line[i+1:]
		}
		if name == "" {
			name = fmt.Sprintf("seq%d", len(seqs)+1)
		}
		seqs = append(seqs, seq)
		names = append(names, name)
	}
	if scanner.Err() != nil {
		return nil, nil, errors.Wrap(scanner.Err(), "couldn't read sequence list")
	}
	return seqs, names, nil
}
