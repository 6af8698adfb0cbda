package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSeqList(t *testing.T) {
	in := "chr1\tACGT\n" + "\n" + "NNN\n" + "\tacgt\n"
	seqs, names, err := readSeqList(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "NNN", "acgt"}, seqs)
	assert.Equal(t, []string{"chr1", "seq2", "seq3"}, names)

	seqs, names, err = readSeqList(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, seqs)
	assert.Empty(t, names)
}
