package dnastring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, c := range []byte(Alphabet) {
		u, ok := Normalize(c)
		assert.True(t, ok, "char %q", c)
		assert.Equal(t, c, u)
	}
	// Lowercase folds to uppercase; the gap has no lowercase form.
	u, ok := Normalize('a')
	assert.True(t, ok)
	assert.Equal(t, byte('A'), u)
	u, ok = Normalize('n')
	assert.True(t, ok)
	assert.Equal(t, byte('N'), u)
	for _, c := range []byte{'X', 'x', 'Z', ' ', '*', 0, '\n'} {
		_, ok := Normalize(c)
		assert.False(t, ok, "char %q", c)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"acgt", "ACGT", false},
		{"AC-G", "AC-G", false},
		{"ryswkmbdhvn", "RYSWKMBDHVN", false},
		{"ACGTX", "", true},
		{"acxgt", "", true},
	}
	for _, test := range tests {
		s, err := New(test.in)
		if test.wantErr {
			assert.Error(t, err, "input %q", test.in)
			continue
		}
		assert.NoError(t, err, "input %q", test.in)
		assert.Equal(t, test.want, s.String())
		assert.Equal(t, len(test.want), s.Len())
	}
}

func TestSlice(t *testing.T) {
	s, err := New("ACGTN")
	assert.NoError(t, err)

	sub, err := s.Slice(1, 4)
	assert.NoError(t, err)
	assert.Equal(t, "CGT", sub.String())

	empty, err := s.Slice(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 6}} {
		_, err := s.Slice(r[0], r[1])
		assert.Error(t, err, "range %v", r)
	}
}

func TestEqual(t *testing.T) {
	a, _ := New("ACGT")
	b, _ := New("acgt")
	c, _ := New("ACGA")
	d, _ := New("ACG")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))

	assert.True(t, a.EqualString("AcGt"))
	assert.False(t, a.EqualString("ACGA"))
	assert.False(t, a.EqualString("ACGTX"))
	assert.False(t, a.EqualString("ACGX"))
}

func TestBytesIsACopy(t *testing.T) {
	s, _ := New("ACGT")
	b := s.Bytes()
	b[0] = 'T'
	assert.Equal(t, "ACGT", s.String())
	assert.Equal(t, byte('A'), s.At(0))
}
