// Package dnastring provides a validated, uppercase-normalized DNA sequence
// type and the IUPAC DNA alphabet it is defined over.
package dnastring

// Alphabet is the set of permitted sequence characters: the four bases, the
// IUPAC ambiguity codes, and the gap character.  Validation is
// case-insensitive; stored sequences always hold the uppercase form.
const Alphabet = "ACGTRYSWKMBDHVN-"

// foldTable maps either case of every alphabet byte to its uppercase form.
// Bytes outside the alphabet map to 0.
var foldTable [256]byte

func init() {
	for _, c := range []byte(Alphabet) {
		foldTable[c] = c
		if c >= 'A' && c <= 'Z' {
			foldTable[c+'a'-'A'] = c
		}
	}
}

// Normalize returns the uppercase form of c and whether c is a member of the
// alphabet (in either case).
func Normalize(c byte) (byte, bool) {
	u := foldTable[c]
	return u, u != 0
}
