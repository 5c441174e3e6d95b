// Package nucleic validates and transforms DNA and RNA sequences.
//
// Every transformation preserves the case of each base and reports ok=false
// for input that is not a nucleic acid.
package nucleic

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnknownProcedure = errors.New("nucleic: unknown procedure")
	ErrNoSequences      = errors.New("nucleic: no sequences given")
)

var (
	dnaComplement = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	rnaComplement = map[byte]byte{'A': 'U', 'U': 'A', 'G': 'C', 'C': 'G'}
	transcription = map[byte]byte{'A': 'U', 'T': 'A', 'G': 'C', 'C': 'G'}
)

// IsNucleicAcid reports whether s is a non-empty run of A, T, G, C and U
// (any case) that does not mix T with U.
func IsNucleicAcid(s string) bool {
	if s == "" {
		return false
	}
	hasT, hasU := false, false
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'A', 'G', 'C':
		case 'T':
			hasT = true
		case 'U':
			hasU = true
		default:
			return false
		}
	}
	return !(hasT && hasU)
}

// Transcribe maps a DNA sequence base by base (A->U, T->A, G->C, C->G).
// RNA input is rejected.
func Transcribe(s string) (string, bool) {
	if !IsNucleicAcid(s) || strings.ContainsAny(s, "Uu") {
		return "", false
	}
	return translate(s, transcription), true
}

// Reverse returns s reversed.
func Reverse(s string) (string, bool) {
	if !IsNucleicAcid(s) {
		return "", false
	}
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), true
}

// Complement pairs each base. Sequences containing T use the DNA table, all
// others the RNA table.
func Complement(s string) (string, bool) {
	if !IsNucleicAcid(s) {
		return "", false
	}
	table := rnaComplement
	if strings.ContainsAny(s, "Tt") {
		table = dnaComplement
	}
	return translate(s, table), true
}

// ReverseComplement is Reverse of Complement.
func ReverseComplement(s string) (string, bool) {
	c, ok := Complement(s)
	if !ok {
		return "", false
	}
	return Reverse(c)
}

func translate(s string, table map[byte]byte) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		n, ok := table[upper(c)]
		if !ok {
			n = c
		}
		if c >= 'a' && c <= 'z' {
			n = lower(n)
		}
		out[i] = n
	}
	return string(out)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// Result is the outcome of one procedure on one sequence. Valid reports the
// boolean answer of "is_nucleic_acid"; for the other procedures it reports
// whether the input was accepted, and Sequence holds the output.
type Result struct {
	Input    string
	Sequence string
	Valid    bool
}

type procedure func(string) Result

var procedures = map[string]procedure{
	"is_nucleic_acid": func(s string) Result {
		return Result{Input: s, Valid: IsNucleicAcid(s)}
	},
	"transcribe":         wrap(Transcribe),
	"reverse":            wrap(Reverse),
	"complement":         wrap(Complement),
	"reverse_complement": wrap(ReverseComplement),
}

func wrap(fn func(string) (string, bool)) procedure {
	return func(s string) Result {
		out, ok := fn(s)
		return Result{Input: s, Sequence: out, Valid: ok}
	}
}

// Procedures lists the names Run accepts.
func Procedures() []string {
	names := make([]string, 0, len(procedures))
	for n := range procedures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run applies the named procedure to each sequence, in order.
func Run(name string, seqs ...string) ([]Result, error) {
	fn, ok := procedures[name]
	if !ok {
		return nil, ErrUnknownProcedure
	}
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	results := make([]Result, len(seqs))
	for i, s := range seqs {
		results[i] = fn(s)
	}
	return results, nil
}
