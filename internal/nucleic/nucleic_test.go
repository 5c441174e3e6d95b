package nucleic

import (
	"errors"
	"testing"
)

func TestIsNucleicAcid(t *testing.T) {
	cases := map[string]bool{
		"ATGC":  true,
		"augc":  true,
		"AGC":   true,
		"":      false,
		"ATGU":  false,
		"ATGX":  false,
		"AT GC": false,
	}
	for in, want := range cases {
		if got := IsNucleicAcid(in); got != want {
			t.Errorf("IsNucleicAcid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTranscribe(t *testing.T) {
	got, ok := Transcribe("ATGc")
	if !ok || got != "UACg" {
		t.Fatalf("Transcribe(ATGc) = %q, %v", got, ok)
	}
	if _, ok := Transcribe("AUG"); ok {
		t.Fatalf("RNA input must be rejected")
	}
	if _, ok := Transcribe("ATGN"); ok {
		t.Fatalf("invalid input must be rejected")
	}
}

func TestReverse(t *testing.T) {
	got, ok := Reverse("AtGC")
	if !ok || got != "CGtA" {
		t.Fatalf("Reverse(AtGC) = %q, %v", got, ok)
	}
	if _, ok := Reverse(""); ok {
		t.Fatalf("empty input must be rejected")
	}
}

func TestComplement(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ATGC", "TACG"},
		{"AUGc", "UACg"},
		{"AGC", "UCG"},
		{"aTg", "tAc"},
	}
	for _, c := range cases {
		got, ok := Complement(c.in)
		if !ok || got != c.want {
			t.Errorf("Complement(%q) = %q, %v; want %q", c.in, got, ok, c.want)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	got, ok := ReverseComplement("ATGCc")
	if !ok || got != "gGCAT" {
		t.Fatalf("ReverseComplement(ATGCc) = %q, %v", got, ok)
	}
	if _, ok := ReverseComplement("ATU"); ok {
		t.Fatalf("mixed T/U must be rejected")
	}
}

func TestRun(t *testing.T) {
	res, err := Run("reverse_complement", "ATG", "AUG", "XYZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	if res[0].Sequence != "CAT" || !res[0].Valid {
		t.Fatalf("unexpected first result %+v", res[0])
	}
	if res[1].Sequence != "CAU" || !res[1].Valid {
		t.Fatalf("unexpected second result %+v", res[1])
	}
	if res[2].Valid {
		t.Fatalf("invalid sequence reported valid: %+v", res[2])
	}

	res, err = Run("is_nucleic_acid", "ATG")
	if err != nil || len(res) != 1 || !res[0].Valid {
		t.Fatalf("is_nucleic_acid: %+v, %v", res, err)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run("translate", "ATG"); !errors.Is(err, ErrUnknownProcedure) {
		t.Fatalf("expected ErrUnknownProcedure, got %v", err)
	}
	if _, err := Run("reverse"); !errors.Is(err, ErrNoSequences) {
		t.Fatalf("expected ErrNoSequences, got %v", err)
	}
}

func TestProcedures(t *testing.T) {
	names := Procedures()
	if len(names) != 5 || names[0] != "complement" {
		t.Fatalf("unexpected procedures %v", names)
	}
}
