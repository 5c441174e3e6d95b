package fasta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSimple(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\n"
	recs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1" || recs[0].Sequence != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "seq2 desc" || recs[1].Sequence != "GGTT" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseMultilineTrimsHeader(t *testing.T) {
	recs, err := Parse(strings.NewReader(">a first  \nAT\nGC\n>b\t\nTT\nAA"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "a first" || recs[1].Header != "b" {
		t.Fatalf("headers not trimmed: %+v", recs)
	}
	if recs[0].Sequence != "ATGC" || recs[1].Sequence != "TTAA" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestToOneLineEndsWithNewline(t *testing.T) {
	var out bytes.Buffer
	n, err := ToOneLine(strings.NewReader(">x some desc\nAC\nGT\n>y\nA\nA"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 records, got %d", n)
	}
	want := ">x some desc\nACGT\n>y\nAA\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestToOneLineMatchesConvertFile(t *testing.T) {
	input := ">r1 desc  \nACGT\nAC\n>r2\nGG\nTT\nCC\n"
	var stream bytes.Buffer
	if _, err := ToOneLine(strings.NewReader(input), &stream); err != nil {
		t.Fatalf("ToOneLine: %v", err)
	}

	dir := t.TempDir()
	in := filepath.Join(dir, "in.fasta")
	out := filepath.Join(dir, "out.fasta")
	if err := os.WriteFile(in, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ConvertFile(in, out); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	file, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if stream.String() != string(file) {
		t.Fatalf("outputs differ:\nstream: %q\nfile:   %q", stream.String(), file)
	}
	if stream.String() != ">r1 desc\nACGTAC\n>r2\nGGTTCC\n" {
		t.Fatalf("unexpected output %q", stream.String())
	}
}

func TestOneLinePath(t *testing.T) {
	got := OneLinePath(filepath.Join("data", "genes.fasta"))
	if got != filepath.Join("data", "oneline_genes.fasta") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "multi.fasta")
	if err := os.WriteFile(in, []byte(">seq1 first\nATG\nCCC\n>seq2\nGG\nTT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := ConvertFile(in, "")
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 records, got %d", n)
	}
	data, err := os.ReadFile(filepath.Join(dir, "oneline_multi.fasta"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if string(data) != ">seq1 first\nATGCCC\n>seq2\nGGTT\n" {
		t.Fatalf("unexpected output %q", data)
	}
}
