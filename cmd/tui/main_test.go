package main

import (
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/atcidulko/HW4-IB/internal/config"
	"github.com/atcidulko/HW4-IB/internal/fastq"
)

func testModel() model {
	set := fastq.NewRecordSet(
		fastq.Record{Name: "good", Sequence: "ATGC", Quality: "IIII"},
		fastq.Record{Name: "lowq", Sequence: "GGCC", Quality: "####"},
	)
	return initialModel(set, fastq.Criteria{QualityThreshold: 30})
}

func TestCycleMode(t *testing.T) {
	m := testModel()
	if m.currentMode != modeSequence {
		t.Fatalf("expected initial mode sequence, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeQuality {
		t.Fatalf("expected quality, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeReverseComplement {
		t.Fatalf("expected reverse complement, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeSequence {
		t.Fatalf("expected sequence, got %v", m.currentMode)
	}
}

func TestInitialModelVerdicts(t *testing.T) {
	m := testModel()
	if len(m.rows) != 2 || m.passed != 1 {
		t.Fatalf("expected 2 rows with 1 passing, got %d rows, %d pass", len(m.rows), m.passed)
	}
	if m.rows[1].verdict != fastq.FailQuality {
		t.Fatalf("expected lowq to fail quality, got %v", m.rows[1].verdict)
	}
	if m.rows[0].gc != 50 || m.rows[0].quality != 40 {
		t.Fatalf("unexpected metrics %+v", m.rows[0])
	}
}

func TestBuildRightLinesWrap(t *testing.T) {
	m := testModel()
	m.width = 120
	m.height = 40
	m.currentMode = modeReverseComplement
	row := newReadRow(fastq.Record{Name: "long", Sequence: strings.Repeat("ATG", 50), Quality: strings.Repeat("I", 150)}, fastq.NewChecker(fastq.Criteria{}))
	lines := m.buildRightLines(row)
	if len(lines) == 0 {
		t.Fatalf("expected lines, got 0")
	}
	if !strings.Contains(strings.Join(lines, "\n"), "CAT") {
		t.Fatalf("expected reverse complement in output")
	}
}

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseArgsNegativeQuality(t *testing.T) {
	o, err := parseArgs(newFS(), []string{"-quality", "-5", "reads.fastq"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	crit := o.criteria(&config.Config{QualityThreshold: 30})
	if crit.QualityThreshold != -5 {
		t.Fatalf("expected threshold -5, got %v", crit.QualityThreshold)
	}
	if o.input != "reads.fastq" {
		t.Fatalf("unexpected input %q", o.input)
	}
}

func TestParseArgsKeepsConfigWhenUnset(t *testing.T) {
	o, err := parseArgs(newFS(), []string{"-gc", "40,60", "reads.fastq"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	crit := o.criteria(&config.Config{QualityThreshold: 30, LengthBounds: []byte("150")})
	if crit.QualityThreshold != 30 {
		t.Fatalf("expected config threshold 30, got %v", crit.QualityThreshold)
	}
	if crit.GC != (fastq.Range{Min: 40, Max: 60}) || crit.Length != fastq.Scalar(150) {
		t.Fatalf("unexpected bounds %+v", crit)
	}
}

func TestParseArgsRequiresOneFile(t *testing.T) {
	if _, err := parseArgs(newFS(), nil); err == nil {
		t.Fatalf("expected error without input file")
	}
}
