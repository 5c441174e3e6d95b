package fasta

// Package fasta reads FASTA files and rewrites them with every sequence on a
// single line.

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string
	Sequence string
}

// ReadFile loads a FASTA file (plain or gzipped, "-" for stdin).
func ReadFile(path string) ([]Record, error) {
	reader, err := fastx.NewReader(seq.Unlimit, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open fasta %s: %w", path, err)
	}
	defer reader.Close()
	records, err := readAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read fasta %s: %w", path, err)
	}
	return records, nil
}

// Parse reads FASTA records from r.
func Parse(r io.Reader) ([]Record, error) {
	reader, err := fastx.NewReaderFromIO(seq.Unlimit, r, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open fasta stream: %w", err)
	}
	defer reader.Close()
	return readAll(reader)
}

// readAll drains reader. Headers lose trailing whitespace; sequence lines are
// joined by the parser.
func readAll(reader *fastx.Reader) ([]Record, error) {
	var records []Record
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Header:   strings.TrimRight(string(rec.Name), " \t\r"),
			Sequence: string(rec.Seq.Seq),
		})
	}
	return records, nil
}

// Write writes each record as a header line and one sequence line. Every
// record, the last one included, ends with a newline.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", r.Header, r.Sequence); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToOneLine copies the FASTA stream in to out with each sequence joined onto
// one line and returns the number of records written.
func ToOneLine(in io.Reader, out io.Writer) (int, error) {
	records, err := Parse(in)
	if err != nil {
		return 0, err
	}
	if err := Write(out, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// OneLinePath is the default output path for input: "oneline_" prefixed to
// the file name, in the same directory.
func OneLinePath(input string) string {
	dir, base := filepath.Split(input)
	return filepath.Join(dir, "oneline_"+base)
}

// ConvertFile rewrites the FASTA file input into output with single-line
// sequences. An empty output uses OneLinePath(input).
func ConvertFile(input, output string) (int, error) {
	if output == "" {
		output = OneLinePath(input)
	}
	records, err := ReadFile(input)
	if err != nil {
		return 0, err
	}
	out, err := xopen.Wopen(output)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", output, err)
	}
	if err := Write(out, records); err != nil {
		out.Close()
		return 0, fmt.Errorf("write %s: %w", output, err)
	}
	return len(records), out.Close()
}
