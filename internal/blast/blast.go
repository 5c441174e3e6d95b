// Package blast summarizes plain-text BLAST reports.
package blast

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shenwei356/xopen"
)

// HitsMarker introduces the table of hits for one query.
const HitsMarker = "Sequences producing significant alignments:"

// ParseHits collects the first column of every row in the hit tables of a
// BLAST report. A table starts on the line after HitsMarker and ends at the
// first blank line. Descriptions are returned unique and sorted.
func ParseHits(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	seen := make(map[string]struct{})
	inTable := false
	for scanner.Scan() {
		line := scanner.Text()
		if inTable {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				inTable = false
				continue
			}
			seen[fields[0]] = struct{}{}
			continue
		}
		if strings.Contains(line, HitsMarker) {
			inTable = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	hits := make([]string, 0, len(seen))
	for h := range seen {
		hits = append(hits, h)
	}
	sort.Strings(hits)
	return hits, nil
}

// WriteHits writes one description per line.
func WriteHits(w io.Writer, hits []string) error {
	bw := bufio.NewWriter(w)
	for _, h := range hits {
		if _, err := bw.WriteString(h + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ConvertFile reads the report at input and writes its hit descriptions to
// output. Gzipped reports are read transparently and "-" is standard input.
// It returns the number of descriptions written.
func ConvertFile(input, output string) (int, error) {
	f, err := xopen.Ropen(input)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()
	hits, err := ParseHits(f)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", input, err)
	}
	out, err := xopen.Wopen(output)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", output, err)
	}
	if err := WriteHits(out, hits); err != nil {
		out.Close()
		return 0, fmt.Errorf("write %s: %w", output, err)
	}
	return len(hits), out.Close()
}
