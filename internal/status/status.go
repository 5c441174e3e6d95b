// Package status tallies the per-read status tag (for example "BH:ok") that
// read-correction tools append to FASTQ headers.
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Count is one status and how many reads carried it.
type Count struct {
	Status string
	N      int
}

// Counts keeps statuses in the order they were first seen.
type Counts struct {
	order []string
	n     map[string]int
}

// Add records one read with status s.
func (c *Counts) Add(s string) {
	if c.n == nil {
		c.n = make(map[string]int)
	}
	if _, ok := c.n[s]; !ok {
		c.order = append(c.order, s)
	}
	c.n[s]++
}

// Get returns how many reads had status s.
func (c *Counts) Get(s string) int { return c.n[s] }

// Total is the number of reads that carried any status.
func (c *Counts) Total() int {
	t := 0
	for _, v := range c.n {
		t += v
	}
	return t
}

// List returns the counts in first-seen order.
func (c *Counts) List() []Count {
	out := make([]Count, 0, len(c.order))
	for _, s := range c.order {
		out = append(out, Count{Status: s, N: c.n[s]})
	}
	return out
}

// FromHeader returns the status of a header: its last whitespace-separated
// token, provided there is more than one.
func FromHeader(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", false
	}
	return parts[len(parts)-1], true
}

// CountFile reads the FASTQ file at path and tallies header statuses.
func CountFile(path string) (*Counts, error) {
	reader, err := fastx.NewReader(seq.Unlimit, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	c := &Counts{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if s, ok := FromHeader(string(rec.Name)); ok {
			c.Add(s)
		}
	}
	return c, nil
}
