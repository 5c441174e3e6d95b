package fastq

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// ReadFile loads every record of a FASTQ file. Plain and gzipped files are
// accepted; "-" reads standard input. The record name is the whole header
// line without the leading '@'.
func ReadFile(path string) (*RecordSet, error) {
	reader, err := fastx.NewReader(seq.Unlimit, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open fastq %s: %w", path, err)
	}
	defer reader.Close()

	set := &RecordSet{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read fastq %s: %w", path, err)
		}
		set.Add(Record{
			Name:     string(rec.Name),
			Sequence: string(rec.Seq.Seq),
			Quality:  string(rec.Seq.Qual),
		})
	}
	return set, nil
}

// Write emits set as four-line FASTQ blocks.
func Write(w io.Writer, set *RecordSet) error {
	bw := bufio.NewWriter(w)
	var werr error
	set.Each(func(r Record) bool {
		_, werr = fmt.Fprintf(bw, "@%s\n%s\n+\n%s\n", r.Name, r.Sequence, r.Quality)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}

// WriteFile writes set to path. A ".gz" suffix compresses the output and "-"
// writes to standard output.
func WriteFile(path string, set *RecordSet) error {
	out, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(out, set); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
