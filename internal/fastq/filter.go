package fastq

import "math"

const (
	// MaxGC is the default upper GC bound in percent.
	MaxGC = 100.0
	// MaxLength is the default upper length bound, large enough to be unbounded.
	MaxLength = 1 << 32
)

// Criteria selects reads. The zero value keeps every record: GC in [0, 100],
// length in [0, 2^32] and a minimum average quality of 0.
type Criteria struct {
	GC               Bound
	Length           Bound
	QualityThreshold float64
}

// Verdict explains why a record was kept or dropped.
type Verdict int

const (
	Pass Verdict = iota
	FailLength
	FailGC
	FailQuality
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case FailLength:
		return "length"
	case FailGC:
		return "gc"
	case FailQuality:
		return "quality"
	default:
		return "unknown"
	}
}

// Checker is a Criteria with its bounds already normalized.
type Checker struct {
	gcMin, gcMax   float64
	// length bounds are truncated but kept as floats so huge or infinite
	// upper bounds stay unbounded
	lenMin, lenMax float64
	minQuality     float64
}

// NewChecker normalizes c once so many records can be checked against it.
func NewChecker(c Criteria) Checker {
	gcMin, gcMax := Normalize(c.GC, MaxGC)
	lenMin, lenMax := Normalize(c.Length, MaxLength)
	return Checker{
		gcMin:      gcMin,
		gcMax:      gcMax,
		lenMin:     math.Trunc(lenMin),
		lenMax:     math.Trunc(lenMax),
		minQuality: c.QualityThreshold,
	}
}

// Check runs the length, GC and quality tests in that order and reports the
// first one r fails. Length and GC bounds are inclusive; a record whose
// average quality equals the threshold passes.
func (c Checker) Check(r Record) Verdict {
	n := float64(len(r.Sequence))
	if n < c.lenMin || n > c.lenMax {
		return FailLength
	}
	gc := GCContent(r.Sequence)
	if gc < c.gcMin || gc > c.gcMax {
		return FailGC
	}
	if AvgQuality(r.Quality) < c.minQuality {
		return FailQuality
	}
	return Pass
}

// Filter returns a new set with the records of records that pass c, in the
// original order. The input set is not modified.
func Filter(records *RecordSet, c Criteria) *RecordSet {
	chk := NewChecker(c)
	out := &RecordSet{}
	records.Each(func(r Record) bool {
		if chk.Check(r) == Pass {
			out.Add(r)
		}
		return true
	})
	return out
}
