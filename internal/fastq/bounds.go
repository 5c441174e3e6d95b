package fastq

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bound is a filter criterion: either a Scalar upper bound or an explicit
// Range. A nil Bound, or any value that is neither, stands for "not given"
// and normalizes to the caller's default range.
type Bound interface {
	isBound()
}

// Scalar is an upper bound with an implied lower bound of 0.
type Scalar float64

// Range is an explicit inclusive [Min, Max] pair. Min > Max is allowed and
// simply matches nothing.
type Range struct {
	Min, Max float64
}

func (Scalar) isBound() {}
func (Range) isBound()  {}

// Normalize turns b into a (min, max) pair. Unknown or missing bounds give
// (0, maxDefault) instead of an error.
func Normalize(b Bound, maxDefault float64) (min, max float64) {
	switch v := b.(type) {
	case Scalar:
		return 0, float64(v)
	case Range:
		return v.Min, v.Max
	}
	return 0, maxDefault
}

// boundFromFields turns the comma-separated fields of a bound string into a
// Bound: one field is a Scalar, two are a Range and anything else is nil.
func boundFromFields(vals []float64) Bound {
	switch len(vals) {
	case 1:
		return Scalar(vals[0])
	case 2:
		return Range{Min: vals[0], Max: vals[1]}
	}
	return nil
}

// ParseBound reads "44.4" as a Scalar and "40,60" as a Range. Text that does
// not parse yields nil, so the filter falls back to its default range.
func ParseBound(s string) Bound {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return boundFromFields(vals)
}

// DecodeBound reads a JSON number as a Scalar and a two-element numeric
// array as a Range. Every other shape, including null, yields nil.
func DecodeBound(raw json.RawMessage) Bound {
	if len(raw) == 0 {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return Scalar(n)
	}
	var vals []float64
	if err := json.Unmarshal(raw, &vals); err == nil && len(vals) == 2 {
		return Range{Min: vals[0], Max: vals[1]}
	}
	return nil
}

// FormatBound renders b the way ParseBound reads it; nil renders as "".
func FormatBound(b Bound) string {
	switch v := b.(type) {
	case Scalar:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case Range:
		return strconv.FormatFloat(v.Min, 'g', -1, 64) + "," + strconv.FormatFloat(v.Max, 'g', -1, 64)
	}
	return ""
}
