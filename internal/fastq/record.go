// Package fastq holds FASTQ records and the read filter that selects them by
// length, GC-content and average Phred quality.
package fastq

// Record is a single FASTQ read.
type Record struct {
	Name     string
	Sequence string
	Quality  string
}

// RecordSet maps record names to records and remembers insertion order.
// The zero value is ready to use.
type RecordSet struct {
	names []string
	byKey map[string]Record
}

// NewRecordSet returns a set holding recs in the given order.
func NewRecordSet(recs ...Record) *RecordSet {
	s := &RecordSet{}
	for _, r := range recs {
		s.Add(r)
	}
	return s
}

// Add stores r under r.Name. A record with the same name is replaced in place
// and keeps its original position.
func (s *RecordSet) Add(r Record) {
	if s.byKey == nil {
		s.byKey = make(map[string]Record)
	}
	if _, ok := s.byKey[r.Name]; !ok {
		s.names = append(s.names, r.Name)
	}
	s.byKey[r.Name] = r
}

// Get returns the record stored under name.
func (s *RecordSet) Get(name string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	r, ok := s.byKey[name]
	return r, ok
}

func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns record names in insertion order.
func (s *RecordSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Records returns the records in insertion order.
func (s *RecordSet) Records() []Record {
	if s == nil {
		return nil
	}
	out := make([]Record, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.byKey[n])
	}
	return out
}

// Each calls fn for every record in insertion order until fn returns false.
func (s *RecordSet) Each(fn func(Record) bool) {
	if s == nil {
		return
	}
	for _, n := range s.names {
		if !fn(s.byKey[n]) {
			return
		}
	}
}
