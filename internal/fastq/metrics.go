package fastq

// PhredOffset is the ASCII offset of Phred+33 quality strings.
const PhredOffset = 33

// GCContent returns the percentage of uppercase 'G' and 'C' in seq.
// An empty sequence has GC-content 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(seq))
}

// AvgQuality returns the mean Phred+33 score of qual, or 0 when qual is empty.
func AvgQuality(qual string) float64 {
	if len(qual) == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < len(qual); i++ {
		sum += int(qual[i]) - PhredOffset
	}
	return float64(sum) / float64(len(qual))
}
