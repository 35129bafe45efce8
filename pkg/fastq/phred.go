package fastq

import (
	"math"
	"strings"
)

// PhredOffset is the standard Sanger/Illumina 1.8+ quality encoding
// offset.
const PhredOffset = 33

// PhredEncode converts error probabilities into a phred quality
// string with the given ASCII offset.
func PhredEncode(probabilities []float64, offset int) string {
	var b strings.Builder
	b.Grow(len(probabilities))
	for _, p := range probabilities {
		score := int(math.Round(-10 * math.Log10(p)))
		b.WriteByte(byte(score + offset))
	}
	return b.String()
}

// PhredDecode converts a phred quality string back into error
// probabilities.
func PhredDecode(quality string, offset int) []float64 {
	res := make([]float64, len(quality))
	for i := 0; i < len(quality); i++ {
		score := float64(int(quality[i]) - offset)
		res[i] = math.Pow(10, score/-10)
	}
	return res
}
