package embedding

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch signals that vectors of unequal length were compared.
// It indicates a corrupted or mixed-dimension index and is not recoverable
// for that index instance.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Cosine returns the cosine similarity of two equal-length vectors, in
// [-1, 1]. If either input has zero magnitude the result is 0, not NaN, so a
// degenerate vector ranks last instead of crashing the comparison.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
