package embedding

import (
	"context"
	"math"
	"strings"
)

// Dimension is the default embedding length shared by every vector in the
// system.
const Dimension = 384

// Embedder turns text into a fixed-length vector. Implementations must be
// deterministic for a given input, otherwise the index cannot be rebuilt
// reproducibly.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// HashEmbedder is a bag-of-words hash embedding: each whitespace token bumps
// the slot at its polynomial hash modulo the dimension, and the result is
// L2-normalized. It is a stand-in for a learned model; see OpenAIEmbedder for
// the real thing.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates a hash embedder. A non-positive dim falls back to
// the default Dimension.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = Dimension
	}
	return &HashEmbedder{dim: dim}
}

// Dimension returns the fixed vector length.
func (e *HashEmbedder) Dimension() int {
	return e.dim
}

// Embed generates the vector for text. Empty or whitespace-only input yields
// the zero vector, which callers must treat as "no similarity to anything".
func (e *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		vec[e.slot(token)]++
	}
	return normalize(vec), nil
}

// slot hashes a token with the rolling polynomial hash h = h*31 + charCode
// over signed 32-bit arithmetic, reduced modulo the dimension.
func (e *HashEmbedder) slot(token string) int {
	var h int32
	for _, r := range token {
		h = h*31 + int32(r)
	}
	s := int64(h)
	if s < 0 {
		s = -s
	}
	return int(s % int64(e.dim))
}

// normalize divides every component by the vector's Euclidean magnitude.
// A zero vector is returned unchanged.
func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	mag := math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / mag)
	}
	return vec
}
