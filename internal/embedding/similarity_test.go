package embedding

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestCosine_Bounds(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cosine returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine = %v, want %v", got, tt.want)
			}
			if got < -1 || got > 1 {
				t.Errorf("Cosine = %v out of [-1, 1]", got)
			}
		})
	}
}

func TestCosine_SelfSimilarityOfEmbedding(t *testing.T) {
	e := NewHashEmbedder(Dimension)
	vec, _ := e.Embed(context.Background(), "modern apartment with pool")

	got, err := Cosine(vec, vec)
	if err != nil {
		t.Fatalf("Cosine returned error: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("self-similarity = %v, want 1", got)
	}
}

func TestCosine_ZeroMagnitudeIsZero(t *testing.T) {
	zero := make([]float32, 4)
	other := []float32{1, 2, 3, 4}

	for _, pair := range [][2][]float32{{zero, other}, {other, zero}, {zero, zero}} {
		got, err := Cosine(pair[0], pair[1])
		if err != nil {
			t.Fatalf("Cosine returned error: %v", err)
		}
		if got != 0 {
			t.Errorf("zero-magnitude similarity = %v, want 0", got)
		}
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 2}, []float32{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
