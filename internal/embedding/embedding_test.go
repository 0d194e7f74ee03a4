package embedding

import (
	"context"
	"math"
	"testing"
)

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder(Dimension)

	inputs := []string{
		"3 bedroom apartment in Lekki",
		"quiet family house victoria island",
		"price_10m penthouse",
	}

	for _, text := range inputs {
		a, err := e.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("Embed(%q) returned error: %v", text, err)
		}
		b, err := e.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("Embed(%q) returned error: %v", text, err)
		}

		if len(a) != Dimension || len(b) != Dimension {
			t.Fatalf("expected %d-dimensional vectors, got %d and %d", Dimension, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("Embed(%q) not deterministic at slot %d: %v vs %v", text, i, a[i], b[i])
			}
		}
	}
}

func TestHashEmbedder_Normalized(t *testing.T) {
	e := NewHashEmbedder(Dimension)

	tests := []struct {
		name string
		text string
	}{
		{"single token", "lekki"},
		{"repeated tokens", "pool pool pool"},
		{"full query", "3 bedroom apartment in Lekki under 10 million"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := e.Embed(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Embed returned error: %v", err)
			}

			var sum float64
			for _, v := range vec {
				sum += float64(v) * float64(v)
			}
			if mag := math.Sqrt(sum); math.Abs(mag-1.0) > 1e-5 {
				t.Errorf("expected unit magnitude, got %.8f", mag)
			}
		})
	}
}

func TestHashEmbedder_EmptyTextIsZeroVector(t *testing.T) {
	e := NewHashEmbedder(Dimension)

	for _, text := range []string{"", "   ", "\t\n"} {
		vec, err := e.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("Embed(%q) returned error: %v", text, err)
		}
		for i, v := range vec {
			if v != 0 {
				t.Fatalf("Embed(%q): expected zero vector, slot %d = %v", text, i, v)
			}
		}
	}
}

func TestHashEmbedder_CaseInsensitive(t *testing.T) {
	e := NewHashEmbedder(Dimension)

	a, _ := e.Embed(context.Background(), "Lekki Apartment")
	b, _ := e.Embed(context.Background(), "lekki apartment")

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("case should not affect embedding, slot %d differs", i)
		}
	}
}

func TestHashEmbedder_DimensionFallback(t *testing.T) {
	if got := NewHashEmbedder(0).Dimension(); got != Dimension {
		t.Errorf("expected fallback dimension %d, got %d", Dimension, got)
	}
	if got := NewHashEmbedder(128).Dimension(); got != 128 {
		t.Errorf("expected dimension 128, got %d", got)
	}
}
