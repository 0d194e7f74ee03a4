package neighborhood

import (
	"strings"
	"testing"

	"github.com/mmtukut/Propabridge/internal/model"
)

func TestLookup(t *testing.T) {
	s := NewService()

	data, ok := s.Lookup("lekki")
	if !ok {
		t.Fatal("expected lekki profile")
	}
	if data.Name != "Lekki Phase 1" {
		t.Errorf("Name = %q, want Lekki Phase 1", data.Name)
	}

	if _, ok := s.Lookup("atlantis"); ok {
		t.Error("unknown area should not resolve")
	}
}

func TestInsights_UnknownAreaIsEmpty(t *testing.T) {
	s := NewService()
	if got := s.Insights(model.Property{Location: "atlantis"}); got != "" {
		t.Errorf("expected empty insight, got %q", got)
	}
}

func TestInsights_Observations(t *testing.T) {
	s := NewService()

	tests := []struct {
		name     string
		property model.Property
		contains []string
		excludes []string
	}{
		{
			name:     "rising family area",
			property: model.Property{Location: "lekki", Bedrooms: 3, Price: 7_500_000},
			contains: []string{"Hot market", "Family fit", "below the Lekki Phase 1 average"},
			excludes: []string{"High security", "Limited supply"},
		},
		{
			name:     "small unit skips family fit",
			property: model.Property{Location: "lekki", Bedrooms: 1, Price: 9_000_000},
			excludes: []string{"Family fit"},
		},
		{
			name:     "secure fast-moving market",
			property: model.Property{Location: "ikoyi", Bedrooms: 4, Price: 18_000_000},
			contains: []string{"High security", "Limited supply"},
			excludes: []string{"Priced below"},
		},
		{
			name:     "stable market skips hot market line",
			property: model.Property{Location: "wuse", Bedrooms: 2, Price: 9_800_000},
			excludes: []string{"Hot market"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Insights(tt.property)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("insight missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("insight should not contain %q:\n%s", bad, got)
				}
			}
		})
	}
}
