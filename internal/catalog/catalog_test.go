package catalog

import (
	"context"
	"testing"

	"github.com/mmtukut/Propabridge/internal/model"
)

func TestStaticLoader_Load(t *testing.T) {
	loader := NewStaticLoader()

	properties, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(properties) != 6 {
		t.Fatalf("got %d properties, want 6", len(properties))
	}

	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		if p.ID == "" {
			t.Error("property with empty id")
		}
		if seen[p.ID] {
			t.Errorf("duplicate property id %s", p.ID)
		}
		seen[p.ID] = true

		if p.Price <= 0 {
			t.Errorf("%s: price = %d, want positive", p.ID, p.Price)
		}
		if p.Currency != "NGN" {
			t.Errorf("%s: currency = %q, want NGN", p.ID, p.Currency)
		}
		if p.Bedrooms <= 0 {
			t.Errorf("%s: bedrooms = %d, want positive", p.ID, p.Bedrooms)
		}
		if p.Location == "" || p.Type == "" {
			t.Errorf("%s: missing location or type", p.ID)
		}
	}

	// Insertion order is the ranking tiebreak, so the flagship listing
	// stays first.
	if properties[0].ID != "vi_001" {
		t.Errorf("first property = %s, want vi_001", properties[0].ID)
	}
}

func TestStaticLoader_ReturnsCopies(t *testing.T) {
	loader := NewStaticLoader()

	first, _ := loader.Load(context.Background())
	first[0].Price = 1
	first[0].Type = model.TypeDuplex

	second, _ := loader.Load(context.Background())
	if second[0].Price == 1 {
		t.Error("mutating a loaded slice leaked into the seed data")
	}
}

func TestSeed_VerifiedPropertiesCarryCertificates(t *testing.T) {
	loader := NewStaticLoader()
	properties, _ := loader.Load(context.Background())

	for _, p := range properties {
		if p.Verification.IsVerified && p.Verification.CertificateID == "" {
			t.Errorf("%s: verified without a certificate id", p.ID)
		}
		if !p.Verification.IsVerified && p.Verification.TrustScore != 0 {
			t.Errorf("%s: unverified with a trust score", p.ID)
		}
	}
}
