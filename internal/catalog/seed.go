package catalog

import "github.com/mmtukut/Propabridge/internal/model"

// seedProperties is the demo catalog of premium Lagos and Abuja listings.
// Prices are whole naira. Order matters: the index uses catalog insertion
// order to break ranking ties.
var seedProperties = []model.Property{
	{
		ID:        "vi_001",
		Address:   "15 Akin Adesola Street, Victoria Island",
		Location:  "victoria_island",
		Price:     12_000_000,
		Currency:  "NGN",
		Bedrooms:  3,
		Bathrooms: 3,
		SizeSqft:  2100,
		Type:      model.TypeApartment,
		Amenities: model.JSONArray{"swimming_pool", "gym", "24hr_security", "generator", "parking"},
		Lifestyle: model.JSONArray{"business-district", "upscale", "expatriate-friendly"},
		Verification: model.Verification{
			IsVerified:    true,
			TrustScore:    95,
			CertificateID: "5xK9mN2p",
		},
		Market: model.MarketData{PricePerSqft: 5714, Trend: model.TrendRising, DaysOnMarket: 15},
	},
	{
		ID:        "ikoyi_001",
		Address:   "Plot 45 Bourdillon Road, Ikoyi",
		Location:  "ikoyi",
		Price:     18_000_000,
		Currency:  "NGN",
		Bedrooms:  4,
		Bathrooms: 4,
		SizeSqft:  2800,
		Type:      model.TypeApartment,
		Amenities: model.JSONArray{"swimming_pool", "gym", "24hr_security", "generator", "parking", "elevator"},
		Lifestyle: model.JSONArray{"luxury", "quiet-area", "diplomatic"},
		Verification: model.Verification{
			IsVerified:    true,
			TrustScore:    98,
			CertificateID: "7yM3pQ8r",
		},
		Market: model.MarketData{PricePerSqft: 6429, Trend: model.TrendRising, DaysOnMarket: 8},
	},
	{
		ID:        "lekki_001",
		Address:   "Block 12 Lekki Phase 1, Lagos",
		Location:  "lekki",
		Price:     8_500_000,
		Currency:  "NGN",
		Bedrooms:  3,
		Bathrooms: 2,
		SizeSqft:  1900,
		Type:      model.TypeApartment,
		Amenities: model.JSONArray{"swimming_pool", "gym", "24hr_security", "generator", "parking"},
		Lifestyle: model.JSONArray{"modern", "family-friendly", "growing-area"},
		Verification: model.Verification{
			IsVerified:    true,
			TrustScore:    92,
			CertificateID: "3wL7kR5t",
		},
		Market: model.MarketData{PricePerSqft: 4474, Trend: model.TrendRising, DaysOnMarket: 22},
	},
	{
		ID:        "maitama_001",
		Address:   "Plot 789 Maitama District, Abuja",
		Location:  "maitama",
		Price:     15_000_000,
		Currency:  "NGN",
		Bedrooms:  4,
		Bathrooms: 3,
		SizeSqft:  2500,
		Type:      model.TypeHouse,
		Amenities: model.JSONArray{"swimming_pool", "garden", "24hr_security", "generator", "parking"},
		Lifestyle: model.JSONArray{"diplomatic", "prestigious", "quiet-area"},
		Verification: model.Verification{
			IsVerified:    true,
			TrustScore:    97,
			CertificateID: "9zN5sT2u",
		},
		Market: model.MarketData{PricePerSqft: 6000, Trend: model.TrendStable, DaysOnMarket: 12},
	},
	{
		ID:        "ajah_001",
		Address:   "4 Addo Road, Ajah, Lagos",
		Location:  "ajah",
		Price:     4_200_000,
		Currency:  "NGN",
		Bedrooms:  3,
		Bathrooms: 3,
		SizeSqft:  2200,
		Type:      model.TypeDuplex,
		Amenities: model.JSONArray{"generator", "parking", "gated_estate"},
		Lifestyle: model.JSONArray{"family-friendly", "growing-area", "value"},
		Verification: model.Verification{
			IsVerified: false,
		},
		Market: model.MarketData{PricePerSqft: 1909, Trend: model.TrendRising, DaysOnMarket: 41},
	},
	{
		ID:        "wuse_001",
		Address:   "22 Aminu Kano Crescent, Wuse 2, Abuja",
		Location:  "wuse",
		Price:     9_800_000,
		Currency:  "NGN",
		Bedrooms:  3,
		Bathrooms: 3,
		SizeSqft:  2000,
		Type:      model.TypePenthouse,
		Amenities: model.JSONArray{"gym", "24hr_security", "generator", "parking", "elevator"},
		Lifestyle: model.JSONArray{"business-district", "modern", "high-security"},
		Verification: model.Verification{
			IsVerified:    true,
			TrustScore:    88,
			CertificateID: "2qP6vW4x",
		},
		Market: model.MarketData{PricePerSqft: 4900, Trend: model.TrendStable, DaysOnMarket: 19},
	},
}
