package neighborhood

import (
	"fmt"
	"strings"

	"github.com/mmtukut/Propabridge/internal/model"
)

// Data describes one neighborhood's profile and market picture.
type Data struct {
	Name           string            `json:"name"`
	Security       int               `json:"security"`       // 1-10
	Infrastructure int               `json:"infrastructure"` // 1-10
	Accessibility  int               `json:"accessibility"`  // 1-10
	AveragePrice   int64             `json:"average_price"`  // whole naira, 3BR
	PriceChange    float64           `json:"price_change"`   // percent, year over year
	Trend          model.MarketTrend `json:"trend"`
	DaysOnMarket   int               `json:"days_on_market"`
	FamilyFriendly bool              `json:"family_friendly"`
	Lifestyle      []string          `json:"lifestyle"`
}

// areas keys neighborhood profiles by the catalog's location tags.
var areas = map[string]Data{
	"victoria_island": {
		Name:           "Victoria Island",
		Security:       9,
		Infrastructure: 8,
		Accessibility:  9,
		AveragePrice:   10_000_000,
		PriceChange:    11.5,
		Trend:          model.TrendRising,
		DaysOnMarket:   18,
		FamilyFriendly: false,
		Lifestyle:      []string{"business-district", "upscale", "expatriate-friendly"},
	},
	"ikoyi": {
		Name:           "Ikoyi",
		Security:       10,
		Infrastructure: 9,
		Accessibility:  8,
		AveragePrice:   16_000_000,
		PriceChange:    9.2,
		Trend:          model.TrendRising,
		DaysOnMarket:   12,
		FamilyFriendly: true,
		Lifestyle:      []string{"luxury", "quiet-area", "diplomatic"},
	},
	"lekki": {
		Name:           "Lekki Phase 1",
		Security:       8,
		Infrastructure: 7,
		Accessibility:  7,
		AveragePrice:   8_000_000,
		PriceChange:    14.8,
		Trend:          model.TrendRising,
		DaysOnMarket:   25,
		FamilyFriendly: true,
		Lifestyle:      []string{"modern", "family-friendly", "growing-area"},
	},
	"ajah": {
		Name:           "Ajah",
		Security:       6,
		Infrastructure: 5,
		Accessibility:  5,
		AveragePrice:   4_000_000,
		PriceChange:    16.3,
		Trend:          model.TrendRising,
		DaysOnMarket:   40,
		FamilyFriendly: true,
		Lifestyle:      []string{"value", "growing-area"},
	},
	"maitama": {
		Name:           "Maitama",
		Security:       10,
		Infrastructure: 9,
		Accessibility:  9,
		AveragePrice:   13_000_000,
		PriceChange:    4.1,
		Trend:          model.TrendStable,
		DaysOnMarket:   14,
		FamilyFriendly: true,
		Lifestyle:      []string{"diplomatic", "prestigious", "quiet-area"},
	},
	"wuse": {
		Name:           "Wuse 2",
		Security:       8,
		Infrastructure: 8,
		Accessibility:  9,
		AveragePrice:   7_500_000,
		PriceChange:    6.7,
		Trend:          model.TrendStable,
		DaysOnMarket:   21,
		FamilyFriendly: false,
		Lifestyle:      []string{"business-district", "modern"},
	},
}

// Service is a static neighborhood intelligence provider.
type Service struct{}

// NewService creates the provider.
func NewService() *Service {
	return &Service{}
}

// Lookup returns the profile for a location tag.
func (s *Service) Lookup(locationTag string) (Data, bool) {
	data, ok := areas[locationTag]
	return data, ok
}

// Insights renders a free-text market insight for a property, one line per
// observation. Unknown neighborhoods yield an empty string.
func (s *Service) Insights(p model.Property) string {
	data, ok := s.Lookup(p.Location)
	if !ok {
		return ""
	}

	var lines []string
	if data.Trend == model.TrendRising {
		lines = append(lines, fmt.Sprintf("Hot market: prices in %s have risen %.1f%% this year", data.Name, data.PriceChange))
	}
	if data.FamilyFriendly && p.Bedrooms >= 3 {
		lines = append(lines, fmt.Sprintf("Family fit: %s scores %d/10 on security with family amenities nearby", data.Name, data.Security))
	}
	if data.Security >= 9 {
		lines = append(lines, fmt.Sprintf("High security: %s is among the best-protected areas (%d/10)", data.Name, data.Security))
	}
	if data.DaysOnMarket <= 15 {
		lines = append(lines, "Limited supply: listings here move fast, strong appreciation potential")
	}
	if p.Price > 0 && data.AveragePrice > 0 && p.Price < data.AveragePrice {
		lines = append(lines, fmt.Sprintf("Priced below the %s average of ₦%dm", data.Name, data.AveragePrice/1_000_000))
	}

	return strings.Join(lines, "\n")
}
