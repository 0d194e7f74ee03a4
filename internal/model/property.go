package model

import (
	"database/sql/driver"
	"encoding/json"
)

// PropertyType enumerates the supported listing types.
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeDuplex    PropertyType = "duplex"
	TypePenthouse PropertyType = "penthouse"
)

// MarketTrend describes the direction of prices in a property's area.
type MarketTrend string

const (
	TrendRising    MarketTrend = "rising"
	TrendStable    MarketTrend = "stable"
	TrendDeclining MarketTrend = "declining"
)

// Verification carries the metadata attached by the external verification
// provider. Only the certificate reference is owned here; the certificate
// itself lives with the provider.
type Verification struct {
	IsVerified    bool   `json:"is_verified"`
	TrustScore    int    `json:"trust_score,omitempty"` // 0-100
	CertificateID string `json:"certificate_id,omitempty"`
}

// MarketData holds market metadata for a listing.
type MarketData struct {
	PricePerSqft int64       `json:"price_per_sqft"`
	Trend        MarketTrend `json:"trend"`
	DaysOnMarket int         `json:"days_on_market"`
}

// Property represents one listing. Records are immutable after catalog load;
// any update is a full record replacement followed by a re-index.
type Property struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	Location     string       `json:"location"` // neighborhood tag, e.g. "victoria_island"
	Price        int64        `json:"price"`    // whole naira
	Currency     string       `json:"currency"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    float64      `json:"bathrooms"`
	SizeSqft     float64      `json:"size_sqft"`
	Type         PropertyType `json:"property_type"`
	Amenities    JSONArray    `json:"amenities,omitempty"`
	Lifestyle    JSONArray    `json:"lifestyle,omitempty"`
	Verification Verification `json:"verification"`
	Market       MarketData   `json:"market_data"`
}

// Match pairs a property with its semantic relevance to a query.
type Match struct {
	Property       Property `json:"property"`
	RelevanceScore float64  `json:"relevance_score"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
