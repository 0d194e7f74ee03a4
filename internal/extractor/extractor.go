package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mmtukut/Propabridge/internal/model"
)

// Extractor parses free-text user input into structured preference fields.
// It is stateless; fields that no rule matches are omitted from the result so
// the tracker can tell "unknown" from an explicit override. Malformed values
// (zero or negative amounts) are likewise omitted rather than rejected:
// user text is untrusted, and partial understanding beats failure.
type Extractor struct{}

// New creates an extractor.
func New() *Extractor {
	return &Extractor{}
}

// gazetteer maps known Lagos/Abuja location mentions onto catalog tags.
// Matched case-insensitively as substrings; first match wins. Short aliases
// need word boundaries so "vi" does not fire inside "view".
var gazetteer = []struct {
	keyword string
	tag     string
}{
	{"victoria island", "victoria_island"},
	{"ikoyi", "ikoyi"},
	{"lekki", "lekki"},
	{"ajah", "ajah"},
	{"surulere", "surulere"},
	{"maitama", "maitama"},
	{"asokoro", "asokoro"},
	{"wuse", "wuse"},
	{"gwarinpa", "gwarinpa"},
	{"kubwa", "kubwa"},
}

var viAlias = regexp.MustCompile(`\bvi\b`)

// propertyTypes is ordered so that "penthouse" and "duplex" are tested before
// the bare "house" keyword they contain.
var propertyTypes = []struct {
	keyword string
	value   model.PropertyType
}{
	{"apartment", model.TypeApartment},
	{"duplex", model.TypeDuplex},
	{"penthouse", model.TypePenthouse},
	{"house", model.TypeHouse},
}

// lifestyleTags maps user keywords onto catalog lifestyle tags. Unlike the
// other rules, every match is collected.
var lifestyleTags = []struct {
	keyword string
	tag     string
}{
	{"family", "family-friendly"},
	{"security", "high-security"},
	{"safe", "high-security"},
	{"quiet", "quiet-area"},
	{"business", "business-district"},
	{"luxury", "luxury"},
	{"modern", "modern"},
}

var (
	amountPattern  = regexp.MustCompile(`(?i)(₦|\$)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)(?:\s*(million|thousand|m|k)\b)?`)
	bedroomPattern = regexp.MustCompile(`(?i)([0-9]+)[\s-]*bed(?:room)?s?\b`)
)

// Extract parses one user utterance. Multiple rules may fire on one input.
func (e *Extractor) Extract(text string) model.PreferenceContext {
	prefs := model.PreferenceContext{}
	lower := strings.ToLower(text)

	prefs.Location = extractLocation(lower)
	prefs.Budget = extractBudget(lower)
	prefs.Bedrooms = extractBedrooms(lower)

	for _, pt := range propertyTypes {
		if strings.Contains(lower, pt.keyword) {
			prefs.Type = pt.value
			break
		}
	}

	for _, lt := range lifestyleTags {
		if strings.Contains(lower, lt.keyword) && !contains(prefs.Lifestyle, lt.tag) {
			prefs.Lifestyle = append(prefs.Lifestyle, lt.tag)
		}
	}

	prefs.Urgency = extractUrgency(lower)
	return prefs
}

func extractLocation(lower string) string {
	for _, g := range gazetteer {
		if strings.Contains(lower, g.keyword) {
			return g.tag
		}
	}
	if viAlias.MatchString(lower) {
		return "victoria_island"
	}
	return ""
}

// extractBudget finds currency amounts. A bare small number with no currency
// symbol, magnitude word or thousands separator is ignored, so "3 bedroom"
// never reads as a three-naira budget. The first accepted amount is the
// ceiling; a second amount turns the pair into a min/max range.
func extractBudget(lower string) *model.Budget {
	var amounts []int64
	for _, m := range amountPattern.FindAllStringSubmatchIndex(lower, -1) {
		symbol := m[2] >= 0
		raw := lower[m[4]:m[5]]
		magnitude := ""
		if m[6] >= 0 {
			magnitude = lower[m[6]:m[7]]
		}

		// Skip the count in "3 bedroom".
		rest := strings.TrimLeft(lower[m[5]:], " -")
		if strings.HasPrefix(rest, "bed") {
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil || value <= 0 {
			continue
		}

		switch magnitude {
		case "million", "m":
			value *= 1_000_000
		case "thousand", "k":
			value *= 1_000
		}

		if !symbol && magnitude == "" && !strings.Contains(raw, ",") && value < 100_000 {
			continue
		}
		amounts = append(amounts, int64(value))
	}

	if len(amounts) == 0 {
		return nil
	}
	budget := &model.Budget{Max: amounts[0], Currency: "NGN"}
	if len(amounts) > 1 {
		lo, hi := amounts[0], amounts[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		budget.Min, budget.Max = lo, hi
	}
	return budget
}

func extractBedrooms(text string) *int {
	m := bedroomPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func extractUrgency(lower string) model.Urgency {
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "immediately") || strings.Contains(lower, "asap"):
		return model.UrgencyImmediate
	case strings.Contains(lower, "this month") || strings.Contains(lower, "within a month"):
		return model.UrgencyWithinMonth
	case strings.Contains(lower, "just looking") || strings.Contains(lower, "exploring") || strings.Contains(lower, "browsing"):
		return model.UrgencyExploring
	}
	return ""
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
