package model

// Budget is a currency-tagged price range in whole naira. Min defaults to 0
// unless the user supplies a second amount.
type Budget struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Urgency describes how soon the user wants to move.
type Urgency string

const (
	UrgencyImmediate   Urgency = "immediate"
	UrgencyWithinMonth Urgency = "within_month"
	UrgencyExploring   Urgency = "exploring"
)

// PreferenceContext accumulates structured preferences across conversation
// turns. Zero values mean "unknown"; extraction never writes sentinel
// defaults, so the merge step can tell an omission from an override.
type PreferenceContext struct {
	Location  string       `json:"location,omitempty"`
	Budget    *Budget      `json:"budget,omitempty"`
	Bedrooms  *int         `json:"bedrooms,omitempty"` // minimum desired
	Type      PropertyType `json:"property_type,omitempty"`
	Lifestyle []string     `json:"lifestyle,omitempty"`
	Urgency   Urgency      `json:"urgency,omitempty"`
}

// Merge overlays non-omitted fields from update onto c. Omitted fields leave
// prior values untouched.
func (c *PreferenceContext) Merge(update PreferenceContext) {
	if update.Location != "" {
		c.Location = update.Location
	}
	if update.Budget != nil {
		b := *update.Budget
		c.Budget = &b
	}
	if update.Bedrooms != nil {
		n := *update.Bedrooms
		c.Bedrooms = &n
	}
	if update.Type != "" {
		c.Type = update.Type
	}
	if len(update.Lifestyle) > 0 {
		c.Lifestyle = append([]string(nil), update.Lifestyle...)
	}
	if update.Urgency != "" {
		c.Urgency = update.Urgency
	}
}

// Clone returns a deep copy safe to hand to callers.
func (c PreferenceContext) Clone() PreferenceContext {
	out := c
	if c.Budget != nil {
		b := *c.Budget
		out.Budget = &b
	}
	if c.Bedrooms != nil {
		n := *c.Bedrooms
		out.Bedrooms = &n
	}
	if c.Lifestyle != nil {
		out.Lifestyle = append([]string(nil), c.Lifestyle...)
	}
	return out
}
