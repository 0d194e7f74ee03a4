package model

// Message is one prior exchange supplied by the conversational layer.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnRequest represents one user turn of a chat session.
type TurnRequest struct {
	SessionID string    `json:"session_id" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	History   []Message `json:"history,omitempty"`
}

// TurnResult is the outcome of processing a single turn. An empty match list
// is a valid, common outcome that the conversational layer handles by asking
// another clarifying question.
type TurnResult struct {
	Context         PreferenceContext `json:"context"`
	Confidence      int               `json:"confidence"`
	Stage           Stage             `json:"stage"`
	ShouldRecommend bool              `json:"should_recommend"`
	Matches         []Match           `json:"matches"`
}

// Recommendation is a match enriched with verification and neighborhood
// insight for presentation.
type Recommendation struct {
	Property       Property `json:"property"`
	RelevanceScore float64  `json:"relevance_score"`
	TrustBadge     string   `json:"trust_badge,omitempty"`
	Insight        string   `json:"insight,omitempty"`
}

// ChatResponse is the wire shape returned by the chat endpoint.
type ChatResponse struct {
	SessionID       string            `json:"session_id"`
	Context         PreferenceContext `json:"context"`
	Confidence      int               `json:"confidence"`
	Stage           Stage             `json:"stage"`
	ShouldRecommend bool              `json:"should_recommend"`
	Recommendations []Recommendation  `json:"recommendations"`
	Took            int64             `json:"took_ms"`
}
