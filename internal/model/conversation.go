package model

import "time"

// Stage is the conversation's current phase. Discovery through verification
// are derived from confidence; connection is reached only by an explicit
// user connection request.
type Stage string

const (
	StageDiscovery    Stage = "discovery"
	StageMatching     Stage = "matching"
	StageVerification Stage = "verification"
	StageConnection   Stage = "connection"
)

// ConversationState tracks one chat session.
type ConversationState struct {
	SessionID       string            `json:"session_id"`
	Context         PreferenceContext `json:"context"`
	Confidence      int               `json:"confidence"` // 0-100
	Stage           Stage             `json:"stage"`
	PropertiesShown []string          `json:"properties_shown"`
	Turns           int               `json:"turns"`
	LastInteraction time.Time         `json:"last_interaction"`
}

// Clone returns a deep copy safe to hand to callers.
func (s ConversationState) Clone() ConversationState {
	out := s
	out.Context = s.Context.Clone()
	if s.PropertiesShown != nil {
		out.PropertiesShown = append([]string(nil), s.PropertiesShown...)
	}
	return out
}
