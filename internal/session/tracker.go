package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/model"
)

// Confidence weights. They sum to 100, so the score doubles as a percentage
// of how completely the user's requirements are understood.
const (
	weightLocation  = 30
	weightBudget    = 25
	weightBedrooms  = 20
	weightType      = 15
	weightLifestyle = 10
)

// MatchingThreshold is the confidence above which the conversation moves from
// discovery into matching.
const MatchingThreshold = 50

// Tracker owns per-session conversation state. Mutations are serialized
// through the store mutex; sessions are otherwise fully independent, and
// evicting one never disturbs another.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*model.ConversationState
	logger   *zap.Logger
}

// NewTracker creates an empty tracker.
func NewTracker(logger *zap.Logger) *Tracker {
	return &Tracker{
		sessions: make(map[string]*model.ConversationState),
		logger:   logger,
	}
}

// GetOrCreate returns a copy of the session's state, initializing a fresh
// one on first use.
func (t *Tracker) GetOrCreate(sessionID string) model.ConversationState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getOrCreateLocked(sessionID).Clone()
}

// Get returns a copy of the session's state without creating one.
func (t *Tracker) Get(sessionID string) (model.ConversationState, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state, ok := t.sessions[sessionID]
	if !ok {
		return model.ConversationState{}, false
	}
	return state.Clone(), true
}

// Update merges the extracted context into the session, recomputes confidence
// and stage, bumps the turn counter and returns the new state.
func (t *Tracker) Update(sessionID string, extracted model.PreferenceContext) model.ConversationState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.getOrCreateLocked(sessionID)
	state.Context.Merge(extracted)
	state.Confidence = Confidence(state.Context)
	if derived := StageFor(state.Confidence); stageRank(derived) > stageRank(state.Stage) {
		state.Stage = derived
	}
	state.Turns++
	state.LastInteraction = time.Now()

	t.logger.Debug("session updated",
		zap.String("session_id", sessionID),
		zap.Int("confidence", state.Confidence),
		zap.String("stage", string(state.Stage)),
		zap.Int("turns", state.Turns))
	return state.Clone()
}

// RecordShown appends a property id to the session's shown list. Recording an
// already-present id is a no-op.
func (t *Tracker) RecordShown(sessionID, propertyID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.getOrCreateLocked(sessionID)
	for _, id := range state.PropertiesShown {
		if id == propertyID {
			return
		}
	}
	state.PropertiesShown = append(state.PropertiesShown, propertyID)
}

// RequestConnection moves the session into the connection stage. This is the
// only way to reach it; confidence alone never does, and the transition is
// one-way.
func (t *Tracker) RequestConnection(sessionID string) model.ConversationState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.getOrCreateLocked(sessionID)
	state.Stage = model.StageConnection
	state.LastInteraction = time.Now()
	return state.Clone()
}

// Evict removes a session's state. Unknown ids are a no-op, not an error.
func (t *Tracker) Evict(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, sessionID)
}

// Len reports the number of live sessions.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}

func (t *Tracker) getOrCreateLocked(sessionID string) *model.ConversationState {
	if state, ok := t.sessions[sessionID]; ok {
		return state
	}
	state := &model.ConversationState{
		SessionID:       sessionID,
		Stage:           model.StageDiscovery,
		PropertiesShown: []string{},
		LastInteraction: time.Now(),
	}
	t.sessions[sessionID] = state
	return state
}

// Confidence scores how completely the context is populated, 0-100.
func Confidence(c model.PreferenceContext) int {
	score := 0
	if c.Location != "" {
		score += weightLocation
	}
	if c.Budget != nil {
		score += weightBudget
	}
	if c.Bedrooms != nil {
		score += weightBedrooms
	}
	if c.Type != "" {
		score += weightType
	}
	if len(c.Lifestyle) > 0 {
		score += weightLifestyle
	}
	return score
}

// StageFor derives the conversation stage from confidence. The connection
// stage is never derived; see Tracker.RequestConnection.
func StageFor(confidence int) model.Stage {
	switch {
	case confidence > 80:
		return model.StageVerification
	case confidence > MatchingThreshold:
		return model.StageMatching
	default:
		return model.StageDiscovery
	}
}

func stageRank(s model.Stage) int {
	switch s {
	case model.StageMatching:
		return 1
	case model.StageVerification:
		return 2
	case model.StageConnection:
		return 3
	default:
		return 0
	}
}
