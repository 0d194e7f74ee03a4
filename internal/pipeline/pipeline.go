package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/extractor"
	"github.com/mmtukut/Propabridge/internal/index"
	"github.com/mmtukut/Propabridge/internal/model"
	"github.com/mmtukut/Propabridge/internal/session"
)

// Pipeline wires context extraction, state tracking and index search into a
// single conversation turn. It is the surface the conversational layer calls;
// everything it returns is plain data safe to encode as JSON.
type Pipeline struct {
	extractor *extractor.Extractor
	tracker   *session.Tracker
	index     *index.Index
	topK      int
	logger    *zap.Logger
}

// New creates a pipeline. A non-positive topK falls back to the index
// default.
func New(ex *extractor.Extractor, tracker *session.Tracker, ix *index.Index, topK int, logger *zap.Logger) *Pipeline {
	if topK <= 0 {
		topK = index.DefaultLimit
	}
	return &Pipeline{
		extractor: ex,
		tracker:   tracker,
		index:     ix,
		topK:      topK,
		logger:    logger,
	}
}

// ProcessTurn handles one user turn. Below the matching threshold it returns
// the updated state with no matches; past it, the index is searched with the
// accumulated context, properties already shown this session are excluded,
// and the top hit is recorded as shown. Absence of matches is an ordinary
// outcome the caller answers with a clarifying question, never an error.
// History is accepted for future extraction use and currently unused.
func (p *Pipeline) ProcessTurn(ctx context.Context, sessionID, message string, history []model.Message) (*model.TurnResult, error) {
	_ = history

	extracted := p.extractor.Extract(message)
	state := p.tracker.Update(sessionID, extracted)

	result := &model.TurnResult{
		Context:    state.Context,
		Confidence: state.Confidence,
		Stage:      state.Stage,
		Matches:    []model.Match{},
	}

	if state.Confidence <= session.MatchingThreshold || state.Stage == model.StageDiscovery {
		p.logger.Debug("gathering context",
			zap.String("session_id", sessionID),
			zap.Int("confidence", state.Confidence))
		return result, nil
	}

	matches, err := p.index.Search(ctx, message, state.Context, index.SearchOptions{
		Limit:   p.topK,
		Exclude: state.PropertiesShown,
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if len(matches) > 0 {
		p.tracker.RecordShown(sessionID, matches[0].Property.ID)
		result.ShouldRecommend = true
		result.Matches = matches
	}

	p.logger.Debug("turn processed",
		zap.String("session_id", sessionID),
		zap.Int("confidence", state.Confidence),
		zap.String("stage", string(state.Stage)),
		zap.Int("matches", len(matches)))
	return result, nil
}
