package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/model"
	"github.com/mmtukut/Propabridge/internal/neighborhood"
	"github.com/mmtukut/Propabridge/internal/pipeline"
	"github.com/mmtukut/Propabridge/internal/verification"
)

// ChatHandler handles conversation-turn HTTP requests. The language-model
// prose layer sits in front of this API; here a turn is pure matching.
type ChatHandler struct {
	pipeline *pipeline.Pipeline
	verifier *verification.Service
	insights *neighborhood.Service
	logger   *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(p *pipeline.Pipeline, v *verification.Service, n *neighborhood.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		pipeline: p,
		verifier: v,
		insights: n,
		logger:   logger,
	}
}

// ProcessTurn handles POST /api/v1/chat
func (h *ChatHandler) ProcessTurn(c *gin.Context) {
	var req model.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	start := time.Now()
	result, err := h.pipeline.ProcessTurn(c.Request.Context(), req.SessionID, req.Message, req.History)
	if err != nil {
		h.logger.Error("turn failed", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Turn failed: " + err.Error()})
		return
	}

	resp := model.ChatResponse{
		SessionID:       req.SessionID,
		Context:         result.Context,
		Confidence:      result.Confidence,
		Stage:           result.Stage,
		ShouldRecommend: result.ShouldRecommend,
		Recommendations: h.enrich(c, result.Matches),
		Took:            time.Since(start).Milliseconds(),
	}
	c.JSON(http.StatusOK, resp)
}

// enrich attaches verification badges and neighborhood insight to matches.
// Provider failures degrade to a bare match rather than failing the turn.
func (h *ChatHandler) enrich(c *gin.Context, matches []model.Match) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(matches))
	for _, m := range matches {
		rec := model.Recommendation{
			Property:       m.Property,
			RelevanceScore: m.RelevanceScore,
			Insight:        h.insights.Insights(m.Property),
		}
		cert, err := h.verifier.VerifyProperty(c.Request.Context(), m.Property)
		if err != nil {
			h.logger.Warn("verification lookup failed",
				zap.String("property_id", m.Property.ID), zap.Error(err))
		} else {
			rec.TrustBadge = verification.TrustBadge(cert)
		}
		recs = append(recs, rec)
	}
	return recs
}
