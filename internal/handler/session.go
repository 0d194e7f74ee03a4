package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmtukut/Propabridge/internal/session"
)

// SessionHandler exposes conversation-state inspection and eviction.
type SessionHandler struct {
	tracker *session.Tracker
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(tracker *session.Tracker) *SessionHandler {
	return &SessionHandler{tracker: tracker}
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	state, ok := h.tracker.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Evict handles DELETE /api/v1/sessions/:id. Evicting an unknown session is
// still a success.
func (h *SessionHandler) Evict(c *gin.Context) {
	h.tracker.Evict(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
