package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/connection"
	"github.com/mmtukut/Propabridge/internal/index"
	"github.com/mmtukut/Propabridge/internal/model"
	"github.com/mmtukut/Propabridge/internal/session"
)

// ConnectionHandler handles owner-connection requests.
type ConnectionHandler struct {
	store   *connection.Store
	tracker *session.Tracker
	index   *index.Index
	logger  *zap.Logger
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(store *connection.Store, tracker *session.Tracker, ix *index.Index, logger *zap.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		store:   store,
		tracker: tracker,
		index:   ix,
		logger:  logger,
	}
}

// Create handles POST /api/v1/connections
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req model.ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, ok := h.index.Property(req.PropertyID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	conn := h.store.Create(req)

	// A connection request is the one external action that advances a
	// session into the connection stage.
	if req.SessionID != "" {
		h.tracker.RequestConnection(req.SessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"connection_id": conn.ID,
	})
}

// Stats handles GET /api/v1/connections
func (h *ConnectionHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}
