package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmtukut/Propabridge/internal/index"
	"github.com/mmtukut/Propabridge/internal/neighborhood"
	"github.com/mmtukut/Propabridge/internal/verification"
)

// PropertyHandler serves catalog lookups off the built index.
type PropertyHandler struct {
	index    *index.Index
	verifier *verification.Service
	insights *neighborhood.Service
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(ix *index.Index, v *verification.Service, n *neighborhood.Service) *PropertyHandler {
	return &PropertyHandler{index: ix, verifier: v, insights: n}
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	properties := h.index.Properties()
	c.JSON(http.StatusOK, gin.H{
		"properties": properties,
		"total":      len(properties),
	})
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	property, ok := h.index.Property(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	cert, err := h.verifier.VerifyProperty(c.Request.Context(), property)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification lookup failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property":    property,
		"certificate": cert,
		"trust_badge": verification.TrustBadge(cert),
		"insight":     h.insights.Insights(property),
	})
}
