package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/catalog"
	"github.com/mmtukut/Propabridge/internal/index"
)

// EmbeddingSaver persists computed vectors back to the catalog backend. The
// Postgres repository implements it; the static loader does not.
type EmbeddingSaver interface {
	SaveEmbeddings(ctx context.Context, embeddings map[string][]float32) (int, []string)
}

// AdminHandler exposes catalog maintenance operations.
type AdminHandler struct {
	loader catalog.Loader
	index  *index.Index
	saver  EmbeddingSaver // nil when the backend cannot persist embeddings
	logger *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(loader catalog.Loader, ix *index.Index, saver EmbeddingSaver, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		loader: loader,
		index:  ix,
		saver:  saver,
		logger: logger,
	}
}

// Reindex handles POST /api/v1/admin/reindex. It reloads the catalog, rebuilds
// the vector index and, when the backend supports it, writes the fresh
// embeddings back.
func (h *AdminHandler) Reindex(c *gin.Context) {
	ctx := c.Request.Context()

	properties, err := h.loader.Load(ctx)
	if err != nil {
		h.logger.Error("catalog reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog reload failed: " + err.Error()})
		return
	}

	if err := h.index.Build(ctx, properties); err != nil {
		h.logger.Error("index rebuild failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Index rebuild failed: " + err.Error()})
		return
	}

	resp := gin.H{
		"success":    true,
		"properties": h.index.Len(),
	}
	if h.saver != nil {
		saved, errs := h.saver.SaveEmbeddings(ctx, h.index.Embeddings())
		resp["embeddings_saved"] = saved
		if len(errs) > 0 {
			h.logger.Warn("some embeddings failed to persist", zap.Strings("errors", errs))
			resp["embedding_errors"] = errs
		}
	}
	c.JSON(http.StatusOK, resp)
}
