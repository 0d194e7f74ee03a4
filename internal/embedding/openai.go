package embedding

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIEmbedder generates embeddings through the OpenAI embeddings API. It
// is the learned-model alternative to HashEmbedder; the rest of the pipeline
// does not care which one it is given.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
	dim    int
	logger *zap.Logger
}

// NewOpenAIEmbedder creates an API-backed embedder. The requested dimension
// must be supported by the chosen model.
func NewOpenAIEmbedder(apiKey, model string, dim int, logger *zap.Logger) *OpenAIEmbedder {
	if dim <= 0 {
		dim = Dimension
	}
	return &OpenAIEmbedder{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
		dim:    dim,
		logger: logger,
	}
}

// Dimension returns the fixed vector length.
func (e *OpenAIEmbedder) Dimension() int {
	return e.dim
}

// Embed requests an embedding for text from the API.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input:      []string{text},
		Model:      e.model,
		Dimensions: e.dim,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("create embedding: empty response")
	}

	vec := resp.Data[0].Embedding
	if len(vec) != e.dim {
		return nil, fmt.Errorf("%w: model returned %d, index expects %d", ErrDimensionMismatch, len(vec), e.dim)
	}

	e.logger.Debug("embedded text",
		zap.String("model", string(e.model)),
		zap.Int("dimension", len(vec)))
	return vec, nil
}
