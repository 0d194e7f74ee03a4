package index

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/embedding"
	"github.com/mmtukut/Propabridge/internal/model"
)

// DefaultLimit is the top-K returned when the caller does not ask for a
// specific result count.
const DefaultLimit = 3

// Index is the in-memory vector store over the property catalog. It is built
// once at startup and thereafter read-only; Build swaps in a complete
// replacement, so concurrent searches see either the old or the new index,
// never a mix.
type Index struct {
	embedder embedding.Embedder
	logger   *zap.Logger

	mu      sync.RWMutex
	entries []entry // catalog insertion order, preserved for stable tiebreaks
	byID    map[string]int
}

type entry struct {
	property model.Property
	vector   []float32
}

// SearchOptions tunes a single search call.
type SearchOptions struct {
	Limit   int      // top-K; non-positive falls back to DefaultLimit
	Exclude []string // property ids rejected outright, e.g. already shown
}

// New creates an empty index over the given embedder.
func New(embedder embedding.Embedder, logger *zap.Logger) *Index {
	return &Index{
		embedder: embedder,
		logger:   logger,
		byID:     map[string]int{},
	}
}

// Build embeds every record and atomically replaces the index contents.
func (ix *Index) Build(ctx context.Context, properties []model.Property) error {
	entries := make([]entry, 0, len(properties))
	byID := make(map[string]int, len(properties))

	for _, p := range properties {
		vec, err := ix.embedder.Embed(ctx, searchText(p))
		if err != nil {
			return fmt.Errorf("embed property %s: %w", p.ID, err)
		}
		byID[p.ID] = len(entries)
		entries = append(entries, entry{property: p, vector: vec})
	}

	ix.mu.Lock()
	ix.entries = entries
	ix.byID = byID
	ix.mu.Unlock()

	ix.logger.Info("property index built",
		zap.Int("properties", len(entries)),
		zap.Int("dimension", ix.embedder.Dimension()))
	return nil
}

// Len returns the number of indexed properties.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Property looks up an indexed record by id.
func (ix *Index) Property(id string) (model.Property, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	i, ok := ix.byID[id]
	if !ok {
		return model.Property{}, false
	}
	return ix.entries[i].property, true
}

// Properties returns every indexed record in catalog order.
func (ix *Index) Properties() []model.Property {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]model.Property, len(ix.entries))
	for i, e := range ix.entries {
		out[i] = e.property
	}
	return out
}

// Embeddings returns a copy of every stored vector keyed by property id, for
// persistence by a catalog backend.
func (ix *Index) Embeddings() map[string][]float32 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make(map[string][]float32, len(ix.entries))
	for _, e := range ix.entries {
		vec := make([]float32, len(e.vector))
		copy(vec, e.vector)
		out[e.property.ID] = vec
	}
	return out
}

// Search embeds the query together with the accumulated context, scores every
// record, applies the hard filters and returns at most opts.Limit matches in
// descending relevance order. Ties keep catalog insertion order. An empty
// result is ordinary, not an error.
func (ix *Index) Search(ctx context.Context, query string, prefs model.PreferenceContext, opts SearchOptions) ([]model.Match, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	qvec, err := ix.embedder.Embed(ctx, queryText(query, prefs))
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, id := range opts.Exclude {
		excluded[id] = true
	}

	ix.mu.RLock()
	entries := ix.entries
	ix.mu.RUnlock()

	matches := make([]model.Match, 0, len(entries))
	for _, e := range entries {
		if excluded[e.property.ID] || !matchesContext(e.property, prefs) {
			continue
		}
		score, err := embedding.Cosine(qvec, e.vector)
		if err != nil {
			return nil, fmt.Errorf("score property %s: %w", e.property.ID, err)
		}
		matches = append(matches, model.Match{Property: e.property, RelevanceScore: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// matchesContext applies the hard filters. A record failing any active
// filter is excluded entirely, regardless of semantic score.
func matchesContext(p model.Property, prefs model.PreferenceContext) bool {
	if prefs.Location != "" && !strings.Contains(p.Location, normalizeTag(prefs.Location)) {
		return false
	}
	if prefs.Budget != nil && prefs.Budget.Max > 0 && p.Price > prefs.Budget.Max {
		return false
	}
	if prefs.Bedrooms != nil && p.Bedrooms < *prefs.Bedrooms {
		return false
	}
	if prefs.Type != "" && p.Type != prefs.Type {
		return false
	}
	return true
}

// searchText derives the text embedded for one record: address, location tag,
// type, amenities, lifestyle tags, a bedroom label and a bucketed price label.
func searchText(p model.Property) string {
	parts := make([]string, 0, 6+len(p.Amenities)+len(p.Lifestyle))
	parts = append(parts, p.Address, p.Location, string(p.Type))
	parts = append(parts, p.Amenities...)
	parts = append(parts, p.Lifestyle...)
	parts = append(parts, bedroomLabel(p.Bedrooms), priceLabel(p.Price))
	return strings.Join(parts, " ")
}

// queryText builds the query-side text with the same recipe as searchText,
// substituting context fields for record fields.
func queryText(query string, prefs model.PreferenceContext) string {
	parts := []string{query}
	if prefs.Location != "" {
		parts = append(parts, normalizeTag(prefs.Location))
	}
	if prefs.Type != "" {
		parts = append(parts, string(prefs.Type))
	}
	parts = append(parts, prefs.Lifestyle...)
	if prefs.Bedrooms != nil {
		parts = append(parts, bedroomLabel(*prefs.Bedrooms))
	}
	if prefs.Budget != nil && prefs.Budget.Max > 0 {
		parts = append(parts, priceLabel(prefs.Budget.Max))
	}
	return strings.Join(parts, " ")
}

func bedroomLabel(n int) string {
	return fmt.Sprintf("%dbedroom", n)
}

func priceLabel(price int64) string {
	return fmt.Sprintf("price_%dm", price/1_000_000)
}

// normalizeTag maps free-form location text onto the underscored tag form
// used by the catalog ("victoria island" -> "victoria_island").
func normalizeTag(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
