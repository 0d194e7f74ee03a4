package catalog

import (
	"context"

	"github.com/mmtukut/Propabridge/internal/model"
)

// Loader supplies the property catalog at startup. The matching core treats
// the loader as an external collaborator; records it returns are immutable.
type Loader interface {
	Load(ctx context.Context) ([]model.Property, error)
}

// StaticLoader serves the built-in Lagos/Abuja demo catalog.
type StaticLoader struct{}

// NewStaticLoader creates a loader over the embedded seed data.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{}
}

// Load returns a fresh copy of the seed catalog.
func (l *StaticLoader) Load(_ context.Context) ([]model.Property, error) {
	out := make([]model.Property, len(seedProperties))
	copy(out, seedProperties)
	return out, nil
}
