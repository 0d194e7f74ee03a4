package connection

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmtukut/Propabridge/internal/model"
)

// StatusPending is the initial status of every connection request.
const StatusPending = "pending"

// recentLimit caps how many connections the stats endpoint echoes back.
const recentLimit = 10

// Store keeps connection requests in memory, scoped to the process lifetime.
// A real deployment would notify the property owner and persist the record;
// this core only guarantees the request is captured and countable.
type Store struct {
	mu          sync.RWMutex
	connections []model.Connection
	logger      *zap.Logger
}

// NewStore creates an empty store.
func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// Create records a connection request and returns the stored connection.
func (s *Store) Create(req model.ConnectionRequest) model.Connection {
	conn := model.Connection{
		ID:                uuid.NewString(),
		ConnectionRequest: req,
		Status:            StatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	s.mu.Lock()
	s.connections = append(s.connections, conn)
	s.mu.Unlock()

	s.logger.Info("connection request created",
		zap.String("connection_id", conn.ID),
		zap.String("property_id", req.PropertyID))
	return conn
}

// Stats summarizes connection activity.
func (s *Store) Stats() model.ConnectionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.ConnectionStats{Total: len(s.connections)}
	for _, c := range s.connections {
		if c.Status == StatusPending {
			stats.Pending++
		}
	}

	start := len(s.connections) - recentLimit
	if start < 0 {
		start = 0
	}
	stats.Recent = append([]model.Connection(nil), s.connections[start:]...)
	return stats
}
