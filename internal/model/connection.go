package model

import "time"

// ConnectionRequest asks to be put in contact with a property's owner.
type ConnectionRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	PropertyID string `json:"property_id" binding:"required"`
	SessionID  string `json:"session_id,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Connection is a stored connection request.
type Connection struct {
	ID string `json:"id"`
	ConnectionRequest
	Status    string    `json:"status"` // pending, accepted, declined
	CreatedAt time.Time `json:"created_at"`
}

// ConnectionStats summarizes connection activity for the internal dashboard.
type ConnectionStats struct {
	Total   int          `json:"total_connections"`
	Pending int          `json:"pending_connections"`
	Recent  []Connection `json:"recent_connections"`
}
