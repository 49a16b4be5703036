// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// Account event actions.
const (
	ActionRegistered   = "registered"
	ActionDeregistered = "deregistered"
)

// AccountEvent is published when an account is created or deleted.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.  No credential material is ever
// included.
type AccountEvent struct {
	Action     string `json:"action"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	OccurredAt string `json:"occurred_at"`
}
