// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published after a successful registration.  It
// carries enough information for downstream consumers (welcome mail,
// analytics) without querying the primary database.
type UserRegisteredEvent struct {
    UserID       uint64 `json:"user_id"`
    Name         string `json:"name"`
    Email        string `json:"email"`
    RegisteredAt string `json:"registered_at"`
}
