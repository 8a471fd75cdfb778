// Package domain contains the core data types for the Travel Planner
// application. This package has zero internal dependencies and is imported
// by every other internal package (store, repo, service, handler).
//
// JSON tags are camelCase because records are persisted as JSON documents
// and the store's secondary indexes are declared over these field names.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Email is unique across all users.
// PasswordHash is an opaque bcrypt digest; this layer stores it, the auth
// package computes and verifies it.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
