// Package domain defines the core types and interfaces for the ident service
package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Principal is the resolved caller identity for a request
// Roles are read fresh from the store on every resolve; they are never cached
// across requests
type Principal struct {
	UserID   string
	Email    string
	FullName string
	Roles    []string
}

// Session is a stored bearer session row
// a nil ExpiresAt means the session never expires
type Session struct {
	TokenHash string
	UserID    string
	ExpiresAt *time.Time
}

// ResolverPort resolves a presented bearer token into a Principal
type ResolverPort interface {
	Resolve(ctx context.Context, token string) (Principal, error)
}

// RevokerPort ends a session so the token stops resolving
type RevokerPort interface {
	Revoke(ctx context.Context, token string) error
}

// Repo abstracts the persistence surface for sessions and role lookups
type Repo interface {
	SessionByTokenHash(ctx context.Context, hash string) (Session, error)
	ProfileByUser(ctx context.Context, userID string) (email, fullName string, err error)
	RolesByUser(ctx context.Context, userID string) ([]string, error)
	DeleteSessionByTokenHash(ctx context.Context, hash string) error
}

// Ports is a convenience interface for ResolverPort and RevokerPort
type Ports interface {
	ResolverPort
	RevokerPort
}

// HashToken returns the lowercase hex sha256 of a bearer token
// only hashes are stored; the raw token never touches the database
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
