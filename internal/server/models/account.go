// Package models defines the server-side persistence models.
package models

// Account is one authenticated user of the app. ID is the stable subject id
// from the external identity provider. SessionID holds the single live
// session token; it is overwritten on every login, which invalidates the
// previous token immediately. Interactions is a snapshot written by the feed
// aggregator, not a cumulative counter.
type Account struct {
	ID           string
	SessionID    string
	CreatedAt    int64 // ms since epoch
	LastLoginAt  int64 // ms since epoch
	Interactions int64
}
