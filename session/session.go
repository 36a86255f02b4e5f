// Package session stores the server side of the login session: an opaque
// session id handed to the browser in a cookie, mapped to a user id here.
package session

import (
	"context"
	"time"
)

// DefaultTTL is how long a login session stays valid without renewal.
const DefaultTTL = 24 * time.Hour

// Store maps opaque session ids to user ids. Get returns an empty user id
// when the session does not exist or has expired.
type Store interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
