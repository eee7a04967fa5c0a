package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer token. The booking core never sees it; the
// auth middleware resolves it to a user id before any service runs.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
