package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Authentication is deliberately thin: email,
// bcrypt hash, nothing else.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
