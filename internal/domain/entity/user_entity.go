package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash; the plaintext is never persisted.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	FirstName string
	LastName  string
	Location  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
