package user

import "github.com/google/uuid"

// User represents a signed-in shopper or artisan. Users live for the session
// only; there is no persistence layer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsArtisan    bool      `json:"is_artisan"`
	PasswordHash string    `json:"-"`
}
