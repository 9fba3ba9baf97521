package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered client of the service. Authentication is
// name + password only; no sessions or tokens are issued.
type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
