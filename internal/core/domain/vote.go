package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one admitted ballot. It references the option only; the poll is
// reachable through the option.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	OptionID  uuid.UUID `json:"option_id"`
	CreatedAt time.Time `json:"created_at"`
}
