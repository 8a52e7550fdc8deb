package domain

import (
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	EndDate     *time.Time   `json:"end_date"`
	Options     []PollOption `json:"options"`
}

// PollOption belongs to exactly one poll. Position keeps the order in which
// the options were submitted.
type PollOption struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"-"`
	Text     string    `json:"text"`
	Position int       `json:"-"`
}

type OptionResult struct {
	OptionID uuid.UUID `json:"option_id"`
	Text     string    `json:"text"`
	Votes    int64     `json:"votes"`
}
