package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

// Column widths of polls.title and poll_options.text.
const (
	maxTitleLength  = 200
	maxOptionLength = 200
)

// Layouts accepted for end_date, tried in order. Values without an offset are
// read as UTC.
var endDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, domain.NewValidationError("title", "is too long")
	}

	endDate, err := parseEndDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	if len(input.Options) == 0 {
		return nil, domain.NewValidationError("options", "at least one option is required")
	}

	pollID := uuid.New()
	poll := &domain.Poll{
		ID:          pollID,
		Title:       title,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		EndDate:     &endDate,
		Options:     make([]domain.PollOption, 0, len(input.Options)),
	}

	for i, optText := range input.Options {
		text := strings.TrimSpace(optText)
		if text == "" {
			return nil, domain.NewValidationError("options", "option text must not be empty")
		}
		if utf8.RuneCountInString(text) > maxOptionLength {
			return nil, domain.NewValidationError("options", "option text is too long")
		}
		poll.Options = append(poll.Options, domain.PollOption{
			ID:       uuid.New(),
			PollID:   pollID,
			Text:     text,
			Position: i,
		})
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewValidationError("poll_id", "invalid poll id")
	}

	return s.repo.GetByID(ctx, pollID)
}

func (s *pollService) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	polls, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if polls == nil {
		polls = []*domain.Poll{}
	}
	return polls, nil
}

func parseEndDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.NewValidationError("end_date", "is required")
	}

	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, domain.NewValidationError("end_date", "must be an ISO-8601 date-time")
}
