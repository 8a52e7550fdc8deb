package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

// Save writes the poll and all of its options in one transaction.
func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, description, created_at, end_date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryPoll, poll.ID, poll.Title, poll.Description, poll.CreatedAt, poll.EndDate)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO poll_options (id, poll_id, text, position)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range poll.Options {
		_, err = stmt.ExecContext(ctx, opt.ID, opt.PollID, opt.Text, opt.Position)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, description, created_at, end_date
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatedAt, &poll.EndDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, []uuid.UUID{poll.ID})
	if err != nil {
		return nil, err
	}
	poll.Options = options[poll.ID]
	if poll.Options == nil {
		poll.Options = []domain.PollOption{}
	}

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, description, created_at, end_date
		FROM polls
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	var polls []*domain.Poll
	var ids []uuid.UUID
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.Description, &poll.CreatedAt, &poll.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
		ids = append(ids, poll.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	if len(polls) == 0 {
		return polls, nil
	}

	options, err := r.fetchOptions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, poll := range polls {
		poll.Options = options[poll.ID]
		if poll.Options == nil {
			poll.Options = []domain.PollOption{}
		}
	}

	return polls, nil
}

func (r *pollRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM polls WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check poll existence: %w", err)
	}
	return exists, nil
}

// fetchOptions loads the options of every given poll in a single query,
// grouped by poll id and ordered by position.
func (r *pollRepository) fetchOptions(ctx context.Context, pollIDs []uuid.UUID) (map[uuid.UUID][]domain.PollOption, error) {
	ids := make([]string, len(pollIDs))
	for i, id := range pollIDs {
		ids[i] = id.String()
	}

	queryOptions := `
		SELECT id, poll_id, text, position
		FROM poll_options
		WHERE poll_id = ANY($1::uuid[])
		ORDER BY poll_id, position
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	options := make(map[uuid.UUID][]domain.PollOption, len(pollIDs))
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options[opt.PollID] = append(options[opt.PollID], opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
