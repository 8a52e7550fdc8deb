package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, user_id, option_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.UserID, vote.OptionID, vote.CreatedAt)
	switch {
	case err == nil:
		return nil
	case violation(err, codeUniqueViolation, constraintVoteUnique):
		// lost a race with an identical vote between HasVoted and here
		return domain.ErrDuplicateVote
	case violation(err, codeForeignKeyViolation, constraintVoteOptionFK):
		return domain.ErrOptionNotFound
	case violation(err, codeForeignKeyViolation, constraintVoteUserFK):
		return domain.ErrUserNotFound
	default:
		return fmt.Errorf("failed to save vote: %w", err)
	}
}

func (r *voteRepository) HasVoted(ctx context.Context, userID, optionID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM votes WHERE user_id = $1 AND option_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, optionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}
