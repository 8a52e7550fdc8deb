package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
	"github.com/vncsmyrnk/quickpoll/internal/core/ports"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// CountVotesByOption returns one row per option of the poll, including
// options nobody voted for, in creation order.
func (r *resultRepository) CountVotesByOption(ctx context.Context, pollID uuid.UUID) ([]domain.OptionResult, error) {
	query := `
		SELECT o.id, o.text, COUNT(v.id)
		FROM poll_options o
		LEFT JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.text, o.position
		ORDER BY o.position
	`

	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes for poll %s: %w", pollID, err)
	}
	defer rows.Close()

	var results []domain.OptionResult
	for rows.Next() {
		var res domain.OptionResult
		if err := rows.Scan(&res.OptionID, &res.Text, &res.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}
