package boxer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Narrowed for tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository exposes typed DB operations for boxer records and fight history.
type Repository struct {
	db DB
}

// NewRepository wraps a pgx pool (or compatible) for boxer persistence.
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a boxer and returns the stored record with its assigned id.
func (r *Repository) Create(ctx context.Context, n NewBoxer) (Boxer, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO boxers (name, weight, height, reach, age)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		n.Name, n.Weight, n.Height, n.Reach, n.Age,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Boxer{}, fmt.Errorf("boxer %q: %w", n.Name, ErrAlreadyExists)
		}
		return Boxer{}, fmt.Errorf("insert boxer: %w", err)
	}

	class, err := WeightClassFor(n.Weight)
	if err != nil {
		return Boxer{}, err
	}
	return Boxer{
		ID:          id,
		Name:        n.Name,
		Weight:      n.Weight,
		Height:      n.Height,
		Reach:       n.Reach,
		Age:         n.Age,
		WeightClass: class,
	}, nil
}

// GetByID fetches a boxer by its numeric id.
func (r *Repository) GetByID(ctx context.Context, id int64) (Boxer, error) {
	return r.getBy(ctx,
		`SELECT id, name, weight, height, reach, age FROM boxers WHERE id = $1`, id)
}

// GetByName fetches a boxer by its unique name.
func (r *Repository) GetByName(ctx context.Context, name string) (Boxer, error) {
	return r.getBy(ctx,
		`SELECT id, name, weight, height, reach, age FROM boxers WHERE name = $1`, name)
}

func (r *Repository) getBy(ctx context.Context, query string, arg any) (Boxer, error) {
	var b Boxer
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&b.ID, &b.Name, &b.Weight, &b.Height, &b.Reach, &b.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Boxer{}, ErrNotFound
		}
		return Boxer{}, fmt.Errorf("select boxer: %w", err)
	}
	class, err := WeightClassFor(b.Weight)
	if err != nil {
		return Boxer{}, err
	}
	b.WeightClass = class
	return b, nil
}

// Delete removes a boxer record by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM boxers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete boxer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordResult bumps a boxer's fight count, and the win count on a win.
func (r *Repository) RecordResult(ctx context.Context, id int64, result Result) error {
	var tag pgconn.CommandTag
	var err error
	switch result {
	case ResultWin:
		tag, err = r.db.Exec(ctx,
			`UPDATE boxers SET fights = fights + 1, wins = wins + 1 WHERE id = $1`, id)
	case ResultLoss:
		tag, err = r.db.Exec(ctx,
			`UPDATE boxers SET fights = fights + 1 WHERE id = $1`, id)
	default:
		return fmt.Errorf("invalid result %q: expected win or loss", result)
	}
	if err != nil {
		return fmt.Errorf("update boxer stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertFight appends a completed fight to the history table.
func (r *Repository) InsertFight(ctx context.Context, rec FightRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO fights (id, boxer_one, boxer_two, winner_id, fought_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.BoxerOne, rec.BoxerTwo, rec.WinnerID, rec.FoughtAt,
	)
	if err != nil {
		return fmt.Errorf("insert fight: %w", err)
	}
	return nil
}

// Leaderboard returns boxers with at least one fight, ranked by the given
// sort key ("wins" or "win_pct").
func (r *Repository) Leaderboard(ctx context.Context, sortBy string) ([]LeaderboardEntry, error) {
	query := `SELECT id, name, weight, height, reach, age, fights, wins,
	                 wins::float / fights AS win_pct
	          FROM boxers
	          WHERE fights > 0`

	switch sortBy {
	case "wins":
		query += ` ORDER BY wins DESC`
	case "win_pct":
		query += ` ORDER BY win_pct DESC`
	default:
		return nil, fmt.Errorf("invalid sort_by parameter: %s", sortBy)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var pct float64
		if err := rows.Scan(&e.ID, &e.Name, &e.Weight, &e.Height, &e.Reach, &e.Age,
			&e.Fights, &e.Wins, &pct); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		class, err := WeightClassFor(e.Weight)
		if err != nil {
			return nil, err
		}
		e.WeightClass = class
		e.WinPct = math.Round(pct*1000) / 10
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard rows: %w", err)
	}
	return entries, nil
}
