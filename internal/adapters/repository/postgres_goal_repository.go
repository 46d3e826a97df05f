package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nutrio-app/progress-engine/internal/core/domain"
)

var _ domain.GoalRepository = (*PostgresGoalRepository)(nil)

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

type goalRow struct {
	Username  string    `db:"username"`
	Calories  float64   `db:"calories"`
	Steps     float64   `db:"steps"`
	Water     float64   `db:"water"`
	Exercise  float64   `db:"exercise"`
	Sleep     float64   `db:"sleep"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *PostgresGoalRepository) Get(ctx context.Context, username string) (domain.Goals, error) {
	var row goalRow
	query := `SELECT * FROM goals WHERE username = $1`

	err := r.db.GetContext(ctx, &row, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Goals{}, domain.ErrGoalsNotFound
		}
		return domain.Goals{}, err
	}

	return domain.Goals{
		Calories: row.Calories,
		Steps:    row.Steps,
		Water:    row.Water,
		Exercise: row.Exercise,
		Sleep:    row.Sleep,
	}, nil
}

func (r *PostgresGoalRepository) Upsert(ctx context.Context, username string, goals domain.Goals) error {
	row := goalRow{
		Username:  username,
		Calories:  goals.Calories,
		Steps:     goals.Steps,
		Water:     goals.Water,
		Exercise:  goals.Exercise,
		Sleep:     goals.Sleep,
		UpdatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO goals (username, calories, steps, water, exercise, sleep, updated_at)
		VALUES (:username, :calories, :steps, :water, :exercise, :sleep, :updated_at)
		ON CONFLICT (username) DO UPDATE SET
			calories = EXCLUDED.calories,
			steps = EXCLUDED.steps,
			water = EXCLUDED.water,
			exercise = EXCLUDED.exercise,
			sleep = EXCLUDED.sleep,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return err
	}
	return nil
}
