package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

const goalColumns = `id, user_id, section_id, title, description, start_date, target_date,
	expected_duration, status, priority, created_at, updated_at`

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx, `INSERT INTO goals (user_id, section_id, title, description, start_date, target_date, expected_duration, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		goal.UserID,
		goal.SectionID,
		goal.Title,
		goal.Description,
		datemath.ToTime(goal.StartDate),
		datemath.ToTime(goal.TargetDate),
		goal.ExpectedDuration,
		goal.Status,
		goal.Priority,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		// FK violation: either owner or section is gone
		case pgForeignKeyViolation:
			if goal.SectionID != nil {
				return uuid.UUID{}, errorvalues.ErrSectionNotFound
			}
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, dbError("creating goal", err)
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	row := gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, dbError("getting goal by id", err)
	}
	return goal, nil
}

func (gr *GoalsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, filter GoalsFilter, limit, offset int) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals
		WHERE user_id = $1
			AND ($2::uuid IS NULL OR section_id = $2)
			AND (NOT $3 OR section_id IS NULL)
			AND ($4::text IS NULL OR status = $4)
		ORDER BY created_at DESC LIMIT $5 OFFSET $6;`,
		uid, filter.SectionID, filter.WithoutSection, filter.Status, limit, offset)
	if err != nil {
		return nil, dbError("getting goals by uid", err)
	}
	defer rows.Close()
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, dbError("unmarshalling goal", err)
		}
		goals = append(goals, g)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating goals", err)
	}
	return goals, nil
}

func (gr *GoalsRepository) Update(ctx context.Context, goal *entity.Goal) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET title = $1, description = $2, priority = $3, section_id = $4, updated_at = NOW() WHERE id = $5;`,
		goal.Title, goal.Description, goal.Priority, goal.SectionID, goal.ID,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrSectionNotFound
		}
		return dbError("updating goal", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, start, target civil.Date, duration int) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET start_date = $1, target_date = $2, expected_duration = $3, updated_at = NOW() WHERE id = $4;`,
		datemath.ToTime(start), datemath.ToTime(target), duration, id,
	)
	if err != nil {
		return dbError("updating goal schedule", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.GoalStatus) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE goals SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3;`,
		to, id, from,
	)
	if err != nil {
		return dbError("updating goal status", err)
	}
	if ct.RowsAffected() == 0 {
		return dbError("updating goal status", errorvalues.ErrStatusChangedMeanwhile)
	}
	return nil
}

// DeleteCascade removes the goal, its streak and its updates atomically:
// either all of them are gone or nothing changed.
func (gr *GoalsRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return dbError("beginning goal deletion", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM streaks WHERE goal_id = $1;`, id); err != nil {
		tx.Rollback(ctx)
		return dbError("deleting goal streak", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM goal_updates WHERE goal_id = $1;`, id); err != nil {
		tx.Rollback(ctx)
		return dbError("deleting goal updates", err)
	}
	ct, err := tx.Exec(ctx, `DELETE FROM goals WHERE id = $1;`, id)
	if err != nil {
		tx.Rollback(ctx)
		return dbError("deleting goal", err)
	}
	if ct.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return errorvalues.ErrGoalNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return dbError("committing goal deletion", err)
	}
	return nil
}

func scanGoal(row pgx.Row) (*entity.Goal, error) {
	var (
		g             entity.Goal
		start, target time.Time
	)
	err := row.Scan(&g.ID, &g.UserID, &g.SectionID, &g.Title, &g.Description, &start, &target,
		&g.ExpectedDuration, &g.Status, &g.Priority, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.StartDate = datemath.DateOf(start)
	g.TargetDate = datemath.DateOf(target)
	return &g, nil
}
