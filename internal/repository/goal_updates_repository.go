package repository

import (
	"context"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type GoalUpdatesRepository struct {
	conn PgConnection
}

func NewGoalUpdatesRepo(conn PgConnection) *GoalUpdatesRepository {
	return &GoalUpdatesRepository{
		conn: conn,
	}
}

func (ur *GoalUpdatesRepository) Create(ctx context.Context, update *entity.GoalUpdate) error {
	row := ur.conn.QueryRow(ctx, `INSERT INTO goal_updates (goal_id, user_id, content, progress_percentage)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		update.GoalID,
		update.UserID,
		update.Content,
		update.ProgressPercentage,
	)
	if err := row.Scan(&update.ID, &update.CreatedAt); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrGoalNotFound
		}
		return dbError("creating goal update", err)
	}
	return nil
}

func (ur *GoalUpdatesRepository) GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalUpdate, error) {
	updates := make([]*entity.GoalUpdate, 0)
	rows, err := ur.conn.Query(ctx, `SELECT id, goal_id, user_id, content, progress_percentage, created_at
		FROM goal_updates WHERE goal_id = $1 ORDER BY created_at DESC;`, goalID)
	if err != nil {
		return nil, dbError("getting goal updates", err)
	}
	defer rows.Close()
	for rows.Next() {
		u := entity.GoalUpdate{}
		if err = rows.Scan(&u.ID, &u.GoalID, &u.UserID, &u.Content, &u.ProgressPercentage, &u.CreatedAt); err != nil {
			return nil, dbError("unmarshalling goal update", err)
		}
		updates = append(updates, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating goal updates", err)
	}
	return updates, nil
}
