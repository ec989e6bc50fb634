package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type SectionsRepository struct {
	conn PgConnection
}

func NewSectionsRepo(conn PgConnection) *SectionsRepository {
	return &SectionsRepository{
		conn: conn,
	}
}

func (sr *SectionsRepository) Create(ctx context.Context, section *entity.Section) (uuid.UUID, error) {
	var id uuid.UUID
	row := sr.conn.QueryRow(ctx, `INSERT INTO sections (user_id, title, description) VALUES ($1, $2, $3) RETURNING id;`,
		section.UserID,
		section.Title,
		section.Description,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, dbError("creating section", err)
	}
	return id, nil
}

func (sr *SectionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Section, error) {
	var s entity.Section
	s.ID = id
	row := sr.conn.QueryRow(ctx, `SELECT user_id, title, description, created_at, updated_at FROM sections WHERE id = $1;`, id)
	if err := row.Scan(&s.UserID, &s.Title, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSectionNotFound
		}
		return nil, dbError("getting section by id", err)
	}
	return &s, nil
}

func (sr *SectionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Section, error) {
	sections := make([]*entity.Section, 0)
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, title, description, created_at, updated_at
		FROM sections WHERE user_id = $1 ORDER BY created_at ASC;`, uid)
	if err != nil {
		return nil, dbError("getting sections by uid", err)
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.Section{}
		if err = rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, dbError("unmarshalling section", err)
		}
		sections = append(sections, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating sections", err)
	}
	return sections, nil
}

func (sr *SectionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM sections WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting section", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSectionNotFound
	}
	return nil
}
