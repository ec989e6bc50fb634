package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/goalkeeper/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type GoalsRepositoryI interface {
	// Creates new goal. Status, priority and the whole schedule must be already set
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists goals owned by user with uid, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, filter GoalsFilter, limit, offset int) ([]*entity.Goal, error)
	// Updates title, description, priority and section of goal by ID
	Update(ctx context.Context, goal *entity.Goal) error
	// Replaces start date, target date and expected duration
	UpdateSchedule(ctx context.Context, id uuid.UUID, start, target civil.Date, duration int) error
	// Sets status to `to` only if it is still `from`
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.GoalStatus) error
	// Deletes goal with its updates and streak in one transaction
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type SectionsRepositoryI interface {
	// Creates new section and returns its id
	Create(ctx context.Context, section *entity.Section) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Section, error)
	// Lists sections of user, oldest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Section, error)
	// Deletes section. Its goals stay, without section
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalUpdatesRepositoryI interface {
	// Appends update, fills its ID and CreatedAt
	Create(ctx context.Context, update *entity.GoalUpdate) error
	// Lists updates of goal, newest first
	GetByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalUpdate, error)
}

type StreaksRepositoryI interface {
	// Returns streak of goal or nil if there is none yet
	GetByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.Streak, error)
	// Creates the first streak of goal. Fails with ErrStreakConflict if one exists
	Create(ctx context.Context, streak *entity.Streak) (uuid.UUID, error)
	// Replaces prev with next if prev is still what is stored, ErrStreakConflict otherwise
	Update(ctx context.Context, prev, next *entity.Streak) error
}

// GoalsFilter narrows GetByUserID. Zero value lists everything.
type GoalsFilter struct {
	SectionID      *uuid.UUID
	WithoutSection bool
	Status         *entity.GoalStatus
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
