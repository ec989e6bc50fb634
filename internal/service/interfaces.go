package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// Dates are ISO-8601 (YYYY-MM-DD). Either ExpectedDuration or TargetDate
// must be present for the chosen DurationType.
type CreateGoalRequest struct {
	Title            string `validate:"required,notblank,max=200"`
	Description      string `validate:"max=2000"`
	SectionID        *uuid.UUID
	Priority         string `validate:"omitempty,oneof=low medium high"`
	DurationType     string `validate:"omitempty,oneof=days end_date"`
	StartDate        string `validate:"required"`
	ExpectedDuration *int
	TargetDate       string
}

// Nil fields are left as they are.
type EditGoalRequest struct {
	Title        *string `validate:"omitempty,notblank,max=200"`
	Description  *string `validate:"omitempty,max=2000"`
	Priority     *string `validate:"omitempty,oneof=low medium high"`
	SectionID    *uuid.UUID
	ClearSection bool
}

type RescheduleRequest struct {
	DurationType     string `validate:"omitempty,oneof=days end_date"`
	StartDate        string `validate:"required"`
	ExpectedDuration *int
	TargetDate       string
}

type CreateSectionRequest struct {
	Title       string `validate:"required,notblank,max=100"`
	Description string `validate:"max=1000"`
}

type RecordUpdateRequest struct {
	Content            string
	ProgressPercentage *int `validate:"omitempty,min=0,max=100"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type GoalsServiceI interface {
	// Validates request, reconciles schedule and creates not started goal
	CreateGoal(ctx context.Context, uid uuid.UUID, req CreateGoalRequest) (*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	// Goal with its streak and days left as of today
	GetGoalDetails(ctx context.Context, goalID, uid uuid.UUID, today civil.Date) (*entity.GoalDetails, error)
	ListGoals(ctx context.Context, uid uuid.UUID, filter repository.GoalsFilter, pagination PaginationOpts) ([]*entity.Goal, error)
	EditGoal(ctx context.Context, goalID, uid uuid.UUID, req EditGoalRequest) (*entity.Goal, error)
	// The only way to change dates and duration after creation
	RescheduleGoal(ctx context.Context, goalID, uid uuid.UUID, req RescheduleRequest) (*entity.Goal, error)
	StartProgress(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	MarkDone(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	// Removes goal together with its updates and streak
	DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error
}

type SectionsServiceI interface {
	CreateSection(ctx context.Context, uid uuid.UUID, req CreateSectionRequest) (*entity.Section, error)
	ListSections(ctx context.Context, uid uuid.UUID) ([]*entity.Section, error)
	DeleteSection(ctx context.Context, sectionID, uid uuid.UUID) error
}

type GoalUpdatesServiceI interface {
	// Persists update and advances goal's streak as of today
	RecordUpdate(ctx context.Context, goalID, uid uuid.UUID, req RecordUpdateRequest, today civil.Date) (*entity.GoalUpdate, *entity.Streak, error)
	ListUpdates(ctx context.Context, goalID, uid uuid.UUID) ([]*entity.GoalUpdate, error)
	// Returns nil streak if goal has no updates yet
	GetStreak(ctx context.Context, goalID, uid uuid.UUID) (*entity.Streak, error)
}
