package service

import (
	"context"
	"log"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/limbo/goalkeeper/pkg/metrics"
)

type GoalUpdatesService struct {
	goals   repository.GoalsRepositoryI
	updates repository.GoalUpdatesRepositoryI
	streaks repository.StreaksRepositoryI
}

func NewGoalUpdatesService(goalsRepo repository.GoalsRepositoryI, updatesRepo repository.GoalUpdatesRepositoryI, streaksRepo repository.StreaksRepositoryI) *GoalUpdatesService {
	if goalsRepo == nil || updatesRepo == nil || streaksRepo == nil {
		log.Fatal("provided nil repository to goal updates service")
	}
	return &GoalUpdatesService{
		goals:   goalsRepo,
		updates: updatesRepo,
		streaks: streaksRepo,
	}
}

// RecordUpdate appends an update to the goal and advances its streak as of
// today. The streak is read, advanced once and written back conditionally;
// losing a race to another update yields ErrStreakConflict and is not retried.
// The update itself stays recorded in that case.
func (us *GoalUpdatesService) RecordUpdate(ctx context.Context, goalID, uid uuid.UUID, req RecordUpdateRequest, today civil.Date) (*entity.GoalUpdate, *entity.Streak, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, nil, errorvalues.ErrEmptyContent
	}
	if err := validateStruct(req); err != nil {
		return nil, nil, err
	}
	if !today.IsValid() {
		return nil, nil, errorvalues.ErrInvalidDate
	}
	if _, err := getOwnedGoal(ctx, us.goals, goalID, uid); err != nil {
		return nil, nil, err
	}
	update := &entity.GoalUpdate{
		GoalID:             goalID,
		UserID:             uid,
		Content:            req.Content,
		ProgressPercentage: req.ProgressPercentage,
	}
	if err := us.updates.Create(ctx, update); err != nil {
		return nil, nil, repoError("goal updates", err)
	}
	metrics.UpdateRecorded()

	prev, err := us.streaks.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, nil, repoError("streaks", err)
	}
	next, outcome, err := AdvanceStreak(prev, today)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case prev == nil:
		next.UserID = uid
		next.GoalID = goalID
		id, err := us.streaks.Create(ctx, next)
		if err != nil {
			return nil, nil, repoError("streaks", err)
		}
		next.ID = id
	case *next != *prev:
		if err = us.streaks.Update(ctx, prev, next); err != nil {
			return nil, nil, repoError("streaks", err)
		}
	}
	metrics.StreakOutcome(string(outcome))
	return update, next, nil
}

func (us *GoalUpdatesService) ListUpdates(ctx context.Context, goalID, uid uuid.UUID) ([]*entity.GoalUpdate, error) {
	if _, err := getOwnedGoal(ctx, us.goals, goalID, uid); err != nil {
		return nil, err
	}
	updates, err := us.updates.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, repoError("goal updates", err)
	}
	return updates, nil
}

func (us *GoalUpdatesService) GetStreak(ctx context.Context, goalID, uid uuid.UUID) (*entity.Streak, error) {
	if _, err := getOwnedGoal(ctx, us.goals, goalID, uid); err != nil {
		return nil, err
	}
	streak, err := us.streaks.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, repoError("streaks", err)
	}
	return streak, nil
}
