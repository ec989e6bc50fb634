package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/limbo/goalkeeper/pkg/metrics"
)

type GoalsService struct {
	repo     repository.GoalsRepositoryI
	sections repository.SectionsRepositoryI
	streaks  repository.StreaksRepositoryI
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, sectionsRepo repository.SectionsRepositoryI, streaksRepo repository.StreaksRepositoryI) *GoalsService {
	if goalsRepo == nil || sectionsRepo == nil || streaksRepo == nil {
		log.Fatal("provided nil repository to goals service")
	}
	return &GoalsService{
		repo:     goalsRepo,
		sections: sectionsRepo,
		streaks:  streaksRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, uid uuid.UUID, req CreateGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	schedule, err := reconcileRequest(req.DurationType, req.StartDate, req.ExpectedDuration, req.TargetDate)
	if err != nil {
		return nil, err
	}
	priority, err := entity.ParsePriority(req.Priority)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	if req.SectionID != nil {
		if err = checkSectionOwner(ctx, gs.sections, *req.SectionID, uid); err != nil {
			return nil, err
		}
	}
	id, err := gs.repo.Create(ctx, &entity.Goal{
		UserID:           uid,
		SectionID:        req.SectionID,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		StartDate:        schedule.StartDate,
		TargetDate:       schedule.TargetDate,
		ExpectedDuration: schedule.ExpectedDuration,
		Status:           entity.GoalStatusNotStarted,
		Priority:         priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrSectionNotFound):
			return nil, err
		}
		return nil, repoError("goals", err)
	}
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("goals", err)
	}
	return goal, nil
}

func (gs *GoalsService) GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	return getOwnedGoal(ctx, gs.repo, goalID, uid)
}

func (gs *GoalsService) GetGoalDetails(ctx context.Context, goalID, uid uuid.UUID, today civil.Date) (*entity.GoalDetails, error) {
	goal, err := gs.GetGoal(ctx, goalID, uid)
	if err != nil {
		return nil, err
	}
	streak, err := gs.streaks.GetByGoalID(ctx, goalID)
	if err != nil {
		return nil, repoError("streaks", err)
	}
	remaining, err := datemath.DaysRemaining(goal.StartDate, goal.ExpectedDuration, today)
	if err != nil {
		return nil, err
	}
	return &entity.GoalDetails{
		Goal:          goal,
		Streak:        streak,
		DaysRemaining: remaining,
	}, nil
}

func (gs *GoalsService) ListGoals(ctx context.Context, uid uuid.UUID, filter repository.GoalsFilter, pagination PaginationOpts) ([]*entity.Goal, error) {
	goals, err := gs.repo.GetByUserID(ctx, uid, filter, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, repoError("goals", err)
	}
	return goals, nil
}

func (gs *GoalsService) EditGoal(ctx context.Context, goalID, uid uuid.UUID, req EditGoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal, err := getOwnedGoal(ctx, gs.repo, goalID, uid)
	if err != nil {
		return nil, err
	}
	edit := GoalEdit{
		Title:        req.Title,
		Description:  req.Description,
		SectionID:    req.SectionID,
		ClearSection: req.ClearSection,
	}
	if req.Priority != nil {
		p, err := entity.ParsePriority(*req.Priority)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
		edit.Priority = &p
	}
	if !req.ClearSection && req.SectionID != nil {
		if err = checkSectionOwner(ctx, gs.sections, *req.SectionID, uid); err != nil {
			return nil, err
		}
	}
	ApplyEdit(goal, edit)
	if err = gs.repo.Update(ctx, goal); err != nil {
		return nil, repoError("goals", err)
	}
	return goal, nil
}

func (gs *GoalsService) RescheduleGoal(ctx context.Context, goalID, uid uuid.UUID, req RescheduleRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	schedule, err := reconcileRequest(req.DurationType, req.StartDate, req.ExpectedDuration, req.TargetDate)
	if err != nil {
		return nil, err
	}
	goal, err := getOwnedGoal(ctx, gs.repo, goalID, uid)
	if err != nil {
		return nil, err
	}
	err = gs.repo.UpdateSchedule(ctx, goalID, schedule.StartDate, schedule.TargetDate, schedule.ExpectedDuration)
	if err != nil {
		return nil, repoError("goals", err)
	}
	goal.StartDate = schedule.StartDate
	goal.TargetDate = schedule.TargetDate
	goal.ExpectedDuration = schedule.ExpectedDuration
	return goal, nil
}

func (gs *GoalsService) StartProgress(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	return gs.advanceStatus(ctx, goalID, uid, StartProgress)
}

func (gs *GoalsService) MarkDone(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error) {
	return gs.advanceStatus(ctx, goalID, uid, MarkDone)
}

// advanceStatus applies step to the stored goal and writes the new status
// only if nobody changed it since it was read.
func (gs *GoalsService) advanceStatus(ctx context.Context, goalID, uid uuid.UUID, step func(*entity.Goal) error) (*entity.Goal, error) {
	goal, err := getOwnedGoal(ctx, gs.repo, goalID, uid)
	if err != nil {
		return nil, err
	}
	from := goal.Status
	if err = step(goal); err != nil {
		return nil, err
	}
	if err = gs.repo.UpdateStatus(ctx, goalID, from, goal.Status); err != nil {
		return nil, repoError("goals", err)
	}
	metrics.StatusTransition(string(goal.Status))
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error {
	if _, err := getOwnedGoal(ctx, gs.repo, goalID, uid); err != nil {
		return err
	}
	if err := gs.repo.DeleteCascade(ctx, goalID); err != nil {
		return repoError("goals", err)
	}
	return nil
}

// getOwnedGoal loads a goal and makes sure it belongs to uid.
func getOwnedGoal(ctx context.Context, repo repository.GoalsRepositoryI, goalID, uid uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.GetByID(ctx, goalID)
	if err != nil {
		return nil, repoError("goals", err)
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}

func checkSectionOwner(ctx context.Context, repo repository.SectionsRepositoryI, sectionID, uid uuid.UUID) error {
	section, err := repo.GetByID(ctx, sectionID)
	if err != nil {
		return repoError("sections", err)
	}
	if section.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	return nil
}

// reconcileRequest parses boundary date strings and derives the schedule.
func reconcileRequest(mode, startDate string, duration *int, targetDate string) (Schedule, error) {
	start, err := datemath.Parse(startDate)
	if err != nil {
		return Schedule{}, err
	}
	in := DurationInput{
		Mode:             DurationMode(mode),
		StartDate:        start,
		ExpectedDuration: duration,
	}
	if targetDate != "" {
		target, err := datemath.Parse(targetDate)
		if err != nil {
			return Schedule{}, err
		}
		in.TargetDate = &target
	}
	return ReconcileDuration(in)
}

// Errors repositories report as part of their contract
var domainErrors = []error{
	errorvalues.ErrGoalNotFound,
	errorvalues.ErrSectionNotFound,
	errorvalues.ErrUserNotFound,
	errorvalues.ErrOwnerNotFound,
	errorvalues.ErrStreakConflict,
	errorvalues.ErrStatusChangedMeanwhile,
}

// repoError passes domain errors through and prefixes anything else with
// the repository name. Wrapped sentinels stay reachable with errors.Is.
func repoError(repo string, err error) error {
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%s repository error: %w", repo, err)
}
