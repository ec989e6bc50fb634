package service

import (
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/pkg/entity"
)

// StartProgress moves a not started goal to in progress.
func StartProgress(goal *entity.Goal) error {
	return transition(goal, entity.GoalStatusNotStarted)
}

// MarkDone completes a goal that is in progress.
func MarkDone(goal *entity.Goal) error {
	return transition(goal, entity.GoalStatusInProgress)
}

// transition advances goal one step, but only when it currently sits in from.
func transition(goal *entity.Goal, from entity.GoalStatus) error {
	if goal.Status != from {
		return errorvalues.ErrIllegalTransition
	}
	next, ok := from.Next()
	if !ok {
		return errorvalues.ErrIllegalTransition
	}
	goal.Status = next
	return nil
}

// GoalEdit carries the fields a user may change in any status. Nil means
// "keep". Status and schedule change only through transitions and
// RescheduleGoal.
type GoalEdit struct {
	Title        *string
	Description  *string
	Priority     *entity.Priority
	SectionID    *uuid.UUID
	ClearSection bool
}

// ApplyEdit copies the set fields of edit onto goal.
func ApplyEdit(goal *entity.Goal, edit GoalEdit) {
	if edit.Title != nil {
		goal.Title = strings.TrimSpace(*edit.Title)
	}
	if edit.Description != nil {
		goal.Description = *edit.Description
	}
	if edit.Priority != nil {
		goal.Priority = *edit.Priority
	}
	switch {
	case edit.ClearSection:
		goal.SectionID = nil
	case edit.SectionID != nil:
		id := *edit.SectionID
		goal.SectionID = &id
	}
}
