package entity

import "fmt"

type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

var AllGoalStatuses = []GoalStatus{
	GoalStatusNotStarted,
	GoalStatusInProgress,
	GoalStatusCompleted,
}

func (s GoalStatus) IsValid() bool {
	for _, v := range AllGoalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the only status a goal may move to from s.
// Completed is terminal.
func (s GoalStatus) Next() (GoalStatus, bool) {
	switch s {
	case GoalStatusNotStarted:
		return GoalStatusInProgress, true
	case GoalStatusInProgress:
		return GoalStatusCompleted, true
	default:
		return "", false
	}
}

func ParseGoalStatus(s string) (GoalStatus, error) {
	v := GoalStatus(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown goal status %q", s)
	}
	return v, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var AllPriorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePriority maps an empty string to PriorityMedium, the default
// a new goal gets.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	v := Priority(s)
	if !v.IsValid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return v, nil
}
