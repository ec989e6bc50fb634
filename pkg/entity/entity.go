package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Goal struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"uid"`
	SectionID        *uuid.UUID `json:"section_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"desc"`
	StartDate        civil.Date `json:"start_date"`
	TargetDate       civil.Date `json:"target_date"`
	ExpectedDuration int        `json:"expected_duration"`
	Status           GoalStatus `json:"status"`
	Priority         Priority   `json:"priority"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Section struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GoalUpdate is an append-only progress note on a goal.
type GoalUpdate struct {
	ID                 uuid.UUID `json:"id"`
	GoalID             uuid.UUID `json:"goal_id"`
	UserID             uuid.UUID `json:"uid"`
	Content            string    `json:"content"`
	ProgressPercentage *int      `json:"progress_percentage,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Streak counts consecutive calendar days with at least one update on a goal.
// There is at most one streak per goal.
type Streak struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"uid"`
	GoalID        uuid.UUID  `json:"goal_id"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastUpdated   civil.Date `json:"last_updated"`
}

// GoalDetails is the goal page projection: the goal, its streak if any and
// the days left until the expected duration runs out.
type GoalDetails struct {
	Goal          *Goal   `json:"goal"`
	Streak        *Streak `json:"streak,omitempty"`
	DaysRemaining int     `json:"days_remaining"`
}
