package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/entity"
	"github.com/limbo/goalkeeper/pkg/httputil"
)

// Dates are YYYY-MM-DD. duration_type is "days" or "end_date"; when it is
// omitted, whichever of expected_duration and target_date is present wins.
type CreateGoalRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"desc"`
	SectionID        *uuid.UUID `json:"section_id,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	DurationType     string     `json:"duration_type,omitempty"`
	StartDate        string     `json:"start_date"`
	ExpectedDuration *int       `json:"expected_duration,omitempty"`
	TargetDate       string     `json:"target_date,omitempty"`
}

type EditGoalRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"desc,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	SectionID    *uuid.UUID `json:"section_id,omitempty"`
	ClearSection bool       `json:"clear_section,omitempty"`
}

type RescheduleRequest struct {
	DurationType     string `json:"duration_type,omitempty"`
	StartDate        string `json:"start_date"`
	ExpectedDuration *int   `json:"expected_duration,omitempty"`
	TargetDate       string `json:"target_date,omitempty"`
}

type RecordUpdateRequest struct {
	Content            string `json:"content"`
	ProgressPercentage *int   `json:"progress_percentage,omitempty"`
}

type GetGoalsResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Goals  []*entity.Goal `json:"goals"`
}

type RecordUpdateResponse struct {
	Update *entity.GoalUpdate `json:"update"`
	Streak *entity.Streak     `json:"streak"`
}

type GetUpdatesResponse struct {
	GoalID  string               `json:"goal_id"`
	Updates []*entity.GoalUpdate `json:"updates"`
}

type GetStreakResponse struct {
	GoalID string         `json:"goal_id"`
	Streak *entity.Streak `json:"streak"`
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "create goal")
	if !ok {
		return
	}
	var req CreateGoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, service.CreateGoalRequest{
		Title:            req.Title,
		Description:      req.Description,
		SectionID:        req.SectionID,
		Priority:         req.Priority,
		DurationType:     req.DurationType,
		StartDate:        req.StartDate,
		ExpectedDuration: req.ExpectedDuration,
		TargetDate:       req.TargetDate,
	})
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created")
}

// GetGoals lists goals page by page. Optional filters: section=<id> or
// section=none, status=<status>.
func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "get goals")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	var filter repository.GoalsFilter
	switch section := r.URL.Query().Get("section"); section {
	case "":
	case "none":
		filter.WithoutSection = true
	default:
		id, err := uuid.Parse(section)
		if err != nil {
			logger.Error("get goals error: invalid section filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid section filter", nil)
			return
		}
		filter.SectionID = &id
	}
	if status := r.URL.Query().Get("status"); status != "" {
		st, err := entity.ParseGoalStatus(status)
		if err != nil {
			logger.Error("get goals error: invalid status filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid status filter", err)
			return
		}
		filter.Status = &st
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx, uid, filter, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "get goal")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	details, err := s.goalsService.GetGoalDetails(ctx, id, uid, s.today())
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, details)
	logger.Info("goal provided")
}

func (s *Server) EditGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "edit goal")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "edit goal")
	if !ok {
		return
	}
	var req EditGoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("edit goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.EditGoal(ctx, id, uid, service.EditGoalRequest{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		SectionID:    req.SectionID,
		ClearSection: req.ClearSection,
	})
	if err != nil {
		writeServiceError(w, logger, "edit goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal edited")
}

func (s *Server) RescheduleGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "reschedule goal")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "reschedule goal")
	if !ok {
		return
	}
	var req RescheduleRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("reschedule goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.RescheduleGoal(ctx, id, uid, service.RescheduleRequest{
		DurationType:     req.DurationType,
		StartDate:        req.StartDate,
		ExpectedDuration: req.ExpectedDuration,
		TargetDate:       req.TargetDate,
	})
	if err != nil {
		writeServiceError(w, logger, "reschedule goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal rescheduled")
}

func (s *Server) StartGoal(w http.ResponseWriter, r *http.Request) {
	s.transitionGoal(w, r, "start goal", s.goalsService.StartProgress)
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	s.transitionGoal(w, r, "complete goal", s.goalsService.MarkDone)
}

func (s *Server) transitionGoal(w http.ResponseWriter, r *http.Request, op string, transition func(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, op)
	if !ok {
		return
	}
	id, ok := pathID(w, r, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := transition(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal status changed", "status", goal.Status)
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "goal deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "goal deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "goal deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted")
}

func (s *Server) RecordUpdate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "record update")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "record update")
	if !ok {
		return
	}
	var req RecordUpdateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("record update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	update, streak, err := s.updatesService.RecordUpdate(ctx, id, uid, service.RecordUpdateRequest{
		Content:            req.Content,
		ProgressPercentage: req.ProgressPercentage,
	}, s.today())
	if err != nil {
		writeServiceError(w, logger, "record update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, RecordUpdateResponse{
		Update: update,
		Streak: streak,
	})
	logger.Info("goal update recorded", "current_streak", streak.CurrentStreak)
}

func (s *Server) GetUpdates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "get updates")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "get updates")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	updates, err := s.updatesService.ListUpdates(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get updates", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUpdatesResponse{
		GoalID:  id.String(),
		Updates: updates,
	})
	logger.Info("goal updates provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, "get streak")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "get streak")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.updatesService.GetStreak(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStreakResponse{
		GoalID: id.String(),
		Streak: streak,
	})
	logger.Info("goal streak provided")
}
