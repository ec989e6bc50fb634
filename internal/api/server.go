package api

import (
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/datemath"
	"github.com/limbo/goalkeeper/pkg/httputil"
	"github.com/limbo/goalkeeper/pkg/metrics"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	goalsService    service.GoalsServiceI
	sectionsService service.SectionsServiceI
	updatesService  service.GoalUpdatesServiceI
	jwtService      JWTServiceI
	location        *time.Location
}

type ServicesList struct {
	UserService     service.UserServiceI
	GoalsService    service.GoalsServiceI
	SectionsService service.SectionsServiceI
	UpdatesService  service.GoalUpdatesServiceI
	JwtService      JWTServiceI
	// Location defines the calendar day used for streaks. UTC when nil
	Location *time.Location
}

func New(servicesOptions *ServicesList) *Server {
	loc := servicesOptions.Location
	if loc == nil {
		loc = time.UTC
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		goalsService:    servicesOptions.GoalsService,
		sectionsService: servicesOptions.SectionsService,
		updatesService:  servicesOptions.UpdatesService,
		jwtService:      servicesOptions.JwtService,
		location:        loc,
	}
	s.mountHandlers()
	return s
}

func (s *Server) mountHandlers() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.mx.Handle("/metrics", metrics.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/sections", s.GetSections)
			r.Post("/sections", s.CreateSection)
			r.Delete("/sections/{id}", s.DeleteSection)

			r.Get("/goals", s.GetGoals)
			r.Post("/goals", s.CreateGoal)
			r.Route("/goals/{id}", func(r chi.Router) {
				r.Get("/", s.GetGoal)
				r.Patch("/", s.EditGoal)
				r.Delete("/", s.DeleteGoal)
				r.Put("/schedule", s.RescheduleGoal)
				r.Post("/start", s.StartGoal)
				r.Post("/done", s.CompleteGoal)
				r.Get("/updates", s.GetUpdates)
				r.Post("/updates", s.RecordUpdate)
				r.Get("/streak", s.GetStreak)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// today is the current calendar day in the server's location.
func (s *Server) today() civil.Date {
	return datemath.Today(s.location)
}
