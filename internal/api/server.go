package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/studystreak/internal/notifier"
	"github.com/limbo/studystreak/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	checkInService     service.CheckInServiceI
	sessionTracker     service.SessionTrackerI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	hub                *notifier.Hub
}

type ServicesList struct {
	UserService        service.UserServiceI
	CheckInService     service.CheckInServiceI
	SessionTracker     service.SessionTrackerI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
	Hub                *notifier.Hub
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		checkInService:     servicesOptions.CheckInService,
		sessionTracker:     servicesOptions.SessionTracker,
		leaderboardService: servicesOptions.LeaderboardService,
		jwtService:         servicesOptions.JwtService,
		hub:                servicesOptions.Hub,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/checkins", s.CheckIn)
			r.Get("/streak", s.GetStreak)
			r.Post("/tracking/start", s.StartTracking)
			r.Post("/tracking/stop", s.StopTracking)
			r.Get("/leaderboard", s.GetLeaderboard)
			r.Get("/ws", s.ServeWS)
		})
	})
	return http.ListenAndServe(addr, s.mx)
}
