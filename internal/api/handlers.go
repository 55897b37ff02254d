package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/service"
	"github.com/limbo/studystreak/pkg/entity"
	"github.com/limbo/studystreak/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Timezone string `json:"timezone"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CheckInRequest struct {
	// Calendar date in 2006-01-02 form; empty means today
	Date   string `json:"date"`
	Source string `json:"source"`
}

type TrackingRequest struct {
	Source string `json:"source"`
}

type LeaderboardResponse struct {
	Scope   string                    `json:"scope"`
	Period  string                    `json:"period"`
	Entries []entity.LeaderboardEntry `json:"entries"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
		Timezone: req.Timezone,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CheckInRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil {
			logger.Error("check-in error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	// Caller-supplied key keeps retries of the same logical request
	// idempotent; absent header means each request is its own action
	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.checkInService.CheckIn(ctx, &service.CheckInRequest{
		UserID:         uid,
		Date:           date,
		Source:         entity.CheckInSource(req.Source),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSource):
			logger.Error("check-in error: invalid source")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown check-in source", nil)
		case errors.Is(err, errorvalues.ErrCheckInDateNotAllowed):
			logger.Error("check-in error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "check-in date is in the future", nil)
		case errors.Is(err, errorvalues.ErrDuplicateRequest):
			logger.Error("check-in error: duplicate request")
			httputil.WriteErrorResponse(w, http.StatusConflict, "request was already handled", nil)
		case errors.Is(err, errorvalues.ErrAlreadyCheckedIn):
			logger.Error("check-in error: already checked in")
			httputil.WriteErrorResponse(w, http.StatusConflict, "already checked in for this date", nil)
		case errors.Is(err, errorvalues.ErrInsufficientStudyTime):
			logger.Error("check-in error: not enough study time")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "not enough study time recorded for this date", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("check-in error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrCacheUnavailable), errors.Is(err, errorvalues.ErrStorageUnavailable):
			logger.Error("check-in error: backing store unavailable", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "service temporarily unavailable", nil)
		default:
			logger.Error("check-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during check-in", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, summary)
	logger.Info("check-in recorded")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.checkInService.GetStreak(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get streak error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("streak provided")
}

func (s *Server) StartTracking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start tracking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TrackingRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("start tracking error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.sessionTracker.Start(ctx, uid, entity.CheckInSource(req.Source))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSource):
			logger.Error("start tracking error: invalid source")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown check-in source", nil)
		case errors.Is(err, errorvalues.ErrAlreadyTracking):
			logger.Error("start tracking error: session already open")
			httputil.WriteErrorResponse(w, http.StatusConflict, "tracking session already in progress", nil)
		case errors.Is(err, errorvalues.ErrCacheUnavailable):
			logger.Error("start tracking error: cache unavailable", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "service temporarily unavailable", nil)
		default:
			logger.Error("start tracking error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting tracking", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("tracking started")
}

func (s *Server) StopTracking(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("stop tracking error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TrackingRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("stop tracking error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.sessionTracker.Stop(ctx, uid, entity.CheckInSource(req.Source))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSource):
			logger.Error("stop tracking error: invalid source")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown check-in source", nil)
		case errors.Is(err, errorvalues.ErrNoActiveTracking):
			logger.Error("stop tracking error: no open session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active tracking session", nil)
		case errors.Is(err, errorvalues.ErrCacheUnavailable):
			logger.Error("stop tracking error: cache unavailable", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "service temporarily unavailable", nil)
		default:
			logger.Error("stop tracking error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while stopping tracking", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("tracking stopped")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if _, err := GetUIDFromContext(r); err != nil {
		logger.Error("leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	scope := service.LeaderboardScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = service.ScopeGlobal
	}
	period := service.LeaderboardPeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = service.PeriodWeek
	}
	var groupID *uuid.UUID
	if raw := r.URL.Query().Get("group_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("leaderboard error: invalid group id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id", nil)
			return
		}
		groupID = &id
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.leaderboardService.Build(ctx, scope, period, groupID)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LeaderboardResponse{
		Scope:   string(scope),
		Period:  string(period),
		Entries: entries,
	})
	logger.Info("leaderboard provided")
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("websocket error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if s.hub == nil {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "realtime notifications are disabled", nil)
		return
	}
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket error: upgrade failed", slog.String("error", err.Error()))
		return
	}
	s.hub.Register(uid, conn)
	// Keep reading to notice the close; inbound payloads are ignored
	go func() {
		defer s.hub.Unregister(uid, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
