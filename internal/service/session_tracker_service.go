package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/studystreak/internal/cache"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/repository"
	"github.com/limbo/studystreak/pkg/entity"
)

const DefaultTrackingTTL = 12 * time.Hour

type SessionTrackerConfig struct {
	// Elapsed minutes required before a stopped session converts into a
	// check-in. Zero means DefaultMinStudyMinutes
	MinStudyMinutes int
	// Safety bound on abandoned sessions. Zero means DefaultTrackingTTL
	TrackingTTL time.Duration
	// Clock for elapsed-time decisions. Nil means time.Now
	Clock func() time.Time
}

type SessionTrackerService struct {
	cache           cache.TrackingCacheI
	periodsRepo     repository.StudyPeriodsRepositoryI
	checkInService  CheckInServiceI
	minStudyMinutes int
	trackingTTL     time.Duration
	now             func() time.Time
}

func NewSessionTrackerService(
	trackingCache cache.TrackingCacheI,
	periodsRepo repository.StudyPeriodsRepositoryI,
	checkInService CheckInServiceI,
	cfg SessionTrackerConfig,
) *SessionTrackerService {
	if trackingCache == nil || periodsRepo == nil || checkInService == nil {
		log.Fatal("on session tracker service provided nil dependencies")
	}
	if cfg.MinStudyMinutes == 0 {
		cfg.MinStudyMinutes = DefaultMinStudyMinutes
	}
	if cfg.TrackingTTL == 0 {
		cfg.TrackingTTL = DefaultTrackingTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &SessionTrackerService{
		cache:           trackingCache,
		periodsRepo:     periodsRepo,
		checkInService:  checkInService,
		minStudyMinutes: cfg.MinStudyMinutes,
		trackingTTL:     cfg.TrackingTTL,
		now:             cfg.Clock,
	}
}

func (serv *SessionTrackerService) Start(ctx context.Context, uid uuid.UUID, source entity.CheckInSource) error {
	if !source.Valid() {
		return errorvalues.ErrInvalidSource
	}
	session := entity.TrackingSession{
		StartTime: serv.now().UTC(),
		Source:    source,
	}
	b, err := sonic.Marshal(session)
	if err != nil {
		return errors.New("encoding tracking session error: " + err.Error())
	}
	// SetIfAbsent keeps "at most one open session per (user, source)"
	// without a separate existence read
	created, err := serv.cache.SetIfAbsent(ctx, cache.TrackingSessionKey(uid, source), b, serv.trackingTTL)
	if err != nil {
		return err
	}
	if !created {
		return errorvalues.ErrAlreadyTracking
	}
	return nil
}

// Stop ends the session and returns nil once the entry was found and
// removed. The elapsed period is recorded either way; past the threshold
// it is converted into a check-in with a fresh idempotency key, and a
// downstream failure of that check-in is logged, not surfaced.
func (serv *SessionTrackerService) Stop(ctx context.Context, uid uuid.UUID, source entity.CheckInSource) error {
	if !source.Valid() {
		return errorvalues.ErrInvalidSource
	}
	b, found, err := serv.cache.GetDel(ctx, cache.TrackingSessionKey(uid, source))
	if err != nil {
		return err
	}
	if !found {
		// Covers the silent-expiry case as well
		return errorvalues.ErrNoActiveTracking
	}
	var session entity.TrackingSession
	if err := sonic.Unmarshal(b, &session); err != nil {
		return errors.New("decoding tracking session error: " + err.Error())
	}
	logger := slog.Default().With(slog.String("uid", uid.String()), slog.String("source", source.String()))
	elapsed := serv.now().Sub(session.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	err = serv.periodsRepo.Create(ctx, &entity.StudyPeriod{
		UserID:    uid,
		StudyDate: DateOnly(serv.now()),
		Minutes:   int(elapsed.Minutes()),
		Source:    source,
	})
	if err != nil {
		logger.Warn("recording study period failed", slog.String("error", err.Error()))
	}
	if elapsed < time.Duration(serv.minStudyMinutes)*time.Minute {
		return nil
	}
	_, err = serv.checkInService.CheckIn(ctx, &CheckInRequest{
		UserID:         uid,
		Date:           serv.now(),
		Source:         source,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		// The session is already closed; a lost derived check-in (user
		// checked in by another path, say) must not fail Stop
		logger.Warn("derived check-in failed", slog.String("error", err.Error()))
	}
	return nil
}
