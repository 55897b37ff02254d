package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studystreak/internal/cache"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/repository"
	"github.com/limbo/studystreak/pkg/entity"
)

const (
	DefaultMinStudyMinutes = 25
	DefaultIdempotencyTTL  = 24 * time.Hour
)

type CheckInConfig struct {
	// Minimum recorded study minutes a group-session check-in requires.
	// Zero means DefaultMinStudyMinutes
	MinStudyMinutes int
	// Lifetime of idempotency markers. Zero means DefaultIdempotencyTTL
	IdempotencyTTL time.Duration
	// Clock for "today" decisions. Nil means time.Now
	Clock func() time.Time
}

type CheckInService struct {
	logsRepo        repository.StreakLogsRepositoryI
	usersRepo       repository.UsersRepositoryI
	periodsRepo     repository.StudyPeriodsRepositoryI
	cache           cache.TrackingCacheI
	notifier        NotifierI
	minStudyMinutes int
	idempotencyTTL  time.Duration
	now             func() time.Time
}

func NewCheckInService(
	logsRepo repository.StreakLogsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	periodsRepo repository.StudyPeriodsRepositoryI,
	trackingCache cache.TrackingCacheI,
	notifier NotifierI,
	cfg CheckInConfig,
) *CheckInService {
	if logsRepo == nil || usersRepo == nil || periodsRepo == nil || trackingCache == nil {
		log.Fatal("on check-in service provided nil dependencies")
	}
	if cfg.MinStudyMinutes == 0 {
		cfg.MinStudyMinutes = DefaultMinStudyMinutes
	}
	if cfg.IdempotencyTTL == 0 {
		cfg.IdempotencyTTL = DefaultIdempotencyTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &CheckInService{
		logsRepo:        logsRepo,
		usersRepo:       usersRepo,
		periodsRepo:     periodsRepo,
		cache:           trackingCache,
		notifier:        notifier,
		minStudyMinutes: cfg.MinStudyMinutes,
		idempotencyTTL:  cfg.IdempotencyTTL,
		now:             cfg.Clock,
	}
}

// CheckIn records one check-in for (user, date). The idempotency marker is
// written up front with SetIfAbsent, so the key is consumed on every
// terminal outcome past the replay guard, business failures included.
// Retrying a failed request needs a fresh key.
func (serv *CheckInService) CheckIn(ctx context.Context, req *CheckInRequest) (*entity.StreakSummary, error) {
	if req == nil || req.IdempotencyKey == "" {
		return nil, errors.New("check-in request is missing an idempotency key")
	}
	if !req.Source.Valid() {
		return nil, errorvalues.ErrInvalidSource
	}
	date := DateOnly(req.Date)
	today := DateOnly(serv.now())
	if date.After(today) {
		return nil, errorvalues.ErrCheckInDateNotAllowed
	}
	firstUse, err := serv.cache.SetIfAbsent(ctx, cache.IdempotencyMarkerKey(req.IdempotencyKey), []byte("1"), serv.idempotencyTTL)
	if err != nil {
		return nil, err
	}
	if !firstUse {
		return nil, errorvalues.ErrDuplicateRequest
	}
	user, err := serv.usersRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	exists, err := serv.logsRepo.Exists(ctx, req.UserID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if exists {
		return nil, errorvalues.ErrAlreadyCheckedIn
	}
	if req.Source == entity.SourceGroupSession {
		total, err := serv.periodsRepo.TotalMinutesByUserAndDate(ctx, req.UserID, date)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if total < serv.minStudyMinutes {
			return nil, errorvalues.ErrInsufficientStudyTime
		}
	}
	// The Exists guard above is only a fast path. Racing writers are
	// resolved by the unique constraint, which comes back as
	// ErrAlreadyCheckedIn from the repository.
	err = serv.logsRepo.Create(ctx, req.UserID, date, req.Source)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyCheckedIn) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	summary, err := serv.buildSummary(ctx, user, today)
	if err != nil {
		return nil, err
	}
	if serv.notifier != nil {
		serv.notifier.NotifyCheckIn(req.UserID, date)
	}
	return summary, nil
}

func (serv *CheckInService) GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakSummary, error) {
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.buildSummary(ctx, user, DateOnly(serv.now()))
}

func (serv *CheckInService) buildSummary(ctx context.Context, user *entity.User, today time.Time) (*entity.StreakSummary, error) {
	dates, err := serv.logsRepo.GetDatesByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := &entity.StreakSummary{
		UserID:        user.ID,
		CurrentStreak: CurrentStreak(dates, today),
		LongestStreak: LongestStreak(dates),
		History:       dates,
		Timezone:      user.Timezone,
	}
	if len(dates) > 0 {
		// Dates arrive newest first
		last := DateOnly(dates[0])
		summary.LastCheckIn = &last
	}
	return summary, nil
}
