package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studystreak/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Timezone string `validate:"omitempty,timezone"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CheckInRequest struct {
	UserID         uuid.UUID
	Date           time.Time
	Source         entity.CheckInSource
	IdempotencyKey string
}

type CheckInServiceI interface {
	// Records a check-in exactly once per (user, date) and returns the
	// recomputed streak summary
	CheckIn(ctx context.Context, req *CheckInRequest) (*entity.StreakSummary, error)
	// Recomputes the streak summary from the full check-in history
	GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakSummary, error)
}

type SessionTrackerI interface {
	// Opens a tracking session for (user, source)
	Start(ctx context.Context, uid uuid.UUID, source entity.CheckInSource) error
	// Closes the session, records the elapsed study period and converts it
	// into a check-in once the duration threshold is met
	Stop(ctx context.Context, uid uuid.UUID, source entity.CheckInSource) error
}

type LeaderboardScope string

const (
	ScopeGlobal LeaderboardScope = "global"
	ScopeGroup  LeaderboardScope = "group"
)

type LeaderboardPeriod string

const (
	PeriodWeek  LeaderboardPeriod = "week"
	PeriodMonth LeaderboardPeriod = "month"
)

type LeaderboardServiceI interface {
	// Ranks candidate users by their current streak inside the trailing
	// window. groupID is only read for ScopeGroup
	Build(ctx context.Context, scope LeaderboardScope, period LeaderboardPeriod, groupID *uuid.UUID) ([]entity.LeaderboardEntry, error)
}

// NotifierI receives a fire-and-forget ping after a successful check-in.
// It must never fail the check-in itself.
type NotifierI interface {
	NotifyCheckIn(uid uuid.UUID, date time.Time)
}
