package entity

import (
	"time"

	"github.com/google/uuid"
)

// CheckInSource tells which path produced a check-in. The set is closed:
// anything outside of it is rejected before touching storage.
type CheckInSource string

const (
	SourceManual       CheckInSource = "manual"
	SourceAuto         CheckInSource = "auto"
	SourceGroupSession CheckInSource = "group_session"
	SourcePhotoCheckIn CheckInSource = "photo_checkin"
)

func (s CheckInSource) Valid() bool {
	switch s {
	case SourceManual, SourceAuto, SourceGroupSession, SourcePhotoCheckIn:
		return true
	}
	return false
}

func (s CheckInSource) String() string {
	return string(s)
}

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Timezone     string
}

// StreakLog is one recorded check-in. At most one exists per
// (UserID, CheckDate); the streak_logs table enforces it with a unique
// constraint. Rows are immutable once written.
type StreakLog struct {
	ID        int64
	UserID    uuid.UUID
	CheckDate time.Time
	Source    CheckInSource
	CreatedAt time.Time
}

// TrackingSession lives only in the cache, keyed by (user, source),
// until Stop consumes it or the TTL drops it.
type TrackingSession struct {
	StartTime time.Time     `json:"start_time"`
	Source    CheckInSource `json:"source"`
}

// StudyPeriod is a finished tracked interval, recorded on every Stop
// regardless of length. Daily sums feed the group-session eligibility gate.
type StudyPeriod struct {
	ID        int64
	UserID    uuid.UUID
	StudyDate time.Time
	Minutes   int
	Source    CheckInSource
	CreatedAt time.Time
}

// StreakSummary is derived from streak logs on every read, never stored.
type StreakSummary struct {
	UserID        uuid.UUID   `json:"user_id"`
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	LastCheckIn   *time.Time  `json:"last_check_in,omitempty"`
	History       []time.Time `json:"history"`
	Timezone      string      `json:"timezone,omitempty"`
}

type LeaderboardEntry struct {
	UserID uuid.UUID `json:"user_id"`
	Streak int       `json:"streak"`
}

type Group struct {
	ID   uuid.UUID
	Name string
}
