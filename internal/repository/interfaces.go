package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/studystreak/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists ids of all known users. Candidate set for the global leaderboard
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type StreakLogsRepositoryI interface {
	// Appends a check-in record. The unique constraint on (user_id, check_date)
	// is the source of truth for date uniqueness; a violation comes back
	// as ErrAlreadyCheckedIn
	Create(ctx context.Context, uid uuid.UUID, date time.Time, source entity.CheckInSource) error
	// Inspects if a check-in exists for the date
	Exists(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error)
	// Provides all check-in dates of a user, newest first
	GetDatesByUserID(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Provides check-in dates of a user inside [from, to], newest first
	GetDatesByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]time.Time, error)
	// Returns date of the latest check-in, nil when there is none
	GetLastCheckInDate(ctx context.Context, uid uuid.UUID) (*time.Time, error)
}

type StudyPeriodsRepositoryI interface {
	// Records a finished tracked interval
	Create(ctx context.Context, period *entity.StudyPeriod) error
	// Sums recorded minutes of a user for one date
	TotalMinutesByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (int, error)
}

type GroupsRepositoryI interface {
	// Lists member ids of a group. ErrGroupNotFound when the group doesn't exist
	GetMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
