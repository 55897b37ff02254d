package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/pkg/cleanup"
	"github.com/limbo/studystreak/pkg/entity"
)

type StreakLogsRepository struct {
	conn PgConnection
}

func NewStreakLogsRepo(cfg DBConfig) *StreakLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streakLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streakLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreakLogsRepository{
		conn: pool,
	}
}

func NewStreakLogsRepoWithConn(conn PgConnection) *StreakLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streakLogsRepo: " + err.Error())
	}
	return &StreakLogsRepository{
		conn: conn,
	}
}

func (logsRepo *StreakLogsRepository) Create(ctx context.Context, uid uuid.UUID, date time.Time, source entity.CheckInSource) error {
	_, err := logsRepo.conn.Exec(
		ctx,
		`INSERT INTO streak_logs (user_id, check_date, source) VALUES ($1, $2, $3);`,
		uid,
		date,
		source.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyCheckedIn
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.Join(errorvalues.ErrStorageUnavailable, errors.New("creating streak log error: "+err.Error()))
	}
	return nil
}

func (logsRepo *StreakLogsRepository) Exists(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM streak_logs WHERE user_id = $1 AND check_date = $2);`,
		uid,
		date,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("inspecting if streak log exists error: "+err.Error()))
	}
	return exists, nil
}

func (logsRepo *StreakLogsRepository) GetDatesByUserID(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := logsRepo.conn.Query(
		ctx,
		`SELECT check_date FROM streak_logs WHERE user_id = $1 ORDER BY check_date DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("getting check-in dates error: "+err.Error()))
	}
	return scanDates(rows)
}

func (logsRepo *StreakLogsRepository) GetDatesByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]time.Time, error) {
	rows, err := logsRepo.conn.Query(
		ctx,
		`SELECT check_date FROM streak_logs WHERE user_id = $1 AND check_date >= $2 AND check_date <= $3 ORDER BY check_date DESC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("getting check-in dates for period error: "+err.Error()))
	}
	return scanDates(rows)
}

func (logsRepo *StreakLogsRepository) GetLastCheckInDate(ctx context.Context, uid uuid.UUID) (*time.Time, error) {
	row := logsRepo.conn.QueryRow(
		ctx,
		`SELECT check_date FROM streak_logs WHERE user_id = $1 ORDER BY check_date DESC LIMIT 1;`,
		uid,
	)
	var date time.Time
	if err := row.Scan(&date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("getting last check-in date error: "+err.Error()))
	}
	return &date, nil
}

func scanDates(rows pgx.Rows) ([]time.Time, error) {
	result := make([]time.Time, 0, 8)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, errors.New("check-in date row parsing error: " + err.Error())
		}
		result = append(result, date)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected check-in date rows error: " + rows.Err().Error())
	}
	return result, nil
}
