package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/pkg/cleanup"
	"github.com/limbo/studystreak/pkg/entity"
)

type StudyPeriodsRepository struct {
	conn PgConnection
}

func NewStudyPeriodsRepo(cfg DBConfig) *StudyPeriodsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for studyPeriodsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for studyPeriodsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StudyPeriodsRepository{
		conn: pool,
	}
}

func NewStudyPeriodsRepoWithConn(conn PgConnection) *StudyPeriodsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for studyPeriodsRepo: " + err.Error())
	}
	return &StudyPeriodsRepository{
		conn: conn,
	}
}

func (periodsRepo *StudyPeriodsRepository) Create(ctx context.Context, period *entity.StudyPeriod) error {
	if period == nil {
		return errors.New("study period is nil")
	}
	_, err := periodsRepo.conn.Exec(
		ctx,
		`INSERT INTO study_periods (user_id, study_date, minutes, source) VALUES ($1, $2, $3, $4);`,
		period.UserID,
		period.StudyDate,
		period.Minutes,
		period.Source.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// FK violation
			if pgErr.Code == "23503" {
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.Join(errorvalues.ErrStorageUnavailable, errors.New("creating study period error: "+err.Error()))
	}
	return nil
}

func (periodsRepo *StudyPeriodsRepository) TotalMinutesByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (int, error) {
	row := periodsRepo.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM study_periods WHERE user_id = $1 AND study_date = $2;`,
		uid,
		date,
	)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, errors.Join(errorvalues.ErrStorageUnavailable, errors.New("summing study minutes error: "+err.Error()))
	}
	return total, nil
}
