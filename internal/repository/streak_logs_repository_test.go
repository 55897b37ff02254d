package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/repository"
	"github.com/limbo/studystreak/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStreakLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewStreakLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO streak_logs (user_id, check_date, source) VALUES ($1, $2, $3);`)
	uid := uuid.New()
	checkDate := time.Now()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(uid, checkDate, "manual").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrAlreadyCheckedIn,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, checkDate, "manual").WillReturnError(&pgconn.PgError{
					Code: "23505",
				})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, checkDate, "manual").WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, checkDate, "manual").WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := logsRepo.Create(ctx, uid, checkDate, entity.SourceManual)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestExistsStreakLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewStreakLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM streak_logs WHERE user_id = $1 AND check_date = $2);`)
	uid := uuid.New()
	checkDate := time.Now()
	testCases := []struct {
		Desc          string
		Error         error
		IsExistResult bool
		MockPrepFunc  func()
	}{
		{
			Desc:  "successful: exists",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, checkDate).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			IsExistResult: true,
		},
		{
			Desc:  "successful: doesn't exist",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, checkDate).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			IsExistResult: false,
		},
		{
			Desc:  "db error",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, checkDate).
					WillReturnError(errors.New("db error"))
			},
			IsExistResult: false,
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			exists, err := logsRepo.Exists(ctx, uid, checkDate)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.IsExistResult, exists)
			}
		})
	}
}

func TestGetDatesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewStreakLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT check_date FROM streak_logs WHERE user_id = $1 ORDER BY check_date DESC;`)
	uid := uuid.New()
	returnedDates := []time.Time{
		time.Now(),
		time.Now().Add(time.Hour * -24),
		time.Now().Add(time.Hour * -48),
	}
	testCases := []struct {
		Desc         string
		Error        error
		DatesResult  []time.Time
		MockPrepFunc func()
	}{
		{
			Desc:        "success",
			Error:       nil,
			DatesResult: returnedDates,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"check_date"})
				for _, date := range returnedDates {
					rows.AddRow(date)
				}
				mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
			},
		},
		{
			Desc:        "success: no history",
			Error:       nil,
			DatesResult: []time.Time{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows([]string{"check_date"}))
			},
		},
		{
			Desc:        "db error",
			Error:       errorvalues.ErrStorageUnavailable,
			DatesResult: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := logsRepo.GetDatesByUserID(ctx, uid)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.DatesResult, result)
			}
		})
	}
}

func TestGetDatesByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewStreakLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT check_date FROM streak_logs WHERE user_id = $1 AND check_date >= $2 AND check_date <= $3 ORDER BY check_date DESC;`)
	uid := uuid.New()
	fromDate := time.Now().Add(time.Hour * -144)
	toDate := time.Now()
	returnedDates := []time.Time{
		toDate,
		time.Now().Add(time.Hour * -24),
	}
	testCases := []struct {
		Desc         string
		Error        error
		DatesResult  []time.Time
		MockPrepFunc func()
	}{
		{
			Desc:        "success",
			Error:       nil,
			DatesResult: returnedDates,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"check_date"})
				for _, date := range returnedDates {
					rows.AddRow(date)
				}
				mock.ExpectQuery(query).WithArgs(uid, fromDate, toDate).WillReturnRows(rows)
			},
		},
		{
			Desc:        "db error",
			Error:       errorvalues.ErrStorageUnavailable,
			DatesResult: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, fromDate, toDate).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := logsRepo.GetDatesByUserAndDateRange(ctx, uid, fromDate, toDate)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.DatesResult, result)
			}
		})
	}
}

func TestGetLastCheckInDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewStreakLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT check_date FROM streak_logs WHERE user_id = $1 ORDER BY check_date DESC LIMIT 1;`)
	uid := uuid.New()
	returnedDate := time.Now().Add(time.Hour * -24)
	testCases := []struct {
		Desc            string
		Error           error
		CheckDateResult *time.Time
		MockPrepFunc    func()
	}{
		{
			Desc:            "successful",
			Error:           nil,
			CheckDateResult: &returnedDate,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"check_date"}).AddRow(returnedDate))
			},
		},
		{
			Desc:            "ErrNoRows",
			Error:           nil,
			CheckDateResult: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:            "other db error",
			Error:           errorvalues.ErrStorageUnavailable,
			CheckDateResult: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			date, err := logsRepo.GetLastCheckInDate(ctx, uid)
			assert.ErrorIs(t, err, tc.Error)
			if tc.CheckDateResult == nil {
				assert.Nil(t, date)
			} else {
				require.NotNil(t, date)
				assert.Equal(t, *tc.CheckDateResult, *date)
			}
		})
	}
}
