package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/studystreak/internal/cache"
	cachemocks "github.com/limbo/studystreak/internal/cache/mocks"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/repository/mocks"
	"github.com/limbo/studystreak/internal/service"
	servicemocks "github.com/limbo/studystreak/internal/service/mocks"
	"github.com/limbo/studystreak/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockStreakLogsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	periodsRepo := mocks.NewMockStudyPeriodsRepositoryI(ctrl)
	trackingCache := cachemocks.NewMockTrackingCacheI(ctrl)
	notifier := servicemocks.NewMockNotifierI(ctrl)

	now := day(t, "2024-01-05").Add(12 * time.Hour)
	serv := service.NewCheckInService(logsRepo, usersRepo, periodsRepo, trackingCache, notifier, service.CheckInConfig{
		Clock: func() time.Time { return now },
	})
	uid := uuid.New()
	user := &entity.User{
		ID:       uid,
		Name:     "test_name",
		Timezone: "UTC",
	}
	today := day(t, "2024-01-05")
	idemKey := uuid.NewString()
	markerKey := cache.IdempotencyMarkerKey(idemKey)
	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.CheckInRequest
		Current      int
		Longest      int
		MockPrepFunc func()
	}{
		{
			Desc:  "success manual",
			Error: nil,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			Current: 2,
			Longest: 2,
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				logsRepo.EXPECT().Exists(gomock.Any(), uid, today).Return(false, nil)
				logsRepo.EXPECT().Create(gomock.Any(), uid, today, entity.SourceManual).Return(nil)
				logsRepo.EXPECT().GetDatesByUserID(gomock.Any(), uid).Return(days(t, "2024-01-05", "2024-01-04"), nil)
				notifier.EXPECT().NotifyCheckIn(uid, today)
			},
		},
		{
			Desc:  "duplicate request",
			Error: errorvalues.ErrDuplicateRequest,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(false, nil)
			},
		},
		{
			Desc:  "already checked in, fast path",
			Error: errorvalues.ErrAlreadyCheckedIn,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				logsRepo.EXPECT().Exists(gomock.Any(), uid, today).Return(true, nil)
			},
		},
		{
			Desc:  "already checked in, lost the race on the unique constraint",
			Error: errorvalues.ErrAlreadyCheckedIn,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				logsRepo.EXPECT().Exists(gomock.Any(), uid, today).Return(false, nil)
				logsRepo.EXPECT().Create(gomock.Any(), uid, today, entity.SourceManual).Return(errorvalues.ErrAlreadyCheckedIn)
			},
		},
		{
			Desc:  "group session below minimum study time",
			Error: errorvalues.ErrInsufficientStudyTime,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceGroupSession,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				// The marker is still consumed on this business failure
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				logsRepo.EXPECT().Exists(gomock.Any(), uid, today).Return(false, nil)
				periodsRepo.EXPECT().TotalMinutesByUserAndDate(gomock.Any(), uid, today).Return(24, nil)
			},
		},
		{
			Desc:  "group session at the minimum",
			Error: nil,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceGroupSession,
				IdempotencyKey: idemKey,
			},
			Current: 1,
			Longest: 1,
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
				logsRepo.EXPECT().Exists(gomock.Any(), uid, today).Return(false, nil)
				periodsRepo.EXPECT().TotalMinutesByUserAndDate(gomock.Any(), uid, today).Return(25, nil)
				logsRepo.EXPECT().Create(gomock.Any(), uid, today, entity.SourceGroupSession).Return(nil)
				logsRepo.EXPECT().GetDatesByUserID(gomock.Any(), uid).Return(days(t, "2024-01-05"), nil)
				notifier.EXPECT().NotifyCheckIn(uid, today)
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).Return(true, nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "cache unavailable",
			Error: errorvalues.ErrCacheUnavailable,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {
				trackingCache.EXPECT().SetIfAbsent(gomock.Any(), markerKey, gomock.Any(), service.DefaultIdempotencyTTL).
					Return(false, errors.Join(errorvalues.ErrCacheUnavailable, errors.New("cache setnx error: timeout")))
			},
		},
		{
			Desc:  "unknown source",
			Error: errorvalues.ErrInvalidSource,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now,
				Source:         entity.CheckInSource("carrier_pigeon"),
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "future date",
			Error: errorvalues.ErrCheckInDateNotAllowed,
			Request: &service.CheckInRequest{
				UserID:         uid,
				Date:           now.Add(48 * time.Hour),
				Source:         entity.SourceManual,
				IdempotencyKey: idemKey,
			},
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			summary, err := serv.CheckIn(ctx, tc.Request)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				require.NotNil(t, summary)
				assert.Equal(t, tc.Current, summary.CurrentStreak)
				assert.Equal(t, tc.Longest, summary.LongestStreak)
				require.NotNil(t, summary.LastCheckIn)
				assert.Equal(t, today, *summary.LastCheckIn)
				assert.Equal(t, user.Timezone, summary.Timezone)
			}
		})
	}
}

func TestGetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	logsRepo := mocks.NewMockStreakLogsRepositoryI(ctrl)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	periodsRepo := mocks.NewMockStudyPeriodsRepositoryI(ctrl)
	trackingCache := cachemocks.NewMockTrackingCacheI(ctrl)

	now := day(t, "2024-01-07").Add(9 * time.Hour)
	serv := service.NewCheckInService(logsRepo, usersRepo, periodsRepo, trackingCache, nil, service.CheckInConfig{
		Clock: func() time.Time { return now },
	})
	uid := uuid.New()
	user := &entity.User{
		ID:       uid,
		Name:     "test_name",
		Timezone: "Europe/Berlin",
	}
	ctx := context.Background()

	t.Run("broken chain after a gap", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
		logsRepo.EXPECT().GetDatesByUserID(gomock.Any(), uid).
			Return(days(t, "2024-01-07", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01"), nil)
		summary, err := serv.GetStreak(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.CurrentStreak)
		assert.Equal(t, 5, summary.LongestStreak)
		require.NotNil(t, summary.LastCheckIn)
		assert.Equal(t, day(t, "2024-01-07"), *summary.LastCheckIn)
		assert.Equal(t, "Europe/Berlin", summary.Timezone)
	})

	t.Run("no history", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
		logsRepo.EXPECT().GetDatesByUserID(gomock.Any(), uid).Return([]time.Time{}, nil)
		summary, err := serv.GetStreak(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CurrentStreak)
		assert.Equal(t, 0, summary.LongestStreak)
		assert.Nil(t, summary.LastCheckIn)
	})

	t.Run("user not found", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.GetStreak(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
