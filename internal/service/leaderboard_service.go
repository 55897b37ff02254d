package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/internal/repository"
	"github.com/limbo/studystreak/pkg/entity"
)

type LeaderboardConfig struct {
	// Clock for anchoring the trailing window. Nil means time.Now
	Clock func() time.Time
}

type LeaderboardService struct {
	logsRepo   repository.StreakLogsRepositoryI
	usersRepo  repository.UsersRepositoryI
	groupsRepo repository.GroupsRepositoryI
	now        func() time.Time
}

func NewLeaderboardService(
	logsRepo repository.StreakLogsRepositoryI,
	usersRepo repository.UsersRepositoryI,
	groupsRepo repository.GroupsRepositoryI,
	cfg LeaderboardConfig,
) *LeaderboardService {
	if logsRepo == nil || usersRepo == nil || groupsRepo == nil {
		log.Fatal("on leaderboard service provided nil repos")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &LeaderboardService{
		logsRepo:   logsRepo,
		usersRepo:  usersRepo,
		groupsRepo: groupsRepo,
		now:        cfg.Clock,
	}
}

// Build ranks candidates by their current streak recomputed over the
// window only, so a ranked streak can be shorter than the all-time one.
// Zero streaks are dropped; ties keep candidate order.
func (serv *LeaderboardService) Build(ctx context.Context, scope LeaderboardScope, period LeaderboardPeriod, groupID *uuid.UUID) ([]entity.LeaderboardEntry, error) {
	today := DateOnly(serv.now())
	var from time.Time
	switch period {
	case PeriodWeek:
		from = today.AddDate(0, 0, -6)
	case PeriodMonth:
		from = today.AddDate(0, -1, 0)
	default:
		return nil, errors.New("unknown leaderboard period")
	}
	candidates, err := serv.resolveCandidates(ctx, scope, groupID)
	if err != nil {
		return nil, err
	}
	entries := make([]entity.LeaderboardEntry, 0, len(candidates))
	for _, uid := range candidates {
		dates, err := serv.logsRepo.GetDatesByUserAndDateRange(ctx, uid, from, today)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		streak := CurrentStreak(dates, today)
		if streak == 0 {
			continue
		}
		entries = append(entries, entity.LeaderboardEntry{
			UserID: uid,
			Streak: streak,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Streak > entries[j].Streak
	})
	return entries, nil
}

func (serv *LeaderboardService) resolveCandidates(ctx context.Context, scope LeaderboardScope, groupID *uuid.UUID) ([]uuid.UUID, error) {
	switch scope {
	case ScopeGlobal:
		ids, err := serv.usersRepo.ListIDs(ctx)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		return ids, nil
	case ScopeGroup:
		if groupID == nil {
			return nil, nil
		}
		ids, err := serv.groupsRepo.GetMemberIDs(ctx, *groupID)
		if err != nil {
			// Unknown group ranks nobody instead of failing the board
			if errors.Is(err, errorvalues.ErrGroupNotFound) {
				return nil, nil
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		return ids, nil
	}
	return nil, errors.New("unknown leaderboard scope")
}
