// @title StudyStreak API
// @description Check-in and streak tracking API for the study app "StudyStreak"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/limbo/studystreak/internal/api"
	"github.com/limbo/studystreak/internal/cache"
	"github.com/limbo/studystreak/internal/notifier"
	"github.com/limbo/studystreak/internal/repository"
	"github.com/limbo/studystreak/internal/service"
	"github.com/limbo/studystreak/pkg/cleanup"
	"github.com/limbo/studystreak/pkg/config"
	jwtservice "github.com/limbo/studystreak/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	trackingCache := cache.NewRedisCache(cache.RedisCfg{
		Address:  cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	logsRepo := repository.NewStreakLogsRepo(&dbCfg)
	usersRepo := repository.NewUsersRepo(&dbCfg)
	periodsRepo := repository.NewStudyPeriodsRepo(&dbCfg)
	groupsRepo := repository.NewGroupsRepo(&dbCfg)
	hub := notifier.NewHub()

	minStudyMinutes := cfg.GetInt("MIN_STUDY_MINUTES", service.DefaultMinStudyMinutes)
	checkInService := service.NewCheckInService(logsRepo, usersRepo, periodsRepo, trackingCache, hub, service.CheckInConfig{
		MinStudyMinutes: minStudyMinutes,
		IdempotencyTTL:  cfg.GetDuration("IDEMPOTENCY_TTL", service.DefaultIdempotencyTTL),
	})
	sessionTracker := service.NewSessionTrackerService(trackingCache, periodsRepo, checkInService, service.SessionTrackerConfig{
		MinStudyMinutes: minStudyMinutes,
		TrackingTTL:     cfg.GetDuration("TRACKING_TTL", service.DefaultTrackingTTL),
	})
	leaderboardService := service.NewLeaderboardService(logsRepo, usersRepo, groupsRepo, service.LeaderboardConfig{
		Clock: time.Now,
	})
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		CheckInService:     checkInService,
		SessionTracker:     sessionTracker,
		LeaderboardService: leaderboardService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
		Hub:                hub,
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
