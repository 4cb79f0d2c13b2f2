package services

import (
	"context"
	"sync"
	"time"

	"github.com/seangowans32/burnbyte/config"
	"github.com/seangowans32/burnbyte/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Hourly at minute 0, same cadence for every user regardless of timezone.
// Per-user local-midnight detection happens inside the executor.
const hourlyCronSpec = "0 * * * *"

const defaultTimezone = "America/Toronto"

// DailyResetScheduler drives the reset executor across the whole user
// population on a fixed wall-clock cadence. It is process-wide singleton
// state: Start is called once from main and there is no stop beyond process
// exit. Running a second instance against the same database is not
// coordinated; the history upsert keeps archives unique, but counters could
// be reset by either instance.
type DailyResetScheduler struct {
	db    *gorm.DB
	log   *zap.Logger
	reset *DailyResetService
	spec  string

	startOnce sync.Once
	cron      *cron.Cron
}

// NewDailyResetScheduler reads its settings from the environment:
// DEFAULT_TIMEZONE (fallback zone for unresolvable user timezones),
// RESET_INTERVAL (overrides the hourly cadence, e.g. "30s" for local
// iteration) and RESET_ACCELERATED ("true" drops the midnight-hour gate).
func NewDailyResetScheduler(db *gorm.DB, log *zap.Logger) *DailyResetScheduler {
	tz := config.Getenv("DEFAULT_TIMEZONE", defaultTimezone)
	zone, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn("invalid DEFAULT_TIMEZONE, falling back to UTC", zap.String("timezone", tz))
		zone = time.UTC
	}

	accelerated := config.Getenv("RESET_ACCELERATED", "false") == "true"
	spec := hourlyCronSpec
	if interval := config.Getenv("RESET_INTERVAL", ""); interval != "" {
		spec = "@every " + interval
	}

	reset := NewDailyResetService(db, log, NewHistoryService(db), DailyResetConfig{
		DefaultZone: zone,
		Accelerated: accelerated,
	})

	return &DailyResetScheduler{
		db:    db,
		log:   log.Named("daily_reset"),
		reset: reset,
		spec:  spec,
	}
}

// Start registers the recurring tick and begins firing it. Ticks are
// serialized: if one is still running when the next fires, the new one is
// skipped rather than overlapping the same users.
func (s *DailyResetScheduler) Start() {
	s.startOnce.Do(func() {
		cronLog := cron.PrintfLogger(zap.NewStdLog(s.log))
		s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLog)))
		if _, err := s.cron.AddFunc(s.spec, s.RunTick); err != nil {
			s.log.Error("failed to register reset job", zap.String("spec", s.spec), zap.Error(err))
			return
		}
		s.cron.Start()
		s.log.Info("daily reset scheduler started", zap.String("spec", s.spec))
	})
}

// RunTick processes every user once. A failed population load abandons the
// whole tick; any per-user failure is logged and skipped so the remaining
// users still get processed.
func (s *DailyResetScheduler) RunTick() {
	s.runTickAt(time.Now())
}

func (s *DailyResetScheduler) runTickAt(now time.Time) {
	ctx := context.Background()

	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		s.log.Error("loading users failed, tick abandoned", zap.Error(err))
		return
	}

	resets := 0
	for i := range users {
		outcome, err := s.reset.ProcessUser(ctx, &users[i], now)
		if err != nil {
			s.log.Error("daily reset failed",
				zap.Uint("userId", users[i].ID),
				zap.Error(err),
			)
			continue
		}
		if outcome == ResetCommitted {
			resets++
		}
	}

	if resets > 0 {
		s.log.Info("daily reset tick completed",
			zap.Int("usersReset", resets),
			zap.Int("usersChecked", len(users)),
		)
	}
}
