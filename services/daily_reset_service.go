package services

import (
	"context"
	"fmt"
	"time"

	"github.com/seangowans32/burnbyte/models"
	"github.com/seangowans32/burnbyte/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResetOutcome is the terminal state of one user's pass through the reset
// executor on one tick.
type ResetOutcome int

const (
	// ResetSkipped: the user was not due; nothing was touched.
	ResetSkipped ResetOutcome = iota
	// ResetCommitted: counters were zeroed and LastResetDate advanced.
	ResetCommitted
	// ResetFailed: the user was due but the reset write failed; the user
	// stays eligible and is retried on the next tick.
	ResetFailed
)

// DailyResetConfig controls the reset executor.
type DailyResetConfig struct {
	// DefaultZone is used when a user's timezone is empty or invalid.
	DefaultZone *time.Location
	// Accelerated drops the midnight-hour gate so short test intervals can
	// trigger resets. Date-based idempotence still applies: at most one
	// reset per distinct local date.
	Accelerated bool
}

// DailyResetService zeroes per-user daily counters once per local calendar
// day and archives the outgoing day into history first.
type DailyResetService struct {
	db      *gorm.DB
	log     *zap.Logger
	history *HistoryService
	cfg     DailyResetConfig
}

func NewDailyResetService(db *gorm.DB, log *zap.Logger, history *HistoryService, cfg DailyResetConfig) *DailyResetService {
	if cfg.DefaultZone == nil {
		cfg.DefaultZone = time.UTC
	}
	return &DailyResetService{db: db, log: log, history: history, cfg: cfg}
}

// resetDue reports whether a user should be reset right now. The hour-wide
// window (any minute within hour 0) matters because the driving cadence is
// hourly and may observe any minute of the midnight hour. A user with no
// prior reset date is due the first time hour 0 is observed.
func resetDue(localHour int, todayLocalDate, lastResetDate string) bool {
	return localHour == 0 && todayLocalDate != lastResetDate
}

// ProcessUser runs the per-user reset sequence for one tick: resolve local
// time, gate on eligibility, archive the outgoing day, zero the counters and
// commit them together with the new LastResetDate.
//
// An archive failure is logged and does not block the reset: eligibility for
// future ticks depends only on LastResetDate, so letting the reset proceed
// avoids re-running it every hour for a day whose history write keeps
// failing. A failed commit leaves LastResetDate unchanged in storage, so the
// user is evaluated as due again on the next tick.
func (s *DailyResetService) ProcessUser(ctx context.Context, user *models.User, now time.Time) (ResetOutcome, error) {
	lt := utils.ResolveLocalTime(user.Timezone, now, s.cfg.DefaultZone)

	due := resetDue(lt.Hour, lt.Date, user.LastResetDate)
	if s.cfg.Accelerated {
		due = lt.Date != user.LastResetDate
	}
	if !due {
		return ResetSkipped, nil
	}

	// Snapshot the outgoing day before any mutation.
	maintain := user.BodyData.Calories.Maintain
	consumed := user.DailyCalories

	if err := s.history.Archive(ctx, user.ID, lt.PreviousDate(), maintain, consumed); err != nil {
		s.log.Warn("history archive failed, continuing with reset",
			zap.Uint("userId", user.ID),
			zap.String("date", lt.PreviousDate()),
			zap.Error(err),
		)
	}

	user.DailyCalories = 0
	for i := range user.FavoriteFoods {
		user.FavoriteFoods[i].Quantity = 0
	}
	user.LastResetDate = lt.Date

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return ResetFailed, fmt.Errorf("persist reset for user %d: %w", user.ID, err)
	}

	s.log.Info("daily reset committed",
		zap.Uint("userId", user.ID),
		zap.String("timezone", user.Timezone),
		zap.String("localDate", lt.Date),
	)
	return ResetCommitted, nil
}
