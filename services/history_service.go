package services

import (
	"context"
	"fmt"
	"time"

	"github.com/seangowans32/burnbyte/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryService persists one archived record per user per calendar day.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Archive upserts the (userID, date) history row with the day's snapshot
// values. Days with no maintenance target and no consumption are skipped so
// history never fills up with empty entries. A duplicate call for the same
// key overwrites the previous values instead of erroring, which keeps the
// operation safe under scheduler double-fires.
func (s *HistoryService) Archive(ctx context.Context, userID uint, date string, maintainCalories, dailyCalories int) error {
	if maintainCalories == 0 && dailyCalories == 0 {
		return nil
	}

	entry := models.DailyHistory{
		UserID:           userID,
		Date:             date,
		MaintainCalories: maintainCalories,
		DailyCalories:    dailyCalories,
		CreatedAt:        time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"maintain_calories", "daily_calories", "created_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("archive history for user %d on %s: %w", userID, date, err)
	}
	return nil
}

// ListByUser returns a user's full history, oldest first.
func (s *HistoryService) ListByUser(ctx context.Context, userID uint) ([]models.DailyHistory, error) {
	var entries []models.DailyHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}
