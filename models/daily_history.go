package models

import "time"

// DailyHistory is one archived day of calorie data per user. Date is the
// calendar day in the user's own timezone, stored date-only so equality
// checks match the reset scheduler's local-date strings. The composite
// unique index makes the archival upsert idempotent under duplicate ticks.
type DailyHistory struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:uidx_user_date" json:"userId"`
	Date   string `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`

	MaintainCalories int `gorm:"not null" json:"maintainCalories"`
	DailyCalories    int `gorm:"not null;default:0" json:"dailyCalories"`

	CreatedAt time.Time `json:"createdAt"`
}
