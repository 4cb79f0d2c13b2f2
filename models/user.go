package models

import (
	"time"

	"gorm.io/gorm"
)

// CalorieGoals are the targets computed from BodyData (Mifflin-St Jeor).
type CalorieGoals struct {
	Cut      int `json:"cut"`
	Maintain int `json:"maintain"`
	Bulk     int `json:"bulk"`
}

// BodyData holds the calorie-calculator inputs and the derived goals.
// Stored as a single JSON column so it updates atomically with the row.
type BodyData struct {
	Weight        float64      `json:"weight"`
	Height        float64      `json:"height"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	ActivityLevel float64      `json:"activityLevel"`
	Calories      CalorieGoals `json:"calories"`
}

type FavoriteFood struct {
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

type FavoriteFoods []FavoriteFood

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	BodyData      BodyData      `gorm:"serializer:json" json:"bodyData"`
	FavoriteFoods FavoriteFoods `gorm:"serializer:json" json:"favoriteFoods"`

	// Running total of calories consumed today; zeroed once per local day.
	DailyCalories int `gorm:"default:0" json:"dailyCalories"`

	// IANA zone name, e.g. "America/Toronto". Invalid values fall back to
	// the configured default zone at resolution time.
	Timezone string `gorm:"default:'America/Toronto'" json:"timezone"`

	// Local calendar date ("2006-01-02", in the user's zone) of the last
	// completed daily reset. Written only by the reset executor's commit.
	LastResetDate string `json:"lastResetDate"`
}
