package utils

import (
	"errors"
	"math"

	"github.com/seangowans32/burnbyte/models"
)

// CalculateBMR uses the Mifflin-St Jeor equation. Weight in kilograms,
// height in centimeters.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, errors.New("gender must be \"male\" or \"female\"")
	}
	return bmr, nil
}

// CalculateCalorieGoals derives cut/maintain/bulk targets from body data.
// Maintain is TDEE (BMR x activity multiplier); cut and bulk are a 500 kcal
// deficit/surplus around it.
func CalculateCalorieGoals(body models.BodyData) (models.CalorieGoals, error) {
	bmr, err := CalculateBMR(body.Weight, body.Height, body.Age, body.Gender)
	if err != nil {
		return models.CalorieGoals{}, err
	}
	if body.ActivityLevel < 1.0 || body.ActivityLevel > 2.5 {
		return models.CalorieGoals{}, errors.New("activity level out of range")
	}

	tdee := bmr * body.ActivityLevel
	maintain := int(math.Round(tdee))
	return models.CalorieGoals{
		Cut:      maintain - 500,
		Maintain: maintain,
		Bulk:     maintain + 500,
	}, nil
}
