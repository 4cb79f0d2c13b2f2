package services

import (
	"errors"
	"strings"
	"time"

	"github.com/seangowans32/burnbyte/config"
	"github.com/seangowans32/burnbyte/models"
	"github.com/seangowans32/burnbyte/utils"
)

var ErrFoodNotFound = errors.New("food not found in favorites")

// UpdateBodyData replaces the user's calculator inputs. When the client did
// not send precomputed goals, they are derived server-side.
func UpdateBodyData(userID uint, body models.BodyData) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if body.Calories == (models.CalorieGoals{}) {
		goals, err := utils.CalculateCalorieGoals(body)
		if err != nil {
			return nil, err
		}
		body.Calories = goals
	}

	user.BodyData = body
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func AddFavoriteFood(userID uint, name string, calories, quantity int) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	for _, food := range user.FavoriteFoods {
		if strings.EqualFold(food.Name, name) {
			return nil, errors.New("food already in favorites")
		}
	}

	user.FavoriteFoods = append(user.FavoriteFoods, models.FavoriteFood{
		Name:     name,
		Calories: calories,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func RemoveFavoriteFood(userID uint, name string) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	kept := user.FavoriteFoods[:0]
	removed := false
	for _, food := range user.FavoriteFoods {
		if strings.EqualFold(food.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, food)
	}
	if !removed {
		return nil, ErrFoodNotFound
	}

	user.FavoriteFoods = kept
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateFavoriteFoodQuantity(userID uint, name string, quantity int) (*models.User, error) {
	if quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range user.FavoriteFoods {
		if strings.EqualFold(user.FavoriteFoods[i].Name, name) {
			user.FavoriteFoods[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrFoodNotFound
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateDailyCalories(userID uint, dailyCalories int) (*models.User, error) {
	if dailyCalories < 0 {
		return nil, errors.New("daily calories must not be negative")
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.DailyCalories = dailyCalories
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateTimezone validates the IANA zone name before storing it. The reset
// scheduler tolerates bad zones anyway, but rejecting them here keeps resets
// happening at the midnight the user expects.
func UpdateTimezone(userID uint, timezone string) (*models.User, error) {
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return nil, errors.New("invalid timezone")
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.Timezone = timezone
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
