package controllers

import (
	"errors"
	"net/http"

	"github.com/seangowans32/burnbyte/config"
	"github.com/seangowans32/burnbyte/models"
	"github.com/seangowans32/burnbyte/services"

	"github.com/gin-gonic/gin"
)

func UpdateBodyData(c *gin.Context) {
	userID := c.GetUint("userID")

	var input models.BodyData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateBodyData(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "body data updated", "bodyData": user.BodyData})
}

type FavoriteFoodInput struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories"`
	Quantity int    `json:"quantity"`
}

func AddFavoriteFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FavoriteFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Calories <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calories are required"})
		return
	}

	user, err := services.AddFavoriteFood(userID, input.Name, input.Calories, input.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food added to favorites", "favoriteFoods": user.FavoriteFoods})
}

func RemoveFavoriteFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RemoveFavoriteFood(userID, input.Name)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrFoodNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food removed from favorites", "favoriteFoods": user.FavoriteFoods})
}

func UpdateFavoriteFoodQuantity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateFavoriteFoodQuantity(userID, input.Name, input.Quantity)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrFoodNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food quantity updated", "favoriteFoods": user.FavoriteFoods})
}

func UpdateDailyCalories(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		DailyCalories int `json:"dailyCalories"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateDailyCalories(userID, input.DailyCalories)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "daily calories updated", "dailyCalories": user.DailyCalories})
}

func UpdateTimezone(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Timezone string `json:"timezone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateTimezone(userID, input.Timezone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "timezone updated", "timezone": user.Timezone})
}

func GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.NewHistoryService(config.DB).ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
