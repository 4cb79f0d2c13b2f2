package controllers

import (
	"net/http"
	"os"

	"github.com/seangowans32/burnbyte/services"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Username, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Session cookie for the SPA; the token is also returned for clients
	// that prefer the Authorization header.
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetCookie("t", token, 3600*72, "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func Logout(c *gin.Context) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetCookie("t", "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out successfully"})
}

func GetUser(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
