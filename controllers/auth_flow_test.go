package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seangowans32/burnbyte/config"
	"github.com/seangowans32/burnbyte/models"
	"github.com/seangowans32/burnbyte/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.DailyHistory{}))

	config.DB = db
	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginAndTrackCalories(t *testing.T) {
	r := setupTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "sean",
		"email":    "sean@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "sean@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodPut, "/api/auth/daily-calories", login.Token, gin.H{
		"dailyCalories": 1450,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/favorite-foods", login.Token, gin.H{
		"name":     "oatmeal",
		"calories": 150,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/auth/user", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1450, got.User.DailyCalories)
	require.Len(t, got.User.FavoriteFoods, 1)
	assert.Equal(t, "oatmeal", got.User.FavoriteFoods[0].Name)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := setupTestApp(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/user"},
		{http.MethodPut, "/api/auth/daily-calories"},
		{http.MethodGet, "/api/auth/history"},
	} {
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestUpdateBodyDataComputesGoals(t *testing.T) {
	r := setupTestApp(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "sean", "email": "sean@example.com", "password": "hunter22",
	})
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "sean@example.com", "password": "hunter22",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(t, r, http.MethodPut, "/api/auth/body-data", login.Token, gin.H{
		"weight": 80, "height": 180, "age": 30, "gender": "male", "activityLevel": 1.55,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		BodyData models.BodyData `json:"bodyData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2759, resp.BodyData.Calories.Maintain)
	assert.Equal(t, 2259, resp.BodyData.Calories.Cut)
	assert.Equal(t, 3259, resp.BodyData.Calories.Bulk)
}

func TestUpdateTimezoneValidatesZone(t *testing.T) {
	r := setupTestApp(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "sean", "email": "sean@example.com", "password": "hunter22",
	})
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "sean@example.com", "password": "hunter22",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(t, r, http.MethodPut, "/api/auth/timezone", login.Token, gin.H{"timezone": "Not/AZone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/auth/timezone", login.Token, gin.H{"timezone": "Europe/Berlin"})
	assert.Equal(t, http.StatusOK, w.Code)
}
