package controllers

import (
	"testing"

	"langlearn/backend/models"
	"langlearn/backend/progress"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) (*fiber.App, *AuthController) {
	db := setupDB(t)
	ac := NewAuthController(db, testCfg)

	app := newApp()
	app.Post("/api/auth/register", ac.Register)
	app.Post("/api/auth/login", ac.Login)
	return app, ac
}

func TestRegister(t *testing.T) {
	app, ac := setupAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", map[string]string{
		"name":     "New User",
		"email":    "newuser@example.com",
		"password": "password123",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID    uint   `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, resp, &result)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Data.Token)
	assert.Equal(t, "newuser@example.com", result.Data.User.Email)

	// Registration creates the empty snapshot.
	var record models.UserProgress
	require.NoError(t, ac.DB.Where("user_id = ?", result.Data.User.ID).First(&record).Error)
	assert.Equal(t, progress.LevelBeginner, record.Level)
	assert.Zero(t, record.TotalScore)
	assert.Zero(t, record.Streak)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := setupAuthApp(t)

	body := map[string]string{"name": "A", "email": "dup@example.com", "password": "secret123"}
	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", body, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/auth/register", body, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", map[string]string{
		"name": "No Credentials",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, ac := setupAuthApp(t)
	user, _ := createUser(t, ac.DB, "login@example.com", "user")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "password",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	decodeBody(t, resp, &result)
	assert.NotEmpty(t, result.Data.Token)

	// Login is recorded but never touches the streak.
	var logins int64
	ac.DB.Model(&models.LoginHistory{}).Where("user_id = ?", user.ID).Count(&logins)
	assert.EqualValues(t, 1, logins)

	var record models.UserProgress
	err = ac.DB.Where("user_id = ?", user.ID).First(&record).Error
	if err == nil {
		assert.Zero(t, record.Streak)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, ac := setupAuthApp(t)
	createUser(t, ac.DB, "wrongpw@example.com", "user")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", map[string]string{
		"email":    "wrongpw@example.com",
		"password": "not-the-password",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password",
	}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
