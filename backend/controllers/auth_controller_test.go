package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	registerData := map[string]string{
		"email":      "newuser@example.com",
		"name":       "New User",
		"password":   "password123",
		"student_no": "2021042",
	}
	jsonData, _ := json.Marshal(registerData)

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "newuser@example.com", user["email"])
	assert.Greater(t, user["created_at"].(float64), float64(0))

	// The password hash never leaves the store.
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	registerData := map[string]string{
		"email":    "test@example.com", // already created in setup
		"name":     "Impostor",
		"password": "other",
	}
	jsonData, _ := json.Marshal(registerData)

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	loginData := map[string]string{
		"email":    "test@example.com",
		"password": "password",
	}
	jsonData, _ := json.Marshal(loginData)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])

	// A successful login establishes the local session.
	current, ok := sess.User()
	assert.True(t, ok)
	assert.Equal(t, "test@example.com", current.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	loginData := map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	}
	jsonData, _ := json.Marshal(loginData)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	resp, result := doJSON(t, "GET", "/api/user/profile", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "test@example.com", data["email"])
	assert.Equal(t, "Test User", data["name"])
}

func TestGetProfileWithoutToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user/profile", nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfileMergePatch(t *testing.T) {
	resp, result := doJSON(t, "PUT", "/api/user/profile", map[string]string{
		"avatar_url": "data:image/png;base64,AAAA",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "data:image/png;base64,AAAA", data["avatar_url"])
	// Untouched fields survive the patch.
	assert.Equal(t, "Test User", data["name"])

	// The session copy was refreshed together with the record.
	current, ok := sess.User()
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", current.AvatarURL)
}
