package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSendAndListMessages(t *testing.T) {
	resp, result := doJSON(t, "POST", "/api/messages", map[string]string{
		"from_name": "Test User",
		"to_id":     "hoca@example.com",
		"content":   "Ödev hakkında bir sorum var",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	sent := result["data"].(map[string]interface{})
	assert.NotEmpty(t, sent["id"])
	assert.Equal(t, "test@example.com", sent["from_id"]) // sender comes from the token
	assert.Equal(t, false, sent["is_read"])

	_, result = doJSON(t, "GET", "/api/messages", nil)
	msgs := result["data"].(map[string]interface{})["messages"].([]interface{})
	assert.NotEmpty(t, msgs)

	found := false
	for _, raw := range msgs {
		m := raw.(map[string]interface{})
		assert.True(t, m["from_id"] == "test@example.com" || m["to_id"] == "test@example.com")
		if m["id"] == sent["id"] {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMarkMessageReadEndpoint(t *testing.T) {
	_, result := doJSON(t, "POST", "/api/messages", map[string]string{
		"to_id":   "test@example.com",
		"content": "kendime not",
	})
	id := result["data"].(map[string]interface{})["id"].(string)

	resp, _ := doJSON(t, "PUT", "/api/messages/"+id+"/read", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	_, result = doJSON(t, "GET", "/api/messages", nil)
	for _, raw := range result["data"].(map[string]interface{})["messages"].([]interface{}) {
		m := raw.(map[string]interface{})
		if m["id"] == id {
			assert.Equal(t, true, m["is_read"])
		}
	}
}

func TestSendMessageValidation(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/messages", map[string]string{"content": "alıcısız"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestShareAndListResourcesEndpoint(t *testing.T) {
	resp, result := doJSON(t, "POST", "/api/resources", map[string]string{
		"course_id":   "rusya-tarihi",
		"title":       "Dekabrist ayaklanması makalesi",
		"url":         "https://example.com/dekabrist",
		"description": "Ek okuma",
		"sender_name": "Test User",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	shared := result["data"].(map[string]interface{})
	assert.NotEmpty(t, shared["id"])
	assert.Equal(t, "test@example.com", shared["sender_id"])
	assert.Greater(t, shared["date"].(float64), float64(0))

	_, result = doJSON(t, "GET", "/api/resources?courseId=rusya-tarihi", nil)
	rs := result["data"].(map[string]interface{})["resources"].([]interface{})
	assert.NotEmpty(t, rs)
	assert.Equal(t, "rusya-tarihi", rs[0].(map[string]interface{})["course_id"])
}

func TestNotesEndpoints(t *testing.T) {
	resp, _ := doJSON(t, "PUT", "/api/courses/not-kursu/note", map[string]string{"text": "İlk not"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	doJSON(t, "PUT", "/api/courses/not-kursu/note", map[string]string{"text": "Üzerine yazıldı"})
	_, result := doJSON(t, "GET", "/api/courses/not-kursu/note", nil)
	assert.Equal(t, "Üzerine yazıldı", result["data"].(map[string]interface{})["text"])

	req, _ := doJSON(t, "DELETE", "/api/courses/not-kursu/note", nil)
	assert.Equal(t, fiber.StatusNoContent, req.StatusCode)

	missing, _ := doJSON(t, "GET", "/api/courses/not-kursu/note", nil)
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}
