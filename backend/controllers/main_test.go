package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"

	"portal/backend/config"
	"portal/backend/routes"
	"portal/backend/session"
	"portal/backend/store"
)

var (
	app      *fiber.App
	st       *store.Store
	sess     *session.Context
	cfg      *config.Config
	jwtToken string
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

var dataDir string

func setup() {
	var err error
	dataDir, err = os.MkdirTemp("", "portal-test-*")
	if err != nil {
		panic(err)
	}

	cfg = &config.Config{
		DBDriver:          "sqlite",
		DataDir:           dataDir,
		DBName:            "portal_test",
		JWTSecret:         "testsecret",
		ServerPort:        "8080",
		DefaultLectureURL: "https://example.com/default-lecture",
	}

	st, err = store.Open(cfg)
	if err != nil {
		panic(err)
	}
	sess = session.NewContext(session.NewStore(cfg.DataDir))

	app = fiber.New(fiber.Config{BodyLimit: 50 * 1024 * 1024})
	routes.SetupRoutes(app, st, sess, cfg, testGenerator, testSource)

	// One registered account shared by the authenticated tests.
	acc := store.Account{Email: "test@example.com", Name: "Test User", Password: "password"}
	if err := st.RegisterAccount(&acc); err != nil {
		panic(err)
	}
	jwtToken = login("test@example.com", "password")
}

func teardown() {
	os.RemoveAll(dataDir)
}

func login(email, password string) string {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != fiber.StatusOK {
		panic("test login failed")
	}
	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["token"].(string)
}

// doJSON issues an authenticated JSON request and decodes the response body.
func doJSON(t *testing.T, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}
