package controllers

import (
	"errors"

	"portal/backend/config"
	"portal/backend/session"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Store *store.Store
	Sess  *session.Context
	Cfg   *config.Config
}

func NewAuthController(st *store.Store, sess *session.Context, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Sess: sess, Cfg: cfg}
}

// Register godoc
// @Summary Register a new student account
// @Description Creates an account keyed by email; duplicate emails are rejected
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		Password  string `json:"password"`
		StudentNo string `json:"student_no"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	acc := store.Account{
		Email:     input.Email,
		Name:      input.Name,
		Password:  input.Password,
		StudentNo: input.StudentNo,
	}
	if err := ac.Store.RegisterAccount(&acc); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			return utils.Conflict(c, "An account with this email already exists")
		}
		return utils.InternalServerError(c, "Could not create account")
	}

	token, err := utils.GenerateJWTToken(acc.Email, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  acc,
	})
}

// Login godoc
// @Summary Authenticate a student
// @Description Checks credentials, establishes the local session and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	acc, err := ac.Store.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query local store")
	}

	// Successful authentication establishes the session.
	if err := ac.Sess.SetUser(acc); err != nil {
		return utils.InternalServerError(c, "Could not persist session")
	}

	token, err := utils.GenerateJWTToken(acc.Email, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  acc,
	})
}

// Logout godoc
// @Summary End the local session
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Sess.Logout(); err != nil {
		return utils.InternalServerError(c, "Could not clear session")
	}
	return utils.NoContent(c)
}
