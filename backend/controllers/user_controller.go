package controllers

import (
	"portal/backend/config"
	"portal/backend/session"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store *store.Store
	Sess  *session.Context
	Cfg   *config.Config
}

func NewUserController(st *store.Store, sess *session.Context, cfg *config.Config) *UserController {
	return &UserController{Store: st, Sess: sess, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get the authenticated student's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	acc, ok, err := uc.Store.GetAccount(email)
	if err != nil {
		return utils.InternalServerError(c, "Could not query local store")
	}
	if !ok {
		return utils.NotFound(c, "Account not found")
	}

	return utils.Success(c, fiber.StatusOK, acc)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Description Merge patch: only the supplied fields change, everything else is preserved
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	acc, err := uc.Store.UpdateAccountFields(email, fields)
	if err != nil {
		return utils.InternalServerError(c, "Could not update account")
	}

	// Keep the session copy in step with the account record.
	if cur, ok := uc.Sess.User(); ok && cur.Email == email {
		if err := uc.Sess.SetUser(acc); err != nil {
			return utils.InternalServerError(c, "Could not refresh session")
		}
	}

	return utils.Success(c, fiber.StatusOK, acc)
}
