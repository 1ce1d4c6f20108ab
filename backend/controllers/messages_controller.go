package controllers

import (
	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type MessagesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMessagesController(st *store.Store, cfg *config.Config) *MessagesController {
	return &MessagesController{Store: st, Cfg: cfg}
}

// Send godoc
// @Summary Send a direct message
// @Description Sender identity comes from the token; id and timestamp are assigned by the store
// @Tags messages
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /messages [post]
func (mc *MessagesController) Send(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	var input struct {
		FromName string `json:"from_name"`
		ToID     string `json:"to_id"`
		Content  string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.ToID == "" || input.Content == "" {
		return utils.BadRequest(c, "Recipient and content are required")
	}

	msg := store.DirectMessage{
		FromID:   email,
		FromName: input.FromName,
		ToID:     input.ToID,
		Content:  input.Content,
	}
	if err := mc.Store.SendMessage(&msg); err != nil {
		return utils.InternalServerError(c, "Could not send message")
	}

	return utils.Created(c, msg)
}

// ListMine godoc
// @Summary List the authenticated user's messages
// @Description Every message sent or received, in no guaranteed order
// @Tags messages
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /messages [get]
func (mc *MessagesController) ListMine(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	msgs, err := mc.Store.ListMessagesFor(email)
	if err != nil {
		return utils.InternalServerError(c, "Could not list messages")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"messages": msgs})
}

// MarkRead godoc
// @Summary Mark one message as read
// @Tags messages
// @Success 204
// @Security ApiKeyAuth
// @Router /messages/{id}/read [put]
func (mc *MessagesController) MarkRead(c *fiber.Ctx) error {
	if err := mc.Store.MarkMessageRead(c.Params("id")); err != nil {
		return utils.InternalServerError(c, "Could not update message")
	}
	return utils.NoContent(c)
}
