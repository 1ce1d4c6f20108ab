package controllers

import (
	"errors"
	"strconv"

	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DocumentsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewDocumentsController(st *store.Store, cfg *config.Config) *DocumentsController {
	return &DocumentsController{Store: st, Cfg: cfg}
}

func unitKeyFromPath(c *fiber.Ctx) (store.UnitKey, error) {
	unit, err := strconv.Atoi(c.Params("unit"))
	if err != nil {
		return store.UnitKey{}, errors.New("unit must be a number")
	}
	return store.DocKey(c.Params("courseId"), unit), nil
}

// Upload godoc
// @Summary Store a unit's reading material
// @Description Raw request body is persisted as the unit's PDF; re-uploading overwrites
// @Tags documents
// @Accept application/pdf
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/units/{unit}/document [put]
func (dc *DocumentsController) Upload(c *fiber.Ctx) error {
	key, err := unitKeyFromPath(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	blob := c.Body()
	if len(blob) == 0 {
		return utils.BadRequest(c, "Empty document body")
	}

	// The store does not validate content; quota failures surface as 500.
	if err := dc.Store.PutDocument(key, blob); err != nil {
		return utils.InternalServerError(c, "Could not store document")
	}

	return utils.Created(c, fiber.Map{"key": key.String(), "size": len(blob)})
}

// Download godoc
// @Summary Fetch a unit's reading material
// @Tags documents
// @Produce application/pdf
// @Success 200
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/units/{unit}/document [get]
func (dc *DocumentsController) Download(c *fiber.Ctx) error {
	key, err := unitKeyFromPath(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	blob, ok, err := dc.Store.GetDocument(key)
	if err != nil {
		return utils.InternalServerError(c, "Could not read document")
	}
	if !ok {
		// Older installs stored a single document under the bare course id.
		blob, ok, err = dc.Store.GetDocument(store.LegacyDocKey(key.CourseID))
		if err != nil {
			return utils.InternalServerError(c, "Could not read document")
		}
		if !ok {
			return utils.NotFound(c, "No document for this unit")
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(blob)
}

// Delete godoc
// @Summary Remove a unit's reading material
// @Description Idempotent: deleting a missing document succeeds
// @Tags documents
// @Success 204
// @Security ApiKeyAuth
// @Router /courses/{courseId}/units/{unit}/document [delete]
func (dc *DocumentsController) Delete(c *fiber.Ctx) error {
	key, err := unitKeyFromPath(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if err := dc.Store.DeleteDocument(key); err != nil {
		return utils.InternalServerError(c, "Could not delete document")
	}
	return utils.NoContent(c)
}

// ListKeys godoc
// @Summary Enumerate stored document keys
// @Description Order is implementation-defined
// @Tags documents
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /documents/keys [get]
func (dc *DocumentsController) ListKeys(c *fiber.Ctx) error {
	keys, err := dc.Store.ListDocumentKeys()
	if err != nil {
		return utils.InternalServerError(c, "Could not list documents")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"keys": keys})
}

// ClearAll godoc
// @Summary Remove every stored document
// @Tags documents
// @Success 204
// @Security ApiKeyAuth
// @Router /documents [delete]
func (dc *DocumentsController) ClearAll(c *fiber.Ctx) error {
	if err := dc.Store.ClearDocuments(); err != nil {
		return utils.InternalServerError(c, "Could not clear documents")
	}
	return utils.NoContent(c)
}
