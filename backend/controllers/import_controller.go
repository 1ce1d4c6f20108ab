package controllers

import (
	"portal/backend/config"
	"portal/backend/importer"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ImportController struct {
	Store  *store.Store
	Source importer.Source // nil when no drive credentials are configured
	Cfg    *config.Config
}

func NewImportController(st *store.Store, src importer.Source, cfg *config.Config) *ImportController {
	return &ImportController{Store: st, Source: src, Cfg: cfg}
}

// ListAttachments godoc
// @Summary List importable attachments from the connected drive
// @Tags import
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /import/attachments [get]
func (ic *ImportController) ListAttachments(c *fiber.Ctx) error {
	if ic.Source == nil {
		return utils.ServiceUnavailable(c, "Import is not configured")
	}

	atts, err := ic.Source.ListAttachments(c.Context())
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"attachments": atts})
}

// ImportAttachment godoc
// @Summary Download one attachment and store it as a unit document
// @Tags import
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /import/{id} [post]
func (ic *ImportController) ImportAttachment(c *fiber.Ctx) error {
	if ic.Source == nil {
		return utils.ServiceUnavailable(c, "Import is not configured")
	}

	var input struct {
		CourseID string `json:"course_id"`
		Unit     int    `json:"unit"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == "" {
		return utils.BadRequest(c, "course_id is required")
	}

	blob, err := ic.Source.Download(c.Context(), c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, err)
	}

	key := store.DocKey(input.CourseID, input.Unit)
	if err := ic.Store.PutDocument(key, blob); err != nil {
		return utils.InternalServerError(c, "Could not store document")
	}

	return utils.Created(c, fiber.Map{"key": key.String(), "size": len(blob)})
}
