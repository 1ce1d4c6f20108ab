package controllers

import (
	"strconv"

	"portal/backend/aigen"
	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StudyAidsController struct {
	Store     *store.Store
	Generator aigen.Generator // nil when no API key is configured
	Cfg       *config.Config
}

func NewStudyAidsController(st *store.Store, gen aigen.Generator, cfg *config.Config) *StudyAidsController {
	return &StudyAidsController{Store: st, Generator: gen, Cfg: cfg}
}

// Generate godoc
// @Summary Generate study aids for a course
// @Description Summary, quiz, flashcards and genealogy; an optional unit query attaches that unit's document as source material. Generator failures are surfaced as-is, without retries.
// @Tags study-aids
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/study-aids [post]
func (sac *StudyAidsController) Generate(c *fiber.Ctx) error {
	if sac.Generator == nil {
		return utils.ServiceUnavailable(c, "Study aid generation is not configured")
	}

	courseID := c.Params("courseId")

	var source []byte
	if unitParam := c.Query("unit"); unitParam != "" {
		unit, err := strconv.Atoi(unitParam)
		if err != nil {
			return utils.BadRequest(c, "unit must be a number")
		}
		blob, ok, err := sac.Store.GetDocument(store.DocKey(courseID, unit))
		if err != nil {
			return utils.InternalServerError(c, "Could not read document")
		}
		if ok {
			source = blob
		}
	}

	aids, err := sac.Generator.StudyAids(c.Context(), courseID, source)
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, err)
	}

	return utils.Success(c, fiber.StatusOK, aids)
}
