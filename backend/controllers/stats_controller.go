package controllers

import (
	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewStatsController(st *store.Store, cfg *config.Config) *StatsController {
	return &StatsController{Store: st, Cfg: cfg}
}

// Increment godoc
// @Summary Add to a named counter
// @Description e.g. total_study_minutes after a finished session; returns the new total
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /stats/{name}/increment [post]
func (sc *StatsController) Increment(c *fiber.Ctx) error {
	var input struct {
		Delta int64 `json:"delta"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	total, err := sc.Store.IncrementStat(c.Params("name"), input.Delta)
	if err != nil {
		return utils.InternalServerError(c, "Could not update counter")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"name": c.Params("name"), "total": total})
}

// Get godoc
// @Summary Read a named counter
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /stats/{name} [get]
func (sc *StatsController) Get(c *fiber.Ctx) error {
	total, err := sc.Store.GetStat(c.Params("name"))
	if err != nil {
		return utils.InternalServerError(c, "Could not read counter")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"name": c.Params("name"), "total": total})
}
