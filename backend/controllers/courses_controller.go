package controllers

import (
	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CoursesController covers the per-course partitions: notes, progress and
// media links.
type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(st *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg}
}

// SaveNote godoc
// @Summary Save the course note
// @Description One note per course; saving overwrites, nothing is versioned
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/note [put]
func (cc *CoursesController) SaveNote(c *fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := cc.Store.SaveNote(c.Params("courseId"), input.Text); err != nil {
		return utils.InternalServerError(c, "Could not save note")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"saved": true})
}

// GetNote godoc
// @Summary Get the course note
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/note [get]
func (cc *CoursesController) GetNote(c *fiber.Ctx) error {
	text, ok, err := cc.Store.GetNote(c.Params("courseId"))
	if err != nil {
		return utils.InternalServerError(c, "Could not read note")
	}
	if !ok {
		return utils.NotFound(c, "No note for this course")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"text": text})
}

// DeleteNote godoc
// @Summary Delete the course note
// @Tags courses
// @Success 204
// @Security ApiKeyAuth
// @Router /courses/{courseId}/note [delete]
func (cc *CoursesController) DeleteNote(c *fiber.Ctx) error {
	if err := cc.Store.DeleteNote(c.Params("courseId")); err != nil {
		return utils.InternalServerError(c, "Could not delete note")
	}
	return utils.NoContent(c)
}

// SaveProgress godoc
// @Summary Save course completion percentage
// @Description Last write wins; advancing only forward is the caller's rule
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/progress [put]
func (cc *CoursesController) SaveProgress(c *fiber.Ctx) error {
	var input struct {
		Percent int `json:"percent"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Percent < 0 || input.Percent > 100 {
		return utils.BadRequest(c, "Percent must be between 0 and 100")
	}
	if err := cc.Store.SaveProgress(c.Params("courseId"), input.Percent); err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"percent": input.Percent})
}

// GetProgress godoc
// @Summary Get course completion percentage
// @Description Returns zero for a course that was never started
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /courses/{courseId}/progress [get]
func (cc *CoursesController) GetProgress(c *fiber.Ctx) error {
	percent, ok, err := cc.Store.GetProgress(c.Params("courseId"))
	if err != nil {
		return utils.InternalServerError(c, "Could not read progress")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"percent": percent, "started": ok})
}

// GetMediaLink godoc
// @Summary Get the course lecture URL
// @Description Falls back to the configured default when no override is set
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /courses/{courseId}/media [get]
func (cc *CoursesController) GetMediaLink(c *fiber.Ctx) error {
	url, err := cc.Store.MediaLink(c.Params("courseId"), cc.Cfg.DefaultLectureURL)
	if err != nil {
		return utils.InternalServerError(c, "Could not read media link")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"url": url})
}

// SetMediaLink godoc
// @Summary Override the course lecture URL
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{courseId}/media [put]
func (cc *CoursesController) SetMediaLink(c *fiber.Ctx) error {
	var input struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.URL == "" {
		return utils.BadRequest(c, "URL is required")
	}
	if err := cc.Store.SetMediaLink(c.Params("courseId"), input.URL); err != nil {
		return utils.InternalServerError(c, "Could not save media link")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"url": input.URL})
}
