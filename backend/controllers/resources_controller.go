package controllers

import (
	"portal/backend/config"
	"portal/backend/store"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ResourcesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewResourcesController(st *store.Store, cfg *config.Config) *ResourcesController {
	return &ResourcesController{Store: st, Cfg: cfg}
}

// Share godoc
// @Summary Share a resource link for a course
// @Description Resources are immutable once shared; there is no delete
// @Tags resources
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /resources [post]
func (rc *ResourcesController) Share(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	var input struct {
		CourseID    string `json:"course_id"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		SenderName  string `json:"sender_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.URL == "" {
		return utils.BadRequest(c, "Title and URL are required")
	}

	res := store.SharedResource{
		CourseID:    input.CourseID,
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		SenderName:  input.SenderName,
		SenderID:    email,
	}
	if err := rc.Store.ShareResource(&res); err != nil {
		return utils.InternalServerError(c, "Could not share resource")
	}

	return utils.Created(c, res)
}

// List godoc
// @Summary List shared resources
// @Description Optional courseId query filters to one course
// @Tags resources
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /resources [get]
func (rc *ResourcesController) List(c *fiber.Ctx) error {
	var (
		rs  []store.SharedResource
		err error
	)
	if courseID := c.Query("courseId"); courseID != "" {
		rs, err = rc.Store.ListResourcesForCourse(courseID)
	} else {
		rs, err = rc.Store.ListResources()
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not list resources")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"resources": rs})
}
