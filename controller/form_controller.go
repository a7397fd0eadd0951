package controller

import (
	"net/http"

	"github.com/trustkeyper/Backend/entity"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/service"
	"github.com/trustkeyper/Backend/validator"

	"github.com/labstack/echo/v4"
)

// FormController handles form submission HTTP requests
type FormController struct {
	formService service.FormService
	validator   *validator.Validator
	logger      *logger.Logger
}

// NewFormController creates a new form controller instance
func NewFormController(formService service.FormService, validator *validator.Validator, logger *logger.Logger) *FormController {
	return &FormController{
		formService: formService,
		validator:   validator,
		logger:      logger,
	}
}

// SubmitForm handles form submission
// @Summary Submit Form
// @Description Record a form submission and notify the submitter and admin by email
// @Tags Form
// @Accept json
// @Produce json
// @Param request body entity.SubmitFormRequest true "Submit Form Request"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /submit-form [post]
func (c *FormController) SubmitForm(ctx echo.Context) error {
	var req entity.SubmitFormRequest

	// Bind request body
	if err := ctx.Bind(&req); err != nil {
		c.logger.Errorw("Failed to bind request", "error", err)
		return ctx.JSON(http.StatusBadRequest, entity.APIResponse{
			Success: false,
			Message: "Invalid request format",
		})
	}

	// Validate request
	if err := c.validator.ValidateStruct(&req); err != nil {
		c.logger.Warnw("Validation failed", "request", req, "error", err)
		return ctx.JSON(http.StatusBadRequest, entity.APIResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	// Submit form; email failures after a persisted row come back as warnings
	result, err := c.formService.Submit(&req)
	if err != nil {
		c.logger.Errorw("Failed to submit form", "email", req.Email, "error", err)
		return ctx.JSON(http.StatusInternalServerError, entity.APIResponse{
			Success: false,
			Message: "Failed to submit form",
			Error:   "persistence error",
		})
	}

	return ctx.JSON(http.StatusOK, entity.APIResponse{
		Success:  true,
		Message:  "Form submitted successfully",
		Warnings: result.Warnings,
	})
}
