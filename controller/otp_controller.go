package controller

import (
	"errors"
	"net/http"

	"github.com/trustkeyper/Backend/entity"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/service"
	"github.com/trustkeyper/Backend/validator"

	"github.com/labstack/echo/v4"
)

// OTPController handles OTP-related HTTP requests
type OTPController struct {
	otpService service.OTPService
	validator  *validator.Validator
	logger     *logger.Logger
}

// NewOTPController creates a new OTP controller instance
func NewOTPController(otpService service.OTPService, validator *validator.Validator, logger *logger.Logger) *OTPController {
	return &OTPController{
		otpService: otpService,
		validator:  validator,
		logger:     logger,
	}
}

// SendOTP handles OTP generation and sending
// @Summary Send OTP
// @Description Generate a 4-digit OTP and email it to the provided address
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body entity.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /send-otp [post]
func (c *OTPController) SendOTP(ctx echo.Context) error {
	var req entity.SendOTPRequest

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

	// Issue and dispatch OTP
	if err := c.otpService.SendOTP(req.Email); err != nil {
		c.logger.Errorw("Failed to send OTP", "email", req.Email, "error", err)
		return ctx.JSON(http.StatusInternalServerError, entity.APIResponse{
			Success: false,
			Message: "Failed to send OTP",
			Error:   "mail transport error",
		})
	}

	return ctx.JSON(http.StatusOK, entity.APIResponse{
		Success: true,
		Message: "OTP sent",
	})
}

// VerifyOTP handles OTP verification
// @Summary Verify OTP
// @Description Verify a previously issued OTP; a correct code is single-use
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body entity.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} entity.APIResponse
// @Failure 400 {object} entity.APIResponse
// @Failure 500 {object} entity.APIResponse
// @Router /verify-otp [post]
func (c *OTPController) VerifyOTP(ctx echo.Context) error {
	var req entity.VerifyOTPRequest

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

	// Verify OTP; absent, mismatched and expired codes all get the same answer
	if err := c.otpService.VerifyOTP(req.Email, req.OTP); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			return ctx.JSON(http.StatusBadRequest, entity.APIResponse{
				Success: false,
				Message: "Invalid or expired OTP",
			})
		}

		c.logger.Errorw("Failed to verify OTP", "email", req.Email, "error", err)
		return ctx.JSON(http.StatusInternalServerError, entity.APIResponse{
			Success: false,
			Message: "Failed to verify OTP",
			Error:   "internal error",
		})
	}

	return ctx.JSON(http.StatusOK, entity.APIResponse{
		Success: true,
		Message: "OTP verified",
	})
}
