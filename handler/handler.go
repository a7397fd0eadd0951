package handler

import (
	"github.com/trustkeyper/Backend/config"
	"github.com/trustkeyper/Backend/controller"
	_ "github.com/trustkeyper/Backend/docs" // Import for swagger docs
	"github.com/trustkeyper/Backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all HTTP routes and middleware
func RegisterRoutes(
	e *echo.Echo,
	otpController *controller.OTPController,
	formController *controller.FormController,
	healthController *controller.HealthController,
	cfg *config.Config,
	logger *logger.Logger,
) {
	// Add common middleware
	e.Use(middleware.Recover())
	e.Use(CORSMiddleware())
	e.Use(RequestLoggerMiddleware(logger))

	// System endpoints
	e.GET("/health", healthController.HealthCheck)
	e.GET("/", healthController.ServiceInfo)

	// Swagger documentation
	if cfg.Swagger.Enabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
		e.GET("/docs/*", echoSwagger.WrapHandler)
	}

	// OTP routes
	e.POST("/send-otp", otpController.SendOTP)
	e.POST("/verify-otp", otpController.VerifyOTP)

	// Form routes
	e.POST("/submit-form", formController.SubmitForm)
}
