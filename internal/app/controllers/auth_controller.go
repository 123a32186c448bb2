// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/app/services"
	"github.com/arjun/regportal/internal/middleware"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// AuthController handles OTP issuance, account creation and the session lifecycle
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SendOTP texts a verification code to a phone number
func (c *AuthController) SendOTP(ctx *gin.Context) {
	var req dto.SendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid send-otp request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("phone_number is required"))
		return
	}

	if err := c.authService.RequestOTP(ctx.Request.Context(), req.PhoneNumber); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to issue OTP")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("OTP sent successfully. It is valid for 5 minutes."))
}

// CreateUser verifies the OTP challenge, creates the account and logs the new
// user in by binding their enrollment number to the session.
func (c *AuthController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create-user request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("enrollment_number, phone_number, otp and password are required"))
		return
	}

	user, err := c.authService.CreateAccount(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("enrollmentNumber", req.EnrollmentNumber).Msg("Account creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Session(ctx).SetEnrollmentNumber(user.EnrollmentNumber)

	c.logger.Info().Str("enrollmentNumber", user.EnrollmentNumber).Msg("Account created and logged in")
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("User created successfully."))
}

// LoginUser verifies credentials and binds the enrollment number to the session
func (c *AuthController) LoginUser(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("enrollment_number and password are required"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), req.EnrollmentNumber, req.Password)
	if err != nil {
		c.logger.Warn().Err(err).Str("enrollmentNumber", req.EnrollmentNumber).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Session(ctx).SetEnrollmentNumber(user.EnrollmentNumber)

	c.logger.Info().Str("enrollmentNumber", user.EnrollmentNumber).Msg("User logged in successfully")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Login successful."))
}

// Logout clears the session. Requires an authenticated session.
func (c *AuthController) Logout(ctx *gin.Context) {
	session := middleware.Session(ctx)
	if !session.IsAuthenticated() {
		middleware.HandleAPIError(ctx, apperrors.ErrNotAuthenticated)
		return
	}

	session.Clear()
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully."))
}
