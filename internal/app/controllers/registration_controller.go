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

// RegistrationController handles the two-step registration workflow
type RegistrationController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// sessionEnrollment resolves the caller's enrollment number from the session.
// It writes the error response itself and returns false when the caller is not
// logged in or the session carries no identity.
func sessionEnrollment(ctx *gin.Context) (string, bool) {
	session := middleware.Session(ctx)
	if !session.IsAuthenticated() {
		middleware.HandleAPIError(ctx, apperrors.ErrNotAuthenticated)
		return "", false
	}
	enrollmentNumber := session.EnrollmentNumber()
	if enrollmentNumber == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrSessionMissingIdentity)
		return "", false
	}
	return enrollmentNumber, true
}

// SubmitUserDetails saves the personal-details step
func (c *RegistrationController) SubmitUserDetails(ctx *gin.Context) {
	enrollmentNumber, ok := sessionEnrollment(ctx)
	if !ok {
		return
	}

	var req dto.UserDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid user-details request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All registration details are required"))
		return
	}

	if _, err := c.registrationService.SubmitDetails(ctx.Request.Context(), enrollmentNumber, &req); err != nil {
		c.logger.Warn().Err(err).Str("enrollmentNumber", enrollmentNumber).Msg("Failed to save registration details")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Details saved successfully."))
}

// SubmitUserCourses records one semester's elective pair and completes the registration
func (c *RegistrationController) SubmitUserCourses(ctx *gin.Context) {
	enrollmentNumber, ok := sessionEnrollment(ctx)
	if !ok {
		return
	}

	var req dto.UserCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid user-courses request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("semester, vac, vac_papercode, voc and voc_papercode are required"))
		return
	}

	if err := c.registrationService.SubmitCourses(ctx.Request.Context(), enrollmentNumber, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Courses registered successfully."))
}

// CheckRegistration reports the caller's registration status
func (c *RegistrationController) CheckRegistration(ctx *gin.Context) {
	enrollmentNumber, ok := sessionEnrollment(ctx)
	if !ok {
		return
	}

	status, err := c.registrationService.CheckStatus(ctx.Request.Context(), enrollmentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"registration_status": status})
}

// GetRegistrationData returns the caller's registration row
func (c *RegistrationController) GetRegistrationData(ctx *gin.Context) {
	enrollmentNumber, ok := sessionEnrollment(ctx)
	if !ok {
		return
	}

	registration, err := c.registrationService.GetRegistrationData(ctx.Request.Context(), enrollmentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// GetCompleteRegistrationData returns the flattened registration, phone number
// and registered courses in one payload
func (c *RegistrationController) GetCompleteRegistrationData(ctx *gin.Context) {
	enrollmentNumber, ok := sessionEnrollment(ctx)
	if !ok {
		return
	}

	data, err := c.registrationService.GetFullRegistrationData(ctx.Request.Context(), enrollmentNumber)
	if err != nil {
		c.logger.Warn().Err(err).Str("enrollmentNumber", enrollmentNumber).Msg("Failed to compose registration data")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, data)
}
