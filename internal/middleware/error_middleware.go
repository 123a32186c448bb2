package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/arjun/regportal/internal/app/models/dto"
	"github.com/arjun/regportal/internal/pkg/apperrors"
)

// HandleAPIError maps known application errors to their HTTP status and
// client message. Anything unrecognized surfaces as a generic 500; callers
// are expected to have logged the underlying error already.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidPhoneFormat):
		c.JSON(400, dto.NewErrorResponse("Check your number and try again"))
	case errors.Is(err, apperrors.ErrPhoneAlreadyInUse):
		c.JSON(400, dto.NewErrorResponse("A user with this phone number already exists."))
	case errors.Is(err, apperrors.ErrOTPDeliveryFailed):
		c.JSON(503, dto.NewErrorResponse("Failed to send OTP. Please try again later."))
	case errors.Is(err, apperrors.ErrInvalidOrExpiredOTP):
		c.JSON(400, dto.NewErrorResponse("Invalid or expired OTP."))
	case errors.Is(err, apperrors.ErrEnrollmentAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("Enrollment number already registered"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Incorrect enrollment number or password."))
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		c.JSON(401, dto.NewErrorResponse("Cannot proceed because you are not logged in."))
	case errors.Is(err, apperrors.ErrSessionMissingIdentity):
		c.JSON(401, dto.NewErrorResponse("Enrollment number not found in session."))
	case errors.Is(err, apperrors.ErrFacultyNumberExists):
		c.JSON(409, dto.NewErrorResponse("Faculty number already in use."))
	case errors.Is(err, apperrors.ErrRegistrationFailed):
		c.JSON(400, dto.NewErrorResponse("Type correct courses details"))
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		c.JSON(404, dto.NewErrorResponse("No registration found for this user."))
	case errors.Is(err, apperrors.ErrInvalidCourseType):
		c.JSON(400, dto.NewErrorResponse("Invalid courses_type. Must be 'VAC' or 'VOC'"))
	case errors.Is(err, apperrors.ErrInternal):
		fallthrough
	default:
		c.JSON(500, dto.NewErrorResponse("Something went wrong, try again"))
	}
}
