package apperrors

import "errors"

// Phone / OTP errors
var (
	ErrInvalidPhoneFormat  = errors.New("invalid phone number format")
	ErrPhoneAlreadyInUse   = errors.New("phone number already registered")
	ErrOTPDeliveryFailed   = errors.New("failed to deliver OTP")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
)

// Account errors
var (
	ErrEnrollmentAlreadyExists = errors.New("enrollment number already registered")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
)

// Session errors
var (
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrSessionMissingIdentity = errors.New("enrollment number not found in session")
)

// Registration errors
var (
	ErrFacultyNumberExists  = errors.New("faculty number already in use")
	ErrRegistrationFailed   = errors.New("course registration failed")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// Course catalog errors
var (
	ErrInvalidCourseType = errors.New("invalid course type")
)

// ErrInternal is the catch-all for unexpected failures. Handlers log the
// underlying error and surface this one to the client.
var ErrInternal = errors.New("internal server error")
