package dto

// SendOTPRequest asks for a verification code to be texted to a phone number
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// CreateUserRequest represents account creation with an OTP challenge
type CreateUserRequest struct {
	EnrollmentNumber string `json:"enrollment_number" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	OTP              string `json:"otp" binding:"required"`
	Password         string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	EnrollmentNumber string `json:"enrollment_number" binding:"required"`
	Password         string `json:"password" binding:"required"`
}
