package dto

// MessageResponse is the standard success envelope
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusResponse is used by health/probe endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope: every error returns its
// originating status code with {"message": <detail>}
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a success envelope
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
