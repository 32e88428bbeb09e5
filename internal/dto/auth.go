package dto

// LoginRequest represents the request payload for login by user id
type LoginRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
	CreatedAt   string  `json:"created_at"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse wraps the authenticated user's record
type MeResponse struct {
	User UserResponse `json:"user"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
