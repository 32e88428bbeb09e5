package dto

// UserListResponse envelope for the user directory
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
