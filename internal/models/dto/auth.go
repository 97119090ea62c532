package dto

import "github.com/hongminglow/jobtracker-be/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

// AuthResponse is returned by register, login and updateUser.
type AuthResponse struct {
	User     models.Account `json:"user"`
	Token    string         `json:"token"`
	Location string         `json:"location"`
}
