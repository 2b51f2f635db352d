package model

import "time"

// User represents a registered account
type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"` // Never exposed in responses
	RegistrationTime time.Time `json:"registration_time"`
}

// CreateUserRequest is the creation schema for a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100,nonul"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the partial update schema; nil fields are left untouched
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=1,max=100,nonul"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=1"`
}

// UserResponse is the public projection of a user
type UserResponse struct {
	Username         string `json:"username"`
	RegistrationTime int64  `json:"registration_time"` // Unix seconds
}

type CreateUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
