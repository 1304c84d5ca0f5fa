package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleARRequestor    = "AR Requestor"
	RoleRecruiterAdmin = "Recruiter Admin"
)

// IsValidRole reports whether role is one of the two known roles
func IsValidRole(role string) bool {
	return role == RoleARRequestor || role == RoleRecruiterAdmin
}

// User represents a user in the users collection
// @Description User account information
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" swaggertype:"string" example:"66b1f0c2a4d3e1f2a3b4c5d6"`
	FirstName string             `json:"firstName" bson:"firstName" example:"Jane"`
	LastName  string             `json:"lastName" bson:"lastName" example:"Doe"`
	Email     string             `json:"email" bson:"email" example:"jane@example.com"`
	Password  string             `json:"-" bson:"password"` // bcrypt hash, never sent to client
	Role      string             `json:"role" bson:"role" example:"AR Requestor"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SignupRequest represents a registration request
// @Description User registration request
type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password  string `json:"password" binding:"required,min=6" example:"password123"`
	Role      string `json:"role" binding:"required" example:"AR Requestor"`
}

// LoginRequest represents a login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// CheckEmailRequest asks whether an account exists for an email
type CheckEmailRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// CheckEmailResponse answers CheckEmailRequest
type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// SuccessResponse is the bare acknowledgement used by signup, delete and logout
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// LoginResponse represents a successful login
// @Description Login response; the token is also set as an httpOnly cookie
type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Role    string `json:"role" example:"AR Requestor"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
}

// MeResponse represents the current session user
type MeResponse struct {
	User *User `json:"user"`
}
