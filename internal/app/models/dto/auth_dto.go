package dto

import "github.com/yigit/alumniconnect/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration form
type RegisterRequest struct {
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required,min=8"`
	ConfirmPassword string      `json:"confirmPassword" binding:"required,eqfield=Password"`
	FirstName       string      `json:"firstName" binding:"required"`
	LastName        string      `json:"lastName" binding:"required"`
	Role            models.Role `json:"role" binding:"required,oneof=student alumni admin"`
	GraduationYear  *int        `json:"graduationYear,omitempty" binding:"omitempty,min=1900,max=2100"`
	CurrentYear     *int        `json:"currentYear,omitempty" binding:"omitempty,min=1,max=8"`
	Course          string      `json:"course,omitempty"`
	Company         string      `json:"company,omitempty"`
	Position        string      `json:"position,omitempty"`
}

// Draft converts the request into a registration draft.
func (r RegisterRequest) Draft() models.ProfileDraft {
	return models.ProfileDraft{
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Role:           r.Role,
		GraduationYear: r.GraduationYear,
		CurrentYear:    r.CurrentYear,
		Course:         r.Course,
		Company:        r.Company,
		Position:       r.Position,
	}
}

// AuthPayload is returned by login and registration.
type AuthPayload struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresIn int64        `json:"expiresIn"`
}
