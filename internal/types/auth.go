package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest asks for a session on behalf of an institute email. There is
// no credential: the email-domain check is a gate, not a security boundary.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CompleteProfileRequest finishes first-time signup for an email that has no
// user record yet.
type CompleteProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1"`
	Branch   Branch `json:"branch" validate:"required"`
	Year     int    `json:"year" validate:"required,gte=2000,lte=2100"`
	LinkedIn string `json:"linkedin,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// LoginResponse carries the authenticated user and a session token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompleteProfileRequest using the validator. The
// branch must additionally be one of the known departments.
func (r *CompleteProfileRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Branch.Valid() {
		return &InvalidBranchError{Branch: r.Branch}
	}
	return nil
}

// InvalidBranchError reports an unknown academic branch in a profile request.
type InvalidBranchError struct {
	Branch Branch
}

func (e *InvalidBranchError) Error() string {
	return "unknown branch: " + string(e.Branch)
}
