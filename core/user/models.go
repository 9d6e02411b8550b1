package user

import "github.com/go-playground/validator/v10"

// Roles expected by the frontend. They are informative only: any role is accepted at signup.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // plaintext
	Role     string `json:"role"`
}

// NewUser contains information needed to sign up a new User.
// Input fields are pointers so that `required` means present: "" is a valid value.
type NewUser struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Role     *string `json:"role" validate:"required"`
}

func (nu NewUser) Validate(validate *validator.Validate) error { return validate.Struct(nu) }

// Credentials are what a User logs in with.
type Credentials struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

func (c Credentials) Validate(validate *validator.Validate) error { return validate.Struct(c) }
