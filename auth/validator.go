package auth

import (
	"chat-hub/errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type SignUpRequest struct {
	Username string `validate:"required,min=1,max=64,excludesall= "`
	Password string `validate:"required,min=8,max=72"`
}

// ValidateSignUp rejects malformed usernames and weak passwords before any
// expensive cryptographic operation or unit of work.
func ValidateSignUp(req SignUpRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.ErrInvalidUserInfo
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidUserInfo
	}
	return nil
}

// isPasswordComplex requires at least one digit, one upper and one lower
// case letter. Length is already enforced by the struct tags.
func isPasswordComplex(s string) bool {
	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}
	return hasUpper && hasLower && hasNumber
}
