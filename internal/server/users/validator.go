package users

import (
	"regexp"
	"unicode"

	"github.com/dmitrijs2005/userhub/internal/shared"
)

const (
	userNameMinLength = 3
	userNameMaxLength = 30
	passwordMinLength = 8
)

var emailRegexp = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

// RegistrationRequest is the transient caller input. The plaintext
// password lives only until it is hashed or the request is rejected;
// it must never be logged or persisted.
type RegistrationRequest struct {
	UserName string
	Email    string
	Password string
}

// ValidateRegistration checks the structural rules in order and returns
// the first violation: username length, email format, password length,
// password complexity. Inputs are checked as given, without trimming or
// case folding.
func ValidateRegistration(r *RegistrationRequest) error {
	if len(r.UserName) < userNameMinLength || len(r.UserName) > userNameMaxLength {
		return shared.ErrorUsernameLength
	}
	if !emailRegexp.MatchString(r.Email) {
		return shared.ErrorEmailFormat
	}
	if len(r.Password) < passwordMinLength {
		return shared.ErrorPasswordTooShort
	}
	if !passwordIsComplex(r.Password) {
		return shared.ErrorPasswordComplexity
	}
	return nil
}

// passwordIsComplex requires at least one uppercase letter, one lowercase
// letter, one digit and one character that is neither letter nor digit.
func passwordIsComplex(password string) bool {
	var hasUpper, hasLower, hasDigit, hasSpecial bool

	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case !unicode.IsLetter(c):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
