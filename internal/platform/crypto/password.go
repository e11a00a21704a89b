package crypto

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper       = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower       = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber      = errors.New("password must contain at least one number")
	ErrPasswordNoSpecialChar = errors.New("password must contain at least one special character")
)

var (
	upperRex   = regexp.MustCompile(`[A-Z]`)
	lowerRex   = regexp.MustCompile(`[a-z]`)
	numberRex  = regexp.MustCompile(`[0-9]`)
	specialRex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePasswordStrength returns the first rule the password breaks.
func ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < 8:
		return ErrPasswordTooShort
	case !upperRex.MatchString(password):
		return ErrPasswordNoUpper
	case !lowerRex.MatchString(password):
		return ErrPasswordNoLower
	case !numberRex.MatchString(password):
		return ErrPasswordNoNumber
	case !specialRex.MatchString(password):
		return ErrPasswordNoSpecialChar
	}
	return nil
}
