package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPhone    = errors.New("phone number must have at least 9 characters")
	ErrInvalidSMSCode  = errors.New("sms code must be 6 digits")
	ErrMissingName     = errors.New("first and last name are required")
	ErrInvalidAge      = errors.New("age must be a positive number")
	ErrMissingIdentity = errors.New("user id is required")
)

const (
	MinPhoneLength = 9
	SMSCodeLength  = 6
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPhoneLength {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

// ValidateSMSCode checks the shape of a one-time code. No code is actually
// sent, so any six digits pass.
func ValidateSMSCode(code string) error {
	if len(code) != SMSCodeLength {
		return ErrInvalidSMSCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidSMSCode
		}
	}
	return nil
}
