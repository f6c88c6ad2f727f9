package user

import (
	"strings"
)

// User is the identity held by a session.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Age         int    `json:"age"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
}

type Registration struct {
	PhoneNumber string
	FirstName   string
	LastName    string
	Age         int
	Email       string
	Role        string
}

func NewUser(id string, r Registration) (*User, error) {
	if id == "" {
		return nil, ErrMissingIdentity
	}
	phone, err := NewPhone(r.PhoneNumber)
	if err != nil {
		return nil, err
	}
	first, last := strings.TrimSpace(r.FirstName), strings.TrimSpace(r.LastName)
	if first == "" || last == "" {
		return nil, ErrMissingName
	}
	if r.Age <= 0 {
		return nil, ErrInvalidAge
	}
	role, err := NewRole(r.Role)
	if err != nil {
		return nil, err
	}

	var email string
	if strings.TrimSpace(r.Email) != "" {
		e, err := NewEmail(r.Email)
		if err != nil {
			return nil, err
		}
		email = e.Value()
	}

	return &User{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		Age:         r.Age,
		Email:       email,
		PhoneNumber: phone.Value(),
		Role:        role,
	}, nil
}

func (u *User) IsOwner() bool {
	return u != nil && u.Role == RoleOwner
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
