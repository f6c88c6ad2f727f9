//go:build unit || e2e

package builder

import (
	"fieldbook/internal/domain/user"
)

type UserBuilder struct {
	ID          string
	PhoneNumber string
	FirstName   string
	LastName    string
	Age         int
	Email       string
	Role        string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:          "u1",
		PhoneNumber: "+998912345678",
		FirstName:   "Ahmed",
		LastName:    "Karimov",
		Age:         25,
		Role:        "user",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.ID, u.Registration())
}

func (u *UserBuilder) Registration() user.Registration {
	return user.Registration{
		PhoneNumber: u.PhoneNumber,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Age:         u.Age,
		Email:       u.Email,
		Role:        u.Role,
	}
}

// MustBuild panics on invalid data; for fixtures only.
func (u *UserBuilder) MustBuild() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.PhoneNumber = phone
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = "owner"
	return u
}
