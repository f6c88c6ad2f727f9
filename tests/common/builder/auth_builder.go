//go:build unit || e2e

package builder

import (
	reqdto "fieldbook/internal/handler/dto/request"
)

// RegisterBuilder builds a registration body that passes validation as-is.
type RegisterBuilder struct {
	PhoneNumber string
	Code        string
	FirstName   string
	LastName    string
	Age         int
	Email       string
	Role        string
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{
		PhoneNumber: "+998912345678",
		Code:        "123456",
		FirstName:   "Ahmed",
		LastName:    "Karimov",
		Age:         25,
		Email:       "ahmed@example.com",
		Role:        "user",
	}
}

func (r *RegisterBuilder) With(mutate func(*RegisterBuilder)) *RegisterBuilder {
	mutate(r)
	return r
}

func (r *RegisterBuilder) AsOwner() *RegisterBuilder {
	r.Role = "owner"
	return r
}

func (r *RegisterBuilder) WithPhone(phone string) *RegisterBuilder {
	r.PhoneNumber = phone
	return r
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		PhoneNumber: r.PhoneNumber,
		Code:        r.Code,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Age:         r.Age,
		Email:       r.Email,
		Role:        r.Role,
	}
}
