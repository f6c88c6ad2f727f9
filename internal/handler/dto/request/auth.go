package request

import (
	"fieldbook/internal/usecase"
)

type SendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,min=9"`
}

type RegisterRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,min=9"`
	Code        string `json:"code" binding:"required,len=6,numeric"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Age         int    `json:"age" binding:"required,min=1,max=120"`
	Email       string `json:"email" binding:"omitempty,email"`
	Role        string `json:"role" binding:"omitempty,oneof=user owner"`
}

func (r *RegisterRequest) ToParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		PhoneNumber: r.PhoneNumber,
		Code:        r.Code,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Age:         r.Age,
		Email:       r.Email,
		Role:        r.Role,
	}
}
