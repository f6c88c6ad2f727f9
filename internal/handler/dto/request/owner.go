package request

import (
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/domain/promotion"
)

type FieldRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=200"`
	Location       *string  `json:"location" binding:"omitempty,max=200"`
	Address        *string  `json:"address"`
	Description    *string  `json:"description" binding:"omitempty,max=2000"`
	PricePerHour   *int64   `json:"pricePerHour" binding:"omitempty,min=0"`
	Rating         *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ReviewCount    *int     `json:"reviewCount" binding:"omitempty,min=0"`
	Image          *string  `json:"image"`
	Images         []string `json:"images"`
	Amenities      []string `json:"amenities"`
	IsPromoted     *bool    `json:"isPromoted"`
	PromotionLevel *string  `json:"promotionLevel" binding:"omitempty,oneof=none featured banner"`
	Bookings       *int     `json:"bookings" binding:"omitempty,min=0"`
	Earnings       *int64   `json:"earnings" binding:"omitempty,min=0"`
}

func (r *FieldRequest) ToPatch() listing.Patch {
	p := listing.Patch{
		Name:         r.Name,
		Location:     r.Location,
		Address:      r.Address,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
		Image:        r.Image,
		Images:       r.Images,
		Amenities:    r.Amenities,
		IsPromoted:   r.IsPromoted,
		Bookings:     r.Bookings,
		Earnings:     r.Earnings,
	}
	if r.PromotionLevel != nil {
		level := listing.PromotionLevel(*r.PromotionLevel)
		p.PromotionLevel = &level
	}
	return p
}

type VerifyRequest struct {
	VerificationCode string `json:"verificationCode" binding:"required"`
}

type PromoteRequest struct {
	PackageID     string `json:"packageId" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

func (r *PromoteRequest) ToDomain() promotion.Request {
	return promotion.Request{PackageID: r.PackageID, PaymentMethod: r.PaymentMethod}
}
