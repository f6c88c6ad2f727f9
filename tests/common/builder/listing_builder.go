//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/listing"
)

type ListingBuilder struct {
	ID             string
	OwnerID        string
	Name           string
	Location       string
	PricePerHour   int64
	Rating         float64
	ReviewCount    int
	IsPromoted     bool
	PromotionLevel listing.PromotionLevel
	CreatedAt      time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:             "1",
		OwnerID:        "owner1",
		Name:           "Green Arena",
		Location:       "Chilonzor, Tashkent",
		PricePerHour:   100000,
		Rating:         4.8,
		ReviewCount:    120,
		PromotionLevel: listing.PromotionNone,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() listing.Listing {
	return listing.Listing{
		ID:             l.ID,
		OwnerID:        l.OwnerID,
		Name:           l.Name,
		Location:       l.Location,
		PricePerHour:   l.PricePerHour,
		Rating:         l.Rating,
		ReviewCount:    l.ReviewCount,
		Image:          listing.DefaultImage,
		Images:         []string{listing.DefaultImage},
		Amenities:      []string{"Parking", "Shower"},
		IsPromoted:     l.IsPromoted,
		PromotionLevel: l.PromotionLevel,
		CreatedAt:      l.CreatedAt,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithID(id string) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithOwner(ownerID string) *ListingBuilder {
	l.OwnerID = ownerID
	return l
}

func (l *ListingBuilder) WithPrice(price int64) *ListingBuilder {
	l.PricePerHour = price
	return l
}
