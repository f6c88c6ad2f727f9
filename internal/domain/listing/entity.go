package listing

import (
	"errors"
	"time"

	"fieldbook/internal/pkg/patch"

	"github.com/jinzhu/copier"
)

var ErrInvalidPromotionLevel = errors.New("invalid promotion level")

const (
	DefaultName  = "Unnamed field"
	DefaultImage = "https://images.unsplash.com/photo-1529900748604-07564a03e7a6?w=800&q=80"
)

type PromotionLevel string

const (
	PromotionNone     PromotionLevel = "none"
	PromotionFeatured PromotionLevel = "featured"
	PromotionBanner   PromotionLevel = "banner"
)

func (p PromotionLevel) IsValid() bool {
	switch p {
	case PromotionNone, PromotionFeatured, PromotionBanner:
		return true
	default:
		return false
	}
}

// Listing is a bookable sports field. Catalog listings are seeded; owner
// listings also carry the counters shown on the owner dashboard.
type Listing struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"ownerId,omitempty"`
	Name           string         `json:"name"`
	Location       string         `json:"location"`
	Address        string         `json:"address,omitempty"`
	Description    string         `json:"description,omitempty"`
	PricePerHour   int64          `json:"pricePerHour"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount"`
	Image          string         `json:"image,omitempty"`
	Images         []string       `json:"images,omitempty"`
	Amenities      []string       `json:"amenities,omitempty"`
	IsPromoted     bool           `json:"isPromoted"`
	PromotionLevel PromotionLevel `json:"promotionLevel,omitempty"`
	Bookings       int            `json:"bookings,omitempty"`
	Earnings       int64          `json:"earnings,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitzero"`
}

// Patch carries partial listing data. A nil field is unspecified.
type Patch struct {
	Name           *string         `json:"name,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Address        *string         `json:"address,omitempty"`
	Description    *string         `json:"description,omitempty"`
	PricePerHour   *int64          `json:"pricePerHour,omitempty"`
	Rating         *float64        `json:"rating,omitempty"`
	ReviewCount    *int            `json:"reviewCount,omitempty"`
	Image          *string         `json:"image,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Amenities      []string        `json:"amenities,omitempty"`
	IsPromoted     *bool           `json:"isPromoted,omitempty"`
	PromotionLevel *PromotionLevel `json:"promotionLevel,omitempty"`
	Bookings       *int            `json:"bookings,omitempty"`
	Earnings       *int64          `json:"earnings,omitempty"`
}

func (p Patch) Validate() error {
	if p.PromotionLevel != nil && !p.PromotionLevel.IsValid() {
		return ErrInvalidPromotionLevel
	}
	return nil
}

// NewOwnerListing builds a freshly created owner listing: defaults first,
// then the overrides in p.
func NewOwnerListing(id, ownerID string, p Patch, now time.Time) (Listing, error) {
	if err := p.Validate(); err != nil {
		return Listing{}, err
	}

	image := patch.CoalesceZero(p.Image, "")
	if image == "" && len(p.Images) > 0 {
		image = p.Images[0]
	}
	if image == "" {
		image = DefaultImage
	}

	return Listing{
		ID:             id,
		OwnerID:        ownerID,
		Name:           patch.CoalesceZero(p.Name, DefaultName),
		Location:       patch.Coalesce(p.Location, ""),
		Address:        patch.Coalesce(p.Address, ""),
		Description:    patch.Coalesce(p.Description, ""),
		PricePerHour:   patch.Coalesce(p.PricePerHour, 0),
		Rating:         patch.Coalesce(p.Rating, 0),
		ReviewCount:    patch.Coalesce(p.ReviewCount, 0),
		Image:          image,
		Images:         p.Images,
		Amenities:      p.Amenities,
		IsPromoted:     patch.Coalesce(p.IsPromoted, false),
		PromotionLevel: patch.Coalesce(p.PromotionLevel, PromotionNone),
		Bookings:       patch.Coalesce(p.Bookings, 0),
		Earnings:       patch.Coalesce(p.Earnings, 0),
		CreatedAt:      now,
	}, nil
}

// Merge returns l with every specified field of p applied. Identity fields
// (id, owner, creation time) are never touched.
func (l Listing) Merge(p Patch) (Listing, error) {
	if err := p.Validate(); err != nil {
		return Listing{}, err
	}

	merged := l
	merged.Images = append([]string(nil), l.Images...)
	merged.Amenities = append([]string(nil), l.Amenities...)
	if err := copier.CopyWithOption(&merged, &p, copier.Option{IgnoreEmpty: true}); err != nil {
		return Listing{}, err
	}
	merged.ID, merged.OwnerID, merged.CreatedAt = l.ID, l.OwnerID, l.CreatedAt
	return merged, nil
}

// Promote sets the promoted flag. Package, expiry and level are not tracked.
func (l *Listing) Promote() {
	l.IsPromoted = true
}
