package request

import (
	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
	"fieldbook/internal/usecase/shared"
)

type CreateBookingRequest struct {
	FieldID  string `json:"fieldId" binding:"required"`
	UserID   string `json:"userId"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Duration int    `json:"duration" binding:"omitempty,min=1,max=5"`
}

// ToParams books on behalf of the caller; UserID from the body is ignored.
func (r *CreateBookingRequest) ToParams(userID string) shared.CreateBookingParams {
	return shared.CreateBookingParams{
		FieldID:  r.FieldID,
		UserID:   userID,
		Date:     r.Date,
		Time:     r.Time,
		Duration: r.Duration,
	}
}

type BrowseQuery struct {
	Q     string `form:"q"`
	Price string `form:"price"`
	Sort  string `form:"sort"`
}

func (q *BrowseQuery) ToDomain() (listing.BrowseQuery, error) {
	price, err := listing.ParsePriceBucket(q.Price)
	if err != nil {
		return listing.BrowseQuery{}, err
	}
	sort, err := listing.ParseSortKey(q.Sort)
	if err != nil {
		return listing.BrowseQuery{}, err
	}
	return listing.BrowseQuery{Text: q.Q, Price: price, Sort: sort}, nil
}

type OwnerBookingsQuery struct {
	Status string `form:"status"`
	Sort   string `form:"sort"`
}

func (q *OwnerBookingsQuery) ToFilter() (shared.OwnerBookingFilter, error) {
	var f shared.OwnerBookingFilter
	if q.Status != "" && q.Status != "all" {
		status, err := booking.NewStatus(q.Status)
		if err != nil {
			return f, err
		}
		f.Status = status
	}
	sort, err := shared.ParseBookingSort(q.Sort)
	if err != nil {
		return f, err
	}
	f.Sort = sort
	return f, nil
}
