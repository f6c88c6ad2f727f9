package promotion

import (
	"errors"
	"slices"
)

var ErrUnknownPackage = errors.New("unknown ad package")

// AdPackage is static reference data. Buying one only sets the listing's
// promoted flag; expiry is not tracked.
type AdPackage struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Days  int    `json:"days"`
	Price int64  `json:"price"`
	IsPro bool   `json:"isPro"`
}

// Labels are translation keys.
var packages = []AdPackage{
	{ID: "3days", Label: "threeDays", Days: 3, Price: 50000},
	{ID: "1week", Label: "oneWeek", Days: 7, Price: 100000},
	{ID: "2weeks", Label: "twoWeeks", Days: 14, Price: 180000},
	{ID: "1month", Label: "oneMonth", Days: 30, Price: 300000},
	{ID: "3days-pro", Label: "threeDaysPro", Days: 3, Price: 90000, IsPro: true},
}

func Packages() []AdPackage {
	return slices.Clone(packages)
}

func Find(id string) (AdPackage, error) {
	i := slices.IndexFunc(packages, func(p AdPackage) bool { return p.ID == id })
	if i < 0 {
		return AdPackage{}, ErrUnknownPackage
	}
	return packages[i], nil
}

// Request is what an owner submits when promoting a listing.
type Request struct {
	PackageID     string `json:"packageId"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

func (r Request) Validate() error {
	_, err := Find(r.PackageID)
	return err
}
