package listing

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidPriceBucket = errors.New("invalid price filter")
	ErrInvalidSortKey     = errors.New("invalid sort key")
)

const (
	CheapMaxPrice  int64 = 80000
	MediumMaxPrice int64 = 150000

	TopListingsLimit = 6
)

type PriceBucket string

const (
	PriceAll       PriceBucket = "all"
	PriceCheap     PriceBucket = "cheap"
	PriceMedium    PriceBucket = "medium"
	PriceExpensive PriceBucket = "expensive"
)

func ParsePriceBucket(s string) (PriceBucket, error) {
	if s == "" {
		return PriceAll, nil
	}
	b := PriceBucket(s)
	switch b {
	case PriceAll, PriceCheap, PriceMedium, PriceExpensive:
		return b, nil
	default:
		return "", ErrInvalidPriceBucket
	}
}

func (b PriceBucket) Contains(price int64) bool {
	switch b {
	case PriceCheap:
		return price <= CheapMaxPrice
	case PriceMedium:
		return price > CheapMaxPrice && price <= MediumMaxPrice
	case PriceExpensive:
		return price > MediumMaxPrice
	default:
		return true
	}
}

type SortKey string

const (
	SortRating    SortKey = "rating"
	SortReviews   SortKey = "reviews"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortRating, nil
	}
	k := SortKey(s)
	switch k {
	case SortRating, SortReviews, SortPriceLow, SortPriceHigh:
		return k, nil
	default:
		return "", ErrInvalidSortKey
	}
}

func (k SortKey) Compare() func(a, b Listing) int {
	switch k {
	case SortReviews:
		return func(a, b Listing) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case SortPriceLow:
		return func(a, b Listing) int { return cmp.Compare(a.PricePerHour, b.PricePerHour) }
	case SortPriceHigh:
		return func(a, b Listing) int { return cmp.Compare(b.PricePerHour, a.PricePerHour) }
	default:
		return func(a, b Listing) int { return cmp.Compare(b.Rating, a.Rating) }
	}
}

// FilterAndSort returns the listings accepted by pred, stably ordered by
// compare. Either may be nil. The input slice is not modified.
func FilterAndSort(ls []Listing, pred func(Listing) bool, compare func(a, b Listing) int) []Listing {
	out := make([]Listing, 0, len(ls))
	for _, l := range ls {
		if pred == nil || pred(l) {
			out = append(out, l)
		}
	}
	if compare != nil {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// MatchesQuery is a case-insensitive substring match over name and location.
// An empty query matches everything.
func MatchesQuery(l Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Location), q)
}

func Search(ls []Listing, query string) []Listing {
	return FilterAndSort(ls, func(l Listing) bool { return MatchesQuery(l, query) }, nil)
}

type BrowseQuery struct {
	Text  string
	Price PriceBucket
	Sort  SortKey
}

func Browse(ls []Listing, q BrowseQuery) []Listing {
	return FilterAndSort(ls, func(l Listing) bool {
		return MatchesQuery(l, q.Text) && q.Price.Contains(l.PricePerHour)
	}, q.Sort.Compare())
}

// Top returns up to n banner-level listings, best rated first.
func Top(ls []Listing, n int) []Listing {
	top := FilterAndSort(ls, func(l Listing) bool {
		return l.PromotionLevel == PromotionBanner
	}, SortRating.Compare())
	if len(top) > n {
		top = top[:n]
	}
	return top
}

func Featured(ls []Listing) []Listing {
	return FilterAndSort(ls, func(l Listing) bool {
		return l.IsPromoted && l.PromotionLevel == PromotionFeatured
	}, nil)
}

type HomeView struct {
	Top      []Listing `json:"top"`
	Featured []Listing `json:"featured"`
	Results  []Listing `json:"results"`
	// Fallback is set when nothing matched and Results holds the first listings instead.
	Fallback bool `json:"fallback"`
}

func Home(ls []Listing, q BrowseQuery) HomeView {
	view := HomeView{
		Top:      Top(ls, TopListingsLimit),
		Featured: Featured(ls),
		Results:  Browse(ls, q),
	}
	if len(view.Results) == 0 {
		n := min(len(ls), TopListingsLimit)
		view.Results = slices.Clone(ls[:n])
		view.Fallback = true
	}
	return view
}
