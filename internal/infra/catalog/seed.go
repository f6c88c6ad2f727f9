package catalog

import "fieldbook/internal/domain/listing"

func img(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=800&q=80"
}

// SeedListings is the sample catalog served in local mode.
func SeedListings() []listing.Listing {
	return []listing.Listing{
		{
			ID: "1", OwnerID: "owner1", Name: "Green Arena", Location: "Chilonzor",
			Address: "Chilonzor tumani, Bunyodkor ko'chasi 12", Description: "Sun'iy qoplamali yopiq maydon",
			PricePerHour: 100000, Rating: 4.8, ReviewCount: 124,
			Image:     img("1575361204480-aadea25e6e68"),
			Images:    []string{img("1575361204480-aadea25e6e68"), img("1459865264687-595d652de67e")},
			Amenities: []string{"parking", "shower", "lighting"},
			IsPromoted: true, PromotionLevel: listing.PromotionBanner,
		},
		{
			ID: "2", OwnerID: "owner2", Name: "Champion Field", Location: "Tashkent",
			Address: "Mirzo Ulug'bek tumani, Buyuk Ipak Yo'li 45", Description: "FIFA standartidagi tabiiy maysa",
			PricePerHour: 180000, Rating: 4.9, ReviewCount: 210,
			Image:     img("1522778119026-d647f0596c20"),
			Images:    []string{img("1522778119026-d647f0596c20")},
			Amenities: []string{"parking", "shower", "cafe", "lighting"},
			IsPromoted: true, PromotionLevel: listing.PromotionBanner,
		},
		{
			ID: "3", OwnerID: "owner1", Name: "Yunusobod Sport", Location: "Yunusobod",
			Address: "Yunusobod tumani, Amir Temur ko'chasi 108", Description: "Mini-futbol uchun ochiq maydon",
			PricePerHour: 70000, Rating: 4.3, ReviewCount: 58,
			Image:     img("1489944440615-453fc2b6a9a9"),
			Images:    []string{img("1489944440615-453fc2b6a9a9")},
			Amenities: []string{"lighting"},
			IsPromoted: true, PromotionLevel: listing.PromotionFeatured,
		},
		{
			ID: "4", OwnerID: "owner3", Name: "Sergeli Stadium", Location: "Sergeli",
			Address: "Sergeli tumani, Yangi Sergeli 7", Description: "Katta maydon, tribunalar bilan",
			PricePerHour: 150000, Rating: 4.6, ReviewCount: 87,
			Image:     img("1431324155629-1a6deb1dec8d"),
			Images:    []string{img("1431324155629-1a6deb1dec8d")},
			Amenities: []string{"parking", "tribune", "lighting"},
			IsPromoted: false, PromotionLevel: listing.PromotionBanner,
		},
		{
			ID: "5", OwnerID: "owner2", Name: "Olmazor Mini", Location: "Olmazor",
			Address: "Olmazor tumani, Qorasaroy 3", Description: "Kichik jamoalar uchun arzon maydon",
			PricePerHour: 60000, Rating: 4.1, ReviewCount: 33,
			Image:     img("1508098682722-e99c43a406b2"),
			Images:    []string{img("1508098682722-e99c43a406b2")},
			Amenities: []string{"shower"},
			PromotionLevel: listing.PromotionNone,
		},
		{
			ID: "6", OwnerID: "owner3", Name: "Mirobod Indoor", Location: "Mirobod",
			Address: "Mirobod tumani, Nukus ko'chasi 21", Description: "Isitiladigan yopiq zal",
			PricePerHour: 120000, Rating: 4.7, ReviewCount: 96,
			Image:     img("1518091043644-c1d4457512c6"),
			Images:    []string{img("1518091043644-c1d4457512c6")},
			Amenities: []string{"parking", "shower", "heating"},
			IsPromoted: true, PromotionLevel: listing.PromotionFeatured,
		},
		{
			ID: "7", OwnerID: "owner1", Name: "Bektemir Park", Location: "Bektemir",
			Address: "Bektemir tumani, Husayniy 5", Description: "Park ichidagi ochiq maydon",
			PricePerHour: 80000, Rating: 4.0, ReviewCount: 19,
			Image:  img("1556056504-5c7696c4c28d"),
			Images: []string{img("1556056504-5c7696c4c28d")},
			PromotionLevel: listing.PromotionNone,
		},
		{
			ID: "8", OwnerID: "owner2", Name: "City Arena Pro", Location: "Shayxontohur",
			Address: "Shayxontohur tumani, Navoiy ko'chasi 30", Description: "Premium yopiq arena",
			PricePerHour: 250000, Rating: 4.9, ReviewCount: 301,
			Image:     img("1551958219-acbc608c6377"),
			Images:    []string{img("1551958219-acbc608c6377")},
			Amenities: []string{"parking", "shower", "cafe", "lighting", "locker"},
			IsPromoted: true, PromotionLevel: listing.PromotionBanner,
		},
	}
}
