package catalog

// SampleProducts returns the built-in catalog used when no catalog file is configured.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "m1",
			Title:       "Levi's Men's Regular Fit T-Shirt",
			Category:    "mens",
			Price:       899,
			Currency:    "INR",
			ImageURL:    "https://m.media-amazon.com/images/I/71YXzeOuslL._AC_UL320_.jpg",
			DetailURL:   "https://www.amazon.in/dp/B09V3J2WXX?tag=YOUR-AFFILIATE-ID",
			Description: "Comfortable cotton tee — everyday essential.",
		},
		{
			ID:          "w1",
			Title:       "BTS Oversized Women's T-Shirt",
			Category:    "womens",
			Price:       500,
			Currency:    "INR",
			ImageURL:    "https://m.media-amazon.com/images/I/71t6YcGqGmL._AC_UL320_.jpg",
			DetailURL:   "https://www.amazon.in/dp/B09QX28M5P?tag=YOUR-AFFILIATE-ID",
			Description: "Stylish oversized fit for casual wear.",
		},
		{
			ID:          "e1",
			Title:       "Apple iPhone 13 (128GB) — Verified Seller",
			Category:    "electronics",
			Price:       52999,
			Currency:    "INR",
			ImageURL:    "https://m.media-amazon.com/images/I/71hIfcIPyxS._AC_UL320_.jpg",
			DetailURL:   "https://www.amazon.in/dp/B09G9FPGTN?tag=YOUR-AFFILIATE-ID",
			Description: "A15 Bionic, excellent camera and battery life.",
		},
		{
			ID:          "k1",
			Title:       "Remote Car Toy for Kids — Fast Racer",
			Category:    "kids",
			Price:       1299,
			Currency:    "INR",
			ImageURL:    "https://m.media-amazon.com/images/I/81gGK8m0eOL._AC_UL320_.jpg",
			DetailURL:   "https://www.amazon.in/dp/B08N5WRWNW?tag=YOUR-AFFILIATE-ID",
			Description: "Safe & durable remote racer with rechargeable battery.",
		},
	}
}

// NewStaticStore returns a Store populated with SampleProducts.
func NewStaticStore() *Store {
	store, err := NewStore(SampleProducts())
	if err != nil {
		panic(err)
	}
	return store
}
