package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Quarrel Folded Hands Tee",
			Price:         price("599.00"),
			OriginalPrice: pricePtr("799.00"),
			Images:        []string{"/tshirt-1-front.jpg", "/tshirt-1-back.jpg"},
			Description:   "Premium black cotton t-shirt featuring the iconic folded hands print. A statement piece that embodies Quarrel's unique aesthetic and quality craftsmanship.",
			Category:      CategoryMen,
			Subcategory:   "T-Shirts",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black"},
			InStock:       true,
			Featured:      true,
			NewArrival:    true,
			Rating:        5.0,
			Reviews:       12,
		},
		{
			ID:            "2",
			Name:          "Quarrel Flame Tee",
			Price:         price("599.00"),
			OriginalPrice: pricePtr("799.00"),
			Images:        []string{"/tshirt-2-front.jpg", "/tshirt-2-back.jpg"},
			Description:   "Bold black cotton t-shirt with striking flame design. Part of Quarrel's signature collection representing passion and intensity.",
			Category:      CategoryMen,
			Subcategory:   "T-Shirts",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black"},
			InStock:       true,
			Featured:      true,
			NewArrival:    true,
			Rating:        5.0,
			Reviews:       8,
		},
		{
			ID:          "3",
			Name:        "Quarrel Beep Beep Tee",
			Price:       price("549.00"),
			Images:      []string{"/tshirt-3-front.jpg", "/tshirt-3-back.jpg"},
			Description: "Black t-shirt with quirky \"Beep Beep\" print featuring our signature character design. Express your playful side with Quarrel's unique aesthetic.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      5.0,
			Reviews:     5,
		},
		{
			ID:          "4",
			Name:        "Snake Tee",
			Price:       price("129.99"),
			Images:      []string{"/snake-tee-1.jpg"},
			Description: "Black oversized t-shirt featuring a striking blue snake graphic. Comfortable fit and unique streetwear style.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.9,
			Reviews:     37,
		},
		{
			ID:          "5",
			Name:        "Soul Devil Tee",
			Price:       price("94.99"),
			Images:      []string{"/tshirt-4-back.jpg"},
			Description: "Navy blue cotton t-shirt featuring \"FUG Off\" text on front and bold \"SOUL\" design with devil horns on back. Edgy streetwear for bold personalities.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Navy Blue"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.5,
			Reviews:     31,
		},
		{
			ID:          "6",
			Name:        "Dragon Fire Tee",
			Price:       price("109.99"),
			Images:      []string{"/tshirt-5-back.jpg"},
			Description: "Black cotton t-shirt featuring a fierce red dragon design on the back. Perfect for those who love mythical creatures and bold graphic art.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.7,
			Reviews:     15,
		},
		{
			ID:          "7",
			Name:        "Artistic Cat Tee",
			Price:       price("99.99"),
			Images:      []string{"/tshirt-6-back.jpg"},
			Description: "White cotton t-shirt featuring a vibrant, colorful artistic cat illustration on the back. Perfect for cat lovers and art enthusiasts.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.6,
			Reviews:     22,
		},
		{
			ID:          "8",
			Name:        "Reading Cat Tee",
			Price:       price("94.99"),
			Images:      []string{"/tshirt-7-back.jpg"},
			Description: "White cotton t-shirt featuring a humorous illustration of a cat reading a book. Quirky and fun design for book lovers and cat enthusiasts.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.4,
			Reviews:     18,
		},
		{
			ID:          "9",
			Name:        "Spidy Tee",
			Price:       price("119.99"),
			Images:      []string{"/tshirt-8-back.jpg", "/tshirt-8-back-alt.jpg"},
			Description: "Navy blue cotton t-shirt featuring an epic Spider-Man design with dynamic web and lightning effects on the back. Perfect for superhero fans and comic enthusiasts.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Navy Blue"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.8,
			Reviews:     42,
		},
		{
			ID:          "10",
			Name:        "Mystic Eyes Tee",
			Price:       price("104.99"),
			Images:      []string{"/tshirt-9-couple.jpg", "/tshirt-9-back.jpg"},
			Description: "Black cotton t-shirt featuring mysterious artistic eyes design on the back with smoky watercolor effects. Bold and enigmatic streetwear statement.",
			Category:    CategoryMen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.6,
			Reviews:     25,
		},
		{
			ID:          "14",
			Name:        "Soul Devil Tee - Women's",
			Price:       price("94.99"),
			Images:      []string{"/tshirt-4-back.jpg"},
			Description: "Navy blue cotton t-shirt featuring \"FUG Off\" text on front and bold \"SOUL\" design with devil horns on back. Edgy streetwear for bold personalities.",
			Category:    CategoryWomen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Navy Blue"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.5,
			Reviews:     28,
		},
		{
			ID:          "15",
			Name:        "Mystic Eyes Tee - Women's",
			Price:       price("104.99"),
			Images:      []string{"/tshirt-9-back.jpg"},
			Description: "Black cotton t-shirt featuring mysterious artistic eyes design on the back with smoky watercolor effects. Bold and enigmatic streetwear statement.",
			Category:    CategoryWomen,
			Subcategory: "T-Shirts",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			NewArrival:  true,
			Rating:      4.6,
			Reviews:     31,
		},
	}
}
