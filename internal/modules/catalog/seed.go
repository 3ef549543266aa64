package catalog

// SampleProducts is the demo catalog. Images are Unsplash references; the
// order of the slice is the catalog's "featured" order.
func SampleProducts() []*Product {
	return []*Product{
		{
			ID:    "1",
			Name:  "Handcrafted Ceramic Bowl",
			Price: 45.00,
			Image: "https://images.unsplash.com/photo-1582140099533-11fe4d348e01?w=1080",
			Artisan: Artisan{
				ID:     "artisan-1",
				Name:   "Sarah Mitchell",
				Avatar: "https://i.pravatar.cc/150?img=1",
			},
			Description: "A beautiful handcrafted ceramic bowl, perfect for serving salads or as a decorative piece. Each piece is unique and made with love.",
			Materials:   []string{"Ceramic", "Glazed", "Hand-thrown"},
			Category:    "Pottery",
			Rating:      4.8,
			Reviews:     24,
			InStock:     3,
			Images: []string{
				"https://images.unsplash.com/photo-1582140099533-11fe4d348e01?w=1080",
				"https://images.unsplash.com/photo-1633738674687-9505aa528801?w=1080",
			},
			Location: "Portland, OR",
		},
		{
			ID:    "2",
			Name:  "Leather Journal",
			Price: 68.00,
			Image: "https://images.unsplash.com/photo-1689844495806-321b5adaf5d5?w=1080",
			Artisan: Artisan{
				ID:     "artisan-2",
				Name:   "James Cooper",
				Avatar: "https://i.pravatar.cc/150?img=12",
			},
			Description:  "Handcrafted leather journal with recycled paper. Perfect for journaling, sketching, or note-taking. Can be personalized with initials.",
			Materials:    []string{"Full-grain leather", "Recycled paper", "Hand-stitched"},
			Category:     "Leather Goods",
			Rating:       4.9,
			Reviews:      42,
			InStock:      8,
			Customizable: true,
			Images: []string{
				"https://images.unsplash.com/photo-1689844495806-321b5adaf5d5?w=1080",
			},
			Location: "Austin, TX",
		},
		{
			ID:    "3",
			Name:  "Woven Wall Hanging",
			Price: 125.00,
			Image: "https://images.unsplash.com/photo-1755991699037-73eb5dff62f5?w=1080",
			Artisan: Artisan{
				ID:     "artisan-3",
				Name:   "Emma Rodriguez",
				Avatar: "https://i.pravatar.cc/150?img=5",
			},
			Description:  "Beautiful macramé wall hanging, hand-woven with natural cotton rope. Adds warmth and texture to any space.",
			Materials:    []string{"100% Cotton", "Natural dye", "Hand-woven"},
			Category:     "Textiles",
			Rating:       5.0,
			Reviews:      18,
			InStock:      2,
			Customizable: true,
			Images: []string{
				"https://images.unsplash.com/photo-1755991699037-73eb5dff62f5?w=1080",
			},
			Location: "Santa Fe, NM",
		},
		{
			ID:    "4",
			Name:  "Artisan Necklace",
			Price: 89.00,
			Image: "https://images.unsplash.com/photo-1633459653247-c09d20fb22e6?w=1080",
			Artisan: Artisan{
				ID:     "artisan-4",
				Name:   "Olivia Chen",
				Avatar: "https://i.pravatar.cc/150?img=9",
			},
			Description: "Elegant handmade necklace featuring semi-precious stones and sterling silver. Each piece is one-of-a-kind.",
			Materials:   []string{"Sterling silver", "Semi-precious stones", "Handcrafted"},
			Category:    "Jewelry",
			Rating:      4.7,
			Reviews:     31,
			InStock:     5,
			Images: []string{
				"https://images.unsplash.com/photo-1633459653247-c09d20fb22e6?w=1080",
			},
			Location: "San Francisco, CA",
		},
		{
			ID:    "5",
			Name:  "Wooden Serving Board",
			Price: 52.00,
			Image: "https://images.unsplash.com/photo-1648650983937-cbac420329b3?w=1080",
			Artisan: Artisan{
				ID:     "artisan-5",
				Name:   "Michael Wood",
				Avatar: "https://i.pravatar.cc/150?img=13",
			},
			Description:  "Hand-carved wooden serving board made from sustainable walnut. Perfect for charcuterie and entertaining.",
			Materials:    []string{"Walnut wood", "Food-safe finish", "Hand-carved"},
			Category:     "Woodwork",
			Rating:       4.9,
			Reviews:      27,
			InStock:      6,
			Customizable: true,
			Images: []string{
				"https://images.unsplash.com/photo-1648650983937-cbac420329b3?w=1080",
			},
			Location: "Asheville, NC",
		},
		{
			ID:    "6",
			Name:  "Woven Basket Set",
			Price: 78.00,
			Image: "https://images.unsplash.com/photo-1768734836548-5be5fd6ef617?w=1080",
			Artisan: Artisan{
				ID:     "artisan-6",
				Name:   "Aisha Osman",
				Avatar: "https://i.pravatar.cc/150?img=16",
			},
			Description: "Set of 3 handwoven baskets made from natural materials. Perfect for storage and organization with a beautiful rustic look.",
			Materials:   []string{"Natural grass", "Hand-woven", "Eco-friendly"},
			Category:    "Baskets",
			Rating:      4.8,
			Reviews:     19,
			InStock:     4,
			Images: []string{
				"https://images.unsplash.com/photo-1768734836548-5be5fd6ef617?w=1080",
			},
			Location: "Seattle, WA",
		},
		{
			ID:    "7",
			Name:  "Soy Candle Collection",
			Price: 42.00,
			Image: "https://images.unsplash.com/photo-1764587492706-cea197b4376d?w=1080",
			Artisan: Artisan{
				ID:     "artisan-7",
				Name:   "Lily Nguyen",
				Avatar: "https://i.pravatar.cc/150?img=20",
			},
			Description:  "Hand-poured soy candles with natural essential oils. Set of 3 calming scents in reusable ceramic vessels.",
			Materials:    []string{"Soy wax", "Essential oils", "Cotton wick"},
			Category:     "Candles",
			Rating:       5.0,
			Reviews:      45,
			InStock:      12,
			Customizable: true,
			Images: []string{
				"https://images.unsplash.com/photo-1764587492706-cea197b4376d?w=1080",
			},
			Location: "Boulder, CO",
		},
		{
			ID:    "8",
			Name:  "Ceramic Coffee Mug",
			Price: 28.00,
			Image: "https://images.unsplash.com/photo-1633738674687-9505aa528801?w=1080",
			Artisan: Artisan{
				ID:     "artisan-1",
				Name:   "Sarah Mitchell",
				Avatar: "https://i.pravatar.cc/150?img=1",
			},
			Description:  "Handcrafted ceramic mug with unique glaze patterns. Perfect for your morning coffee or tea ritual.",
			Materials:    []string{"Stoneware", "Lead-free glaze", "Microwave safe"},
			Category:     "Pottery",
			Rating:       4.7,
			Reviews:      36,
			InStock:      7,
			Customizable: true,
			Images: []string{
				"https://images.unsplash.com/photo-1633738674687-9505aa528801?w=1080",
			},
			Location: "Portland, OR",
		},
	}
}
