package catalog

import "github.com/horizontravels/booking/internal/domain"

func defaultDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:          1,
			Name:        "Santorini, Greece",
			Description: "Famous for its stunning sunsets, white-washed buildings, and blue-domed churches.",
			Image:       "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?auto=format&fit=crop&q=80&w=800",
			Price:       1200,
			Rating:      4.9,
		},
		{
			ID:          2,
			Name:        "Bali, Indonesia",
			Description: "A tropical paradise known for its lush jungles, pristine beaches, and vibrant culture.",
			Image:       "https://images.unsplash.com/photo-1537996194471-e657df975ab4?auto=format&fit=crop&q=80&w=800",
			Price:       850,
			Rating:      4.8,
		},
		{
			ID:          3,
			Name:        "Kyoto, Japan",
			Description: "A city where modern meets traditional, featuring stunning temples and serene gardens.",
			Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?auto=format&fit=crop&q=80&w=800",
			Price:       1500,
			Rating:      4.7,
		},
		{
			ID:          4,
			Name:        "Amalfi Coast, Italy",
			Description: "Breathtaking coastal cliffs and charming seaside towns overlooking the Mediterranean.",
			Image:       "https://images.unsplash.com/photo-1633321088355-d0f81134ca3b?auto=format&fit=crop&q=80&w=800",
			Price:       1800,
			Rating:      4.9,
		},
	}
}

func defaultRentals() []domain.CarRental {
	return []domain.CarRental{
		{
			ID:       1,
			Name:     "Convertible Luxury",
			Type:     "Luxury",
			Price:    150,
			Image:    "https://images.unsplash.com/photo-1503376780353-7e6692767b70?auto=format&fit=crop&q=80&w=800",
			Features: []string{"Automatic", "AC", "2 Seats"},
		},
		{
			ID:       2,
			Name:     "Off-Road SUV",
			Type:     "Adventure",
			Price:    95,
			Image:    "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=800",
			Features: []string{"4x4", "Manual", "5 Seats"},
		},
	}
}

func defaultTours() []domain.Tour {
	return []domain.Tour{
		{
			ID:          1,
			Name:        "Ancient Athens Walking Tour",
			Duration:    "4 Hours",
			Price:       45,
			Image:       "https://images.unsplash.com/photo-1555992336-03a23c7b20ee?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Description: "Explore the historic heart of Athens, visiting the Acropolis and the Plaka district.",
		},
		{
			ID:          2,
			Name:        "Safari Adventure",
			Duration:    "2 Days",
			Price:       320,
			Image:       "https://images.unsplash.com/photo-1516426122078-c23e76319801?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9,
			Description: "Witness the majesty of African wildlife in their natural habitat.",
		},
	}
}

func defaultGuides() []domain.TravelGuide {
	return []domain.TravelGuide{
		{
			ID:       1,
			Title:    "10 Best Hidden Gems in Italy",
			Category: "Tips",
			Excerpt:  "Discover the secret spots that locals love but tourists often miss...",
			Date:     "Feb 15, 2026",
		},
		{
			ID:       2,
			Title:    "How to Travel Bali on a Budget",
			Category: "Budgeting",
			Excerpt:  "You don't need a fortune to enjoy the magic of Indonesia. Here's how...",
			Date:     "Feb 10, 2026",
		},
	}
}
