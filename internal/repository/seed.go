package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-sage/internal/models"
)

// SeedProperties is the demo catalogue loaded into an empty store
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:          "1",
			Title:       "Cozy Mountain Cabin",
			Description: "Beautiful cabin with mountain views",
			Location:    "Aspen, CO",
			Price:       decimal.NewFromInt(150),
			Images: []string{
				"https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800",
				"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800",
			},
			Amenities: []string{"WiFi", "Kitchen", "Fireplace", "Parking"},
			MaxGuests: 4,
			Bedrooms:  2,
			Bathrooms: 1,
		},
		{
			ID:          "2",
			Title:       "Modern Beach House",
			Description: "Stunning beachfront property with ocean views",
			Location:    "Malibu, CA",
			Price:       decimal.NewFromInt(300),
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800",
			},
			Amenities: []string{"WiFi", "Kitchen", "Pool", "Beach Access"},
			MaxGuests: 6,
			Bedrooms:  3,
			Bathrooms: 2,
		},
		{
			ID:          "3",
			Title:       "Downtown Loft",
			Description: "Stylish loft in the heart of the city",
			Location:    "New York, NY",
			Price:       decimal.NewFromInt(200),
			Images: []string{
				"https://images.unsplash.com/photo-1493809842364-78817add7ffb?w=800",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
			},
			Amenities: []string{"WiFi", "Kitchen", "Gym", "Doorman"},
			MaxGuests: 2,
			Bedrooms:  1,
			Bathrooms: 1,
		},
		{
			ID:          "glamping",
			Title:       "Riverside Glamping Dome",
			Description: "A private geodesic dome by the river, booked exclusively by one party at a time",
			Location:    "Rishikesh, Uttarakhand",
			Price:       decimal.NewFromInt(180),
			Images: []string{
				"https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800",
			},
			Amenities: []string{"Campfire", "Hot Tub", "Breakfast", "Stargazing Deck"},
			MaxGuests: 4,
			Bedrooms:  1,
			Bathrooms: 1,
			Exclusive: true,
		},
	}
}
