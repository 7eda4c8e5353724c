package catalog

import "tripBooker/internal/models"

var seed = []models.Trip{
	{
		ID:          1,
		Title:       "Mountain Adventure",
		Description: "Explore scenic mountain trails and enjoy breathtaking views. Perfect for nature lovers and adventure seekers.",
		Price:       2999,
		Duration:    "3 days",
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
	},
	{
		ID:          2,
		Title:       "Beach Paradise",
		Description: "Relax on pristine beaches and enjoy water sports. Includes surfing lessons and beachside dining.",
		Price:       2499,
		Duration:    "2 days",
		Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=400",
	},
	{
		ID:          3,
		Title:       "City Explorer",
		Description: "Discover urban attractions, museums, and local cuisine. Perfect for culture enthusiasts.",
		Price:       1999,
		Duration:    "1 day",
		Image:       "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=400",
	},
	{
		ID:          4,
		Title:       "Forest Retreat",
		Description: "Immerse yourself in tranquil forests with hiking trails and wildlife spotting opportunities.",
		Price:       3499,
		Duration:    "4 days",
		Image:       "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400",
	},
	{
		ID:          5,
		Title:       "Desert Safari",
		Description: "Experience the magic of desert landscapes with camel rides and stargazing sessions.",
		Price:       3999,
		Duration:    "3 days",
		Image:       "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9?w=400",
	},
}
