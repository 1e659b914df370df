package seeding

import (
	"github.com/amazons/backend/services/catalog"
)

const (
	demoUsername = "demo"
	demoPassword = "demo123"
	demoEmail    = "demo@example.com"
	demoName     = "Demo User"
)

var seedCategories = []catalog.Category{
	{Name: "Electronics", Slug: "electronics"},
	{Name: "Books", Slug: "books"},
	{Name: "Home", Slug: "home"},
	{Name: "Fashion", Slug: "fashion"},
}

var seedProducts = []catalog.Product{
	{Title: "Noise-Canceling Headphones", Description: "Over-ear, Bluetooth 5.3, 30h battery", Price: 129.99, Category: "Electronics", Image: "https://images.unsplash.com/photo-1517495306984-937bcd3c5b86", Rating: 4.5, RatingCount: 0, InStock: true},
	{Title: "Smartphone Stand", Description: "Adjustable aluminum desk stand", Price: 19.99, Category: "Electronics", Image: "https://images.unsplash.com/photo-1510557880182-3d4d3cba35a5", Rating: 4.5, RatingCount: 0, InStock: true},
	{Title: "Bestselling Novel", Description: "Paperback, 352 pages", Price: 12.49, Category: "Books", Image: "https://images.unsplash.com/photo-1512820790803-83ca734da794", Rating: 4.5, RatingCount: 0, InStock: true},
	{Title: "Cozy Throw Blanket", Description: "Ultra-soft microfiber, 50x60", Price: 24.95, Category: "Home", Image: "https://images.unsplash.com/photo-1499933374294-4584851497cc", Rating: 4.5, RatingCount: 0, InStock: true},
	{Title: "Classic T-Shirt", Description: "100% cotton, unisex fit", Price: 14.99, Category: "Fashion", Image: "https://images.unsplash.com/photo-1512436991641-6745cdb1723f", Rating: 4.5, RatingCount: 0, InStock: true},
}
