package catalog

// Category is the record stored in the "category" collection.
type Category struct {
	Name string `bson:"name" json:"name"`
	Slug string `bson:"slug" json:"slug"`
}

// Product is the record stored in the "product" collection. Category is a
// free-text label, not a reference to a Category record.
type Product struct {
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Rating      float64 `bson:"rating" json:"rating"`
	RatingCount int     `bson:"rating_count" json:"rating_count"`
	InStock     bool    `bson:"in_stock" json:"in_stock"`
}

const (
	defaultRating    = 4.5
	defaultListLimit = 20
)

type CategoryResponse struct {
	ID string `json:"id"`
	Category
}

type ProductResponse struct {
	ID string `json:"id"`
	Product
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ListProductsRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Skip     int    `form:"skip" validate:"gte=0"`
}

// newProduct applies the record defaults to a creation request.
func newProduct(req CreateProductRequest) Product {
	return Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      defaultRating,
		RatingCount: 0,
		InStock:     true,
	}
}
