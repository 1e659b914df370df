package ordering

import "time"

const orderStatusPlaced = "placed"

// OrderItem is a denormalized snapshot of a product at order time. The
// product_id is a loose string reference; it is not validated against the
// product collection.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity  int     `bson:"quantity" json:"quantity" validate:"gte=0"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is the record stored in the "order" collection.
type Order struct {
	UserID    string      `bson:"user_id" json:"user_id"`
	Items     []OrderItem `bson:"items" json:"items"`
	Total     float64     `bson:"total" json:"total"`
	Address   string      `bson:"address" json:"address"`
	Status    string      `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}

type CheckoutRequest struct {
	UserID  string      `json:"user_id" validate:"required"`
	Items   []OrderItem `json:"items" validate:"dive"`
	Address string      `json:"address" validate:"required"`
}

type CheckoutResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}
