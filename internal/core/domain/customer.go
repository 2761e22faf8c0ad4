package domain

// Customer is a delivery recipient. Orders reference customers by id;
// the customer record owns the delivery coordinate.
type Customer struct {
	ID       int64      `json:"id" bson:"_id"`
	FullName string     `json:"full_name" bson:"full_name"`
	Email    string     `json:"email" bson:"email"`
	Location Coordinate `json:"location" bson:"location"`
}

// Product is a sellable item referenced by order lines.
type Product struct {
	ID    int64   `json:"id" bson:"_id"`
	Name  string  `json:"name" bson:"name"`
	SKU   string  `json:"sku" bson:"sku"`
	Price float64 `json:"price" bson:"price"`
}
