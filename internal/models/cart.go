package models

// CartLine is one entry in a cart. Title, price and image are copied
// from the product at add-time: later catalog updates must not change
// what the buyer saw when they added the line.
type CartLine struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}
