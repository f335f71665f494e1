package models

// CartItem pairs a dish snapshot with a quantity. The snapshot keeps the
// price a customer saw even if the dish is edited later; orders carry the
// same snapshots in their line items.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}
