package domain

import "math"

// CartItem pairs a product with the quantity in the cart. Quantity is
// always >= 1; a quantity dropping to zero removes the entry.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the discounted price of the line as a whole, rounded
// once per line item rather than per unit.
func (i CartItem) LineTotal() int {
	price := float64(i.Product.Price)
	if i.Product.Discount > 0 {
		price *= 1 - float64(i.Product.Discount)/100
	}
	return int(math.Round(price * float64(i.Quantity)))
}

// CartRepository persists the ordered cart contents.
type CartRepository interface {
	Load() ([]CartItem, error)
	Save(items []CartItem) error
}

// WishlistRepository persists the ordered wishlist contents.
type WishlistRepository interface {
	Load() ([]Product, error)
	Save(products []Product) error
}
