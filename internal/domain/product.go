package domain

import "math"

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Stock       int     `json:"stock"`
	Discount    int     `json:"discount,omitempty"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// DiscountedPrice is the effective price after the percent discount,
// rounded to the nearest whole unit. A zero discount means full price.
func (p Product) DiscountedPrice() int {
	if p.Discount <= 0 {
		return p.Price
	}
	return int(math.Round(float64(p.Price) * (1 - float64(p.Discount)/100)))
}

// RatingBucket is the integer star bucket the product falls into,
// e.g. a 4.5-star product belongs to bucket 4.
func (p Product) RatingBucket() int {
	return int(math.Floor(p.Rating))
}
