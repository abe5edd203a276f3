package pricing

import "shop_backend/internal/models"

type Totals struct {
	ItemsPrice float64 `json:"itemsPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Compute derives the order totals from its items. Pure function, the stored
// order never carries these fields.
func Compute(items []models.OrderItem, taxPrice, shippingPrice float64) Totals {
	var itemsPrice float64
	for i := range items {
		itemsPrice += float64(items[i].Quantity) * items[i].Price
	}
	return Totals{
		ItemsPrice: itemsPrice,
		TotalPrice: itemsPrice + taxPrice + shippingPrice,
	}
}
