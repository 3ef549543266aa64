package storefront

import "github.com/craftroots/storefront/internal/modules/catalog"

// Order is a past order shown on the dashboard. The demo has no order
// history backend, so the dashboard serves fixture orders.
type Order struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
	Items  int     `json:"items"`
	Image  string  `json:"image"`
}

// Dashboard is the signed-in user's account page payload.
type Dashboard struct {
	Orders   []Order            `json:"orders"`
	Wishlist []*catalog.Product `json:"wishlist"`
}

func mockOrders(products []*catalog.Product) []Order {
	orders := []Order{
		{ID: "12345", Date: "Jan 28, 2026", Status: "In Progress", Total: 125.00, Items: 2},
		{ID: "12344", Date: "Jan 15, 2026", Status: "Delivered", Total: 89.00, Items: 1},
	}
	for i := range orders {
		if i < len(products) {
			orders[i].Image = products[i].Image
		}
	}
	return orders
}
