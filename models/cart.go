package models

// CartItem is one product-quantity pairing inside a session cart. Carts are
// never persisted; only the InquiryItem snapshots derived from them are.
type CartItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int    `json:"price"`
	Image       string `json:"image,omitempty"`
	Quantity    int    `json:"quantity"`
}

type CartView struct {
	Items       []CartItem `json:"items"`
	TotalAmount int        `json:"totalAmount"`
	TotalItems  int        `json:"totalItems"`
}
