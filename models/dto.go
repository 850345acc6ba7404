package models

// ProductDraft is an unsaved product payload. Optional fields are pointers so
// a missing field can be told apart from an explicit zero value: a PUT that
// omits price keeps the stored price, a PUT with price 0 sets it.
type ProductDraft struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       *int    `json:"price"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	InStock     *bool   `json:"inStock"`
	Featured    *bool   `json:"featured"`
}

// ContactDetails are the customer fields every inquiry carries.
type ContactDetails struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Address         string `json:"address"`
	AdditionalNotes string `json:"additionalNotes"`
}

// InquiryRequest is the body of POST /inquiries: contact details plus a
// client-kept cart snapshot. TotalAmount is recomputed server side.
type InquiryRequest struct {
	ContactDetails
	CartItems   []InquiryItem `json:"cartItems"`
	TotalAmount int           `json:"totalAmount"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type AdminLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}
