package models

import "time"

const InquiryStatusPending = "pending"

type Inquiry struct {
	ID              string        `json:"id"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Company         string        `json:"company,omitempty"`
	Address         string        `json:"address"`
	AdditionalNotes string        `json:"additionalNotes,omitempty"`
	CartItems       []InquiryItem `json:"cartItems"`
	TotalAmount     int           `json:"totalAmount"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// InquiryItem is a snapshot of one cart line taken at submission time. Later
// catalog edits do not touch it.
type InquiryItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}
