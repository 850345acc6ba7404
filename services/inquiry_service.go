package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"gift-shop/models"
)

// InquiryStore persists submitted inquiries. Insert is the only operation the
// pipeline needs.
type InquiryStore interface {
	Insert(ctx context.Context, inquiry *models.Inquiry) error
}

// InquiryNotifier is an optional side channel (email) told about each
// persisted inquiry. Failures are logged and never affect the submission.
type InquiryNotifier interface {
	SendInquiryNotification(inquiry *models.Inquiry) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InquiryService turns a validated cart-plus-contact payload into a durable
// inquiry record and a WhatsApp handoff link. Validation always runs before
// any store call, so invalid inquiries are never persisted.
type InquiryService struct {
	store          InquiryStore
	notifier       InquiryNotifier
	whatsAppNumber string
}

func NewInquiryService(store InquiryStore, notifier InquiryNotifier, whatsAppNumber string) *InquiryService {
	return &InquiryService{
		store:          store,
		notifier:       notifier,
		whatsAppNumber: whatsAppNumber,
	}
}

// Submit validates, persists and builds the handoff link. The returned string
// is the wa.me URL carrying the pre-filled order summary. On failure the
// caller's cart must stay untouched so the user can retry.
func (s *InquiryService) Submit(ctx context.Context, req models.InquiryRequest) (*models.Inquiry, string, error) {
	if err := validateInquiry(req); err != nil {
		return nil, "", err
	}

	// totalAmount is recomputed from the snapshot; a client-supplied value
	// is overwritten, never trusted.
	total := 0
	for _, item := range req.CartItems {
		total += item.Price * item.Quantity
	}

	inquiry := &models.Inquiry{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Company:         strings.TrimSpace(req.Company),
		Address:         strings.TrimSpace(req.Address),
		AdditionalNotes: strings.TrimSpace(req.AdditionalNotes),
		CartItems:       req.CartItems,
		TotalAmount:     total,
		Status:          models.InquiryStatusPending,
	}

	if err := s.store.Insert(ctx, inquiry); err != nil {
		return nil, "", &models.PersistenceError{Op: "submit inquiry", Err: err}
	}

	link := WhatsAppLink(s.whatsAppNumber, inquiry)

	if s.notifier != nil {
		if err := s.notifier.SendInquiryNotification(inquiry); err != nil {
			log.Printf("inquiry notification email failed: %v", err)
		}
	}

	return inquiry, link, nil
}

func validateInquiry(req models.InquiryRequest) error {
	required := []struct {
		value string
		field string
	}{
		{req.FirstName, "firstName"},
		{req.LastName, "lastName"},
		{req.Email, "email"},
		{req.Phone, "phone"},
		{req.Address, "address"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return models.NewValidationError("Missing required field: %s", f.field)
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return models.NewValidationError("Invalid email address")
	}

	if len(req.CartItems) == 0 {
		return models.NewValidationError("Cart is empty")
	}

	for _, item := range req.CartItems {
		if item.ProductID == "" || item.Quantity < 1 || item.Price < 0 {
			return models.NewValidationError("Invalid cart item")
		}
	}

	return nil
}

// WhatsAppLink builds the deep link to the shop's WhatsApp number with the
// order summary as a pre-filled message. Pure string formatting over
// already-validated data; it has no failure mode.
func WhatsAppLink(number string, inquiry *models.Inquiry) string {
	var details strings.Builder
	for _, item := range inquiry.CartItems {
		fmt.Fprintf(&details, "• %s (Qty: %d) - ₹%d\n", item.ProductName, item.Quantity, item.Price)
	}

	var msg strings.Builder
	msg.WriteString("Hello! I would like to place an order for the following items:\n\n")
	msg.WriteString(details.String())
	fmt.Fprintf(&msg, "\nTotal Amount: ₹%d\n\n", inquiry.TotalAmount)
	msg.WriteString("Customer Details:\n")
	fmt.Fprintf(&msg, "Name: %s %s\n", inquiry.FirstName, inquiry.LastName)
	fmt.Fprintf(&msg, "Phone: %s\n", inquiry.Phone)
	fmt.Fprintf(&msg, "Email: %s\n", inquiry.Email)
	if inquiry.Company != "" {
		fmt.Fprintf(&msg, "Company: %s\n", inquiry.Company)
	}
	fmt.Fprintf(&msg, "Address: %s\n", inquiry.Address)
	if inquiry.AdditionalNotes != "" {
		fmt.Fprintf(&msg, "Additional Notes: %s\n", inquiry.AdditionalNotes)
	}
	msg.WriteString("\nPlease confirm my order and provide payment details. Thank you!")

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(msg.String()))
}
