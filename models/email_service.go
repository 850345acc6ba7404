package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	to     string
}

// NewEmailService returns an error when SMTP is not configured; the caller
// runs without notification mail in that case.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	notifyTo := os.Getenv("INQUIRY_NOTIFY_EMAIL")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" || notifyTo == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer, to: notifyTo}, nil
}

// SendInquiryNotification mails the shop owner a copy of a freshly persisted
// inquiry so fulfillment does not depend on WhatsApp alone.
func (s *EmailService) SendInquiryNotification(inquiry *Inquiry) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("New purchase inquiry from %s %s", inquiry.FirstName, inquiry.LastName))

	var items strings.Builder
	for _, item := range inquiry.CartItems {
		fmt.Fprintf(&items, "<li>%s (Qty: %d) - ₹%d</li>", item.ProductName, item.Quantity, item.Price)
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>New Purchase Inquiry</h2>
	<p><strong>Inquiry ID:</strong> %s</p>
	<p><strong>Customer:</strong> %s %s<br>
	<strong>Email:</strong> %s<br>
	<strong>Phone:</strong> %s<br>
	<strong>Address:</strong> %s</p>
	<h3>Items</h3>
	<ul>%s</ul>
	<p><strong>Total Amount:</strong> ₹%d</p>
</body>
</html>`,
		inquiry.ID,
		inquiry.FirstName, inquiry.LastName,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Address,
		items.String(),
		inquiry.TotalAmount,
	)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
