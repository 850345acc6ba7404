package controllers

import (
	"errors"
	"net/http"
	"testing"

	"gift-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inquiryBody() models.InquiryRequest {
	return models.InquiryRequest{
		ContactDetails: models.ContactDetails{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
			Phone:     "123",
			Address:   "x",
		},
		CartItems: []models.InquiryItem{
			{ProductID: "p1", ProductName: "Mug", Quantity: 3, Price: 200},
		},
		TotalAmount: 600,
	}
}

func TestSubmitInquiry(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/inquiries", inquiryBody(), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.InquiryCreatedResponse
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Inquiry submitted successfully", resp.Message)
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/9354382722?text=")
	assert.Contains(t, resp.WhatsAppURL, "Mug")
	assert.Contains(t, resp.WhatsAppURL, "600")

	require.Len(t, env.inquiryStore.inserted, 1)
	stored := env.inquiryStore.inserted[0]
	assert.Equal(t, models.InquiryStatusPending, stored.Status)
	assert.Equal(t, 600, stored.TotalAmount)
}

func TestSubmitInquiryMissingEmail(t *testing.T) {
	env := newTestEnv()

	body := inquiryBody()
	body.Email = ""
	rec := env.do(t, http.MethodPost, "/inquiries", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp models.ErrorResponse
	decode(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Empty(t, env.inquiryStore.inserted, "validation failures must not reach the store")
}

func TestSubmitInquiryEmptyCart(t *testing.T) {
	env := newTestEnv()

	body := inquiryBody()
	body.CartItems = nil
	rec := env.do(t, http.MethodPost, "/inquiries", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.inquiryStore.inserted)
}

func TestSubmitInquiryStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.inquiryStore.insertErr = errors.New("store down")

	rec := env.do(t, http.MethodPost, "/inquiries", inquiryBody(), nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp models.ErrorResponse
	decode(t, rec, &resp)
	assert.Equal(t, "Failed to submit inquiry", resp.Error)
}
