package models

// Response envelopes follow the public API contract: every payload carries a
// success flag, failures carry an error string instead of data.

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ProductListResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

type CategoryListResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type CartResponse struct {
	Success bool     `json:"success"`
	Cart    CartView `json:"cart"`
}

type InquiryCreatedResponse struct {
	Success     bool   `json:"success"`
	ID          string `json:"id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
