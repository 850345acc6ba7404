package controllers

import (
	"errors"
	"net/http"

	"gift-shop/models"
	"gift-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

type CartController struct {
	carts     *services.CartManager
	catalog   *services.CatalogService
	inquiries *services.InquiryService
}

func NewCartController(carts *services.CartManager, catalog *services.CatalogService, inquiries *services.InquiryService) *CartController {
	return &CartController{carts: carts, catalog: catalog, inquiries: inquiries}
}

// sessionID picks the caller's cart session from the X-Session-ID header,
// minting one when absent. The id is echoed back on every response so the
// client can keep it.
func (ctrl *CartController) sessionID(c *gin.Context) string {
	id := c.GetHeader(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(sessionHeader, id)
	return id
}

// @Summary Get cart
// @Description Get the session's cart with totals
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} models.CartResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view := ctrl.carts.View(ctrl.sessionID(c))
	c.JSON(http.StatusOK, models.CartResponse{Success: true, Cart: view})
}

// @Summary Add cart item
// @Description Add one unit of a product to the session's cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body models.AddCartItemRequest true "Product reference"
// @Success 200 {object} models.CartResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "productId is required"})
		return
	}

	product, err := ctrl.catalog.Get(c.Request.Context(), req.ProductID)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to fetch product"})
		return
	}

	view := ctrl.carts.AddItem(ctrl.sessionID(c), *product)
	c.JSON(http.StatusOK, models.CartResponse{Success: true, Cart: view})
}

// @Summary Set cart item quantity
// @Description Set an existing line item's quantity; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.CartResponse
// @Router /cart/items/{productId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "quantity is required"})
		return
	}

	view := ctrl.carts.SetQuantity(ctrl.sessionID(c), c.Param("productId"), *req.Quantity)
	c.JSON(http.StatusOK, models.CartResponse{Success: true, Cart: view})
}

// @Summary Remove cart item
// @Description Remove a line item; removing an absent id is a no-op
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.CartResponse
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	view := ctrl.carts.RemoveItem(ctrl.sessionID(c), c.Param("productId"))
	c.JSON(http.StatusOK, models.CartResponse{Success: true, Cart: view})
}

// @Summary Clear cart
// @Description Empty the session's cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Success 200 {object} models.CartResponse
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	view := ctrl.carts.Clear(ctrl.sessionID(c))
	c.JSON(http.StatusOK, models.CartResponse{Success: true, Cart: view})
}

// @Summary Checkout cart
// @Description Submit the session's cart as a purchase inquiry
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id"
// @Param request body models.ContactDetails true "Contact details"
// @Success 201 {object} models.InquiryCreatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var contact models.ContactDetails
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Invalid request body"})
		return
	}

	var inquiry *models.Inquiry
	var link string

	err := ctrl.carts.Checkout(ctrl.sessionID(c), func(items []models.InquiryItem, total int) error {
		req := models.InquiryRequest{
			ContactDetails: contact,
			CartItems:      items,
			TotalAmount:    total,
		}
		var submitErr error
		inquiry, link, submitErr = ctrl.inquiries.Submit(c.Request.Context(), req)
		return submitErr
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Error: err.Error()})
		case models.IsValidation(err):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to submit inquiry"})
		}
		return
	}

	c.JSON(http.StatusCreated, models.InquiryCreatedResponse{
		Success:     true,
		ID:          inquiry.ID,
		Message:     "Inquiry submitted successfully",
		WhatsAppURL: link,
	})
}
