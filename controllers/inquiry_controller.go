package controllers

import (
	"net/http"

	"gift-shop/models"
	"gift-shop/services"

	"github.com/gin-gonic/gin"
)

type InquiryController struct {
	inquiries *services.InquiryService
}

func NewInquiryController(inquiries *services.InquiryService) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

// @Summary Submit inquiry
// @Description Submit a purchase inquiry with a client-kept cart snapshot
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body models.InquiryRequest true "Inquiry"
// @Success 201 {object} models.InquiryCreatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /inquiries [post]
func (ctrl *InquiryController) SubmitInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Invalid request body"})
		return
	}

	inquiry, link, err := ctrl.inquiries.Submit(c.Request.Context(), req)
	if err != nil {
		if models.IsValidation(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to submit inquiry"})
		return
	}

	c.JSON(http.StatusCreated, models.InquiryCreatedResponse{
		Success:     true,
		ID:          inquiry.ID,
		Message:     "Inquiry submitted successfully",
		WhatsAppURL: link,
	})
}
