package controllers

import (
	"net/http"

	"gift-shop/config"
	"gift-shop/models"
	"gift-shop/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

// @Summary Admin login
// @Description Exchange the shared admin secret for a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "secret is required"})
		return
	}

	if config.AppConfig.AdminSecret == "" {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Success: false, Error: "Admin access is not configured"})
		return
	}

	if !utils.VerifyAdminSecret(config.AppConfig.AdminSecret, req.Secret) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Error: "Invalid admin secret"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token})
}
