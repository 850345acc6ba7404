package controllers

import (
	"errors"
	"net/http"

	"gift-shop/models"
	"gift-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

func (ctrl *ProductController) manager(c *gin.Context) *services.AdminCatalogManager {
	session := services.AdminSession{Subject: c.GetString("admin_subject")}
	return services.NewAdminCatalogManager(session, ctrl.catalog)
}

// @Summary Get all products
// @Description Get the full product catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.ProductListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{Success: true, Products: products})
}

// @Summary Get product by ID
// @Description Get one product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Product: *product})
}

// @Summary Get categories
// @Description Get the distinct category labels present in the catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, models.CategoryListResponse{Success: true, Categories: categories})
}

// @Summary Create product
// @Description Add a product to the catalog (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProductDraft true "Product draft"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Invalid request body"})
		return
	}

	mgr := ctrl.manager(c)
	mgr.BeginCreate()

	product, err := mgr.SubmitDraft(c.Request.Context(), draft)
	if err != nil {
		if models.IsValidation(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, models.CreatedResponse{
		Success: true,
		ID:      product.ID,
		Message: "Product added successfully",
	})
}

// @Summary Update product
// @Description Overwrite the supplied fields of a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ProductDraft true "Product draft"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: "Invalid request body"})
		return
	}

	mgr := ctrl.manager(c)
	if _, err := mgr.BeginEdit(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to update product"})
		return
	}

	if _, err := mgr.SubmitDraft(c.Request.Context(), draft); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Product not found"})
		case models.IsValidation(err):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Product updated successfully"})
}

// @Summary Delete product
// @Description Delete a product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.manager(c).Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Product deleted successfully"})
}
