package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/requestdata"
	"github.com/ojabooks/ojabooks-backend/internal/services"
)

type ProductHandler struct {
	log            *logger.Logger
	productService services.ProductService
}

func NewProductHandler(log *logger.Logger, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:            log.With("handler", "ProductHandler"),
		productService: productService,
	}
}

// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	products, err := h.productService.List(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, products)
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	product, err := h.productService.Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondCreated(c, product)
}

// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	var req services.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	product, err := h.productService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondOK(c, product)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.productService.Delete(c.Request.Context(), userID, id); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	RespondMessage(c, "product deleted", nil)
}
