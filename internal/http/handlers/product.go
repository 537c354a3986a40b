package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// POST /products
// body: { "name": "...", "price": "999.99", "stock": 10 }
func (ph *ProductHandler) Create(c *gin.Context) {
	var req services.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	created, err := ph.productService.Create(c.Request.Context(), req)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"product": created})
}

// GET /products
func (ph *ProductHandler) List(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	listed, err := ph.productService.List(c.Request.Context(), filter)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": listed})
}

// GET /products/:id
func (ph *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	found, err := ph.productService.Get(c.Request.Context(), id)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": found})
}
