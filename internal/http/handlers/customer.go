package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// POST /customers
// body: { "name": "...", "email": "...", "phone": "+1234567890" }
func (ch *CustomerHandler) Create(c *gin.Context) {
	var req services.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	created, err := ch.customerService.Create(c.Request.Context(), req)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"customer": created})
}

// POST /customers/bulk
// body: { "customers": [ {...}, {...} ] }
func (ch *CustomerHandler) BulkCreate(c *gin.Context) {
	var req struct {
		Customers []services.CustomerInput `json:"customers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := ch.customerService.BulkCreate(c.Request.Context(), req.Customers)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /customers
func (ch *CustomerHandler) List(c *gin.Context) {
	filter, err := parseCustomerFilter(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	listed, err := ch.customerService.List(c.Request.Context(), filter)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customers": listed})
}

// GET /customers/:id
func (ch *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	found, err := ch.customerService.Get(c.Request.Context(), id)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"customer": found})
}
