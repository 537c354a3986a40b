package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders
// body: { "customer_id": "...", "product_ids": ["..."], "order_date": "2026-08-01T12:00:00Z" }
func (oh *OrderHandler) Create(c *gin.Context) {
	var req services.OrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	created, err := oh.orderService.Create(c.Request.Context(), req)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"order": created})
}

// GET /orders
func (oh *OrderHandler) List(c *gin.Context) {
	filter, err := parseOrderFilter(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filter", err)
		return
	}

	listed, err := oh.orderService.List(c.Request.Context(), filter)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"orders": listed})
}

// GET /orders/:id
func (oh *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}

	found, err := oh.orderService.Get(c.Request.Context(), id)
	if err != nil {
		response.MapError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": found})
}
