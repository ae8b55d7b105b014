package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-services/internal/domains/order/model"
	"bookstore-services/internal/domains/order/service"
	"bookstore-services/internal/shared/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /orders. The order is accepted only if the
// referenced book exists and has sufficient stock at call time; any
// availability failure, including a catalog outage, is a 400 rejection
// carrying the reason, never a 5xx.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, order)
}

// ListOrders handles GET /orders?skip&limit&customer_email&status
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query model.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid query parameters", err)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, result)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /orders/:id/status. Any of the six defined
// statuses is accepted regardless of the order's current status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid order status", err)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id (administrative).
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.MessageResponse(c, http.StatusOK, fmt.Sprintf("Order %d deleted successfully", id))
}

// GetOrderBook handles GET /orders/:id/book - a live catalog lookup for the
// order's referenced book.
func (h *OrderHandler) GetOrderBook(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	details, err := h.orderService.GetOrderBook(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, details)
}

func (h *OrderHandler) handleServiceError(c *gin.Context, err error) {
	var unavailable *model.UnavailableError
	var bookGone *model.BookGoneError

	switch {
	case errors.As(err, &unavailable):
		response.BadRequest(c, unavailable.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, "Order not found")
	case errors.As(err, &bookGone):
		response.NotFound(c, bookGone.Error())
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Order service error")
		response.InternalServerError(c, "Internal server error")
	}
}

func parseOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Order ID must be a positive integer")
		return 0, false
	}
	return id, true
}
