package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dustore/pos-admin-api/internal/application/service"
	"github.com/dustore/pos-admin-api/internal/presentation/http/dto/request"
	"github.com/dustore/pos-admin-api/internal/presentation/http/dto/response"
	"github.com/dustore/pos-admin-api/pkg/table"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List renders the current page of the order table. Query parameters map
// directly onto the view state: sort_by, sort_dir (asc|desc|none) and a
// zero-based page index. The page size is fixed server-side.
func (h *OrderHandler) List(c *gin.Context) {
	state := h.orderService.NewTableState()
	state.Sort = table.SortState{
		Column:    c.Query("sort_by"),
		Direction: table.ParseDirection(c.DefaultQuery("sort_dir", "none")),
	}
	if pageIdx, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil {
		state.Page.Index = pageIdx
	}

	page, state, err := h.orderService.TableView(c.Request.Context(), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", gin.H{
		"table": page,
		"state": state,
	})
}

// Get returns a single order with its items.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles cashier checkout.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{CustomerName: req.CustomerName}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.CheckoutItem{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// parseOrderID reads the :id route parameter; on failure it writes the
// error response itself.
func parseOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid order id")
		return 0, false
	}
	return id, true
}
