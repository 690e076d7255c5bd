package request

// CheckoutItemRequest is one line of a cashier checkout.
type CheckoutItemRequest struct {
	MenuID   int64 `json:"menu_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	CustomerName string                `json:"customer_name"`
	Items        []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// WhatsAppRequest carries the dispatch destination for an order receipt.
// CustomerName lets the cashier correct the greeting at send time.
type WhatsAppRequest struct {
	Phone        string `json:"phone" binding:"required"`
	CustomerName string `json:"customer_name"`
}
