package http

// NewOrderRequest is the payload for creating an order.
type NewOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// OrderCreatedResponse returns the identifier of a newly created order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// NewItemRequest describes a priced item to append to an order. A leaf item
// carries a price; a bundle carries child items instead, nested to any
// depth.
type NewItemRequest struct {
	Name  string           `json:"name"`
	Price *float64         `json:"price,omitempty"`
	Items []NewItemRequest `json:"items,omitempty"`
}

// CheckoutRequest selects the payment method for the checkout workflow.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// CheckoutResponse reports the outcome of a completed checkout.
type CheckoutResponse struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

// ItemResponse is a single order item in the order view.
type ItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderResponse is the read-side view of an order.
type OrderResponse struct {
	ID       string         `json:"id"`
	Customer string         `json:"customer"`
	Status   string         `json:"status"`
	Total    float64        `json:"total"`
	Items    []ItemResponse `json:"items"`
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
