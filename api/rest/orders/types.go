package orders

// request payload for placing an order
type Request struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
}

// response payload for an accepted order
type Response struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	Total   string `json:"total"`
}
