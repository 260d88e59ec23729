package cart

import "encoding/json"

// request payload for adding an item
type AddRequest struct {
	Name string `json:"name"`
}

// request payload for removing an item; index may arrive as a number or a numeric string
type RemoveRequest struct {
	Index json.RawMessage `json:"index"`
}

// response payload for cart mutations
type Response struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
