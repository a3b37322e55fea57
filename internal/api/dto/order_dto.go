package dto

// OrderRequest payload for order placement. PayAtCounter is part of the
// schema, not an optional attribute: absent means false.
type OrderRequest struct {
	Items        string `json:"items"`
	Name         string `json:"name"`
	MessPass     string `json:"mess_pass"`
	Preorder     bool   `json:"preorder"`
	Category     string `json:"category"`
	PayAtCounter bool   `json:"pay_at_counter"`
}

// PreorderRequest payload for direct preorder submission.
type PreorderRequest struct {
	Name       string `json:"name"`
	Enrollment string `json:"enrollment"`
	Category   string `json:"category"`
	Items      string `json:"items"`
}
