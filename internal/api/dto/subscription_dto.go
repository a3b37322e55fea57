package dto

// SubscribeRequest payload for starting a subscription.
type SubscribeRequest struct {
	Duration string `json:"duration"`
}
