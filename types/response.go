package types

// MessageResponse is the ack body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}
