package types

// StatusResponse is a generic success acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON shape produced by the error-handling middleware.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ExportEmailResponse acknowledges a completed bulk export delivery.
type ExportEmailResponse struct {
	Status string `json:"status"`
	To     string `json:"to"`
	Count  int    `json:"count"`
}
