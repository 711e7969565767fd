package rest

// ErrorResponse is the JSON body returned for 4xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
