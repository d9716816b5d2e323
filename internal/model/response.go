package model

// Response is a generic struct for API responses
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Error   *string     `json:"error,omitempty"`
	Message string      `json:"message"`
}

// NewErrorResponse builds the envelope used for every failed request.
func NewErrorResponse(errMsg, message string) Response {
	return Response{Error: &errMsg, Message: message}
}

// NewDataResponse builds the envelope for a successful request.
func NewDataResponse(data interface{}) Response {
	return Response{Data: data, Message: "Success"}
}
