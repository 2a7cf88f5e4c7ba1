package serverutils

type WebResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string, data interface{}) WebResponse {
	return WebResponse{
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) WebResponse {
	return WebResponse{
		Message: message,
	}
}
