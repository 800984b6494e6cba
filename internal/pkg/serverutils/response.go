package serverutils

// Response is the standard success envelope.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the standard failure envelope.
type ErrorBody struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

func ErrorResponse(message string, warnings []string) ErrorBody {
	return ErrorBody{
		Success:  false,
		Message:  message,
		Warnings: warnings,
	}
}
