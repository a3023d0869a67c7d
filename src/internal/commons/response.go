package commons

// Response is the envelope every HTTP endpoint answers with.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	out := make([]string, 0, len(errors))
	for _, e := range errors {
		if e != "" {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		out = nil
	}

	return Response[T]{
		Success: false,
		Message: message,
		Errors:  out,
	}
}

// ErrorFrom builds a failure envelope carrying err's text.
func ErrorFrom[T any](message string, err error) Response[T] {
	if err == nil {
		return ErrorResponse[T](message)
	}
	return ErrorResponse[T](message, err.Error())
}
