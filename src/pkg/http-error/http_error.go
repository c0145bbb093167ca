package httpError

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape every usecase returns inside utils.Result.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    fiber.StatusBadRequest,
		Message: "Bad request",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    fiber.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    fiber.StatusNotFound,
		Message: "Not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    fiber.StatusConflict,
		Message: "Conflict",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    fiber.StatusInternalServerError,
		Message: "Internal server error",
	}
}
