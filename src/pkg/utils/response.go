package utils

import (
	"errors"

	httpError "payout-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type httpResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Response writes a success envelope.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(httpResponse{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ResponseError maps a usecase error to its HTTP status. Anything that is not
// a CommonError becomes a 500.
func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if !errors.As(err, &commonErr) {
		commonErr = httpError.NewInternalServerError()
		if err != nil {
			commonErr.Message = err.Error()
		}
	}
	return ctx.Status(commonErr.Code).JSON(httpResponse{
		Success: false,
		Code:    commonErr.Code,
		Message: commonErr.Message,
	})
}
