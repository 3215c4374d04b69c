package common

import (
	"net/http"

	"github.com/cryptolink/solkit/internal/kms/wallet"
	"github.com/cryptolink/solkit/internal/service/instruction"
	"github.com/cryptolink/solkit/internal/validate"
	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrMalformedBody is returned when request body is not a valid JSON object
// of the expected shape.
var ErrMalformedBody = errors.New("malformed request body")

const internalErrorMessage = "internal server error"

var clientErrors = []error{
	ErrMalformedBody,
	validate.ErrMissingField,
	validate.ErrNonPositiveAmount,
	wallet.ErrInvalidEncoding,
	wallet.ErrInvalidLength,
	wallet.ErrInvalidAddress,
	wallet.ErrInvalidKeyMaterial,
	wallet.ErrInvalidSignature,
	instruction.ErrInstructionConstruction,
}

// StatusCode maps error to http status. Every error kind produced by request
// handling is the client's fault; anything else is 500.
func StatusCode(err error) int {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// Error builds error envelope and its status. Internal errors never leak
// their text.
func Error(err error) (int, *model.ErrorResponse) {
	status := StatusCode(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = internalErrorMessage
	}

	return status, &model.ErrorResponse{Success: false, Error: message}
}

func Success(data any) *model.SuccessResponse {
	return &model.SuccessResponse{Success: true, Data: data}
}

func SuccessResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Success(data))
}

func ErrorResponse(c echo.Context, err error) error {
	status, body := Error(err)

	return c.JSON(status, body)
}

// ValidationErrorResponse responds 400 with a plain message.
func ValidationErrorResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &model.ErrorResponse{Success: false, Error: message})
}
