package toolkitapi

import (
	"github.com/cryptolink/solkit/internal/server/endpoint"
	"github.com/cryptolink/solkit/internal/server/http/common"
	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type Handler struct {
	endpoints *endpoint.Endpoints
	logger    *zerolog.Logger
}

func New(endpoints *endpoint.Endpoints, logger *zerolog.Logger) *Handler {
	log := logger.With().Str("channel", "toolkit_api").Logger()

	return &Handler{endpoints: endpoints, logger: &log}
}

func (h *Handler) GetHealth(c echo.Context) error {
	return common.SuccessResponse(c, endpoint.HealthMessage)
}

func (h *Handler) PostKeypair(c echo.Context) error {
	res, err := h.endpoints.GenerateKeypair()
	if err != nil {
		return err
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostSignMessage(c echo.Context) error {
	var req model.SignMessageRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.SignMessage(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostVerifyMessage(c echo.Context) error {
	var req model.VerifyMessageRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.VerifyMessage(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostCreateToken(c echo.Context) error {
	var req model.CreateTokenRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.CreateToken(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostMintToken(c echo.Context) error {
	var req model.MintTokenRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.MintToken(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostSendSOL(c echo.Context) error {
	var req model.SendSOLRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.SendSOL(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

func (h *Handler) PostSendToken(c echo.Context) error {
	var req model.SendTokenRequest
	if err := c.Bind(&req); err != nil {
		return common.ValidationErrorResponse(c, "invalid request body")
	}

	res, err := h.endpoints.SendToken(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return common.SuccessResponse(c, res)
}

// fail writes client errors directly. Everything else goes to the
// server's error handler to be logged.
func (h *Handler) fail(c echo.Context, err error) error {
	if common.StatusCode(err) >= 500 {
		return err
	}

	h.logger.Debug().Err(err).Str("path", c.Path()).Msg("rejected request")

	return common.ErrorResponse(c, err)
}
