package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nftique/storefront/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data in the standard envelope. Passing an error as
// data remaps the status from the domain sentinel it wraps.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrChainUnavailable):
			status = http.StatusServiceUnavailable
		case errors.Is(err, domain.ErrWalletUnavailable):
			status = http.StatusPreconditionRequired
		case errors.Is(err, domain.ErrTransactionFailed):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrInvalidSession):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrBadParamInput):
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
