package mockapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

// httpErrorHandler unwraps to the first CodedError in the chain to pick the
// response status; anything else is a 500.
func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	for probe := err; probe != nil; probe = errors.Unwrap(probe) {
		if ce, ok := probe.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		var he *echo.HTTPError
		if errors.As(probe, &he) {
			code = he.Code
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
