package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response ends up in the error text.
const maxErrorBody = 256

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx response into a sentinel-wrapped error.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}

func errorDetail(body []byte) string {
	detail := strings.TrimSpace(string(body))
	if len(detail) <= maxErrorBody {
		return detail
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(detail[cut]) {
		cut--
	}
	return detail[:cut] + "..."
}
