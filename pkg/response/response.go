package response

import (
	stdErrors "errors"
	"net/http"

	"appsearch-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a JSON error response. HTTPError values keep their code,
// validation errors become 400, everything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if stdErrors.As(err, &httpErr) {
		c.JSON(statusFor(httpErr.Code), Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validation *errors.ValidationErrorCollector
	if stdErrors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageInvalidRequest,
			Errors:    validation.Errors(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// ErrorWithMap looks err up in mapping before falling back to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	for target, httpErr := range mapping {
		if stdErrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// PanicError writes a 500 for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

func statusFor(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusBadRequest
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}
