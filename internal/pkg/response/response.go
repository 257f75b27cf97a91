// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"
	"strings"

	xerrors "bookings-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JSON sends a successful response with the given payload as-is.
func JSON(c *gin.Context, status int, payload interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, payload)
}

// Message sends a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error sends a standardized error response and aborts the chain.
func Error(c *gin.Context, code int, message string) {
	c.Abort()
	c.JSON(code, gin.H{"message": message})
}

// FromError translates a domain failure to its HTTP status. The mapping is
// deterministic: NotFound->404, BadRequest->400, Unauthorized->401,
// anything uncategorized->500 with a generic body.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, xerrors.MessageOrDefault(err, "Resource not found"))
	case errors.Is(err, xerrors.ErrBadRequest):
		Error(c, http.StatusBadRequest, xerrors.MessageOrDefault(err, "Bad request"))
	case errors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, xerrors.MessageOrDefault(err, "Unauthorized"))
	default:
		Error(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// ValidationError sends a 400 with one entry per invalid field, or a single
// {"message": ...} entry when the payload could not be bound at all.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	c.Abort()
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = fieldMessage(fe)
	}
	c.JSON(http.StatusBadRequest, fields)
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "message"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "min":
		return "size must be at least " + fe.Param()
	case "max":
		return "size must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
