package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnauthenticated means no principal reached the handler. Maps to 403.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the principal is known but the write targets a
	// parent it does not own. Maps to 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers both "id does not exist" and "id exists outside the
	// principal's scope" — the two are indistinguishable externally. Maps
	// to 404.
	ErrNotFound = errors.New("not found")
)

// Validation carries field-keyed messages for a 400 response.
type Validation struct {
	Fields map[string]string
}

func (e *Validation) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Invalid builds a single-field validation error.
func Invalid(field, msg string) *Validation {
	return &Validation{Fields: map[string]string{field: msg}}
}

// Store wraps a persistence failure. Fatal for the request, never retried
// by this layer.
type Store struct {
	Err error
}

func (e *Store) Error() string { return "store: " + e.Err.Error() }
func (e *Store) Unwrap() error { return e.Err }

// FromBinding converts a gin binding failure into a field-keyed Validation.
func FromBinding(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Invalid("body", "Malformed request body.")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe.Field())] = message(fe)
	}
	return &Validation{Fields: fields}
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}

// Respond maps an error from the taxonomy onto the outward status contract
// and writes the response. Anything outside the taxonomy is a 500.
func Respond(c *gin.Context, err error) {
	var v *Validation
	switch {
	case errors.As(err, &v):
		c.JSON(http.StatusBadRequest, gin.H{"errors": v.Fields})
	case errors.Is(err, ErrUnauthenticated):
		c.JSON(http.StatusForbidden, gin.H{"error": "Authentication required"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
