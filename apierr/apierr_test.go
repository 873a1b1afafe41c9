package apierr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", Invalid("title", "This field is required."), http.StatusBadRequest},
		{"unauthenticated", ErrUnauthenticated, http.StatusForbidden},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"store", &Store{Err: errors.New("connection reset")}, http.StatusInternalServerError},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Respond(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestValidationBodyIsFieldKeyed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, Invalid("email", "Enter a valid email address."))

	assert.JSONEq(t, `{"errors":{"email":"Enter a valid email address."}}`, w.Body.String())
}

func TestFromBindingMalformedBody(t *testing.T) {
	err := FromBinding(errors.New("unexpected EOF"))

	var v *Validation
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "body")
}

func TestStoreUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &Store{Err: inner}
	assert.ErrorIs(t, err, inner)
}
