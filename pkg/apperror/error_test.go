package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, MsgInternal, err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestBadRequestHasNoCause(t *testing.T) {
	err := BadRequest("Invalid email format")

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Invalid email format", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NotFound("route not found"))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
