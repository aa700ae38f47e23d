// Package apierror maps domain errors to HTTP responses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/teashop-server/internal/model"
)

// Response is the body of every error reply.
type Response struct {
	Detail string `json:"detail"`
}

const internalDetail = "Internal Server Error"

var unauthorizedDetails = []struct {
	err    error
	detail string
}{
	{model.ErrTokenExpired, "Token has expired"},
	{model.ErrTokenMalformed, "Invalid token"},
	{model.ErrMissingToken, "Not authenticated"},
	{model.ErrUserNotFound, "User not found"},
	{model.ErrInvalidCredentials, "Incorrect username or password"},
	{model.ErrUnauthorized, "Unauthorized"},
}

// FromError returns the status code and detail message for err.
func FromError(err error) (int, string) {
	for _, u := range unauthorizedDetails {
		if errors.Is(err, u.err) {
			return http.StatusUnauthorized, u.detail
		}
	}

	if errors.Is(err, model.ErrNotFound) {
		return http.StatusNotFound, "Tea not found"
	}

	return http.StatusInternalServerError, internalDetail
}

// Abort stops the chain and writes the reply for err. The error is recorded on
// the gin context so the access log can report the cause of a 500.
func Abort(c *gin.Context, err error) {
	status, detail := FromError(err)
	_ = c.Error(err)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, Response{Detail: detail})
}

// AbortValidation replies 422 for a request that failed binding.
func AbortValidation(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{Detail: err.Error()})
}

// AbortInternal replies 500 without exposing anything about the cause.
func AbortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Detail: internalDetail})
}
