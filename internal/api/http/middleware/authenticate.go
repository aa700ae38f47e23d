package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/teashop-server/internal/api/http/apierror"
	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

// Authenticator resolves bearer tokens to users.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid bearer token.
func (m *Authenticate) Handle(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		apierror.Abort(c, fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrMissingToken))
		return
	}

	user, err := m.authenticator.Authenticate(c.Request.Context(), token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.FullPath(),
			"error", err.Error())
		apierror.Abort(c, err)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), user))
	c.Next()
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
