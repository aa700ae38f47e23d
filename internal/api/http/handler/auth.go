package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dtroode/teashop-server/internal/api/http/apierror"
	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

// AuthService defines the login operation.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.Token, error)
}

// Auth handles the token endpoint.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type tokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges credentials for a bearer token. Credentials are read from
// the query string or a urlencoded form body.
func (h *Auth) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		apierror.AbortValidation(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		apierror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
