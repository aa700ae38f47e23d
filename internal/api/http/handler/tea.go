package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/teashop-server/internal/api/http/apierror"
	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

// TeaService defines tea lifecycle operations.
type TeaService interface {
	List(ctx context.Context) ([]model.Tea, error)
	Create(ctx context.Context, actor model.User, params model.TeaParams) (model.Tea, error)
	Update(ctx context.Context, actor model.User, id int64, params model.TeaParams) (model.Tea, error)
	Delete(ctx context.Context, actor model.User, id int64) error
}

// Tea handles the /teas endpoints.
type Tea struct {
	teaService     TeaService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTea creates a new Tea handler.
func NewTea(teaService TeaService, contextManager model.ContextManager, logger *logger.Logger) *Tea {
	return &Tea{
		teaService:     teaService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Both fields must be present; empty strings are accepted.
type teaRequest struct {
	Name   *string `json:"name" binding:"required"`
	Origin *string `json:"origin" binding:"required"`
}

func (r teaRequest) params() model.TeaParams {
	return model.TeaParams{Name: *r.Name, Origin: *r.Origin}
}

type teaResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

func toTeaResponse(t model.Tea) teaResponse {
	return teaResponse{ID: t.ID, Name: t.Name, Origin: t.Origin}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Tea) List(c *gin.Context) {
	teas, err := h.teaService.List(c.Request.Context())
	if err != nil {
		apierror.Abort(c, err)
		return
	}

	resp := make([]teaResponse, 0, len(teas))
	for _, t := range teas {
		resp = append(resp, toTeaResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Tea) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req teaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.AbortValidation(c, err)
		return
	}

	tea, err := h.teaService.Create(c.Request.Context(), actor, req.params())
	if err != nil {
		apierror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, toTeaResponse(tea))
}

func (h *Tea) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, ok := teaID(c)
	if !ok {
		return
	}

	var req teaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.AbortValidation(c, err)
		return
	}

	tea, err := h.teaService.Update(c.Request.Context(), actor, id, req.params())
	if err != nil {
		apierror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, toTeaResponse(tea))
}

func (h *Tea) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, ok := teaID(c)
	if !ok {
		return
	}

	if err := h.teaService.Delete(c.Request.Context(), actor, id); err != nil {
		apierror.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Tea with id %d deleted", id)})
}

// actor aborts with 401 when the authenticate middleware did not run.
func (h *Tea) actor(c *gin.Context) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.logger.Error("Tea handler: no user in context",
			"path", c.FullPath())
		apierror.Abort(c, model.ErrUnauthorized)
		return model.User{}, false
	}
	return user, true
}

func teaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierror.AbortValidation(c, fmt.Errorf("id must be an integer, got %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
