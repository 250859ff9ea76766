package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "backpedidos/internal/adapter/http/dto/request"
	response "backpedidos/internal/adapter/http/dto/response"
	"backpedidos/internal/domain/workflow"
	"backpedidos/internal/usecase"
	"backpedidos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_WORKFLOW_INPUT", "Invalid workflow payload", http.StatusBadRequest)

// WorkflowHandler owns the estado endpoints: decisions, direct estado
// requests and the historial.
type WorkflowHandler struct {
	usecase usecase.IPedidoWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IPedidoWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// callerFrom reads the caller identity the UI forwards on every workflow
// call. Body fields take precedence over headers.
func callerFrom(c *gin.Context, user, secretaria string) workflow.Caller {
	if user = strings.TrimSpace(user); user == "" {
		user = strings.TrimSpace(c.GetHeader("X-User"))
	}
	if secretaria = strings.TrimSpace(secretaria); secretaria == "" {
		secretaria = strings.TrimSpace(c.GetHeader("X-Secretaria"))
	}
	return workflow.Caller{User: user, Secretaria: secretaria}
}

// Decide godoc
// @Summary      Apply a reviewer decision
// @Description  aprobar, observar or rechazar. observar/rechazar require notes. Repeating a decision that lands on the current estado is a no-op.
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id        path      int                      true  "Pedido ID"
// @Param        decision  body      request.DecisionRequest  true  "Decision"
// @Success      200       {object}  response.TransitionResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Router       /v1/pedidos/{id}/decision [post]
func (h *WorkflowHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	changedBy := strings.TrimSpace(c.GetHeader("X-User"))
	res, err := h.usecase.Decide(c.Request.Context(), id, payload.Decision, payload.Notes, changedBy)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(id, res))
}

// SetEstado godoc
// @Summary      Request a direct estado
// @Description  Accepts aprobado or en_revision, subject to the caller's role and the pedido's budget.
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id      path      int                    true   "Pedido ID"
// @Param        estado  body      request.EstadoRequest  true   "Target estado"
// @Param        X-User        header  string  false  "Acting user"
// @Param        X-Secretaria  header  string  false  "Caller's secretaria"
// @Success      200     {object}  response.TransitionResponse
// @Failure      403     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /v1/pedidos/{id}/estado [post]
func (h *WorkflowHandler) SetEstado(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	var payload request.EstadoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	caller := callerFrom(c, payload.User, payload.Secretaria)
	res, err := h.usecase.SetEstado(c.Request.Context(), id, payload.Estado, payload.Motivo, caller)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(id, res))
}

// History godoc
// @Summary      Get a pedido's audit trail
// @Description  One row per accepted transition, oldest first.
// @Tags         workflow
// @Produce      json
// @Param        id   path      int  true  "Pedido ID"
// @Success      200  {array}   response.HistorialItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/pedidos/{id}/historial [get]
func (h *WorkflowHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	items, err := h.usecase.History(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistorial(items))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainError("INVALID_PEDIDO_ID", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrNotesRequired),
		errors.Is(err, usecase.ErrInvalidTargetEstado):
		return pkg.NewDomainError("INVALID_WORKFLOW_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller not allowed to decide this pedido", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrTransitionNotAllowed):
		return pkg.NewDomainError("TRANSITION_NOT_ALLOWED", "Transition not allowed from current estado", err, http.StatusConflict)
	case errors.Is(err, pkg.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
