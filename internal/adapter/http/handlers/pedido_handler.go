package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "backpedidos/internal/adapter/http/dto/request"
	response "backpedidos/internal/adapter/http/dto/response"
	"backpedidos/internal/domain/entities"
	"backpedidos/internal/usecase"
	"backpedidos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Invalid pedido payload", http.StatusBadRequest)
	errInvalidPedidoID      = pkg.NewDomainErrorSimple("INVALID_PEDIDO_ID", "Invalid pedido id", http.StatusBadRequest)
)

// PedidoHandler covers pedido creation, listing, detail and field edits.
// Estado changes live in WorkflowHandler.
type PedidoHandler struct {
	usecase usecase.IPedidoUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CreatePedido godoc
// @Summary      Create a pedido
// @Description  Creates an expediente with its ambito and modulo blocks. Numero is assigned by the database.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        pedido  body      request.PedidoCreateRequest  true  "Pedido"
// @Success      201     {object}  response.PedidoResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      422     {object}  pkg.HTTPError
// @Router       /v1/pedidos [post]
func (h *PedidoHandler) CreatePedido(c *gin.Context) {
	var payload request.PedidoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToDraft()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_PEDIDO_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPedido(pedido))
}

// ListPedidos godoc
// @Summary      List pedidos
// @Description  Filters and orders the listing view. Order keys are whitelisted.
// @Tags         pedidos
// @Produce      json
// @Param        q           query     string  false  "Free text over numero/solicitante/secretaria"
// @Param        modulo      query     string  false  "servicios | alquiler | adquisicion | reparacion"
// @Param        estado      query     string  false  "Workflow estado"
// @Param        secretaria  query     string  false  "Owning secretaria"
// @Param        order       query     string  false  "created_at_desc (default), total_asc, ..."
// @Param        limit       query     int     false  "Page size (max 1000)"
// @Param        offset      query     int     false  "Page offset"
// @Success      200  {array}   response.PedidoListItemResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /v1/pedidos/list [get]
func (h *PedidoHandler) ListPedidos(c *gin.Context) {
	f, appErr := listFilterFromQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidoList(items))
}

// GetPedidoListItem godoc
// @Summary      Get one pedido as a listing row
// @Tags         pedidos
// @Produce      json
// @Param        id   path      int  true  "Pedido ID"
// @Success      200  {object}  response.PedidoListItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/pedidos/list/{id} [get]
func (h *PedidoHandler) GetPedidoListItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	item, err := h.usecase.GetListItem(c.Request.Context(), id)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidoListItem(item))
}

// GetPedidoDetail godoc
// @Summary      Get a pedido's full detail
// @Description  Header plus the ambito and modulo blocks captured at creation.
// @Tags         pedidos
// @Produce      json
// @Param        id   path      int  true  "Pedido ID"
// @Success      200  {object}  response.PedidoDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/pedidos/detail/{id} [get]
func (h *PedidoHandler) GetPedidoDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	detail, err := h.usecase.GetDetail(c.Request.Context(), id)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPedidoDetail(detail))
}

// UpdatePedido godoc
// @Summary      Patch safe pedido fields
// @Description  Edits observaciones, presupuesto_estimado and fechas. Estado is not editable here.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        id     path      int                         true  "Pedido ID"
// @Param        patch  body      request.PedidoPatchRequest  true  "Fields to update"
// @Success      200    {object}  map[string]any
// @Failure      404    {object}  pkg.HTTPError
// @Router       /v1/pedidos/{id} [patch]
func (h *PedidoHandler) UpdatePedido(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	var payload request.PedidoPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_PEDIDO_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, patch); err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true, "id": id})
}

func listFilterFromQuery(c *gin.Context) (entities.PedidoFilter, *pkg.AppError) {
	f := entities.PedidoFilter{
		Q:          strings.TrimSpace(c.Query("q")),
		Modulo:     strings.TrimSpace(c.Query("modulo")),
		Estado:     strings.TrimSpace(c.Query("estado")),
		Secretaria: strings.TrimSpace(c.Query("secretaria")),
		CreatedBy:  strings.TrimSpace(c.Query("created_by")),
		Order:      strings.TrimSpace(c.Query("order")),
	}

	for q, dst := range map[string]**time.Time{
		"fecha_desde": &f.FechaDesde,
		"fecha_hasta": &f.FechaHasta,
	} {
		if v := strings.TrimSpace(c.Query(q)); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				return entities.PedidoFilter{}, pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid "+q+", expected YYYY-MM-DD", http.StatusUnprocessableEntity)
			}
			*dst = &t
		}
	}
	for q, dst := range map[string]**float64{
		"min_total": &f.MinTotal,
		"max_total": &f.MaxTotal,
	} {
		if v := strings.TrimSpace(c.Query(q)); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return entities.PedidoFilter{}, pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid "+q, http.StatusUnprocessableEntity)
			}
			*dst = &n
		}
	}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}
	return f, nil
}

func mapPedidoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSecretaria),
		errors.Is(err, usecase.ErrInvalidAmbito),
		errors.Is(err, usecase.ErrInvalidModulo),
		errors.Is(err, usecase.ErrInvalidEstado):
		return pkg.NewDomainError("INVALID_PEDIDO_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainError("INVALID_ORDER", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainError("INVALID_PEDIDO_ID", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSecretariaNotFound):
		return pkg.NewDomainErrorSimple("SECRETARIA_NOT_FOUND", "Secretaria not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, pkg.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
