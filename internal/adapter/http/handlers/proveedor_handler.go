package handlers

import (
	"errors"
	"net/http"

	request "backpedidos/internal/adapter/http/dto/request"
	response "backpedidos/internal/adapter/http/dto/response"
	"backpedidos/internal/usecase"
	"backpedidos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProveedorPayload = pkg.NewDomainErrorSimple("INVALID_PROVEEDOR_INPUT", "Invalid proveedor payload", http.StatusBadRequest)

// ProveedorHandler manages the supplier registry and pedido links.
type ProveedorHandler struct {
	usecase usecase.IProveedorUseCase
}

func NewProveedorHandler(uc usecase.IProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{usecase: uc}
}

// GetProveedor godoc
// @Summary      Look up a supplier by CUIT
// @Description  Accepts CUIT with or without dashes.
// @Tags         proveedores
// @Produce      json
// @Param        cuit  path      string  true  "CUIT"
// @Success      200   {object}  response.ProveedorResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /v1/proveedores/{cuit} [get]
func (h *ProveedorHandler) GetProveedor(c *gin.Context) {
	p, err := h.usecase.GetByCUIT(c.Request.Context(), c.Param("cuit"))
	if err != nil {
		appErr := mapProveedorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProveedor(p))
}

// UpsertProveedor godoc
// @Summary      Create or refresh a supplier
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        proveedor  body      request.ProveedorUpsertRequest  true  "Supplier"
// @Success      200        {object}  response.ProveedorResponse
// @Failure      422        {object}  pkg.HTTPError
// @Router       /v1/proveedores [put]
func (h *ProveedorHandler) UpsertProveedor(c *gin.Context) {
	var payload request.ProveedorUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProveedorPayload.HTTPStatus, errInvalidProveedorPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Upsert(c.Request.Context(), payload.CUIT, payload.RazonSocial, payload.Telefono, payload.Email)
	if err != nil {
		appErr := mapProveedorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProveedor(p))
}

// VincularProveedor godoc
// @Summary      Link a supplier to a pedido
// @Description  Creates the supplier on the fly when the CUIT is unknown. Re-linking the same rol is a no-op.
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        pedido_id  path      int                               true  "Pedido ID"
// @Param        link       body      request.ProveedorVincularRequest  true  "Link"
// @Success      201        {object}  response.PedidoProveedorResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /v1/proveedores/vincular/{pedido_id} [post]
func (h *ProveedorHandler) VincularProveedor(c *gin.Context) {
	pedidoID, ok := pathID(c, "pedido_id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	var payload request.ProveedorVincularRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProveedorPayload.HTTPStatus, errInvalidProveedorPayload.ToHTTPError())
		return
	}

	link, err := h.usecase.Vincular(c.Request.Context(), pedidoID, payload.CUIT, payload.RazonSocial, payload.Rol)
	if err != nil {
		appErr := mapProveedorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPedidoProveedor(link))
}

func mapProveedorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCUIT),
		errors.Is(err, usecase.ErrInvalidTelefono),
		errors.Is(err, usecase.ErrInvalidRazonSocial),
		errors.Is(err, usecase.ErrInvalidProveedorRol):
		return pkg.NewDomainError("INVALID_PROVEEDOR_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainError("INVALID_PEDIDO_ID", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProveedorNotFound):
		return pkg.NewDomainErrorSimple("PROVEEDOR_NOT_FOUND", "Proveedor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, pkg.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
