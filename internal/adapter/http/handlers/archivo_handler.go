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

var errInvalidArchivoPayload = pkg.NewDomainErrorSimple("INVALID_ARCHIVO_INPUT", "Invalid archivo payload", http.StatusBadRequest)

// ArchivoHandler manages attached-document metadata and the review gate.
type ArchivoHandler struct {
	usecase usecase.IArchivoUseCase
}

func NewArchivoHandler(uc usecase.IArchivoUseCase) *ArchivoHandler {
	return &ArchivoHandler{usecase: uc}
}

// RegisterArchivo godoc
// @Summary      Register an uploaded document version
// @Description  Records the metadata of a PDF already placed in the document store. Uploads never overwrite; each call is a new version.
// @Tags         archivos
// @Accept       json
// @Produce      json
// @Param        id  path      int                             true  "Pedido ID"
// @Param        archivo    body      request.ArchivoRegisterRequest  true  "Document metadata"
// @Success      201        {object}  response.ArchivoResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Router       /v1/archivos/{id} [post]
func (h *ArchivoHandler) RegisterArchivo(c *gin.Context) {
	pedidoID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	var payload request.ArchivoRegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidArchivoPayload.HTTPStatus, errInvalidArchivoPayload.ToHTTPError())
		return
	}

	archivo, err := h.usecase.Register(c.Request.Context(), pedidoID, payload.TipoDoc, payload.FileName, payload.ContentType, payload.Size)
	if err != nil {
		appErr := mapArchivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromArchivo(archivo))
}

// ListArchivos godoc
// @Summary      List a pedido's documents
// @Description  All versions, newest first.
// @Tags         archivos
// @Produce      json
// @Param        id  path      int  true  "Pedido ID"
// @Success      200        {array}   response.ArchivoResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /v1/archivos/pedido/{id} [get]
func (h *ArchivoHandler) ListArchivos(c *gin.Context) {
	pedidoID, ok := pathID(c, "id")
	if !ok {
		c.JSON(errInvalidPedidoID.HTTPStatus, errInvalidPedidoID.ToHTTPError())
		return
	}

	items, err := h.usecase.ListByPedido(c.Request.Context(), pedidoID)
	if err != nil {
		appErr := mapArchivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArchivoList(items))
}

// ReviewArchivo godoc
// @Summary      Review a document
// @Description  aprobado or observado. Approving certain tipo_doc categories also moves the owning pedido forward; the response carries that transition when it happened.
// @Tags         archivos
// @Accept       json
// @Produce      json
// @Param        id  path      int                           true  "Archivo ID"
// @Param        review      body      request.ArchivoReviewRequest  true  "Review decision"
// @Success      200         {object}  response.ArchivoReviewResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/archivos/{id}/review [post]
func (h *ArchivoHandler) ReviewArchivo(c *gin.Context) {
	archivoID, ok := pathID(c, "id")
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_ARCHIVO_ID", "Invalid archivo id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ArchivoReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidArchivoPayload.HTTPStatus, errInvalidArchivoPayload.ToHTTPError())
		return
	}

	reviewer := strings.TrimSpace(payload.Reviewer)
	if reviewer == "" {
		reviewer = strings.TrimSpace(c.GetHeader("X-User"))
	}

	res, err := h.usecase.Review(c.Request.Context(), archivoID, payload.Decision, payload.Notes, reviewer)
	if err != nil {
		appErr := mapArchivoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArchivoReview(res))
}

func mapArchivoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPedidoID):
		return pkg.NewDomainError("INVALID_PEDIDO_ID", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidArchivoID):
		return pkg.NewDomainError("INVALID_ARCHIVO_ID", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTipoDoc),
		errors.Is(err, usecase.ErrInvalidReviewDecision),
		errors.Is(err, usecase.ErrInvalidFileName),
		errors.Is(err, usecase.ErrUnsupportedContentType),
		errors.Is(err, usecase.ErrEmptyArchivo):
		return pkg.NewDomainError("INVALID_ARCHIVO_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArchivoNotFound):
		return pkg.NewDomainErrorSimple("ARCHIVO_NOT_FOUND", "Archivo not found", http.StatusNotFound)
	case errors.Is(err, workflow.ErrTransitionNotAllowed):
		return pkg.NewDomainError("TRANSITION_NOT_ALLOWED", "Pedido estado does not allow this document approval", err, http.StatusConflict)
	case errors.Is(err, pkg.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
