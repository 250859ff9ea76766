package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"backpedidos/internal/adapter/http/handlers/mocks"
	"backpedidos/internal/domain/entities"
	"backpedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func proveedorRouter(uc *mocks.MockIProveedorUseCase) *gin.Engine {
	h := NewProveedorHandler(uc)
	r := gin.New()
	r.PUT("/v1/proveedores", h.UpsertProveedor)
	r.GET("/v1/proveedores/:cuit", h.GetProveedor)
	r.POST("/v1/proveedores/vincular/:pedido_id", h.VincularProveedor)
	return r
}

func TestProveedorHandler_GetProveedor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().GetByCUIT(gomock.Any(), "20-12345678-9").
			Return(entities.Proveedor{ID: 4, CUIT: "20123456789", RazonSocial: "ACME SRL"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proveedores/20-12345678-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad cuit maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().GetByCUIT(gomock.Any(), "abc").Return(entities.Proveedor{}, usecase.ErrInvalidCUIT)

		req := httptest.NewRequest(http.MethodGet, "/v1/proveedores/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().GetByCUIT(gomock.Any(), "20123456789").Return(entities.Proveedor{}, usecase.ErrProveedorNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/proveedores/20123456789", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProveedorHandler_UpsertProveedor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().Upsert(gomock.Any(), "20-12345678-9", "ACME SRL", "", "acme@example.com").
			Return(entities.Proveedor{ID: 4, CUIT: "20123456789", RazonSocial: "ACME SRL"}, nil)

		payload := `{"cuit":"20-12345678-9","razon_social":"ACME SRL","email":"acme@example.com"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/proveedores", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing razon_social fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := proveedorRouter(mocks.NewMockIProveedorUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPut, "/v1/proveedores", bytes.NewBufferString(`{"cuit":"20123456789"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProveedorHandler_VincularProveedor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().Vincular(gomock.Any(), int64(7), "20123456789", "ACME", "presupuesto_1").
			Return(entities.PedidoProveedor{PedidoID: 7, ProveedorID: 3, Rol: "presupuesto_1"}, nil)

		payload := `{"cuit":"20123456789","razon_social":"ACME","rol":"presupuesto_1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/proveedores/vincular/7", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing pedido maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProveedorUseCase(ctrl)
		r := proveedorRouter(uc)

		uc.EXPECT().Vincular(gomock.Any(), int64(7), "20123456789", "", "adjudicado").
			Return(entities.PedidoProveedor{}, usecase.ErrPedidoNotFound)

		payload := `{"cuit":"20123456789","rol":"adjudicado"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/proveedores/vincular/7", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
