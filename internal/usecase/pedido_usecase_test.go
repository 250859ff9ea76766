package usecase

import (
	"context"
	"errors"
	"testing"

	"backpedidos/internal/domain/entities"
	mock_interfaces "backpedidos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func serviciosDraft(secretaria string) entities.PedidoDraft {
	return entities.PedidoDraft{
		Secretaria: secretaria,
		Ambito:     entities.AmbitoDraft{Tipo: entities.AmbitoNinguno},
		Modulo: entities.ModuloDraft{
			Tipo:      entities.ModuloServicios,
			Servicios: &entities.ServiciosDraft{TipoServicio: "mantenimiento"},
		},
	}
}

func TestPedidoUseCase_Create(t *testing.T) {
	t.Run("secretaria required", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		_, err := uc.Create(context.Background(), serviciosDraft("   "))
		if !errors.Is(err, ErrInvalidSecretaria) {
			t.Fatalf("expected ErrInvalidSecretaria, got %v", err)
		}
	})

	t.Run("estado beyond enviado rejected", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		d := serviciosDraft("Obras Publicas")
		d.Estado = entities.EstadoAprobado
		_, err := uc.Create(context.Background(), d)
		if !errors.Is(err, ErrInvalidEstado) {
			t.Fatalf("expected ErrInvalidEstado, got %v", err)
		}
	})

	t.Run("modulo payload must match tipo", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		d := serviciosDraft("Obras Publicas")
		d.Modulo = entities.ModuloDraft{Tipo: entities.ModuloAlquiler}
		_, err := uc.Create(context.Background(), d)
		if !errors.Is(err, ErrInvalidModulo) {
			t.Fatalf("expected ErrInvalidModulo, got %v", err)
		}
	})

	t.Run("obra ambito needs obra payload", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		d := serviciosDraft("Obras Publicas")
		d.Ambito = entities.AmbitoDraft{Tipo: entities.AmbitoObra}
		_, err := uc.Create(context.Background(), d)
		if !errors.Is(err, ErrInvalidAmbito) {
			t.Fatalf("expected ErrInvalidAmbito, got %v", err)
		}
	})

	t.Run("defaults to enviado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.PedidoDraft) (entities.Pedido, error) {
				if d.Estado != entities.EstadoEnviado {
					t.Fatalf("expected enviado default, got %q", d.Estado)
				}
				return entities.Pedido{ID: 1, Numero: "EXP-2026-0001", Estado: d.Estado}, nil
			})

		p, err := uc.Create(context.Background(), serviciosDraft("Obras Publicas"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Numero != "EXP-2026-0001" {
			t.Fatalf("unexpected pedido %+v", p)
		}
	})

	t.Run("unknown secretaria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Pedido{}, nil)

		_, err := uc.Create(context.Background(), serviciosDraft("Secretaria Fantasma"))
		if !errors.Is(err, ErrSecretariaNotFound) {
			t.Fatalf("expected ErrSecretariaNotFound, got %v", err)
		}
	})
}

func TestPedidoUseCase_List(t *testing.T) {
	t.Run("invalid order key", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		_, err := uc.List(context.Background(), entities.PedidoFilter{Order: "numero; DROP TABLE pedido"})
		if !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("defaults and clamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.PedidoFilter) ([]entities.PedidoListItem, error) {
				if f.Order != entities.DefaultPedidoOrder {
					t.Fatalf("expected default order, got %q", f.Order)
				}
				if f.Limit != 1000 || f.Offset != 0 {
					t.Fatalf("expected clamped paging, got limit=%d offset=%d", f.Limit, f.Offset)
				}
				return nil, nil
			})

		if _, err := uc.List(context.Background(), entities.PedidoFilter{Limit: 5000, Offset: -3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPedidoUseCase_Update(t *testing.T) {
	t.Run("empty patch is a no-op", func(t *testing.T) {
		uc := NewPedidoUseCase(nil)
		if err := uc.Update(context.Background(), 1, entities.PedidoPatch{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		obs := "nueva nota"
		repo.EXPECT().UpdateFields(gomock.Any(), int64(8), gomock.Any()).Return(false, nil)

		err := uc.Update(context.Background(), 8, entities.PedidoPatch{Observaciones: &obs})
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestPedidoUseCase_GetDetail(t *testing.T) {
	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoUseCase(repo)

		repo.EXPECT().GetDetail(gomock.Any(), int64(3)).Return(entities.PedidoDetail{}, nil)

		_, err := uc.GetDetail(context.Background(), 3)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}
