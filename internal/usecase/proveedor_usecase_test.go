package usecase

import (
	"context"
	"errors"
	"testing"

	"backpedidos/internal/domain/entities"
	mock_interfaces "backpedidos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNormalizeCUIT(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"20-12345678-9", "20123456789", true},
		{"20123456789", "20123456789", true},
		{"12345678", "12345678", true},
		{"1234567", "", false},
		{"20-12345678-90-1", "", false},
		{"abc", "", false},
	}
	for _, c := range cases {
		got, err := NormalizeCUIT(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("NormalizeCUIT(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && !errors.Is(err, ErrInvalidCUIT) {
			t.Fatalf("NormalizeCUIT(%q) expected ErrInvalidCUIT, got %v", c.in, err)
		}
	}
}

func TestNormalizeTelefono(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+54 9 11 1234-5678", "+5491112345678", true},
		{"5491112345678", "+5491112345678", true},
		{"12345678", "+12345678", true},
		{"1234567", "", false},
		{"1234567890123456", "", false},
	}
	for _, c := range cases {
		got, err := NormalizeTelefono(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("NormalizeTelefono(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
		if !c.ok && !errors.Is(err, ErrInvalidTelefono) {
			t.Fatalf("NormalizeTelefono(%q) expected ErrInvalidTelefono, got %v", c.in, err)
		}
	}
}

func TestProveedorUseCase_GetByCUIT(t *testing.T) {
	t.Run("normalizes before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProveedorRepository(ctrl)
		uc := NewProveedorUseCase(repo)

		repo.EXPECT().GetByCUIT(gomock.Any(), "20123456789").Return(entities.Proveedor{ID: 4, CUIT: "20123456789"}, nil)

		p, err := uc.GetByCUIT(context.Background(), "20-12345678-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 4 {
			t.Fatalf("unexpected proveedor: %+v", p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProveedorRepository(ctrl)
		uc := NewProveedorUseCase(repo)

		repo.EXPECT().GetByCUIT(gomock.Any(), "20123456789").Return(entities.Proveedor{}, nil)

		_, err := uc.GetByCUIT(context.Background(), "20123456789")
		if !errors.Is(err, ErrProveedorNotFound) {
			t.Fatalf("expected ErrProveedorNotFound, got %v", err)
		}
	})
}

func TestProveedorUseCase_Upsert(t *testing.T) {
	t.Run("razon social required", func(t *testing.T) {
		uc := NewProveedorUseCase(nil)
		_, err := uc.Upsert(context.Background(), "20123456789", "  ", "", "")
		if !errors.Is(err, ErrInvalidRazonSocial) {
			t.Fatalf("expected ErrInvalidRazonSocial, got %v", err)
		}
	})

	t.Run("telefono normalized when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProveedorRepository(ctrl)
		uc := NewProveedorUseCase(repo)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proveedor) (entities.Proveedor, error) {
				if p.Telefono != "+5491112345678" {
					t.Fatalf("unexpected telefono %q", p.Telefono)
				}
				p.ID = 1
				return p, nil
			})

		if _, err := uc.Upsert(context.Background(), "20-12345678-9", "ACME SRL", "54 9 11 1234 5678", "acme@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProveedorUseCase_Vincular(t *testing.T) {
	t.Run("rol required", func(t *testing.T) {
		uc := NewProveedorUseCase(nil)
		_, err := uc.Vincular(context.Background(), 1, "20123456789", "ACME", "  ")
		if !errors.Is(err, ErrInvalidProveedorRol) {
			t.Fatalf("expected ErrInvalidProveedorRol, got %v", err)
		}
	})

	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProveedorRepository(ctrl)
		uc := NewProveedorUseCase(repo)

		repo.EXPECT().LinkPedido(gomock.Any(), int64(7), "20123456789", "ACME", "presupuesto_1").Return(entities.PedidoProveedor{}, nil)

		_, err := uc.Vincular(context.Background(), 7, "20123456789", "ACME", "presupuesto_1")
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("link created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProveedorRepository(ctrl)
		uc := NewProveedorUseCase(repo)

		repo.EXPECT().LinkPedido(gomock.Any(), int64(7), "20123456789", "ACME", "adjudicado").
			Return(entities.PedidoProveedor{PedidoID: 7, ProveedorID: 3, Rol: "adjudicado"}, nil)

		link, err := uc.Vincular(context.Background(), 7, "20-12345678-9", "ACME", "adjudicado")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ProveedorID != 3 {
			t.Fatalf("unexpected link: %+v", link)
		}
	})
}
