package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/domain/workflow"
	"backpedidos/internal/usecase/interfaces"
	mock_interfaces "backpedidos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestArchivoUseCase_Register(t *testing.T) {
	t.Run("invalid tipo_doc", func(t *testing.T) {
		uc := NewArchivoUseCase(nil, nil, "pedidos")
		_, err := uc.Register(context.Background(), 1, "contrato", "a.pdf", "application/pdf", 100)
		if !errors.Is(err, ErrInvalidTipoDoc) {
			t.Fatalf("expected ErrInvalidTipoDoc, got %v", err)
		}
	})

	t.Run("non-pdf rejected", func(t *testing.T) {
		uc := NewArchivoUseCase(nil, nil, "pedidos")
		_, err := uc.Register(context.Background(), 1, "presupuesto_1", "a.docx", "application/msword", 100)
		if !errors.Is(err, ErrUnsupportedContentType) {
			t.Fatalf("expected ErrUnsupportedContentType, got %v", err)
		}
	})

	t.Run("empty file rejected", func(t *testing.T) {
		uc := NewArchivoUseCase(nil, nil, "pedidos")
		_, err := uc.Register(context.Background(), 1, "presupuesto_1", "a.pdf", "application/pdf", 0)
		if !errors.Is(err, ErrEmptyArchivo) {
			t.Fatalf("expected ErrEmptyArchivo, got %v", err)
		}
	})

	t.Run("builds versioned storage path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIArchivoRepository(ctrl)
		uc := NewArchivoUseCase(repo, nil, "pedidos")

		repo.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PedidoArchivo) (entities.PedidoArchivo, error) {
				if !strings.HasPrefix(a.StoragePath, "supabase://pedidos/pedido_9/presupuesto_1/") {
					t.Fatalf("unexpected storage path %q", a.StoragePath)
				}
				if !strings.HasSuffix(a.StoragePath, "_oferta.pdf") {
					t.Fatalf("expected file name suffix, got %q", a.StoragePath)
				}
				a.ID = 12
				return a, nil
			})

		created, err := uc.Register(context.Background(), 9, "Presupuesto_1", "oferta.pdf", "", 2048)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 12 || created.ContentType != "application/pdf" {
			t.Fatalf("unexpected archivo: %+v", created)
		}
	})

	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIArchivoRepository(ctrl)
		uc := NewArchivoUseCase(repo, nil, "pedidos")

		repo.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.PedidoArchivo{}, nil)

		_, err := uc.Register(context.Background(), 9, "presupuesto_1", "a.pdf", "application/pdf", 10)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestArchivoUseCase_Review(t *testing.T) {
	newMocks := func(t *testing.T) (*mock_interfaces.MockIArchivoRepository, *mock_interfaces.MockIPedidoRepository, *ArchivoUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		archivoRepo := mock_interfaces.NewMockIArchivoRepository(ctrl)
		pedidoRepo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		return archivoRepo, pedidoRepo, NewArchivoUseCase(archivoRepo, pedidoRepo, "pedidos")
	}

	t.Run("invalid decision", func(t *testing.T) {
		uc := NewArchivoUseCase(nil, nil, "pedidos")
		_, err := uc.Review(context.Background(), 1, "rechazado", "", "ana")
		if !errors.Is(err, ErrInvalidReviewDecision) {
			t.Fatalf("expected ErrInvalidReviewDecision, got %v", err)
		}
	})

	t.Run("approving presupuesto_1 moves pedido enviado to aprobado", func(t *testing.T) {
		archivoRepo, pedidoRepo, uc := newMocks(t)

		archivo := entities.PedidoArchivo{ID: 2, PedidoID: 9, TipoDoc: entities.TipoDocPresupuesto1, ReviewStatus: entities.ReviewAprobado}
		archivoRepo.EXPECT().Review(gomock.Any(), int64(2), entities.ReviewAprobado, "", "ana").Return(archivo, false, nil)

		pedidoRepo.EXPECT().Transition(gomock.Any(), int64(9), "ana", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ string, decide interfaces.TransitionFunc) (entities.TransitionResult, error) {
				out, err := decide(entities.Pedido{ID: 9, Estado: entities.EstadoEnviado})
				if err != nil {
					return entities.TransitionResult{}, err
				}
				if out.Motivo != workflow.MotivoAprobacionPresupuesto {
					t.Fatalf("unexpected motivo %q", out.Motivo)
				}
				return entities.TransitionResult{Estado: out.Next}, nil
			})

		res, err := uc.Review(context.Background(), 2, "aprobado", "", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transition == nil || res.Transition.Estado != entities.EstadoAprobado {
			t.Fatalf("expected transition to aprobado, got %+v", res.Transition)
		}
	})

	t.Run("approving presupuesto when pedido not enviado conflicts", func(t *testing.T) {
		archivoRepo, pedidoRepo, uc := newMocks(t)

		archivo := entities.PedidoArchivo{ID: 2, PedidoID: 9, TipoDoc: entities.TipoDocPresupuesto2, ReviewStatus: entities.ReviewAprobado}
		archivoRepo.EXPECT().Review(gomock.Any(), int64(2), entities.ReviewAprobado, "", "ana").Return(archivo, false, nil)

		pedidoRepo.EXPECT().Transition(gomock.Any(), int64(9), "ana", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ string, decide interfaces.TransitionFunc) (entities.TransitionResult, error) {
				_, err := decide(entities.Pedido{ID: 9, Estado: entities.EstadoBorrador})
				return entities.TransitionResult{}, err
			})

		_, err := uc.Review(context.Background(), 2, "aprobado", "", "ana")
		if !errors.Is(err, workflow.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("observado never touches the pedido", func(t *testing.T) {
		archivoRepo, _, uc := newMocks(t)

		archivo := entities.PedidoArchivo{ID: 2, PedidoID: 9, TipoDoc: entities.TipoDocPresupuesto1, ReviewStatus: entities.ReviewObservado}
		archivoRepo.EXPECT().Review(gomock.Any(), int64(2), entities.ReviewObservado, "ilegible", "ana").Return(archivo, false, nil)

		res, err := uc.Review(context.Background(), 2, "observado", "ilegible", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transition != nil {
			t.Fatalf("expected no transition, got %+v", res.Transition)
		}
	})

	t.Run("repeated approval skips the transition", func(t *testing.T) {
		archivoRepo, _, uc := newMocks(t)

		archivo := entities.PedidoArchivo{ID: 2, PedidoID: 9, TipoDoc: entities.TipoDocFormalPDF, ReviewStatus: entities.ReviewAprobado}
		archivoRepo.EXPECT().Review(gomock.Any(), int64(2), entities.ReviewAprobado, "", "ana").Return(archivo, true, nil)

		res, err := uc.Review(context.Background(), 2, "aprobado", "", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Unchanged || res.Transition != nil {
			t.Fatalf("expected unchanged without transition, got %+v", res)
		}
	})

	t.Run("anexo1_obra approval drives nothing", func(t *testing.T) {
		archivoRepo, _, uc := newMocks(t)

		archivo := entities.PedidoArchivo{ID: 2, PedidoID: 9, TipoDoc: entities.TipoDocAnexo1Obra, ReviewStatus: entities.ReviewAprobado}
		archivoRepo.EXPECT().Review(gomock.Any(), int64(2), entities.ReviewAprobado, "", "ana").Return(archivo, false, nil)

		res, err := uc.Review(context.Background(), 2, "aprobado", "", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Transition != nil {
			t.Fatalf("expected no transition, got %+v", res.Transition)
		}
	})

	t.Run("missing archivo", func(t *testing.T) {
		archivoRepo, _, uc := newMocks(t)

		archivoRepo.EXPECT().Review(gomock.Any(), int64(5), entities.ReviewAprobado, "", "ui").Return(entities.PedidoArchivo{}, false, nil)

		_, err := uc.Review(context.Background(), 5, "aprobado", "", "")
		if !errors.Is(err, ErrArchivoNotFound) {
			t.Fatalf("expected ErrArchivoNotFound, got %v", err)
		}
	})
}
