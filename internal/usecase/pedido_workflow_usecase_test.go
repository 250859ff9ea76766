package usecase

import (
	"context"
	"errors"
	"testing"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/domain/workflow"
	"backpedidos/internal/usecase/interfaces"
	mock_interfaces "backpedidos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// runTransition wires the mock so the decide callback executes against the
// given row, the way the real repository does under its lock.
func runTransition(repo *mock_interfaces.MockIPedidoRepository, p entities.Pedido) {
	repo.EXPECT().Transition(gomock.Any(), p.ID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, decide interfaces.TransitionFunc) (entities.TransitionResult, error) {
			out, err := decide(p)
			if err != nil {
				return entities.TransitionResult{}, err
			}
			if !out.Changed {
				return entities.TransitionResult{Estado: p.Estado, Unchanged: true}, nil
			}
			return entities.TransitionResult{Estado: out.Next}, nil
		})
}

func TestPedidoWorkflowUseCase_Decide(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPedidoWorkflowUseCase(nil)
		_, err := uc.Decide(context.Background(), 0, "aprobar", "", "ana")
		if !errors.Is(err, ErrInvalidPedidoID) {
			t.Fatalf("expected ErrInvalidPedidoID, got %v", err)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		uc := NewPedidoWorkflowUseCase(nil)
		_, err := uc.Decide(context.Background(), 1, "archivar", "", "ana")
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("observar without notes", func(t *testing.T) {
		uc := NewPedidoWorkflowUseCase(nil)
		_, err := uc.Decide(context.Background(), 1, "observar", "   ", "ana")
		if !errors.Is(err, ErrNotesRequired) {
			t.Fatalf("expected ErrNotesRequired, got %v", err)
		}
	})

	t.Run("rechazar without notes", func(t *testing.T) {
		uc := NewPedidoWorkflowUseCase(nil)
		_, err := uc.Decide(context.Background(), 1, "rechazar", "", "ana")
		if !errors.Is(err, ErrNotesRequired) {
			t.Fatalf("expected ErrNotesRequired, got %v", err)
		}
	})

	t.Run("aprobar enviado moves to aprobado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 7, Estado: entities.EstadoEnviado})

		res, err := uc.Decide(context.Background(), 7, "aprobar", "", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.EstadoAprobado || res.Unchanged {
			t.Fatalf("expected aprobado, got %+v", res)
		}
	})

	t.Run("aprobar already aprobado conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 7, Estado: entities.EstadoAprobado})

		_, err := uc.Decide(context.Background(), 7, "aprobar", "", "ana")
		if !errors.Is(err, workflow.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("aprobar cerrado conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 7, Estado: entities.EstadoCerrado})

		_, err := uc.Decide(context.Background(), 7, "aprobar", "", "ana")
		if !errors.Is(err, workflow.ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("observar already observado is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 3, Estado: entities.EstadoObservado})

		res, err := uc.Decide(context.Background(), 3, "observar", "faltan presupuestos", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Unchanged || res.Estado != entities.EstadoObservado {
			t.Fatalf("expected unchanged observado, got %+v", res)
		}
	})

	t.Run("rechazar observado with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 3, Estado: entities.EstadoObservado})

		res, err := uc.Decide(context.Background(), 3, "rechazar", "fuera de presupuesto", "ana")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.EstadoRechazado {
			t.Fatalf("expected rechazado, got %+v", res)
		}
	})

	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		repo.EXPECT().Transition(gomock.Any(), int64(99), gomock.Any(), gomock.Any()).
			Return(entities.TransitionResult{}, nil)

		_, err := uc.Decide(context.Background(), 99, "aprobar", "", "ana")
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("empty user falls back to ui", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		repo.EXPECT().Transition(gomock.Any(), int64(7), "ui", gomock.Any()).
			Return(entities.TransitionResult{Estado: entities.EstadoAprobado}, nil)

		if _, err := uc.Decide(context.Background(), 7, "aprobar", "", "  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPedidoWorkflowUseCase_SetEstado(t *testing.T) {
	caller := workflow.Caller{User: "ana", Secretaria: "economia_admin"}

	t.Run("invalid target", func(t *testing.T) {
		uc := NewPedidoWorkflowUseCase(nil)
		_, err := uc.SetEstado(context.Background(), 1, "cerrado", "", caller)
		if !errors.Is(err, ErrInvalidTargetEstado) {
			t.Fatalf("expected ErrInvalidTargetEstado, got %v", err)
		}
	})

	t.Run("economia_admin approves anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 5, Estado: entities.EstadoEnviado, Secretaria: "Obras Publicas", PresupuestoEstimado: 99_000_000})

		res, err := uc.SetEstado(context.Background(), 5, "aprobado", "ok", caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.EstadoAprobado {
			t.Fatalf("expected aprobado, got %+v", res)
		}
	})

	t.Run("secretaria_compras blocked above threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 5, Estado: entities.EstadoEnviado, Secretaria: "Obras Publicas", PresupuestoEstimado: 10_000_001})

		_, err := uc.SetEstado(context.Background(), 5, "aprobado", "", workflow.Caller{User: "ana", Secretaria: "Secretaria Compras"})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("owning secretaria matches case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 5, Estado: entities.EstadoObservado, Secretaria: "Obras Publicas", PresupuestoEstimado: 500})

		res, err := uc.SetEstado(context.Background(), 5, "en_revision", "revisar de nuevo", workflow.Caller{User: "ana", Secretaria: "OBRAS PUBLICAS"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Estado != entities.EstadoEnRevision {
			t.Fatalf("expected en_revision, got %+v", res)
		}
	})

	t.Run("foreign secretaria denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 5, Estado: entities.EstadoEnviado, Secretaria: "Obras Publicas", PresupuestoEstimado: 500})

		_, err := uc.SetEstado(context.Background(), 5, "aprobado", "", workflow.Caller{User: "ana", Secretaria: "Hacienda"})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("request for the current estado is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		runTransition(repo, entities.Pedido{ID: 5, Estado: entities.EstadoAprobado, Secretaria: "Obras Publicas"})

		res, err := uc.SetEstado(context.Background(), 5, "aprobado", "", caller)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Unchanged {
			t.Fatalf("expected unchanged, got %+v", res)
		}
	})
}

func TestPedidoWorkflowUseCase_History(t *testing.T) {
	t.Run("missing pedido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Pedido{}, nil)

		_, err := uc.History(context.Background(), 4)
		if !errors.Is(err, ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})

	t.Run("returns rows oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPedidoRepository(ctrl)
		uc := NewPedidoWorkflowUseCase(repo)

		rows := []entities.PedidoHistorial{
			{ID: 1, PedidoID: 4, EstadoAnterior: entities.EstadoEnviado, EstadoNuevo: entities.EstadoAprobado},
			{ID: 2, PedidoID: 4, EstadoAnterior: entities.EstadoAprobado, EstadoNuevo: entities.EstadoEnProceso},
		}
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Pedido{ID: 4}, nil)
		repo.EXPECT().History(gomock.Any(), int64(4)).Return(rows, nil)

		got, err := uc.History(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != 1 {
			t.Fatalf("unexpected rows: %+v", got)
		}
	})
}
