package usecase

import (
	"context"
	"errors"
	"strings"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/domain/workflow"
	"backpedidos/internal/usecase/interfaces"
)

var (
	ErrPedidoNotFound      = errors.New("pedido not found")
	ErrInvalidPedidoID     = errors.New("invalid pedido id")
	ErrInvalidDecision     = errors.New("decision must be: aprobar | observar | rechazar")
	ErrNotesRequired       = errors.New("notes required for this decision")
	ErrInvalidTargetEstado = errors.New("estado must be: aprobado | en_revision")
	ErrPermissionDenied    = errors.New("caller not allowed to decide this pedido")
)

const defaultActor = "ui"

// IPedidoWorkflowUseCase owns the pedido state machine: manual decisions,
// direct estado requests behind the permission gate, and the audit trail.
//
// Every accepted transition is applied under the repository's row lock and
// appends exactly one historial record; repeating a request that would land
// on the current estado is a success with Unchanged set.
type IPedidoWorkflowUseCase interface {
	Decide(ctx context.Context, pedidoID int64, decision, notes, changedBy string) (entities.TransitionResult, error)
	SetEstado(ctx context.Context, pedidoID int64, estado, motivo string, caller workflow.Caller) (entities.TransitionResult, error)
	History(ctx context.Context, pedidoID int64) ([]entities.PedidoHistorial, error)
}

type PedidoWorkflowUseCase struct {
	repo interfaces.IPedidoRepository
}

var _ IPedidoWorkflowUseCase = (*PedidoWorkflowUseCase)(nil)

func NewPedidoWorkflowUseCase(repo interfaces.IPedidoRepository) *PedidoWorkflowUseCase {
	return &PedidoWorkflowUseCase{repo: repo}
}

func (u *PedidoWorkflowUseCase) Decide(ctx context.Context, pedidoID int64, decision, notes, changedBy string) (entities.TransitionResult, error) {
	if pedidoID <= 0 {
		return entities.TransitionResult{}, ErrInvalidPedidoID
	}

	dec := workflow.Decision(strings.ToLower(strings.TrimSpace(decision)))
	switch dec {
	case workflow.DecisionAprobar:
	case workflow.DecisionObservar, workflow.DecisionRechazar:
		if strings.TrimSpace(notes) == "" {
			return entities.TransitionResult{}, ErrNotesRequired
		}
	default:
		return entities.TransitionResult{}, ErrInvalidDecision
	}

	if changedBy = strings.TrimSpace(changedBy); changedBy == "" {
		changedBy = defaultActor
	}

	res, err := u.repo.Transition(ctx, pedidoID, changedBy, func(p entities.Pedido) (workflow.Outcome, error) {
		out, err := workflow.ForDecision(p.Estado, dec)
		if err != nil {
			return workflow.Outcome{}, err
		}
		if out.Changed {
			out.Motivo = notes
		}
		return out, nil
	})
	if err != nil {
		return entities.TransitionResult{}, err
	}
	if res.Estado == "" {
		return entities.TransitionResult{}, ErrPedidoNotFound
	}
	return res, nil
}

func (u *PedidoWorkflowUseCase) SetEstado(ctx context.Context, pedidoID int64, estado, motivo string, caller workflow.Caller) (entities.TransitionResult, error) {
	if pedidoID <= 0 {
		return entities.TransitionResult{}, ErrInvalidPedidoID
	}

	target := entities.Estado(strings.ToLower(strings.TrimSpace(estado)))
	if !workflow.TargetEstadoAllowed(target) {
		return entities.TransitionResult{}, ErrInvalidTargetEstado
	}

	changedBy := strings.TrimSpace(caller.User)
	if changedBy == "" {
		changedBy = defaultActor
	}

	res, err := u.repo.Transition(ctx, pedidoID, changedBy, func(p entities.Pedido) (workflow.Outcome, error) {
		if !workflow.CanDecide(p, caller) {
			return workflow.Outcome{}, ErrPermissionDenied
		}
		out, err := workflow.ForTargetEstado(p.Estado, target)
		if err != nil {
			return workflow.Outcome{}, err
		}
		if out.Changed {
			out.Motivo = strings.TrimSpace(motivo)
		}
		return out, nil
	})
	if err != nil {
		return entities.TransitionResult{}, err
	}
	if res.Estado == "" {
		return entities.TransitionResult{}, ErrPedidoNotFound
	}
	return res, nil
}

func (u *PedidoWorkflowUseCase) History(ctx context.Context, pedidoID int64) ([]entities.PedidoHistorial, error) {
	if pedidoID <= 0 {
		return nil, ErrInvalidPedidoID
	}
	p, err := u.repo.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, ErrPedidoNotFound
	}
	return u.repo.History(ctx, pedidoID)
}
