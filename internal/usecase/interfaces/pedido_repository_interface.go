package interfaces

import (
	"context"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/domain/workflow"
)

// TransitionFunc decides, from the locked pedido row, which transition to
// apply. It runs while the repository holds the row lock; returning an error
// aborts the transaction untouched.
type TransitionFunc func(p entities.Pedido) (workflow.Outcome, error)

// IPedidoRepository abstracts Postgres persistence for pedidos.
//
// Not-found is reported as a zero-value entity (ID == 0 / Estado == "");
// usecases translate it into their sentinel errors.
type IPedidoRepository interface {
	Create(ctx context.Context, d entities.PedidoDraft) (entities.Pedido, error)
	GetByID(ctx context.Context, id int64) (entities.Pedido, error)
	List(ctx context.Context, f entities.PedidoFilter) ([]entities.PedidoListItem, error)
	GetListItem(ctx context.Context, id int64) (entities.PedidoListItem, error)
	GetDetail(ctx context.Context, id int64) (entities.PedidoDetail, error)
	UpdateFields(ctx context.Context, id int64, patch entities.PedidoPatch) (bool, error)

	// Transition runs the check-and-update under a SELECT ... FOR UPDATE row
	// lock: it loads the pedido, calls decide, and when the outcome changes
	// the estado it updates the row and appends one historial record in the
	// same transaction.
	Transition(ctx context.Context, id int64, changedBy string, decide TransitionFunc) (entities.TransitionResult, error)

	History(ctx context.Context, id int64) ([]entities.PedidoHistorial, error)
}
