package interfaces

import (
	"context"

	"backpedidos/internal/domain/entities"
)

// IArchivoRepository abstracts Postgres persistence for attached documents.
//
// Register inserts a new version row, or upserts per (pedido_id, tipo_doc)
// when the repository was built in upsert mode; the two strategies are
// mutually exclusive configurations. A zero-value result means the owning
// pedido does not exist.
type IArchivoRepository interface {
	Register(ctx context.Context, a entities.PedidoArchivo) (entities.PedidoArchivo, error)
	ListByPedido(ctx context.Context, pedidoID int64) ([]entities.PedidoArchivo, error)

	// Review locks the archivo row and writes the review fields. When the
	// stored review already equals the requested decision it changes nothing
	// and reports unchanged=true. A zero-value archivo means not found.
	Review(ctx context.Context, archivoID int64, decision entities.ReviewStatus, notes, reviewedBy string) (archivo entities.PedidoArchivo, unchanged bool, err error)
}
