package interfaces

import (
	"context"

	"backpedidos/internal/domain/entities"
)

// IProveedorRepository abstracts Postgres persistence for suppliers and their
// links to pedidos. CUIT arguments are already normalized to digits.
type IProveedorRepository interface {
	GetByCUIT(ctx context.Context, cuit string) (entities.Proveedor, error)
	Upsert(ctx context.Context, p entities.Proveedor) (entities.Proveedor, error)

	// LinkPedido attaches the supplier (created on the fly when unknown) to
	// the pedido under the given rol. A zero-value result means the pedido
	// does not exist. Re-linking the same (pedido, proveedor, rol) is a no-op.
	LinkPedido(ctx context.Context, pedidoID int64, cuit, razonSocial, rol string) (entities.PedidoProveedor, error)
}
