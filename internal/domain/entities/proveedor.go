package entities

import "time"

// Proveedor is a supplier keyed by normalized CUIT (digits only).
type Proveedor struct {
	ID            int64     `json:"id"`
	CUIT          string    `json:"cuit"`
	RazonSocial   string    `json:"razon_social"`
	EmailContacto string    `json:"email_contacto,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PedidoProveedor links a supplier to an expediente with a role
// (e.g. "presupuesto_1", "adjudicado").
type PedidoProveedor struct {
	PedidoID    int64     `json:"pedido_id"`
	ProveedorID int64     `json:"proveedor_id"`
	Rol         string    `json:"rol"`
	CreatedAt   time.Time `json:"created_at"`
}
