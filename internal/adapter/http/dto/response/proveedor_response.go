package response

import (
	"time"

	"backpedidos/internal/domain/entities"
)

type ProveedorResponse struct {
	ID          int64     `json:"id"`
	CUIT        string    `json:"cuit"`
	RazonSocial string    `json:"razon_social"`
	Email       string    `json:"email,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProveedor(p entities.Proveedor) ProveedorResponse {
	return ProveedorResponse{
		ID:          p.ID,
		CUIT:        p.CUIT,
		RazonSocial: p.RazonSocial,
		Email:       p.EmailContacto,
		Telefono:    p.Telefono,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PedidoProveedorResponse struct {
	PedidoID    int64     `json:"pedido_id"`
	ProveedorID int64     `json:"proveedor_id"`
	Rol         string    `json:"rol"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPedidoProveedor(l entities.PedidoProveedor) PedidoProveedorResponse {
	return PedidoProveedorResponse{
		PedidoID:    l.PedidoID,
		ProveedorID: l.ProveedorID,
		Rol:         l.Rol,
		CreatedAt:   l.CreatedAt,
	}
}
