package entities

import "time"

// PedidoHistorial is one append-only audit record (public.pedido_historial).
// Rows are never updated or deleted; one row per accepted transition.
type PedidoHistorial struct {
	ID             int64     `json:"id"`
	PedidoID       int64     `json:"pedido_id"`
	EstadoAnterior Estado    `json:"estado_anterior"`
	EstadoNuevo    Estado    `json:"estado_nuevo"`
	Motivo         string    `json:"motivo,omitempty"`
	ChangedBy      string    `json:"changed_by"`
	CreatedAt      time.Time `json:"created_at"`
}
