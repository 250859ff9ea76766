package response

import (
	"time"

	"backpedidos/internal/domain/entities"
)

// TransitionResponse reports where a state-machine call landed. Unchanged is
// true for idempotent repeats, which write no historial row.
type TransitionResponse struct {
	PedidoID  int64  `json:"pedido_id"`
	Estado    string `json:"estado"`
	Unchanged bool   `json:"unchanged"`
}

func FromTransition(pedidoID int64, r entities.TransitionResult) TransitionResponse {
	return TransitionResponse{
		PedidoID:  pedidoID,
		Estado:    string(r.Estado),
		Unchanged: r.Unchanged,
	}
}

type HistorialItemResponse struct {
	ID             int64     `json:"id"`
	PedidoID       int64     `json:"pedido_id"`
	EstadoAnterior string    `json:"estado_anterior"`
	EstadoNuevo    string    `json:"estado_nuevo"`
	Motivo         string    `json:"motivo,omitempty"`
	ChangedBy      string    `json:"changed_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromHistorial(items []entities.PedidoHistorial) []HistorialItemResponse {
	out := make([]HistorialItemResponse, 0, len(items))
	for _, h := range items {
		out = append(out, HistorialItemResponse{
			ID:             h.ID,
			PedidoID:       h.PedidoID,
			EstadoAnterior: string(h.EstadoAnterior),
			EstadoNuevo:    string(h.EstadoNuevo),
			Motivo:         h.Motivo,
			ChangedBy:      h.ChangedBy,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out
}
