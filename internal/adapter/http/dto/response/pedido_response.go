package response

import (
	"time"

	"backpedidos/internal/domain/entities"
)

type PedidoResponse struct {
	ID                  int64      `json:"id"`
	Numero              string     `json:"numero"`
	Estado              string     `json:"estado"`
	Secretaria          string     `json:"secretaria"`
	PresupuestoEstimado float64    `json:"presupuesto_estimado"`
	Observaciones       string     `json:"observaciones,omitempty"`
	FechaPedido         time.Time  `json:"fecha_pedido"`
	FechaDesde          *time.Time `json:"fecha_desde,omitempty"`
	FechaHasta          *time.Time `json:"fecha_hasta,omitempty"`
	CreatedBy           string     `json:"created_by,omitempty"`
	Solicitante         string     `json:"solicitante,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromPedido(p entities.Pedido) PedidoResponse {
	return PedidoResponse{
		ID:                  p.ID,
		Numero:              p.Numero,
		Estado:              string(p.Estado),
		Secretaria:          p.Secretaria,
		PresupuestoEstimado: p.PresupuestoEstimado,
		Observaciones:       p.Observaciones,
		FechaPedido:         p.FechaPedido,
		FechaDesde:          p.FechaDesde,
		FechaHasta:          p.FechaHasta,
		CreatedBy:           p.CreatedBy,
		Solicitante:         p.Solicitante,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

type PedidoListItemResponse struct {
	ID                  int64      `json:"id"`
	Numero              string     `json:"numero"`
	Modulo              string     `json:"modulo"`
	ModuloName          string     `json:"modulo_name"`
	Estado              string     `json:"estado"`
	EstadoLabel         string     `json:"estado_label"`
	Secretaria          string     `json:"secretaria"`
	Solicitante         string     `json:"solicitante"`
	Total               *float64   `json:"total"`
	FechaPedido         *time.Time `json:"fecha_pedido"`
	PresupuestoEstimado *float64   `json:"presupuesto_estimado"`
	CreatedBy           string     `json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromPedidoListItem(it entities.PedidoListItem) PedidoListItemResponse {
	return PedidoListItemResponse{
		ID:                  it.ID,
		Numero:              it.Numero,
		Modulo:              it.Modulo,
		ModuloName:          it.ModuloName,
		Estado:              string(it.Estado),
		EstadoLabel:         it.EstadoLabel,
		Secretaria:          it.Secretaria,
		Solicitante:         it.Solicitante,
		Total:               it.Total,
		FechaPedido:         it.FechaPedido,
		PresupuestoEstimado: it.PresupuestoEstimado,
		CreatedBy:           it.CreatedBy,
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
}

func FromPedidoList(items []entities.PedidoListItem) []PedidoListItemResponse {
	out := make([]PedidoListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromPedidoListItem(it))
	}
	return out
}

// PedidoDetailResponse is the full read model: header plus the ambito and
// modulo blocks exactly as captured at creation.
type PedidoDetailResponse struct {
	Pedido PedidoResponse        `json:"pedido"`
	Ambito entities.AmbitoDraft  `json:"ambito"`
	Modulo *entities.ModuloDraft `json:"modulo"`
}

func FromPedidoDetail(d entities.PedidoDetail) PedidoDetailResponse {
	return PedidoDetailResponse{
		Pedido: FromPedido(d.Pedido),
		Ambito: d.Ambito,
		Modulo: d.Modulo,
	}
}
