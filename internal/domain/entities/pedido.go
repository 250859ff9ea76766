package entities

import "time"

// Estado represents the workflow stage of a pedido.
//
// Domain notes:
//   - Estado only changes through a recorded transition; every accepted
//     transition appends exactly one PedidoHistorial row.
//   - The forward path is borrador → enviado → en_revision → aprobado →
//     en_proceso → area_pago → cerrado. rechazado and observado are side
//     branches reachable from several states; nothing moves backward.
type Estado string

const (
	EstadoBorrador   Estado = "borrador"
	EstadoEnviado    Estado = "enviado"
	EstadoEnRevision Estado = "en_revision"
	EstadoAprobado   Estado = "aprobado"
	EstadoRechazado  Estado = "rechazado"
	EstadoEnProceso  Estado = "en_proceso"
	EstadoAreaPago   Estado = "area_pago"
	EstadoCerrado    Estado = "cerrado"
	EstadoObservado  Estado = "observado"
)

// Pedido is the purchase/service/rental/repair request header persisted in
// public.pedido. Numero is assigned by the database (EXP-YYYY-NNNN style).
type Pedido struct {
	ID                  int64      `json:"id"`
	Numero              string     `json:"numero"`
	Estado              Estado     `json:"estado"`
	SecretariaID        int64      `json:"secretaria_id"`
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

// PedidoListItem is one row of the v_pedidos_list read view.
type PedidoListItem struct {
	ID                  int64      `json:"id"`
	Numero              string     `json:"numero"`
	Modulo              string     `json:"modulo"`
	ModuloName          string     `json:"modulo_name"`
	Estado              Estado     `json:"estado"`
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

// TransitionResult reports the outcome of a state-machine operation. Unchanged
// is true when the request was an idempotent no-op (no historial row written).
type TransitionResult struct {
	Estado    Estado `json:"estado"`
	Unchanged bool   `json:"unchanged"`
}

// PedidoPatch carries the "safe" field edits allowed after creation. Nil
// pointers mean "leave untouched".
type PedidoPatch struct {
	Observaciones       *string
	PresupuestoEstimado *float64
	FechaDesde          *time.Time
	FechaHasta          *time.Time
}

// IsEmpty reports whether the patch would not touch any column.
func (p PedidoPatch) IsEmpty() bool {
	return p.Observaciones == nil && p.PresupuestoEstimado == nil &&
		p.FechaDesde == nil && p.FechaHasta == nil
}
