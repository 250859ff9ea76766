package entities

import "time"

// PedidoFilter narrows and orders the v_pedidos_list listing.
type PedidoFilter struct {
	Q          string
	Modulo     string
	Estado     string
	Secretaria string
	CreatedBy  string
	FechaDesde *time.Time
	FechaHasta *time.Time
	MinTotal   *float64
	MaxTotal   *float64
	Order      string
	Limit      int
	Offset     int
}

const DefaultPedidoOrder = "created_at_desc"

// ValidPedidoOrders whitelists the accepted order keys; anything else is a
// validation error, never interpolated into SQL.
var ValidPedidoOrders = map[string]bool{
	"created_at_asc":    true,
	"created_at_desc":   true,
	"fecha_pedido_asc":  true,
	"fecha_pedido_desc": true,
	"numero_asc":        true,
	"numero_desc":       true,
	"total_asc":         true,
	"total_desc":        true,
	"id_asc":            true,
	"id_desc":           true,
}
