package entities

// PedidoDetail is the joined read model for the detail view: the header plus
// the ambito and modulo rows that belong to it. Ambito/Modulo reuse the draft
// shapes since they carry exactly the columns written at creation.
type PedidoDetail struct {
	Pedido Pedido       `json:"pedido"`
	Ambito AmbitoDraft  `json:"ambito"`
	Modulo *ModuloDraft `json:"modulo"`
}
