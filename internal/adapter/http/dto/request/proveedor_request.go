package request

// ProveedorUpsertRequest creates or refreshes a supplier record.
type ProveedorUpsertRequest struct {
	CUIT        string `json:"cuit" binding:"required"`
	RazonSocial string `json:"razon_social" binding:"required"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
}

// ProveedorVincularRequest links a supplier to a pedido under a rol
// (presupuesto_1, presupuesto_2, adjudicado, ...).
type ProveedorVincularRequest struct {
	CUIT        string `json:"cuit" binding:"required"`
	RazonSocial string `json:"razon_social"`
	Rol         string `json:"rol" binding:"required"`
}
