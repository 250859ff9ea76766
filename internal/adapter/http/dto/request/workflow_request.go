package request

// DecisionRequest is a manual reviewer decision on a pedido.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes"`
}

// EstadoRequest asks for a direct estado, subject to the caller's role.
// User/secretaria normally arrive via X-User / X-Secretaria headers; the body
// fields win when present.
type EstadoRequest struct {
	Estado     string `json:"estado" binding:"required"`
	Motivo     string `json:"motivo"`
	User       string `json:"user"`
	Secretaria string `json:"secretaria"`
}
