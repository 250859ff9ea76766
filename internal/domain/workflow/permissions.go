package workflow

import (
	"strings"

	"backpedidos/internal/domain/entities"
)

// PresupuestoUmbralCompras splits purchasing authority: above the threshold
// only area_compras decides, at or below it secretaria_compras does.
const PresupuestoUmbralCompras = 10_000_000

// Role is the coarse authority resolved from the caller's declared
// secretariat. It is advisory gating, not an authentication system.
type Role string

const (
	RoleEconomiaAdmin     Role = "economia_admin"
	RoleAreaCompras       Role = "area_compras"
	RoleSecretariaCompras Role = "secretaria_compras"
	RoleSecretaria        Role = "secretaria"
)

// Caller is the identity declared by the request, decoupled from whatever
// header encoding the transport uses.
type Caller struct {
	User       string
	Secretaria string
}

func normalizeSecretaria(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// ResolveRole maps the declared secretariat name onto a role. Unknown names
// fall back to RoleSecretaria (owning-secretariat-only authority).
func ResolveRole(secretaria string) Role {
	switch normalizeSecretaria(secretaria) {
	case "economia_admin":
		return RoleEconomiaAdmin
	case "area_compras":
		return RoleAreaCompras
	case "secretaria_compras":
		return RoleSecretariaCompras
	}
	return RoleSecretaria
}

// policy maps each role to its predicate over the pedido.
var policy = map[Role]func(p entities.Pedido, c Caller) bool{
	RoleEconomiaAdmin: func(entities.Pedido, Caller) bool { return true },
	RoleAreaCompras: func(p entities.Pedido, _ Caller) bool {
		return p.PresupuestoEstimado > PresupuestoUmbralCompras
	},
	RoleSecretariaCompras: func(p entities.Pedido, _ Caller) bool {
		return p.PresupuestoEstimado <= PresupuestoUmbralCompras
	},
	RoleSecretaria: func(p entities.Pedido, c Caller) bool {
		return strings.EqualFold(strings.TrimSpace(c.Secretaria), strings.TrimSpace(p.Secretaria)) &&
			strings.TrimSpace(c.Secretaria) != ""
	},
}

// CanDecide reports whether the caller may apply a direct estado change to
// the pedido.
func CanDecide(p entities.Pedido, c Caller) bool {
	return policy[ResolveRole(c.Secretaria)](p, c)
}
