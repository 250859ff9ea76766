package workflow

import (
	"errors"
	"fmt"

	"backpedidos/internal/domain/entities"
)

// Decision is a pedido-level manual decision.
type Decision string

const (
	DecisionAprobar  Decision = "aprobar"
	DecisionObservar Decision = "observar"
	DecisionRechazar Decision = "rechazar"
)

// MotivoAprobacionPresupuesto is recorded when a presupuesto approval moves
// the pedido forward.
const MotivoAprobacionPresupuesto = "aprobación de presupuesto"

// ErrTransitionNotAllowed marks a transition whose precondition over the
// current estado fails (a conflict, not a validation problem).
var ErrTransitionNotAllowed = errors.New("transition not allowed from current estado")

// Outcome is the result of evaluating a trigger against a pedido's current
// estado. When Changed is false the operation is an idempotent no-op: the
// caller must not touch the pedido row nor append historial.
type Outcome struct {
	Next    entities.Estado
	Motivo  string
	Changed bool
}

func noop(current entities.Estado) Outcome {
	return Outcome{Next: current, Changed: false}
}

// aprobarForbidden lists the estados a manual "aprobar" may not leave. They
// are all at or past aprobado on the forward path.
var aprobarForbidden = map[entities.Estado]bool{
	entities.EstadoAprobado:  true,
	entities.EstadoCerrado:   true,
	entities.EstadoAreaPago:  true,
	entities.EstadoEnProceso: true,
}

// ForDecision resolves a manual decision into an outcome. Notes requirements
// are enforced at the usecase layer; this table only knows estados.
func ForDecision(current entities.Estado, d Decision) (Outcome, error) {
	switch d {
	case DecisionAprobar:
		if aprobarForbidden[current] {
			return Outcome{}, fmt.Errorf("aprobar desde '%s': %w", current, ErrTransitionNotAllowed)
		}
		return Outcome{Next: entities.EstadoAprobado, Changed: true}, nil
	case DecisionObservar:
		if current == entities.EstadoObservado {
			return noop(current), nil
		}
		return Outcome{Next: entities.EstadoObservado, Changed: true}, nil
	case DecisionRechazar:
		if current == entities.EstadoRechazado {
			return noop(current), nil
		}
		return Outcome{Next: entities.EstadoRechazado, Changed: true}, nil
	}
	return Outcome{}, fmt.Errorf("decision '%s': %w", d, ErrTransitionNotAllowed)
}

// targetEstados are the direct pedido-state requests accepted from the UI.
var targetEstados = map[entities.Estado]bool{
	entities.EstadoAprobado:   true,
	entities.EstadoEnRevision: true,
}

// TargetEstadoAllowed reports whether a direct estado request may ask for the
// given target at all.
func TargetEstadoAllowed(target entities.Estado) bool {
	return targetEstados[target]
}

// ForTargetEstado resolves a direct estado request (aprobado / en_revision).
// Asking for the current estado is an idempotent no-op; asking for aprobado
// follows the same precondition as the manual decision.
func ForTargetEstado(current, target entities.Estado) (Outcome, error) {
	if current == target {
		return noop(current), nil
	}
	if target == entities.EstadoAprobado && aprobarForbidden[current] {
		return Outcome{}, fmt.Errorf("estado '%s' desde '%s': %w", target, current, ErrTransitionNotAllowed)
	}
	return Outcome{Next: target, Changed: true}, nil
}

// docTransition is one row of the document-review transition table: the
// estado an approved document of that type drives the pedido into, and the
// estado it must currently be in (empty = any).
type docTransition struct {
	target   entities.Estado
	requires entities.Estado
	motivo   string
}

var docTransitions = map[entities.TipoDoc]docTransition{
	entities.TipoDocPresupuesto1: {target: entities.EstadoAprobado, requires: entities.EstadoEnviado, motivo: MotivoAprobacionPresupuesto},
	entities.TipoDocPresupuesto2: {target: entities.EstadoAprobado, requires: entities.EstadoEnviado, motivo: MotivoAprobacionPresupuesto},
	entities.TipoDocFormalPDF:    {target: entities.EstadoEnProceso},
	entities.TipoDocExpediente1:  {target: entities.EstadoAreaPago},
	entities.TipoDocExpediente2:  {target: entities.EstadoCerrado},
	// anexo1_obra intentionally absent: its approval never moves the pedido.
}

// DocumentDrivesTransition reports whether approving a document of this type
// has any pedido-level effect.
func DocumentDrivesTransition(tipo entities.TipoDoc) bool {
	_, ok := docTransitions[tipo]
	return ok
}

// ForDocumentApproval resolves the transition driven by an approved document.
// Already being in the target estado is an idempotent no-op; failing a
// required precondition (presupuestos outside enviado) is a conflict.
func ForDocumentApproval(current entities.Estado, tipo entities.TipoDoc) (Outcome, error) {
	tr, ok := docTransitions[tipo]
	if !ok {
		return noop(current), nil
	}
	if current == tr.target {
		return noop(current), nil
	}
	if tr.requires != "" && current != tr.requires {
		return Outcome{}, fmt.Errorf("%s aprobado desde '%s': %w", tipo, current, ErrTransitionNotAllowed)
	}
	motivo := tr.motivo
	if motivo == "" {
		motivo = fmt.Sprintf("documento %s aprobado", tipo)
	}
	return Outcome{Next: tr.target, Motivo: motivo, Changed: true}, nil
}
