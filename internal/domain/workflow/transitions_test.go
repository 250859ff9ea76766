package workflow

import (
	"errors"
	"testing"

	"backpedidos/internal/domain/entities"
)

func TestForDecision_Aprobar(t *testing.T) {
	allowed := []entities.Estado{
		entities.EstadoBorrador,
		entities.EstadoEnviado,
		entities.EstadoEnRevision,
		entities.EstadoObservado,
		entities.EstadoRechazado,
	}
	for _, from := range allowed {
		t.Run("from "+string(from), func(t *testing.T) {
			out, err := ForDecision(from, DecisionAprobar)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Changed || out.Next != entities.EstadoAprobado {
				t.Fatalf("unexpected outcome: %+v", out)
			}
		})
	}

	forbidden := []entities.Estado{
		entities.EstadoAprobado,
		entities.EstadoEnProceso,
		entities.EstadoAreaPago,
		entities.EstadoCerrado,
	}
	for _, from := range forbidden {
		t.Run("forbidden from "+string(from), func(t *testing.T) {
			_, err := ForDecision(from, DecisionAprobar)
			if !errors.Is(err, ErrTransitionNotAllowed) {
				t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
			}
		})
	}
}

func TestForDecision_ObservarRechazar(t *testing.T) {
	out, err := ForDecision(entities.EstadoEnviado, DecisionObservar)
	if err != nil || !out.Changed || out.Next != entities.EstadoObservado {
		t.Fatalf("unexpected: %+v %v", out, err)
	}

	out, err = ForDecision(entities.EstadoCerrado, DecisionRechazar)
	if err != nil || !out.Changed || out.Next != entities.EstadoRechazado {
		t.Fatalf("unexpected: %+v %v", out, err)
	}

	// Re-applying the same decision never changes estado again.
	out, err = ForDecision(entities.EstadoObservado, DecisionObservar)
	if err != nil || out.Changed || out.Next != entities.EstadoObservado {
		t.Fatalf("expected no-op, got %+v %v", out, err)
	}
	out, err = ForDecision(entities.EstadoRechazado, DecisionRechazar)
	if err != nil || out.Changed {
		t.Fatalf("expected no-op, got %+v %v", out, err)
	}
}

func TestForDecision_Unknown(t *testing.T) {
	if _, err := ForDecision(entities.EstadoEnviado, Decision("archivar")); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
	}
}

func TestForTargetEstado(t *testing.T) {
	out, err := ForTargetEstado(entities.EstadoEnviado, entities.EstadoEnRevision)
	if err != nil || !out.Changed || out.Next != entities.EstadoEnRevision {
		t.Fatalf("unexpected: %+v %v", out, err)
	}

	out, err = ForTargetEstado(entities.EstadoAprobado, entities.EstadoAprobado)
	if err != nil || out.Changed {
		t.Fatalf("expected no-op, got %+v %v", out, err)
	}

	if _, err := ForTargetEstado(entities.EstadoCerrado, entities.EstadoAprobado); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
	}
}

func TestForDocumentApproval_Table(t *testing.T) {
	cases := []struct {
		name    string
		current entities.Estado
		tipo    entities.TipoDoc
		next    entities.Estado
		changed bool
		motivo  string
	}{
		{name: "presupuesto_1 from enviado", current: entities.EstadoEnviado, tipo: entities.TipoDocPresupuesto1, next: entities.EstadoAprobado, changed: true, motivo: MotivoAprobacionPresupuesto},
		{name: "presupuesto_2 from enviado", current: entities.EstadoEnviado, tipo: entities.TipoDocPresupuesto2, next: entities.EstadoAprobado, changed: true, motivo: MotivoAprobacionPresupuesto},
		{name: "presupuesto already aprobado", current: entities.EstadoAprobado, tipo: entities.TipoDocPresupuesto1, next: entities.EstadoAprobado, changed: false},
		{name: "formal_pdf from aprobado", current: entities.EstadoAprobado, tipo: entities.TipoDocFormalPDF, next: entities.EstadoEnProceso, changed: true},
		{name: "formal_pdf already en_proceso", current: entities.EstadoEnProceso, tipo: entities.TipoDocFormalPDF, next: entities.EstadoEnProceso, changed: false},
		{name: "expediente_1 from en_proceso", current: entities.EstadoEnProceso, tipo: entities.TipoDocExpediente1, next: entities.EstadoAreaPago, changed: true},
		{name: "expediente_2 from area_pago", current: entities.EstadoAreaPago, tipo: entities.TipoDocExpediente2, next: entities.EstadoCerrado, changed: true},
		{name: "expediente_2 already cerrado", current: entities.EstadoCerrado, tipo: entities.TipoDocExpediente2, next: entities.EstadoCerrado, changed: false},
		{name: "anexo1_obra never moves pedido", current: entities.EstadoEnviado, tipo: entities.TipoDocAnexo1Obra, next: entities.EstadoEnviado, changed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ForDocumentApproval(tc.current, tc.tipo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Changed != tc.changed || out.Next != tc.next {
				t.Fatalf("unexpected outcome: %+v", out)
			}
			if tc.motivo != "" && out.Motivo != tc.motivo {
				t.Fatalf("unexpected motivo: %q", out.Motivo)
			}
		})
	}
}

func TestForDocumentApproval_PresupuestoRequiresEnviado(t *testing.T) {
	for _, from := range []entities.Estado{entities.EstadoBorrador, entities.EstadoEnRevision, entities.EstadoCerrado} {
		if _, err := ForDocumentApproval(from, entities.TipoDocPresupuesto1); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("from %s: expected ErrTransitionNotAllowed, got %v", from, err)
		}
	}
}

func TestDocumentDrivesTransition(t *testing.T) {
	if DocumentDrivesTransition(entities.TipoDocAnexo1Obra) {
		t.Fatalf("anexo1_obra must not drive transitions")
	}
	if !DocumentDrivesTransition(entities.TipoDocExpediente1) {
		t.Fatalf("expediente_1 must drive a transition")
	}
}
