package entities

import "time"

// TipoDoc is the fixed category of an attached document. The category decides
// which pedido transition an approved review drives.
type TipoDoc string

const (
	TipoDocPresupuesto1 TipoDoc = "presupuesto_1"
	TipoDocPresupuesto2 TipoDoc = "presupuesto_2"
	TipoDocAnexo1Obra   TipoDoc = "anexo1_obra"
	TipoDocFormalPDF    TipoDoc = "formal_pdf"
	TipoDocExpediente1  TipoDoc = "expediente_1"
	TipoDocExpediente2  TipoDoc = "expediente_2"
)

// AllowedTipoDoc is the upload whitelist.
var AllowedTipoDoc = map[TipoDoc]bool{
	TipoDocPresupuesto1: true,
	TipoDocPresupuesto2: true,
	TipoDocAnexo1Obra:   true,
	TipoDocFormalPDF:    true,
	TipoDocExpediente1:  true,
	TipoDocExpediente2:  true,
}

// ReviewStatus is the per-document review decision. Empty means not yet
// reviewed.
type ReviewStatus string

const (
	ReviewPendiente ReviewStatus = "pendiente"
	ReviewAprobado  ReviewStatus = "aprobado"
	ReviewObservado ReviewStatus = "observado"
)

// PedidoArchivo is an attached document's metadata row (public.pedido_archivo).
// Rows are never deleted, only superseded by newer versions.
type PedidoArchivo struct {
	ID           int64        `json:"id"`
	PedidoID     int64        `json:"pedido_id"`
	TipoDoc      TipoDoc      `json:"tipo_doc"`
	StoragePath  string       `json:"storage_path"`
	FileName     string       `json:"file_name"`
	ContentType  string       `json:"content_type"`
	Bytes        int64        `json:"bytes"`
	ReviewStatus ReviewStatus `json:"review_status,omitempty"`
	ReviewNotes  string       `json:"review_notes,omitempty"`
	ReviewedBy   string       `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time   `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
