package response

import (
	"time"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/usecase"
)

type ArchivoResponse struct {
	ID           int64      `json:"id"`
	PedidoID     int64      `json:"pedido_id"`
	TipoDoc      string     `json:"tipo_doc"`
	StoragePath  string     `json:"storage_path"`
	FileName     string     `json:"file_name"`
	ContentType  string     `json:"content_type"`
	Bytes        int64      `json:"bytes"`
	ReviewStatus string     `json:"review_status,omitempty"`
	ReviewNotes  string     `json:"review_notes,omitempty"`
	ReviewedBy   string     `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromArchivo(a entities.PedidoArchivo) ArchivoResponse {
	return ArchivoResponse{
		ID:           a.ID,
		PedidoID:     a.PedidoID,
		TipoDoc:      string(a.TipoDoc),
		StoragePath:  a.StoragePath,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		Bytes:        a.Bytes,
		ReviewStatus: string(a.ReviewStatus),
		ReviewNotes:  a.ReviewNotes,
		ReviewedBy:   a.ReviewedBy,
		ReviewedAt:   a.ReviewedAt,
		CreatedAt:    a.CreatedAt,
	}
}

func FromArchivoList(items []entities.PedidoArchivo) []ArchivoResponse {
	out := make([]ArchivoResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromArchivo(a))
	}
	return out
}

// ArchivoReviewResponse couples the reviewed document with the pedido
// transition its approval drove, when the tipo_doc carries one.
type ArchivoReviewResponse struct {
	Archivo    ArchivoResponse     `json:"archivo"`
	Unchanged  bool                `json:"unchanged"`
	Transition *TransitionResponse `json:"transition,omitempty"`
}

func FromArchivoReview(r usecase.ArchivoReviewResult) ArchivoReviewResponse {
	out := ArchivoReviewResponse{
		Archivo:   FromArchivo(r.Archivo),
		Unchanged: r.Unchanged,
	}
	if r.Transition != nil {
		t := FromTransition(r.Archivo.PedidoID, *r.Transition)
		out.Transition = &t
	}
	return out
}
