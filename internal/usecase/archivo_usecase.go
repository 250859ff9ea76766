package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/domain/workflow"
	"backpedidos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrArchivoNotFound        = errors.New("archivo not found")
	ErrInvalidArchivoID       = errors.New("invalid archivo id")
	ErrInvalidTipoDoc         = errors.New("tipo_doc not allowed")
	ErrInvalidReviewDecision  = errors.New("review decision must be: aprobado | observado")
	ErrInvalidFileName        = errors.New("file name required")
	ErrUnsupportedContentType = errors.New("only application/pdf is accepted")
	ErrEmptyArchivo           = errors.New("archivo is empty (0 bytes)")
)

// ArchivoReviewResult couples the reviewed document with the pedido
// transition its approval drove, if any.
type ArchivoReviewResult struct {
	Archivo    entities.PedidoArchivo
	Unchanged  bool
	Transition *entities.TransitionResult
}

// IArchivoUseCase covers attached-document metadata: registration of uploaded
// versions, listing, and the review gate that feeds the state machine.
// Storing and signing the file bytes themselves is the document store's job,
// not ours.
type IArchivoUseCase interface {
	Register(ctx context.Context, pedidoID int64, tipoDoc, fileName, contentType string, size int64) (entities.PedidoArchivo, error)
	ListByPedido(ctx context.Context, pedidoID int64) ([]entities.PedidoArchivo, error)
	Review(ctx context.Context, archivoID int64, decision, notes, reviewer string) (ArchivoReviewResult, error)
}

type ArchivoUseCase struct {
	repo       interfaces.IArchivoRepository
	pedidoRepo interfaces.IPedidoRepository
	bucket     string
}

var _ IArchivoUseCase = (*ArchivoUseCase)(nil)

func NewArchivoUseCase(repo interfaces.IArchivoRepository, pedidoRepo interfaces.IPedidoRepository, bucket string) *ArchivoUseCase {
	return &ArchivoUseCase{repo: repo, pedidoRepo: pedidoRepo, bucket: bucket}
}

func objectKey(pedidoID int64, tipo entities.TipoDoc, fileName string) string {
	safe := strings.TrimSpace(strings.NewReplacer("/", "_", "\\", "_").Replace(fileName))
	if safe == "" {
		safe = "archivo.pdf"
	}
	return fmt.Sprintf("pedido_%d/%s/%s_%s", pedidoID, tipo, uuid.NewString(), safe)
}

func (u *ArchivoUseCase) Register(ctx context.Context, pedidoID int64, tipoDoc, fileName, contentType string, size int64) (entities.PedidoArchivo, error) {
	if pedidoID <= 0 {
		return entities.PedidoArchivo{}, ErrInvalidPedidoID
	}
	tipo := entities.TipoDoc(strings.ToLower(strings.TrimSpace(tipoDoc)))
	if !entities.AllowedTipoDoc[tipo] {
		return entities.PedidoArchivo{}, ErrInvalidTipoDoc
	}
	if strings.TrimSpace(fileName) == "" {
		return entities.PedidoArchivo{}, ErrInvalidFileName
	}
	if contentType = strings.TrimSpace(contentType); contentType == "" {
		contentType = "application/pdf"
	}
	if contentType != "application/pdf" {
		return entities.PedidoArchivo{}, ErrUnsupportedContentType
	}
	if size <= 0 {
		return entities.PedidoArchivo{}, ErrEmptyArchivo
	}

	a := entities.PedidoArchivo{
		PedidoID:    pedidoID,
		TipoDoc:     tipo,
		StoragePath: fmt.Sprintf("supabase://%s/%s", u.bucket, objectKey(pedidoID, tipo, fileName)),
		FileName:    fileName,
		ContentType: contentType,
		Bytes:       size,
	}
	created, err := u.repo.Register(ctx, a)
	if err != nil {
		return entities.PedidoArchivo{}, err
	}
	if created.ID == 0 {
		return entities.PedidoArchivo{}, ErrPedidoNotFound
	}
	return created, nil
}

func (u *ArchivoUseCase) ListByPedido(ctx context.Context, pedidoID int64) ([]entities.PedidoArchivo, error) {
	if pedidoID <= 0 {
		return nil, ErrInvalidPedidoID
	}
	return u.repo.ListByPedido(ctx, pedidoID)
}

// Review writes the review fields on the archivo and, only when the decision
// is "aprobado" and actually new, fires the transition its tipo_doc drives on
// the owning pedido. An "observado" review never touches the pedido.
func (u *ArchivoUseCase) Review(ctx context.Context, archivoID int64, decision, notes, reviewer string) (ArchivoReviewResult, error) {
	if archivoID <= 0 {
		return ArchivoReviewResult{}, ErrInvalidArchivoID
	}
	dec := entities.ReviewStatus(strings.ToLower(strings.TrimSpace(decision)))
	if dec != entities.ReviewAprobado && dec != entities.ReviewObservado {
		return ArchivoReviewResult{}, ErrInvalidReviewDecision
	}
	if reviewer = strings.TrimSpace(reviewer); reviewer == "" {
		reviewer = defaultActor
	}

	archivo, unchanged, err := u.repo.Review(ctx, archivoID, dec, strings.TrimSpace(notes), reviewer)
	if err != nil {
		return ArchivoReviewResult{}, err
	}
	if archivo.ID == 0 {
		return ArchivoReviewResult{}, ErrArchivoNotFound
	}

	res := ArchivoReviewResult{Archivo: archivo, Unchanged: unchanged}
	if dec != entities.ReviewAprobado || unchanged || !workflow.DocumentDrivesTransition(archivo.TipoDoc) {
		return res, nil
	}

	tr, err := u.pedidoRepo.Transition(ctx, archivo.PedidoID, reviewer, func(p entities.Pedido) (workflow.Outcome, error) {
		return workflow.ForDocumentApproval(p.Estado, archivo.TipoDoc)
	})
	if err != nil {
		return ArchivoReviewResult{}, err
	}
	if tr.Estado == "" {
		return ArchivoReviewResult{}, ErrPedidoNotFound
	}
	res.Transition = &tr
	return res, nil
}
