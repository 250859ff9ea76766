package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/infrastructure/database"
	"backpedidos/internal/usecase/interfaces"
	"backpedidos/pkg/logger"
)

// ArchivoPgRepository persists attached-document metadata in Postgres.
//
// The upload strategy is fixed at construction: versioned (every Register
// inserts a new row) or upsert per (pedido_id, tipo_doc). The two are
// mutually exclusive deployments, never mixed at runtime.
type ArchivoPgRepository struct {
	pool   *pgxpool.Pool
	log    *logger.Logger
	upsert bool
}

var _ interfaces.IArchivoRepository = (*ArchivoPgRepository)(nil)

func NewArchivoPgRepository(pool *pgxpool.Pool, baseLog *logger.Logger, upsert bool) *ArchivoPgRepository {
	return &ArchivoPgRepository{pool: pool, log: baseLog.With("repo", "ArchivoPgRepository"), upsert: upsert}
}

const insertArchivoSQL = `
INSERT INTO public.pedido_archivo
  (pedido_id, storage_path, file_name, content_type, bytes, tipo_doc)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

const upsertArchivoSQL = `
INSERT INTO public.pedido_archivo
  (pedido_id, storage_path, file_name, content_type, bytes, tipo_doc)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (pedido_id, tipo_doc) DO UPDATE
  SET storage_path = EXCLUDED.storage_path,
      file_name    = EXCLUDED.file_name,
      content_type = EXCLUDED.content_type,
      bytes        = EXCLUDED.bytes,
      created_at   = now()
RETURNING id, created_at`

func (r *ArchivoPgRepository) Register(ctx context.Context, a entities.PedidoArchivo) (entities.PedidoArchivo, error) {
	sql := insertArchivoSQL
	if r.upsert {
		sql = upsertArchivoSQL
	}

	err := database.WithRetry(ctx, r.log, "archivo.register", func(ctx context.Context) error {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM public.pedido WHERE id = $1)`, a.PedidoID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			a = entities.PedidoArchivo{}
			return nil
		}
		return r.pool.QueryRow(ctx, sql,
			a.PedidoID, a.StoragePath, a.FileName, a.ContentType, a.Bytes, a.TipoDoc,
		).Scan(&a.ID, &a.CreatedAt)
	})
	if err != nil {
		return entities.PedidoArchivo{}, err
	}
	return a, nil
}

const listArchivosSQL = `
SELECT id, pedido_id, tipo_doc, storage_path, file_name,
       COALESCE(content_type, ''), COALESCE(bytes, 0),
       COALESCE(review_status, ''), COALESCE(review_notes, ''),
       COALESCE(reviewed_by, ''), reviewed_at, created_at
  FROM public.pedido_archivo
 WHERE pedido_id = $1
 ORDER BY created_at DESC, id DESC`

func (r *ArchivoPgRepository) ListByPedido(ctx context.Context, pedidoID int64) ([]entities.PedidoArchivo, error) {
	var out []entities.PedidoArchivo
	err := database.WithRetry(ctx, r.log, "archivo.list", func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, listArchivosSQL, pedidoID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		for rows.Next() {
			var a entities.PedidoArchivo
			if err := rows.Scan(&a.ID, &a.PedidoID, &a.TipoDoc, &a.StoragePath, &a.FileName,
				&a.ContentType, &a.Bytes, &a.ReviewStatus, &a.ReviewNotes,
				&a.ReviewedBy, &a.ReviewedAt, &a.CreatedAt); err != nil {
				return err
			}
			out = append(out, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

const lockArchivoSQL = `
SELECT id, pedido_id, tipo_doc, storage_path, file_name,
       COALESCE(content_type, ''), COALESCE(bytes, 0),
       COALESCE(review_status, ''), COALESCE(review_notes, ''),
       COALESCE(reviewed_by, ''), reviewed_at, created_at
  FROM public.pedido_archivo
 WHERE id = $1
   FOR UPDATE`

const reviewArchivoSQL = `
UPDATE public.pedido_archivo
   SET review_status = $1,
       review_notes  = NULLIF($2, ''),
       reviewed_by   = $3,
       reviewed_at   = now()
 WHERE id = $4
RETURNING id, pedido_id, tipo_doc, storage_path, file_name,
          COALESCE(content_type, ''), COALESCE(bytes, 0),
          review_status, COALESCE(review_notes, ''),
          COALESCE(reviewed_by, ''), reviewed_at, created_at`

func (r *ArchivoPgRepository) Review(ctx context.Context, archivoID int64, decision entities.ReviewStatus, notes, reviewedBy string) (entities.PedidoArchivo, bool, error) {
	var out entities.PedidoArchivo
	var unchanged bool
	err := database.WithRetry(ctx, r.log, "archivo.review", func(ctx context.Context) error {
		tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		var cur entities.PedidoArchivo
		err = tx.QueryRow(ctx, lockArchivoSQL, archivoID).Scan(
			&cur.ID, &cur.PedidoID, &cur.TipoDoc, &cur.StoragePath, &cur.FileName,
			&cur.ContentType, &cur.Bytes, &cur.ReviewStatus, &cur.ReviewNotes,
			&cur.ReviewedBy, &cur.ReviewedAt, &cur.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			out, unchanged = entities.PedidoArchivo{}, false
			return nil
		}
		if err != nil {
			return err
		}

		// Re-submitting the stored decision is an idempotent no-op; the
		// review fields are written exactly once per effective review.
		if cur.ReviewStatus == decision {
			out, unchanged = cur, true
			return nil
		}

		err = tx.QueryRow(ctx, reviewArchivoSQL, decision, notes, reviewedBy, archivoID).Scan(
			&out.ID, &out.PedidoID, &out.TipoDoc, &out.StoragePath, &out.FileName,
			&out.ContentType, &out.Bytes, &out.ReviewStatus, &out.ReviewNotes,
			&out.ReviewedBy, &out.ReviewedAt, &out.CreatedAt,
		)
		if err != nil {
			return err
		}
		unchanged = false
		return tx.Commit(ctx)
	})
	if err != nil {
		return entities.PedidoArchivo{}, false, err
	}
	return out, unchanged, nil
}
