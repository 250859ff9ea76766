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

// ProveedorPgRepository persists suppliers keyed by normalized CUIT.
type ProveedorPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

var _ interfaces.IProveedorRepository = (*ProveedorPgRepository)(nil)

func NewProveedorPgRepository(pool *pgxpool.Pool, baseLog *logger.Logger) *ProveedorPgRepository {
	return &ProveedorPgRepository{pool: pool, log: baseLog.With("repo", "ProveedorPgRepository")}
}

const getProveedorSQL = `
SELECT id, cuit, COALESCE(razon_social, ''), COALESCE(email_contacto, ''),
       COALESCE(telefono, ''), created_at, updated_at
  FROM public.proveedor
 WHERE REPLACE(cuit, '-', '') = $1
 LIMIT 1`

func (r *ProveedorPgRepository) GetByCUIT(ctx context.Context, cuit string) (entities.Proveedor, error) {
	var p entities.Proveedor
	err := database.WithRetry(ctx, r.log, "proveedor.get", func(ctx context.Context) error {
		err := r.pool.QueryRow(ctx, getProveedorSQL, cuit).Scan(
			&p.ID, &p.CUIT, &p.RazonSocial, &p.EmailContacto, &p.Telefono, &p.CreatedAt, &p.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			p = entities.Proveedor{}
			return nil
		}
		return err
	})
	if err != nil {
		return entities.Proveedor{}, err
	}
	return p, nil
}

const upsertProveedorSQL = `
INSERT INTO public.proveedor (cuit, razon_social, email_contacto, telefono)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
ON CONFLICT (cuit) DO UPDATE
  SET razon_social   = EXCLUDED.razon_social,
      email_contacto = COALESCE(EXCLUDED.email_contacto, proveedor.email_contacto),
      telefono       = COALESCE(EXCLUDED.telefono, proveedor.telefono),
      updated_at     = now()
RETURNING id, cuit, razon_social, COALESCE(email_contacto, ''), COALESCE(telefono, ''), created_at, updated_at`

func (r *ProveedorPgRepository) Upsert(ctx context.Context, p entities.Proveedor) (entities.Proveedor, error) {
	var out entities.Proveedor
	err := database.WithRetry(ctx, r.log, "proveedor.upsert", func(ctx context.Context) error {
		return r.pool.QueryRow(ctx, upsertProveedorSQL,
			p.CUIT, p.RazonSocial, p.EmailContacto, p.Telefono,
		).Scan(&out.ID, &out.CUIT, &out.RazonSocial, &out.EmailContacto, &out.Telefono, &out.CreatedAt, &out.UpdatedAt)
	})
	if err != nil {
		return entities.Proveedor{}, err
	}
	return out, nil
}

func (r *ProveedorPgRepository) LinkPedido(ctx context.Context, pedidoID int64, cuit, razonSocial, rol string) (entities.PedidoProveedor, error) {
	var link entities.PedidoProveedor
	err := database.WithRetry(ctx, r.log, "proveedor.link", func(ctx context.Context) error {
		tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM public.pedido WHERE id = $1)`, pedidoID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			link = entities.PedidoProveedor{}
			return nil
		}

		var proveedorID int64
		err = tx.QueryRow(ctx, `SELECT id FROM public.proveedor WHERE REPLACE(cuit, '-', '') = $1 LIMIT 1`, cuit).Scan(&proveedorID)
		if errors.Is(err, pgx.ErrNoRows) {
			rs := razonSocial
			if rs == "" {
				rs = "Proveedor " + cuit
			}
			err = tx.QueryRow(ctx,
				`INSERT INTO public.proveedor (cuit, razon_social) VALUES ($1, $2) RETURNING id`,
				cuit, rs,
			).Scan(&proveedorID)
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO public.pedido_proveedor (pedido_id, proveedor_id, rol)
			VALUES ($1, $2, $3)
			ON CONFLICT (pedido_id, proveedor_id, rol) DO UPDATE SET rol = EXCLUDED.rol
			RETURNING pedido_id, proveedor_id, rol, created_at`,
			pedidoID, proveedorID, rol,
		).Scan(&link.PedidoID, &link.ProveedorID, &link.Rol, &link.CreatedAt)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return entities.PedidoProveedor{}, err
	}
	return link, nil
}
