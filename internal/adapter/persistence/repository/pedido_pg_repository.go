package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/infrastructure/database"
	"backpedidos/internal/usecase/interfaces"
	"backpedidos/pkg/logger"
)

// PedidoPgRepository persists pedidos in Postgres.
//
// Transition is the only write path for estado: it serializes concurrent
// requests per pedido with SELECT ... FOR UPDATE and commits the estado
// update and the historial append as one transaction.
type PedidoPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

var _ interfaces.IPedidoRepository = (*PedidoPgRepository)(nil)

func NewPedidoPgRepository(pool *pgxpool.Pool, baseLog *logger.Logger) *PedidoPgRepository {
	return &PedidoPgRepository{pool: pool, log: baseLog.With("repo", "PedidoPgRepository")}
}

const lockPedidoSQL = `
SELECT p.id, p.numero, p.estado, p.secretaria_id, s.nombre,
       COALESCE(p.presupuesto_estimado, 0)
  FROM public.pedido p
  JOIN public.secretaria s ON s.id = p.secretaria_id
 WHERE p.id = $1
   FOR UPDATE OF p`

const updateEstadoSQL = `
UPDATE public.pedido SET estado = $1, updated_at = now() WHERE id = $2`

const insertHistorialSQL = `
INSERT INTO public.pedido_historial (pedido_id, estado_anterior, estado_nuevo, motivo, changed_by)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)`

func (r *PedidoPgRepository) Transition(ctx context.Context, id int64, changedBy string, decide interfaces.TransitionFunc) (entities.TransitionResult, error) {
	var res entities.TransitionResult
	err := database.WithRetry(ctx, r.log, "pedido.transition", func(ctx context.Context) error {
		tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		var p entities.Pedido
		err = tx.QueryRow(ctx, lockPedidoSQL, id).Scan(
			&p.ID, &p.Numero, &p.Estado, &p.SecretariaID, &p.Secretaria, &p.PresupuestoEstimado,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			res = entities.TransitionResult{}
			return nil
		}
		if err != nil {
			return err
		}

		out, err := decide(p)
		if err != nil {
			return err
		}
		if !out.Changed {
			res = entities.TransitionResult{Estado: p.Estado, Unchanged: true}
			return nil
		}

		if _, err := tx.Exec(ctx, updateEstadoSQL, out.Next, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insertHistorialSQL, id, p.Estado, out.Next, out.Motivo, changedBy); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return err
		}
		res = entities.TransitionResult{Estado: out.Next}
		return nil
	})
	if err != nil {
		return entities.TransitionResult{}, err
	}
	return res, nil
}

const getPedidoSQL = `
SELECT p.id, p.numero, p.estado, p.secretaria_id, s.nombre,
       COALESCE(p.presupuesto_estimado, 0), COALESCE(p.observaciones, ''),
       p.fecha_pedido, p.fecha_desde, p.fecha_hasta,
       COALESCE(p.created_by::text, ''), COALESCE(pr.nombre, ''),
       p.created_at, p.updated_at
  FROM public.pedido p
  JOIN public.secretaria s ON s.id = p.secretaria_id
  LEFT JOIN public.perfil pr ON pr.user_id = p.created_by
 WHERE p.id = $1`

func (r *PedidoPgRepository) GetByID(ctx context.Context, id int64) (entities.Pedido, error) {
	var p entities.Pedido
	err := database.WithRetry(ctx, r.log, "pedido.get", func(ctx context.Context) error {
		err := r.pool.QueryRow(ctx, getPedidoSQL, id).Scan(
			&p.ID, &p.Numero, &p.Estado, &p.SecretariaID, &p.Secretaria,
			&p.PresupuestoEstimado, &p.Observaciones,
			&p.FechaPedido, &p.FechaDesde, &p.FechaHasta,
			&p.CreatedBy, &p.Solicitante,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			p = entities.Pedido{}
			return nil
		}
		return err
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	return p, nil
}

const historySQL = `
SELECT id, pedido_id, estado_anterior, estado_nuevo, COALESCE(motivo, ''),
       COALESCE(changed_by, ''), created_at
  FROM public.pedido_historial
 WHERE pedido_id = $1
 ORDER BY created_at ASC, id ASC`

func (r *PedidoPgRepository) History(ctx context.Context, id int64) ([]entities.PedidoHistorial, error) {
	var out []entities.PedidoHistorial
	err := database.WithRetry(ctx, r.log, "pedido.history", func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, historySQL, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		for rows.Next() {
			var h entities.PedidoHistorial
			if err := rows.Scan(&h.ID, &h.PedidoID, &h.EstadoAnterior, &h.EstadoNuevo, &h.Motivo, &h.ChangedBy, &h.CreatedAt); err != nil {
				return err
			}
			out = append(out, h)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PedidoPgRepository) Create(ctx context.Context, d entities.PedidoDraft) (entities.Pedido, error) {
	var p entities.Pedido
	err := database.WithRetry(ctx, r.log, "pedido.create", func(ctx context.Context) error {
		tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		var secID int64
		err = tx.QueryRow(ctx, `SELECT id FROM public.secretaria WHERE nombre = $1`, d.Secretaria).Scan(&secID)
		if errors.Is(err, pgx.ErrNoRows) {
			p = entities.Pedido{}
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO public.pedido
			  (secretaria_id, estado, fecha_pedido, fecha_desde, fecha_hasta,
			   presupuesto_estimado, observaciones, created_by)
			VALUES ($1, $2, COALESCE($3, CURRENT_DATE), $4, $5, $6, NULLIF($7, ''),
			        (SELECT user_id FROM public.perfil WHERE login_username = $8 LIMIT 1))
			RETURNING id, numero, estado, fecha_pedido, created_at, updated_at`,
			secID, d.Estado, d.FechaPedido, d.FechaDesde, d.FechaHasta,
			d.PresupuestoEstimado, d.Observaciones, d.CreatedByUsername,
		).Scan(&p.ID, &p.Numero, &p.Estado, &p.FechaPedido, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return err
		}
		p.SecretariaID = secID
		p.Secretaria = d.Secretaria

		if err := insertAmbito(ctx, tx, p.ID, d.Ambito); err != nil {
			return err
		}
		if err := insertModulo(ctx, tx, p.ID, d.Modulo); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	return p, nil
}

func insertAmbito(ctx context.Context, tx pgx.Tx, pedidoID int64, a entities.AmbitoDraft) error {
	// UI tipo -> DB enum: ninguno=general, obra=obra,
	// mantenimientodeescuelas=mant_escuela.
	tipoDB := map[entities.AmbitoTipo]string{
		entities.AmbitoNinguno:  "general",
		entities.AmbitoObra:     "obra",
		entities.AmbitoEscuelas: "mant_escuela",
	}[a.Tipo]

	if _, err := tx.Exec(ctx, `INSERT INTO public.pedido_ambito (pedido_id, tipo) VALUES ($1, $2)`, pedidoID, tipoDB); err != nil {
		return err
	}

	switch a.Tipo {
	case entities.AmbitoObra:
		o := a.Obra
		_, err := tx.Exec(ctx, `
			INSERT INTO public.ambito_obra
			  (pedido_id, nombre_obra, ubicacion, detalle, presupuesto_obra,
			   fecha_inicio, fecha_fin, es_nueva, obra_existente_ref)
			VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), $5, $6, $7, COALESCE($8, true), NULLIF($9,''))`,
			pedidoID, o.NombreObra, o.Ubicacion, o.Detalle, o.PresupuestoObra,
			o.FechaInicio, o.FechaFin, o.EsNueva, o.ObraExistenteRef)
		return err
	case entities.AmbitoEscuelas:
		e := a.Escuelas
		_, err := tx.Exec(ctx, `
			INSERT INTO public.ambito_mant_escuela
			  (pedido_id, escuela, ubicacion, necesidad, fecha_desde, fecha_hasta, detalle)
			VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), $5, $6, NULLIF($7,''))`,
			pedidoID, e.Escuela, e.Ubicacion, e.Necesidad, e.FechaDesde, e.FechaHasta, e.Detalle)
		return err
	}
	return nil
}

func insertModulo(ctx context.Context, tx pgx.Tx, pedidoID int64, m entities.ModuloDraft) error {
	switch m.Tipo {
	case entities.ModuloServicios:
		s := m.Servicios
		_, err := tx.Exec(ctx, `
			INSERT INTO public.pedido_servicios
			  (pedido_id, tipo_servicio, detalle_mantenimiento, tipo_profesional, dia_desde, dia_hasta)
			VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), $5, $6)`,
			pedidoID, s.TipoServicio, s.DetalleMantenimiento, s.TipoProfesional, s.DiaDesde, s.DiaHasta)
		return err

	case entities.ModuloAlquiler:
		al := m.Alquiler
		_, err := tx.Exec(ctx, `
			INSERT INTO public.pedido_alquiler
			  (pedido_id, categoria, uso_edificio, ubicacion_edificio,
			   uso_maquinaria, tipo_maquinaria, requiere_combustible, requiere_chofer,
			   cronograma_desde, cronograma_hasta, horas_por_dia, que_alquilar, detalle_uso)
			VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''), NULLIF($6,''),
			        $7, $8, $9, $10, $11, NULLIF($12,''), NULLIF($13,''))`,
			pedidoID, al.Categoria, al.UsoEdificio, al.UbicacionEdificio,
			al.UsoMaquinaria, al.TipoMaquinaria, al.RequiereCombustible, al.RequiereChofer,
			al.CronogramaDesde, al.CronogramaHasta, al.HorasPorDia, al.QueAlquilar, al.DetalleUso)
		return err

	case entities.ModuloAdquisicion:
		ad := m.Adquisicion
		if _, err := tx.Exec(ctx, `
			INSERT INTO public.pedido_adquisicion (pedido_id, proposito, modo_adquisicion)
			VALUES ($1, NULLIF($2,''), $3)`,
			pedidoID, ad.Proposito, ad.ModoAdquisicion); err != nil {
			return err
		}
		for _, it := range ad.Items {
			cantidad := it.Cantidad
			if cantidad == 0 {
				cantidad = 1
			}
			var total *float64
			if it.PrecioUnitario != nil {
				t := cantidad * *it.PrecioUnitario
				total = &t
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO public.pedido_adquisicion_item
				  (pedido_id, descripcion, cantidad, unidad, precio_unitario, total)
				VALUES ($1, $2, $3, NULLIF($4,''), $5, $6)`,
				pedidoID, it.Descripcion, cantidad, it.Unidad, it.PrecioUnitario, total); err != nil {
				return err
			}
		}
		return nil

	case entities.ModuloReparacion:
		rp := m.Reparacion
		_, err := tx.Exec(ctx, `
			INSERT INTO public.pedido_reparacion
			  (pedido_id, tipo_reparacion, unidad_reparar, que_reparar, detalle_reparacion)
			VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), NULLIF($5,''))`,
			pedidoID, rp.TipoReparacion, rp.UnidadReparar, rp.QueReparar, rp.DetalleReparacion)
		return err
	}
	return fmt.Errorf("unknown modulo tipo %q", m.Tipo)
}

const listBaseSQL = `
SELECT id, numero, COALESCE(modulo, ''), COALESCE(modulo_name, ''),
       estado, COALESCE(estado_label, ''), COALESCE(secretaria, ''),
       COALESCE(solicitante, ''), total, fecha_pedido, presupuesto_estimado,
       COALESCE(created_by::text, ''), created_at, updated_at
  FROM public.v_pedidos_list`

var listOrderClauses = map[string]string{
	"created_at_asc":    " ORDER BY created_at ASC, id ASC",
	"created_at_desc":   " ORDER BY created_at DESC, id DESC",
	"fecha_pedido_asc":  " ORDER BY fecha_pedido ASC, id ASC",
	"fecha_pedido_desc": " ORDER BY fecha_pedido DESC, id DESC",
	"numero_asc":        " ORDER BY numero ASC",
	"numero_desc":       " ORDER BY numero DESC",
	"total_asc":         " ORDER BY total ASC NULLS LAST, id ASC",
	"total_desc":        " ORDER BY total DESC NULLS LAST, id DESC",
	"id_asc":            " ORDER BY id ASC",
	"id_desc":           " ORDER BY id DESC",
}

func (r *PedidoPgRepository) List(ctx context.Context, f entities.PedidoFilter) ([]entities.PedidoListItem, error) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Q != "" {
		like := "%" + f.Q + "%"
		p := arg(like)
		where = append(where, fmt.Sprintf("(numero ILIKE %s OR secretaria ILIKE %s OR solicitante ILIKE %s)", p, p, p))
	}
	if f.Modulo != "" {
		where = append(where, "modulo = "+arg(f.Modulo))
	}
	if f.Estado != "" {
		where = append(where, "estado = "+arg(f.Estado))
	}
	if f.Secretaria != "" {
		where = append(where, "secretaria = "+arg(f.Secretaria))
	}
	if f.CreatedBy != "" {
		where = append(where, "created_by::text = "+arg(f.CreatedBy))
	}
	if f.FechaDesde != nil {
		where = append(where, "fecha_pedido >= "+arg(*f.FechaDesde))
	}
	if f.FechaHasta != nil {
		where = append(where, "fecha_pedido <= "+arg(*f.FechaHasta))
	}
	if f.MinTotal != nil {
		where = append(where, "total >= "+arg(*f.MinTotal))
	}
	if f.MaxTotal != nil {
		where = append(where, "total <= "+arg(*f.MaxTotal))
	}

	sql := listBaseSQL
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += listOrderClauses[f.Order]
	sql += " LIMIT " + arg(f.Limit) + " OFFSET " + arg(f.Offset)

	var out []entities.PedidoListItem
	err := database.WithRetry(ctx, r.log, "pedido.list", func(ctx context.Context) error {
		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out = out[:0]
		for rows.Next() {
			var it entities.PedidoListItem
			if err := scanListItem(rows, &it); err != nil {
				return err
			}
			out = append(out, it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PedidoPgRepository) GetListItem(ctx context.Context, id int64) (entities.PedidoListItem, error) {
	var it entities.PedidoListItem
	err := database.WithRetry(ctx, r.log, "pedido.list_item", func(ctx context.Context) error {
		row := r.pool.QueryRow(ctx, listBaseSQL+" WHERE id = $1 LIMIT 1", id)
		err := scanListItem(row, &it)
		if errors.Is(err, pgx.ErrNoRows) {
			it = entities.PedidoListItem{}
			return nil
		}
		return err
	})
	if err != nil {
		return entities.PedidoListItem{}, err
	}
	return it, nil
}

func scanListItem(row pgx.Row, it *entities.PedidoListItem) error {
	return row.Scan(
		&it.ID, &it.Numero, &it.Modulo, &it.ModuloName,
		&it.Estado, &it.EstadoLabel, &it.Secretaria,
		&it.Solicitante, &it.Total, &it.FechaPedido, &it.PresupuestoEstimado,
		&it.CreatedBy, &it.CreatedAt, &it.UpdatedAt,
	)
}

func (r *PedidoPgRepository) UpdateFields(ctx context.Context, id int64, patch entities.PedidoPatch) (bool, error) {
	var sets []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if patch.Observaciones != nil {
		sets = append(sets, "observaciones = "+arg(*patch.Observaciones))
	}
	if patch.PresupuestoEstimado != nil {
		sets = append(sets, "presupuesto_estimado = "+arg(*patch.PresupuestoEstimado))
	}
	if patch.FechaDesde != nil {
		sets = append(sets, "fecha_desde = "+arg(*patch.FechaDesde))
	}
	if patch.FechaHasta != nil {
		sets = append(sets, "fecha_hasta = "+arg(*patch.FechaHasta))
	}

	sql := "UPDATE public.pedido SET " + strings.Join(sets, ", ") + ", updated_at = now() WHERE id = " + arg(id)

	var found bool
	err := database.WithRetry(ctx, r.log, "pedido.update", func(ctx context.Context) error {
		tag, err := r.pool.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		found = tag.RowsAffected() > 0
		return nil
	})
	return found, err
}

func (r *PedidoPgRepository) GetDetail(ctx context.Context, id int64) (entities.PedidoDetail, error) {
	var det entities.PedidoDetail
	err := database.WithRetry(ctx, r.log, "pedido.detail", func(ctx context.Context) error {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.ID == 0 {
			det = entities.PedidoDetail{}
			return nil
		}
		det.Pedido = p

		if err := r.readAmbito(ctx, id, &det); err != nil {
			return err
		}
		return r.readModulo(ctx, id, &det)
	})
	if err != nil {
		return entities.PedidoDetail{}, err
	}
	return det, nil
}

func (r *PedidoPgRepository) readAmbito(ctx context.Context, id int64, det *entities.PedidoDetail) error {
	var tipoDB string
	err := r.pool.QueryRow(ctx, `SELECT tipo::text FROM public.pedido_ambito WHERE pedido_id = $1`, id).Scan(&tipoDB)
	if errors.Is(err, pgx.ErrNoRows) {
		det.Ambito = entities.AmbitoDraft{Tipo: entities.AmbitoNinguno}
		return nil
	}
	if err != nil {
		return err
	}

	switch tipoDB {
	case "obra":
		var o entities.ObraDraft
		err := r.pool.QueryRow(ctx, `
			SELECT nombre_obra, COALESCE(ubicacion,''), COALESCE(detalle,''), presupuesto_obra,
			       fecha_inicio, fecha_fin, es_nueva, COALESCE(obra_existente_ref,'')
			  FROM public.ambito_obra WHERE pedido_id = $1`, id,
		).Scan(&o.NombreObra, &o.Ubicacion, &o.Detalle, &o.PresupuestoObra,
			&o.FechaInicio, &o.FechaFin, &o.EsNueva, &o.ObraExistenteRef)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		det.Ambito = entities.AmbitoDraft{Tipo: entities.AmbitoObra, Obra: &o}
	case "mant_escuela":
		var e entities.EscuelaDraft
		err := r.pool.QueryRow(ctx, `
			SELECT escuela, COALESCE(ubicacion,''), COALESCE(necesidad,''),
			       fecha_desde, fecha_hasta, COALESCE(detalle,'')
			  FROM public.ambito_mant_escuela WHERE pedido_id = $1`, id,
		).Scan(&e.Escuela, &e.Ubicacion, &e.Necesidad, &e.FechaDesde, &e.FechaHasta, &e.Detalle)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		det.Ambito = entities.AmbitoDraft{Tipo: entities.AmbitoEscuelas, Escuelas: &e}
	default:
		det.Ambito = entities.AmbitoDraft{Tipo: entities.AmbitoNinguno}
	}
	return nil
}

// readModulo probes the module tables in order; a pedido has exactly one.
func (r *PedidoPgRepository) readModulo(ctx context.Context, id int64, det *entities.PedidoDetail) error {
	var s entities.ServiciosDraft
	err := r.pool.QueryRow(ctx, `
		SELECT tipo_servicio, COALESCE(detalle_mantenimiento,''), COALESCE(tipo_profesional,''), dia_desde, dia_hasta
		  FROM public.pedido_servicios WHERE pedido_id = $1`, id,
	).Scan(&s.TipoServicio, &s.DetalleMantenimiento, &s.TipoProfesional, &s.DiaDesde, &s.DiaHasta)
	if err == nil {
		det.Modulo = &entities.ModuloDraft{Tipo: entities.ModuloServicios, Servicios: &s}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var al entities.AlquilerDraft
	err = r.pool.QueryRow(ctx, `
		SELECT categoria, COALESCE(uso_edificio,''), COALESCE(ubicacion_edificio,''),
		       COALESCE(uso_maquinaria,''), COALESCE(tipo_maquinaria,''),
		       requiere_combustible, requiere_chofer,
		       cronograma_desde, cronograma_hasta, horas_por_dia,
		       COALESCE(que_alquilar,''), COALESCE(detalle_uso,'')
		  FROM public.pedido_alquiler WHERE pedido_id = $1`, id,
	).Scan(&al.Categoria, &al.UsoEdificio, &al.UbicacionEdificio,
		&al.UsoMaquinaria, &al.TipoMaquinaria,
		&al.RequiereCombustible, &al.RequiereChofer,
		&al.CronogramaDesde, &al.CronogramaHasta, &al.HorasPorDia,
		&al.QueAlquilar, &al.DetalleUso)
	if err == nil {
		det.Modulo = &entities.ModuloDraft{Tipo: entities.ModuloAlquiler, Alquiler: &al}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var ad entities.AdquisicionDraft
	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(proposito,''), modo_adquisicion
		  FROM public.pedido_adquisicion WHERE pedido_id = $1`, id,
	).Scan(&ad.Proposito, &ad.ModoAdquisicion)
	if err == nil {
		rows, err := r.pool.Query(ctx, `
			SELECT descripcion, cantidad, COALESCE(unidad,''), precio_unitario
			  FROM public.pedido_adquisicion_item WHERE pedido_id = $1 ORDER BY id`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var it entities.AdquisicionItem
			if err := rows.Scan(&it.Descripcion, &it.Cantidad, &it.Unidad, &it.PrecioUnitario); err != nil {
				return err
			}
			ad.Items = append(ad.Items, it)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		det.Modulo = &entities.ModuloDraft{Tipo: entities.ModuloAdquisicion, Adquisicion: &ad}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var rp entities.ReparacionDraft
	err = r.pool.QueryRow(ctx, `
		SELECT tipo_reparacion, COALESCE(unidad_reparar,''), COALESCE(que_reparar,''), COALESCE(detalle_reparacion,'')
		  FROM public.pedido_reparacion WHERE pedido_id = $1`, id,
	).Scan(&rp.TipoReparacion, &rp.UnidadReparar, &rp.QueReparar, &rp.DetalleReparacion)
	if err == nil {
		det.Modulo = &entities.ModuloDraft{Tipo: entities.ModuloReparacion, Reparacion: &rp}
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	det.Modulo = nil
	return nil
}
