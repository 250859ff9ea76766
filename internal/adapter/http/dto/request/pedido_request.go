package request

import (
	"errors"
	"strings"
	"time"

	"backpedidos/internal/domain/entities"
)

var ErrInvalidFecha = errors.New("invalid date, expected YYYY-MM-DD")

// dateOnly parses the UI's plain date fields. Empty means absent.
func dateOnly(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrInvalidFecha
	}
	return &t, nil
}

type ObraRequest struct {
	NombreObra       string   `json:"nombre_obra"`
	Ubicacion        string   `json:"ubicacion"`
	Detalle          string   `json:"detalle"`
	PresupuestoObra  *float64 `json:"presupuesto_obra"`
	FechaInicio      string   `json:"fecha_inicio"`
	FechaFin         string   `json:"fecha_fin"`
	EsNueva          *bool    `json:"es_nueva"`
	ObraExistenteRef string   `json:"obra_existente_ref"`
}

type EscuelaRequest struct {
	Escuela    string `json:"escuela"`
	Ubicacion  string `json:"ubicacion"`
	Necesidad  string `json:"necesidad"`
	FechaDesde string `json:"fecha_desde"`
	FechaHasta string `json:"fecha_hasta"`
	Detalle    string `json:"detalle"`
}

type AmbitoRequest struct {
	Tipo     string          `json:"tipo"`
	Obra     *ObraRequest    `json:"obra"`
	Escuelas *EscuelaRequest `json:"escuelas"`
}

type ServiciosRequest struct {
	TipoServicio         string `json:"tipo_servicio"`
	DetalleMantenimiento string `json:"detalle_mantenimiento"`
	TipoProfesional      string `json:"tipo_profesional"`
	DiaDesde             string `json:"dia_desde"`
	DiaHasta             string `json:"dia_hasta"`
}

type AlquilerRequest struct {
	Categoria           string   `json:"categoria"`
	UsoEdificio         string   `json:"uso_edificio"`
	UbicacionEdificio   string   `json:"ubicacion_edificio"`
	UsoMaquinaria       string   `json:"uso_maquinaria"`
	TipoMaquinaria      string   `json:"tipo_maquinaria"`
	RequiereCombustible *bool    `json:"requiere_combustible"`
	RequiereChofer      *bool    `json:"requiere_chofer"`
	CronogramaDesde     string   `json:"cronograma_desde"`
	CronogramaHasta     string   `json:"cronograma_hasta"`
	HorasPorDia         *float64 `json:"horas_por_dia"`
	QueAlquilar         string   `json:"que_alquilar"`
	DetalleUso          string   `json:"detalle_uso"`
}

type AdquisicionItemRequest struct {
	Descripcion    string   `json:"descripcion" binding:"required"`
	Cantidad       float64  `json:"cantidad" binding:"required"`
	Unidad         string   `json:"unidad"`
	PrecioUnitario *float64 `json:"precio_unitario"`
}

type AdquisicionRequest struct {
	Proposito       string                   `json:"proposito"`
	ModoAdquisicion string                   `json:"modo_adquisicion"`
	Items           []AdquisicionItemRequest `json:"items"`
}

type ReparacionRequest struct {
	TipoReparacion    string `json:"tipo_reparacion"`
	UnidadReparar     string `json:"unidad_reparar"`
	QueReparar        string `json:"que_reparar"`
	DetalleReparacion string `json:"detalle_reparacion"`
}

type ModuloRequest struct {
	Tipo        string              `json:"tipo" binding:"required"`
	Servicios   *ServiciosRequest   `json:"servicios"`
	Alquiler    *AlquilerRequest    `json:"alquiler"`
	Adquisicion *AdquisicionRequest `json:"adquisicion"`
	Reparacion  *ReparacionRequest  `json:"reparacion"`
}

// PedidoCreateRequest is the creation payload sent by the UI: header fields
// plus one ambito and one modulo block.
type PedidoCreateRequest struct {
	Secretaria          string        `json:"secretaria" binding:"required"`
	Estado              string        `json:"estado"`
	FechaPedido         string        `json:"fecha_pedido"`
	FechaDesde          string        `json:"fecha_desde"`
	FechaHasta          string        `json:"fecha_hasta"`
	PresupuestoEstimado *float64      `json:"presupuesto_estimado"`
	Observaciones       string        `json:"observaciones"`
	CreatedBy           string        `json:"created_by"`
	Ambito              AmbitoRequest `json:"ambito"`
	Modulo              ModuloRequest `json:"modulo" binding:"required"`
}

func (r PedidoCreateRequest) ToDraft() (entities.PedidoDraft, error) {
	d := entities.PedidoDraft{
		Secretaria:          strings.TrimSpace(r.Secretaria),
		Estado:              entities.Estado(strings.TrimSpace(r.Estado)),
		PresupuestoEstimado: r.PresupuestoEstimado,
		Observaciones:       strings.TrimSpace(r.Observaciones),
		CreatedByUsername:   strings.TrimSpace(r.CreatedBy),
	}

	var err error
	if d.FechaPedido, err = dateOnly(r.FechaPedido); err != nil {
		return entities.PedidoDraft{}, err
	}
	if d.FechaDesde, err = dateOnly(r.FechaDesde); err != nil {
		return entities.PedidoDraft{}, err
	}
	if d.FechaHasta, err = dateOnly(r.FechaHasta); err != nil {
		return entities.PedidoDraft{}, err
	}

	d.Ambito, err = r.Ambito.toDraft()
	if err != nil {
		return entities.PedidoDraft{}, err
	}
	d.Modulo, err = r.Modulo.toDraft()
	if err != nil {
		return entities.PedidoDraft{}, err
	}
	return d, nil
}

func (a AmbitoRequest) toDraft() (entities.AmbitoDraft, error) {
	out := entities.AmbitoDraft{Tipo: entities.AmbitoTipo(strings.TrimSpace(a.Tipo))}
	if out.Tipo == "" {
		out.Tipo = entities.AmbitoNinguno
	}

	if a.Obra != nil {
		o := entities.ObraDraft{
			NombreObra:       strings.TrimSpace(a.Obra.NombreObra),
			Ubicacion:        strings.TrimSpace(a.Obra.Ubicacion),
			Detalle:          strings.TrimSpace(a.Obra.Detalle),
			PresupuestoObra:  a.Obra.PresupuestoObra,
			EsNueva:          a.Obra.EsNueva,
			ObraExistenteRef: strings.TrimSpace(a.Obra.ObraExistenteRef),
		}
		var err error
		if o.FechaInicio, err = dateOnly(a.Obra.FechaInicio); err != nil {
			return entities.AmbitoDraft{}, err
		}
		if o.FechaFin, err = dateOnly(a.Obra.FechaFin); err != nil {
			return entities.AmbitoDraft{}, err
		}
		out.Obra = &o
	}

	if a.Escuelas != nil {
		e := entities.EscuelaDraft{
			Escuela:   strings.TrimSpace(a.Escuelas.Escuela),
			Ubicacion: strings.TrimSpace(a.Escuelas.Ubicacion),
			Necesidad: strings.TrimSpace(a.Escuelas.Necesidad),
			Detalle:   strings.TrimSpace(a.Escuelas.Detalle),
		}
		var err error
		if e.FechaDesde, err = dateOnly(a.Escuelas.FechaDesde); err != nil {
			return entities.AmbitoDraft{}, err
		}
		if e.FechaHasta, err = dateOnly(a.Escuelas.FechaHasta); err != nil {
			return entities.AmbitoDraft{}, err
		}
		out.Escuelas = &e
	}
	return out, nil
}

func (m ModuloRequest) toDraft() (entities.ModuloDraft, error) {
	out := entities.ModuloDraft{Tipo: entities.ModuloTipo(strings.TrimSpace(m.Tipo))}

	if m.Servicios != nil {
		s := entities.ServiciosDraft{
			TipoServicio:         strings.TrimSpace(m.Servicios.TipoServicio),
			DetalleMantenimiento: strings.TrimSpace(m.Servicios.DetalleMantenimiento),
			TipoProfesional:      strings.TrimSpace(m.Servicios.TipoProfesional),
		}
		var err error
		if s.DiaDesde, err = dateOnly(m.Servicios.DiaDesde); err != nil {
			return entities.ModuloDraft{}, err
		}
		if s.DiaHasta, err = dateOnly(m.Servicios.DiaHasta); err != nil {
			return entities.ModuloDraft{}, err
		}
		out.Servicios = &s
	}

	if m.Alquiler != nil {
		a := entities.AlquilerDraft{
			Categoria:           strings.TrimSpace(m.Alquiler.Categoria),
			UsoEdificio:         strings.TrimSpace(m.Alquiler.UsoEdificio),
			UbicacionEdificio:   strings.TrimSpace(m.Alquiler.UbicacionEdificio),
			UsoMaquinaria:       strings.TrimSpace(m.Alquiler.UsoMaquinaria),
			TipoMaquinaria:      strings.TrimSpace(m.Alquiler.TipoMaquinaria),
			RequiereCombustible: m.Alquiler.RequiereCombustible,
			RequiereChofer:      m.Alquiler.RequiereChofer,
			HorasPorDia:         m.Alquiler.HorasPorDia,
			QueAlquilar:         strings.TrimSpace(m.Alquiler.QueAlquilar),
			DetalleUso:          strings.TrimSpace(m.Alquiler.DetalleUso),
		}
		var err error
		if a.CronogramaDesde, err = dateOnly(m.Alquiler.CronogramaDesde); err != nil {
			return entities.ModuloDraft{}, err
		}
		if a.CronogramaHasta, err = dateOnly(m.Alquiler.CronogramaHasta); err != nil {
			return entities.ModuloDraft{}, err
		}
		out.Alquiler = &a
	}

	if m.Adquisicion != nil {
		items := make([]entities.AdquisicionItem, 0, len(m.Adquisicion.Items))
		for _, it := range m.Adquisicion.Items {
			items = append(items, entities.AdquisicionItem{
				Descripcion:    strings.TrimSpace(it.Descripcion),
				Cantidad:       it.Cantidad,
				Unidad:         strings.TrimSpace(it.Unidad),
				PrecioUnitario: it.PrecioUnitario,
			})
		}
		out.Adquisicion = &entities.AdquisicionDraft{
			Proposito:       strings.TrimSpace(m.Adquisicion.Proposito),
			ModoAdquisicion: strings.TrimSpace(m.Adquisicion.ModoAdquisicion),
			Items:           items,
		}
	}

	if m.Reparacion != nil {
		out.Reparacion = &entities.ReparacionDraft{
			TipoReparacion:    strings.TrimSpace(m.Reparacion.TipoReparacion),
			UnidadReparar:     strings.TrimSpace(m.Reparacion.UnidadReparar),
			QueReparar:        strings.TrimSpace(m.Reparacion.QueReparar),
			DetalleReparacion: strings.TrimSpace(m.Reparacion.DetalleReparacion),
		}
	}
	return out, nil
}

// PedidoPatchRequest carries the post-creation edits; absent fields stay
// untouched.
type PedidoPatchRequest struct {
	Observaciones       *string  `json:"observaciones"`
	PresupuestoEstimado *float64 `json:"presupuesto_estimado"`
	FechaDesde          *string  `json:"fecha_desde"`
	FechaHasta          *string  `json:"fecha_hasta"`
}

func (r PedidoPatchRequest) ToPatch() (entities.PedidoPatch, error) {
	p := entities.PedidoPatch{
		Observaciones:       r.Observaciones,
		PresupuestoEstimado: r.PresupuestoEstimado,
	}
	if r.FechaDesde != nil {
		t, err := dateOnly(*r.FechaDesde)
		if err != nil {
			return entities.PedidoPatch{}, err
		}
		p.FechaDesde = t
	}
	if r.FechaHasta != nil {
		t, err := dateOnly(*r.FechaHasta)
		if err != nil {
			return entities.PedidoPatch{}, err
		}
		p.FechaHasta = t
	}
	return p, nil
}
