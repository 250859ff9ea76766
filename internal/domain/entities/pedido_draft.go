package entities

import "time"

// Draft structs describe a pedido at creation time: header fields plus one
// ambito and exactly one modulo. They mirror the column groups written by the
// create transaction.

type AmbitoTipo string

const (
	AmbitoNinguno  AmbitoTipo = "ninguno"
	AmbitoObra     AmbitoTipo = "obra"
	AmbitoEscuelas AmbitoTipo = "mantenimientodeescuelas"
)

type ModuloTipo string

const (
	ModuloServicios   ModuloTipo = "servicios"
	ModuloAlquiler    ModuloTipo = "alquiler"
	ModuloAdquisicion ModuloTipo = "adquisicion"
	ModuloReparacion  ModuloTipo = "reparacion"
)

type PedidoDraft struct {
	Secretaria          string
	Estado              Estado
	FechaPedido         *time.Time
	FechaDesde          *time.Time
	FechaHasta          *time.Time
	PresupuestoEstimado *float64
	Observaciones       string
	CreatedByUsername   string

	Ambito AmbitoDraft
	Modulo ModuloDraft
}

type AmbitoDraft struct {
	Tipo     AmbitoTipo    `json:"tipo"`
	Obra     *ObraDraft    `json:"obra,omitempty"`
	Escuelas *EscuelaDraft `json:"escuelas,omitempty"`
}

type ObraDraft struct {
	NombreObra       string     `json:"nombre_obra"`
	Ubicacion        string     `json:"ubicacion"`
	Detalle          string     `json:"detalle"`
	PresupuestoObra  *float64   `json:"presupuesto_obra,omitempty"`
	FechaInicio      *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin         *time.Time `json:"fecha_fin,omitempty"`
	EsNueva          *bool      `json:"es_nueva,omitempty"`
	ObraExistenteRef string     `json:"obra_existente_ref,omitempty"`
}

type EscuelaDraft struct {
	Escuela    string     `json:"escuela"`
	Ubicacion  string     `json:"ubicacion"`
	Necesidad  string     `json:"necesidad"`
	FechaDesde *time.Time `json:"fecha_desde,omitempty"`
	FechaHasta *time.Time `json:"fecha_hasta,omitempty"`
	Detalle    string     `json:"detalle"`
}

type ModuloDraft struct {
	Tipo        ModuloTipo        `json:"tipo"`
	Servicios   *ServiciosDraft   `json:"servicios,omitempty"`
	Alquiler    *AlquilerDraft    `json:"alquiler,omitempty"`
	Adquisicion *AdquisicionDraft `json:"adquisicion,omitempty"`
	Reparacion  *ReparacionDraft  `json:"reparacion,omitempty"`
}

type ServiciosDraft struct {
	TipoServicio         string     `json:"tipo_servicio"`
	DetalleMantenimiento string     `json:"detalle_mantenimiento"`
	TipoProfesional      string     `json:"tipo_profesional"`
	DiaDesde             *time.Time `json:"dia_desde,omitempty"`
	DiaHasta             *time.Time `json:"dia_hasta,omitempty"`
}

type AlquilerDraft struct {
	Categoria           string     `json:"categoria"`
	UsoEdificio         string     `json:"uso_edificio,omitempty"`
	UbicacionEdificio   string     `json:"ubicacion_edificio,omitempty"`
	UsoMaquinaria       string     `json:"uso_maquinaria,omitempty"`
	TipoMaquinaria      string     `json:"tipo_maquinaria,omitempty"`
	RequiereCombustible *bool      `json:"requiere_combustible,omitempty"`
	RequiereChofer      *bool      `json:"requiere_chofer,omitempty"`
	CronogramaDesde     *time.Time `json:"cronograma_desde,omitempty"`
	CronogramaHasta     *time.Time `json:"cronograma_hasta,omitempty"`
	HorasPorDia         *float64   `json:"horas_por_dia,omitempty"`
	QueAlquilar         string     `json:"que_alquilar,omitempty"`
	DetalleUso          string     `json:"detalle_uso,omitempty"`
}

type AdquisicionDraft struct {
	Proposito       string            `json:"proposito"`
	ModoAdquisicion string            `json:"modo_adquisicion"`
	Items           []AdquisicionItem `json:"items"`
}

type AdquisicionItem struct {
	Descripcion    string   `json:"descripcion"`
	Cantidad       float64  `json:"cantidad"`
	Unidad         string   `json:"unidad"`
	PrecioUnitario *float64 `json:"precio_unitario,omitempty"`
}

type ReparacionDraft struct {
	TipoReparacion    string `json:"tipo_reparacion"`
	UnidadReparar     string `json:"unidad_reparar"`
	QueReparar        string `json:"que_reparar"`
	DetalleReparacion string `json:"detalle_reparacion"`
}
