package usecase

import (
	"context"
	"errors"
	"strings"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/usecase/interfaces"
)

var (
	ErrInvalidSecretaria  = errors.New("secretaria required")
	ErrSecretariaNotFound = errors.New("secretaria not found")
	ErrInvalidAmbito      = errors.New("ambito payload inconsistent with its tipo")
	ErrInvalidModulo      = errors.New("modulo payload inconsistent with its tipo")
	ErrInvalidEstado      = errors.New("invalid estado for creation")
	ErrInvalidOrder       = errors.New("invalid order key")
)

// estados accepted on creation; anything further along the path only exists
// through recorded transitions.
var creatableEstados = map[entities.Estado]bool{
	entities.EstadoBorrador: true,
	entities.EstadoEnviado:  true,
}

// IPedidoUseCase exposes pedido CRUD and listing. State changes live in
// IPedidoWorkflowUseCase.
type IPedidoUseCase interface {
	Create(ctx context.Context, d entities.PedidoDraft) (entities.Pedido, error)
	List(ctx context.Context, f entities.PedidoFilter) ([]entities.PedidoListItem, error)
	GetListItem(ctx context.Context, id int64) (entities.PedidoListItem, error)
	GetDetail(ctx context.Context, id int64) (entities.PedidoDetail, error)
	Update(ctx context.Context, id int64, patch entities.PedidoPatch) error
}

type PedidoUseCase struct {
	repo interfaces.IPedidoRepository
}

var _ IPedidoUseCase = (*PedidoUseCase)(nil)

func NewPedidoUseCase(repo interfaces.IPedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

func (u *PedidoUseCase) Create(ctx context.Context, d entities.PedidoDraft) (entities.Pedido, error) {
	d.Secretaria = strings.TrimSpace(d.Secretaria)
	if d.Secretaria == "" {
		return entities.Pedido{}, ErrInvalidSecretaria
	}
	if d.Estado == "" {
		d.Estado = entities.EstadoEnviado
	}
	if !creatableEstados[d.Estado] {
		return entities.Pedido{}, ErrInvalidEstado
	}

	switch d.Ambito.Tipo {
	case entities.AmbitoNinguno, "":
		d.Ambito.Tipo = entities.AmbitoNinguno
	case entities.AmbitoObra:
		if d.Ambito.Obra == nil {
			return entities.Pedido{}, ErrInvalidAmbito
		}
	case entities.AmbitoEscuelas:
		if d.Ambito.Escuelas == nil {
			return entities.Pedido{}, ErrInvalidAmbito
		}
	default:
		return entities.Pedido{}, ErrInvalidAmbito
	}

	switch d.Modulo.Tipo {
	case entities.ModuloServicios:
		if d.Modulo.Servicios == nil {
			return entities.Pedido{}, ErrInvalidModulo
		}
	case entities.ModuloAlquiler:
		if d.Modulo.Alquiler == nil {
			return entities.Pedido{}, ErrInvalidModulo
		}
	case entities.ModuloAdquisicion:
		if d.Modulo.Adquisicion == nil {
			return entities.Pedido{}, ErrInvalidModulo
		}
		for _, it := range d.Modulo.Adquisicion.Items {
			if strings.TrimSpace(it.Descripcion) == "" {
				return entities.Pedido{}, ErrInvalidModulo
			}
		}
	case entities.ModuloReparacion:
		if d.Modulo.Reparacion == nil {
			return entities.Pedido{}, ErrInvalidModulo
		}
	default:
		return entities.Pedido{}, ErrInvalidModulo
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Pedido{}, err
	}
	if created.ID == 0 {
		return entities.Pedido{}, ErrSecretariaNotFound
	}
	return created, nil
}

func (u *PedidoUseCase) List(ctx context.Context, f entities.PedidoFilter) ([]entities.PedidoListItem, error) {
	if f.Order == "" {
		f.Order = entities.DefaultPedidoOrder
	}
	if !entities.ValidPedidoOrders[f.Order] {
		return nil, ErrInvalidOrder
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	if f.Limit > 1000 {
		f.Limit = 1000
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return u.repo.List(ctx, f)
}

func (u *PedidoUseCase) GetListItem(ctx context.Context, id int64) (entities.PedidoListItem, error) {
	if id <= 0 {
		return entities.PedidoListItem{}, ErrInvalidPedidoID
	}
	item, err := u.repo.GetListItem(ctx, id)
	if err != nil {
		return entities.PedidoListItem{}, err
	}
	if item.ID == 0 {
		return entities.PedidoListItem{}, ErrPedidoNotFound
	}
	return item, nil
}

func (u *PedidoUseCase) GetDetail(ctx context.Context, id int64) (entities.PedidoDetail, error) {
	if id <= 0 {
		return entities.PedidoDetail{}, ErrInvalidPedidoID
	}
	det, err := u.repo.GetDetail(ctx, id)
	if err != nil {
		return entities.PedidoDetail{}, err
	}
	if det.Pedido.ID == 0 {
		return entities.PedidoDetail{}, ErrPedidoNotFound
	}
	return det, nil
}

func (u *PedidoUseCase) Update(ctx context.Context, id int64, patch entities.PedidoPatch) error {
	if id <= 0 {
		return ErrInvalidPedidoID
	}
	if patch.IsEmpty() {
		return nil
	}
	found, err := u.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		return err
	}
	if !found {
		return ErrPedidoNotFound
	}
	return nil
}
