package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"backpedidos/internal/domain/entities"
	"backpedidos/internal/usecase/interfaces"
)

var (
	ErrProveedorNotFound   = errors.New("proveedor not found")
	ErrInvalidCUIT         = errors.New("invalid cuit")
	ErrInvalidTelefono     = errors.New("invalid telefono (8-15 international digits)")
	ErrInvalidRazonSocial  = errors.New("razon_social required")
	ErrInvalidProveedorRol = errors.New("rol required")
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizeCUIT strips everything but digits; CUIT/CUIL padrones locally run
// 8 to 11 digits.
func NormalizeCUIT(cuit string) (string, error) {
	digits := nonDigitRe.ReplaceAllString(cuit, "")
	if len(digits) < 8 || len(digits) > 11 {
		return "", ErrInvalidCUIT
	}
	return digits, nil
}

// NormalizeTelefono accepts "+549...", "549..." or bare digits and returns
// E.164 ("+<digits>"). It does not validate country codes.
func NormalizeTelefono(phone string) (string, error) {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) < 8 || len(digits) > 15 {
		return "", ErrInvalidTelefono
	}
	return "+" + digits, nil
}

// IProveedorUseCase manages the supplier registry and its links to pedidos.
type IProveedorUseCase interface {
	GetByCUIT(ctx context.Context, cuit string) (entities.Proveedor, error)
	Upsert(ctx context.Context, cuit, razonSocial, telefono, email string) (entities.Proveedor, error)
	Vincular(ctx context.Context, pedidoID int64, cuit, razonSocial, rol string) (entities.PedidoProveedor, error)
}

type ProveedorUseCase struct {
	repo interfaces.IProveedorRepository
}

var _ IProveedorUseCase = (*ProveedorUseCase)(nil)

func NewProveedorUseCase(repo interfaces.IProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

func (u *ProveedorUseCase) GetByCUIT(ctx context.Context, cuit string) (entities.Proveedor, error) {
	norm, err := NormalizeCUIT(cuit)
	if err != nil {
		return entities.Proveedor{}, err
	}
	p, err := u.repo.GetByCUIT(ctx, norm)
	if err != nil {
		return entities.Proveedor{}, err
	}
	if p.ID == 0 {
		return entities.Proveedor{}, ErrProveedorNotFound
	}
	return p, nil
}

func (u *ProveedorUseCase) Upsert(ctx context.Context, cuit, razonSocial, telefono, email string) (entities.Proveedor, error) {
	norm, err := NormalizeCUIT(cuit)
	if err != nil {
		return entities.Proveedor{}, err
	}
	razonSocial = strings.TrimSpace(razonSocial)
	if razonSocial == "" {
		return entities.Proveedor{}, ErrInvalidRazonSocial
	}
	p := entities.Proveedor{
		CUIT:          norm,
		RazonSocial:   razonSocial,
		EmailContacto: strings.TrimSpace(email),
	}
	if strings.TrimSpace(telefono) != "" {
		tel, err := NormalizeTelefono(telefono)
		if err != nil {
			return entities.Proveedor{}, err
		}
		p.Telefono = tel
	}
	return u.repo.Upsert(ctx, p)
}

func (u *ProveedorUseCase) Vincular(ctx context.Context, pedidoID int64, cuit, razonSocial, rol string) (entities.PedidoProveedor, error) {
	if pedidoID <= 0 {
		return entities.PedidoProveedor{}, ErrInvalidPedidoID
	}
	norm, err := NormalizeCUIT(cuit)
	if err != nil {
		return entities.PedidoProveedor{}, err
	}
	rol = strings.TrimSpace(rol)
	if rol == "" {
		return entities.PedidoProveedor{}, ErrInvalidProveedorRol
	}
	link, err := u.repo.LinkPedido(ctx, pedidoID, norm, strings.TrimSpace(razonSocial), rol)
	if err != nil {
		return entities.PedidoProveedor{}, err
	}
	if link.PedidoID == 0 {
		return entities.PedidoProveedor{}, ErrPedidoNotFound
	}
	return link, nil
}
