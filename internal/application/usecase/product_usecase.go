package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

// ProductUseCase alta y listado de productos del catálogo.
// El stock no se gestiona aquí: se deriva del ledger de eventos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto. El precio se parsea estricto: es captura
// nueva de catálogo, no un registro legado que haya que absorber.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := aggregation.NormalizeStrict(in.Price)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Size:      in.Size,
		Color:     in.Color,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("insertar producto: %w", err)
	}
	return product, nil
}

// List devuelve todo el catálogo.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.List(ctx)
}
