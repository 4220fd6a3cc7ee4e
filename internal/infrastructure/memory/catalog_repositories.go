package memory

import (
	"context"

	"github.com/tu-usuario/retail-ledger/internal/domain"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// CustomerRepo adaptador en memoria de CustomerRepository.
type CustomerRepo struct {
	store *Store
}

// NewCustomerRepository construye el adaptador sobre el store compartido.
func NewCustomerRepository(store *Store) *CustomerRepo {
	return &CustomerRepo{store: store}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customer.ID]; ok {
		return domain.ErrDuplicate
	}
	s.customers[customer.ID] = *customer
	s.customerIDs = append(s.customerIDs, customer.ID)
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Customer, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		out = append(out, s.customers[id])
	}
	return out, nil
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers), nil
}

// ProductRepo adaptador en memoria de ProductRepository.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador sobre el store compartido.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	s.products[product.ID] = *product
	s.productIDs = append(s.productIDs, product.ID)
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), nil
}
