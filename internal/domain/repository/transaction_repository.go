package repository

import (
	"context"

	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
)

// TransactionRepository define el puerto del Ledger Store para ventas y
// compras. Las implementaciones son read-mostly: el núcleo de agregación
// solo lista; la escritura existe para el ingreso de registros.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListByKind devuelve todas las transacciones del tipo dado, sin
	// ventana temporal: los totales del dashboard son sobre el histórico
	// completo.
	ListByKind(ctx context.Context, kind entity.TransactionKind) ([]entity.Transaction, error)

	// ListRecentSales devuelve las `limit` ventas más recientes ordenadas
	// por occurred_at descendente, con ID ascendente como desempate
	// determinista.
	ListRecentSales(ctx context.Context, limit int) ([]entity.Transaction, error)

	Delete(ctx context.Context, id string) error
}
