// Package analytics contiene los casos de uso de estado derivado del
// back-office: el snapshot del dashboard y la agregación mensual de ventas.
package analytics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-ledger/internal/application/dto"
	"github.com/tu-usuario/retail-ledger/internal/domain/aggregation"
	"github.com/tu-usuario/retail-ledger/internal/domain/entity"
	"github.com/tu-usuario/retail-ledger/internal/domain/repository"
)

const recentSalesLimit = 5 // ventas en el widget de actividad reciente

// DashboardUseCase compone el snapshot del dashboard re-derivándolo del
// histórico completo en cada llamada.
//
// No hay caché ni saldo acumulado persistido: la corrección depende de que
// cada llamada sea una re-derivación total, idempotente y sin efectos. Las
// lecturas de ventas y compras son dos consultas independientes al ledger,
// así que un snapshot puede observar instantes levemente distintos entre
// ambas; para un dashboard esa ventana de desfase es aceptable.
type DashboardUseCase struct {
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	bucketCfg    aggregation.BucketConfig
}

// NewDashboardUseCase construye el caso de uso. bucketCfg fija el par
// (tz, locale) de la agregación mensual; viene de la configuración y se
// reutiliza en producción y tests para que las claves no diverjan.
func NewDashboardUseCase(
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	bucketCfg aggregation.BucketConfig,
) *DashboardUseCase {
	return &DashboardUseCase{
		txRepo:       txRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		bucketCfg:    bucketCfg,
	}
}

// GetSnapshot construye el DashboardSnapshotDTO: totales históricos de
// ventas y compras, conteos de entidades y las 5 ventas más recientes.
//
// Las cinco consultas al ledger corren en paralelo (son independientes y
// read-only). Cualquier error de lectura falla la llamada completa: un
// agregado parcial se mostraría como un total subestimado, que es peor que
// un error explícito.
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context) (*dto.DashboardSnapshotDTO, error) {
	type listResult struct {
		txs []entity.Transaction
		err error
	}
	type countResult struct {
		n   int
		err error
	}

	salesCh := make(chan listResult, 1)
	purchasesCh := make(chan listResult, 1)
	recentCh := make(chan listResult, 1)
	customersCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)

	go func() {
		txs, err := uc.txRepo.ListByKind(ctx, entity.KindSale)
		salesCh <- listResult{txs, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListByKind(ctx, entity.KindPurchase)
		purchasesCh <- listResult{txs, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListRecentSales(ctx, recentSalesLimit)
		recentCh <- listResult{txs, err}
	}()
	go func() {
		n, err := uc.customerRepo.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.productRepo.Count(ctx)
		productsCh <- countResult{n, err}
	}()

	sales := <-salesCh
	purchases := <-purchasesCh
	recent := <-recentCh
	customers := <-customersCh
	products := <-productsCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", purchases.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}

	diags := aggregation.NewDiagnostics()
	totalSales := sumNormalized(sales.txs, diags)
	totalPurchases := sumNormalized(purchases.txs, diags)

	recentDTOs, err := uc.joinRecentSales(ctx, recent.txs, diags)
	if err != nil {
		return nil, err
	}

	uc.logDiagnostics("snapshot", diags)

	return &dto.DashboardSnapshotDTO{
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		CustomerCount:  customers.n,
		ProductCount:   products.n,
		RecentSales:    recentDTOs,
		DataWarnings:   diags.Total(),
	}, nil
}

// GetSalesByMonth agrupa todas las ventas por mes calendario bajo el
// (tz, locale) configurado.
func (uc *DashboardUseCase) GetSalesByMonth(ctx context.Context) (*dto.MonthlySalesDTO, error) {
	sales, err := uc.txRepo.ListByKind(ctx, entity.KindSale)
	if err != nil {
		return nil, fmt.Errorf("ventas por mes: %w", err)
	}

	diags := aggregation.NewDiagnostics()
	buckets := aggregation.BucketByMonth(sales, uc.bucketCfg, diags)

	months := make([]dto.MonthTotalDTO, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, dto.MonthTotalDTO{Month: b.Key, Total: b.Total})
	}

	uc.logDiagnostics("ventas por mes", diags)

	return &dto.MonthlySalesDTO{
		Months:       months,
		Totals:       aggregation.Totals(buckets),
		DataWarnings: diags.Total(),
	}, nil
}

// GetRecentSales devuelve las 5 ventas más recientes con cliente unido.
func (uc *DashboardUseCase) GetRecentSales(ctx context.Context) ([]dto.RecentSaleDTO, error) {
	recent, err := uc.txRepo.ListRecentSales(ctx, recentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("ventas recientes: %w", err)
	}

	diags := aggregation.NewDiagnostics()
	dtos, err := uc.joinRecentSales(ctx, recent, diags)
	if err != nil {
		return nil, err
	}
	uc.logDiagnostics("ventas recientes", diags)
	return dtos, nil
}

// joinRecentSales normaliza los montos para presentación y une el nombre del
// cliente por referencia. Una venta con cliente borrado sale con nombre
// vacío; la integridad referencial es garantía del colaborador externo.
func (uc *DashboardUseCase) joinRecentSales(
	ctx context.Context,
	txs []entity.Transaction,
	diags *aggregation.Diagnostics,
) ([]dto.RecentSaleDTO, error) {
	dtos := make([]dto.RecentSaleDTO, 0, len(txs))
	for _, tx := range txs {
		customer, err := uc.customerRepo.GetByID(ctx, tx.CounterpartyID)
		if err != nil {
			return nil, fmt.Errorf("dashboard: cliente %s: %w", tx.CounterpartyID, err)
		}
		name := ""
		if customer != nil {
			name = customer.Name
		}
		dtos = append(dtos, dto.RecentSaleDTO{
			ID:           tx.ID,
			CustomerID:   tx.CounterpartyID,
			CustomerName: name,
			Date:         tx.OccurredAt,
			Amount:       aggregation.Normalize(tx.Amount, tx.ID, diags),
		})
	}
	return dtos, nil
}

// sumNormalized suma los montos normalizados del histórico completo.
func sumNormalized(txs []entity.Transaction, diags *aggregation.Diagnostics) decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range txs {
		total = total.Add(aggregation.Normalize(tx.Amount, tx.ID, diags))
	}
	return total
}

// logDiagnostics deja los avisos de calidad de datos visibles en el log sin
// convertirlos en falla: el dashboard no se cae por un registro legado roto.
func (uc *DashboardUseCase) logDiagnostics(op string, diags *aggregation.Diagnostics) {
	if diags.Total() == 0 {
		return
	}
	log.Warn().
		Str("operacion", op).
		Int("montos_malformados", diags.Count(aggregation.DiagMalformedAmount)).
		Int("fechas_invalidas", diags.Count(aggregation.DiagInvalidTimestamp)).
		Msg("registros malformados absorbidos durante la agregación")
}
