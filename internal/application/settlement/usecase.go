package settlement

import (
	"context"
	"sort"
	"time"

	"github.com/marvinbvivass/admin-sub001/internal/application/dto"
	"github.com/marvinbvivass/admin-sub001/internal/application/sales"
	"github.com/marvinbvivass/admin-sub001/internal/domain"
	"github.com/marvinbvivass/admin-sub001/internal/domain/entity"
	"github.com/marvinbvivass/admin-sub001/internal/domain/report"
	"github.com/marvinbvivass/admin-sub001/internal/domain/repository"
	"github.com/marvinbvivass/admin-sub001/pkg/logger"
)

// DayFormat formato de la clave de día del cierre.
const DayFormat = "2006-01-02"

// CloseDayUseCase consolida las ventas de un día de un operador en la matriz
// de cierre y retira las ventas consolidadas. El orden destructivo es un
// invariante duro: el cierre se escribe y confirma ANTES de eliminar
// cualquier venta, así una caída a mitad de secuencia deja ventas sin
// eliminar (re-cerrables) y nunca ventas eliminadas sin cierre.
type CloseDayUseCase struct {
	saleRepo       repository.SaleRepository
	settlementRepo repository.SettlementRepository
	log            *logger.Logger
}

// NewCloseDayUseCase construye el caso de uso.
func NewCloseDayUseCase(
	saleRepo repository.SaleRepository,
	settlementRepo repository.SettlementRepository,
	log *logger.Logger,
) *CloseDayUseCase {
	return &CloseDayUseCase{saleRepo: saleRepo, settlementRepo: settlementRepo, log: log}
}

// CloseDay consolida las ventas del operador en la ventana
// [00:00:00.000, 23:59:59.999] local del día dado. Si no hay ventas retorna
// NO_SALES_TO_CLOSE sin escribir ni eliminar nada. Cierres repetidos sobre la
// misma clave (día, operador) se fusionan sumando cantidades, por lo que
// repetir el cierre tras una falla parcial de eliminación es seguro.
func (uc *CloseDayUseCase) CloseDay(ctx context.Context, operatorID string, day time.Time) (*dto.SettlementResult, error) {
	if operatorID == "" {
		return nil, domain.ErrUnauthorized
	}

	from, to := sales.DayWindow(day)
	sls, err := uc.saleRepo.ListByOperatorAndRange(operatorID, from, to)
	if err != nil {
		return nil, err
	}
	dayKey := from.Format(DayFormat)
	if len(sls) == 0 {
		return &dto.SettlementResult{
			Status:     dto.SettlementStatusNoSales,
			Day:        dayKey,
			OperatorID: operatorID,
		}, nil
	}

	stt := uc.aggregate(operatorID, dayKey, sls)

	// Persistir primero; nada destructivo ocurre si la escritura falla.
	if err := uc.settlementRepo.UpsertMerge(stt); err != nil {
		return nil, err
	}

	// Solo tras confirmar el cierre se retiran las ventas. Las fallas de
	// eliminación se reportan una vez, sin reintento automático.
	retired := 0
	var failures []dto.RetirementFailure
	for _, s := range sls {
		if err := uc.saleRepo.Delete(s.ID); err != nil {
			uc.log.Warn().Str("sale_id", s.ID).Err(err).Msg("venta consolidada sin retirar")
			failures = append(failures, dto.RetirementFailure{SaleID: s.ID, Error: err.Error()})
			continue
		}
		retired++
	}

	// El cierre persistido puede incluir fusiones de cierres anteriores;
	// releer deja el resultado consistente con lo guardado.
	merged, err := uc.settlementRepo.Get(dayKey, operatorID)
	if err != nil {
		merged = stt
	}

	result := uc.toResult(merged)
	result.RetiredCount = retired
	result.Failures = failures
	if len(failures) > 0 {
		result.Status = dto.SettlementStatusRetirementFailures
	}
	uc.log.Info().
		Str("operator_id", operatorID).
		Str("day", dayKey).
		Int("sales", len(sls)).
		Int("retired", retired).
		Int("failures", len(failures)).
		Msg("cierre diario completado")
	return result, nil
}

// GetSettlement obtiene el cierre por (día, operador).
func (uc *CloseDayUseCase) GetSettlement(ctx context.Context, operatorID string, day time.Time) (*dto.SettlementResult, error) {
	from, _ := sales.DayWindow(day)
	stt, err := uc.settlementRepo.Get(from.Format(DayFormat), operatorID)
	if err != nil {
		return nil, err
	}
	return uc.toResult(stt), nil
}

// GetSettlementEntity obtiene la entidad completa (para serializar el reporte).
func (uc *CloseDayUseCase) GetSettlementEntity(ctx context.Context, operatorID string, day time.Time) (*entity.Settlement, error) {
	from, _ := sales.DayWindow(day)
	return uc.settlementRepo.Get(from.Format(DayFormat), operatorID)
}

// aggregate suma cantidades por (cliente, producto) y toma el snapshot de
// metadatos de producto (gana el primero visto; no falla ante discrepancias
// dentro de la ventana).
func (uc *CloseDayUseCase) aggregate(operatorID, dayKey string, sls []*entity.Sale) *entity.Settlement {
	stt := &entity.Settlement{
		Day:        dayKey,
		OperatorID: operatorID,
		ClosedAt:   time.Now(),
		Clients:    make(map[string]entity.ClientTotals),
		Items:      make(map[string]entity.ItemMeta),
	}
	for _, s := range sls {
		totals, ok := stt.Clients[s.Client.ID]
		if !ok {
			totals = entity.ClientTotals{Client: s.Client, Quantities: make(map[string]int64)}
		}
		for _, l := range s.Lines {
			totals.Quantities[l.ProductID] += l.Quantity
			if _, seen := stt.Items[l.ProductID]; !seen {
				stt.Items[l.ProductID] = entity.ItemMeta{Name: l.Name, Presentation: l.Presentation}
			}
		}
		stt.Clients[s.Client.ID] = totals
	}
	return stt
}

func (uc *CloseDayUseCase) toResult(stt *entity.Settlement) *dto.SettlementResult {
	result := &dto.SettlementResult{
		Status:     dto.SettlementStatusClosed,
		Day:        stt.Day,
		OperatorID: stt.OperatorID,
	}
	order := report.ItemOrder(stt.Items)
	for _, productID := range order {
		meta := stt.Items[productID]
		result.Items = append(result.Items, dto.SettlementItemColumn{
			ProductID:    productID,
			Name:         meta.Name,
			Presentation: meta.Presentation,
		})
	}
	for clientID, totals := range stt.Clients {
		quantities := make(map[string]int64, len(totals.Quantities))
		for productID, qty := range totals.Quantities {
			quantities[productID] = qty
		}
		result.Clients = append(result.Clients, dto.SettlementClientRow{
			ClientID:   clientID,
			ClientName: totals.Client.Name,
			Quantities: quantities,
		})
	}
	sort.Slice(result.Clients, func(i, j int) bool {
		if result.Clients[i].ClientName != result.Clients[j].ClientName {
			return result.Clients[i].ClientName < result.Clients[j].ClientName
		}
		return result.Clients[i].ClientID < result.Clients[j].ClientID
	})
	return result
}
