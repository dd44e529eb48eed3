package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-insights/internal/application/dto"
	"github.com/jhoicas/stock-insights/internal/domain/aggregate"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/internal/domain/stock"
	"github.com/jhoicas/stock-insights/pkg/logger"
)

// InventoryUseCase foto de existencias y detalle por bodega.
type InventoryUseCase struct {
	invRepo repository.InventoryRecordRepository
	log     *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(invRepo repository.InventoryRecordRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{invRepo: invRepo, log: log.Component("inventory_snapshot")}
}

// GetSnapshot totales, etiquetas ordenadas y la matriz color×talla con su color de calor.
// Las combinaciones sin registros aparecen con 0 disponibles.
func (uc *InventoryUseCase) GetSnapshot(
	ctx context.Context,
	companyID string,
	req dto.InventoryRequest,
) (*dto.InventorySnapshotDTO, error) {
	records, err := uc.list(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	out := snapshotDTO(records)
	uc.log.Debug().
		Str("company_id", companyID).
		Int("records", len(records)).
		Int("total_available", out.TotalAvailable).
		Msg("foto de inventario calculada")
	return out, nil
}

// GetWarehouses bodegas de mayor a menor disponible con sus líneas de detalle.
func (uc *InventoryUseCase) GetWarehouses(
	ctx context.Context,
	companyID string,
	req dto.InventoryRequest,
) ([]dto.WarehouseGroupDTO, error) {
	records, err := uc.list(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	return warehouseDTOs(records), nil
}

func (uc *InventoryUseCase) list(ctx context.Context, companyID string, req dto.InventoryRequest) ([]entity.InventoryRecord, error) {
	records, err := uc.invRepo.ListInventory(ctx, companyID, repository.RecordFilter{
		Product:   req.Product,
		Warehouse: req.Warehouse,
	})
	if err != nil {
		return nil, fmt.Errorf("inventario: %w", err)
	}
	return records, nil
}

func snapshotDTO(records []entity.InventoryRecord) *dto.InventorySnapshotDTO {
	snap := stock.BuildSnapshot(records)
	maxCell := snap.MaxCell()

	grid := make([][]dto.HeatCellDTO, len(snap.Colors))
	for i, c := range snap.Colors {
		row := make([]dto.HeatCellDTO, len(snap.Sizes))
		for j, s := range snap.Sizes {
			v := snap.Cell(c, s)
			row[j] = dto.HeatCellDTO{
				Color:     c,
				Size:      s,
				Available: v,
				Fill:      stock.Hex(stock.HeatColor(v, maxCell)),
			}
		}
		grid[i] = row
	}

	return &dto.InventorySnapshotDTO{
		TotalAvailable:   snap.TotalAvailable,
		TotalOnHand:      snap.TotalOnHand,
		Sizes:            snap.Sizes,
		Colors:           snap.Colors,
		ByWarehouse:      snap.ByWarehouse,
		Grid:             grid,
		MaxCell:          maxCell,
		AvailableByColor: categoryDTOs(aggregate.Sorted(stock.AvailableByColor(records))),
		AvailableBySize:  categoryDTOs(aggregate.Sorted(stock.AvailableBySize(records))),
	}
}

func warehouseDTOs(records []entity.InventoryRecord) []dto.WarehouseGroupDTO {
	groups := stock.GroupByWarehouse(records)
	out := make([]dto.WarehouseGroupDTO, len(groups))
	for i, g := range groups {
		items := make([]dto.InventoryItemDTO, len(g.Records))
		for j, r := range g.Records {
			items[j] = dto.InventoryItemDTO{
				ProductName: r.ProductName,
				Color:       r.Color,
				Size:        r.Size,
				Available:   r.Available,
				OnHand:      r.OnHand,
			}
		}
		out[i] = dto.WarehouseGroupDTO{Warehouse: g.Warehouse, Available: g.Available, Items: items}
	}
	return out
}
