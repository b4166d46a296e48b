package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	"github.com/tu-usuario/medstock-api/internal/application/stock"
	"github.com/tu-usuario/medstock-api/internal/domain"
	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Tipos de archivo soportados por la carga CSV.
const (
	FileTypeFacilities     = "facilities"
	FileTypeCommodities    = "commodities"
	FileTypeStockMovements = "stock_movements"
	FileTypeStockBalances  = "stock_balances"
	FileTypeServiceVolumes = "service_volumes"
	FileTypeLeadTimes      = "lead_times"
)

// requiredColumns define las columnas que identifican cada tipo de archivo.
// El tipo se detecta por encabezados, no por nombre de archivo.
var requiredColumns = []struct {
	fileType string
	columns  []string
}{
	{FileTypeStockMovements, []string{"facility_code", "commodity_code", "movement_type", "quantity", "movement_date"}},
	{FileTypeStockBalances, []string{"facility_code", "commodity_code", "current_stock", "reorder_level", "maximum_stock"}},
	{FileTypeLeadTimes, []string{"facility_code", "commodity_code", "supplier", "average_lead_time_days"}},
	{FileTypeServiceVolumes, []string{"facility_code", "service_type", "volume_count", "reporting_period"}},
	{FileTypeFacilities, []string{"facility_code", "facility_name", "district", "region", "facility_type"}},
	{FileTypeCommodities, []string{"commodity_code", "commodity_name", "commodity_type", "unit_of_measure"}},
}

// Processor procesa archivos CSV cargados vía API y los vuelca en el modelo.
type Processor struct {
	facilityRepo  repository.FacilityRepository
	commodityRepo repository.CommodityRepository
	volumeRepo    repository.ServiceVolumeRepository
	leadTimeRepo  repository.LeadTimeRepository
	stockUC       *stock.UseCase
}

func NewProcessor(
	facilityRepo repository.FacilityRepository,
	commodityRepo repository.CommodityRepository,
	volumeRepo repository.ServiceVolumeRepository,
	leadTimeRepo repository.LeadTimeRepository,
	stockUC *stock.UseCase,
) *Processor {
	return &Processor{
		facilityRepo:  facilityRepo,
		commodityRepo: commodityRepo,
		volumeRepo:    volumeRepo,
		leadTimeRepo:  leadTimeRepo,
		stockUC:       stockUC,
	}
}

// Process lee un CSV completo, detecta su tipo por encabezados y aplica cada
// fila. Las filas inválidas se acumulan como errores sin abortar el resto.
func (p *Processor) Process(ctx context.Context, r io.Reader) (*dto.UploadSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: el archivo CSV está vacío o es ilegible", domain.ErrInvalidInput)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	fileType, ok := detectFileType(cols)
	if !ok {
		return nil, fmt.Errorf("%w: encabezados no reconocidos, no se pudo determinar el tipo de archivo", domain.ErrInvalidInput)
	}

	summary := &dto.UploadSummary{FileType: fileType}
	rowNum := 1
	for {
		rowNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d: %v", rowNum, err))
			continue
		}

		if err := p.processRow(ctx, fileType, cols, record); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d: %v", rowNum, err))
			continue
		}
		summary.Processed++
	}

	summary.Success = len(summary.Errors) == 0
	summary.Message = fmt.Sprintf("%d filas procesadas, %d errores", summary.Processed, len(summary.Errors))
	return summary, nil
}

func detectFileType(cols map[string]int) (string, bool) {
	for _, candidate := range requiredColumns {
		match := true
		for _, c := range candidate.columns {
			if _, ok := cols[c]; !ok {
				match = false
				break
			}
		}
		if match {
			return candidate.fileType, true
		}
	}
	return "", false
}

func (p *Processor) processRow(ctx context.Context, fileType string, cols map[string]int, record []string) error {
	switch fileType {
	case FileTypeFacilities:
		return p.applyFacility(ctx, cols, record)
	case FileTypeCommodities:
		return p.applyCommodity(ctx, cols, record)
	case FileTypeStockMovements:
		return p.applyMovement(ctx, cols, record)
	case FileTypeStockBalances:
		return p.applyBalance(ctx, cols, record)
	case FileTypeServiceVolumes:
		return p.applyServiceVolume(ctx, cols, record)
	case FileTypeLeadTimes:
		return p.applyLeadTime(ctx, cols, record)
	}
	return fmt.Errorf("tipo de archivo no soportado: %s", fileType)
}

func field(cols map[string]int, record []string, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func (p *Processor) applyFacility(ctx context.Context, cols map[string]int, record []string) error {
	row := facilityRow{
		FacilityCode: field(cols, record, "facility_code"),
		FacilityName: field(cols, record, "facility_name"),
		District:     field(cols, record, "district"),
		Region:       field(cols, record, "region"),
		FacilityType: field(cols, record, "facility_type"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	existing, err := p.facilityRepo.GetByCode(ctx, row.FacilityCode)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Name = row.FacilityName
		existing.District = row.District
		existing.Region = row.Region
		existing.FacilityType = row.FacilityType
		return p.facilityRepo.Update(ctx, existing)
	}
	return p.facilityRepo.Create(ctx, &entity.Facility{
		Code:         row.FacilityCode,
		Name:         row.FacilityName,
		District:     row.District,
		Region:       row.Region,
		FacilityType: row.FacilityType,
	})
}

func (p *Processor) applyCommodity(ctx context.Context, cols map[string]int, record []string) error {
	row := commodityRow{
		CommodityCode: field(cols, record, "commodity_code"),
		CommodityName: field(cols, record, "commodity_name"),
		CommodityType: field(cols, record, "commodity_type"),
		UnitOfMeasure: field(cols, record, "unit_of_measure"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	existing, err := p.commodityRepo.GetByCode(ctx, row.CommodityCode)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Name = row.CommodityName
		existing.CommodityType = row.CommodityType
		existing.UnitOfMeasure = row.UnitOfMeasure
		return p.commodityRepo.Update(ctx, existing)
	}
	return p.commodityRepo.Create(ctx, &entity.Commodity{
		Code:          row.CommodityCode,
		Name:          row.CommodityName,
		CommodityType: row.CommodityType,
		UnitOfMeasure: row.UnitOfMeasure,
	})
}

func (p *Processor) resolvePair(ctx context.Context, facilityCode, commodityCode string) (string, string, error) {
	facility, err := p.facilityRepo.GetByCode(ctx, facilityCode)
	if err != nil {
		return "", "", err
	}
	if facility == nil {
		return "", "", fmt.Errorf("establecimiento %s no existe", facilityCode)
	}
	commodity, err := p.commodityRepo.GetByCode(ctx, commodityCode)
	if err != nil {
		return "", "", err
	}
	if commodity == nil {
		return "", "", fmt.Errorf("insumo %s no existe", commodityCode)
	}
	return facility.ID, commodity.ID, nil
}

func (p *Processor) applyMovement(ctx context.Context, cols map[string]int, record []string) error {
	row := movementRow{
		FacilityCode:  field(cols, record, "facility_code"),
		CommodityCode: field(cols, record, "commodity_code"),
		MovementType:  strings.ToUpper(field(cols, record, "movement_type")),
		Quantity:      field(cols, record, "quantity"),
		UnitCost:      field(cols, record, "unit_cost"),
		MovementDate:  field(cols, record, "movement_date"),
		Reference:     field(cols, record, "reference_number"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	facilityID, commodityID, err := p.resolvePair(ctx, row.FacilityCode, row.CommodityCode)
	if err != nil {
		return err
	}

	quantity, err := decimal.NewFromString(row.Quantity)
	if err != nil {
		return fmt.Errorf("cantidad inválida: %s", row.Quantity)
	}
	unitCost := decimal.Zero
	if row.UnitCost != "" {
		unitCost, err = decimal.NewFromString(row.UnitCost)
		if err != nil {
			return fmt.Errorf("costo unitario inválido: %s", row.UnitCost)
		}
	}
	movementDate, err := time.Parse(dto.DateLayout, row.MovementDate)
	if err != nil {
		return fmt.Errorf("fecha inválida: %s", row.MovementDate)
	}

	return p.stockUC.ApplyMovement(ctx, stock.MovementInput{
		FacilityID:      facilityID,
		CommodityID:     commodityID,
		MovementType:    row.MovementType,
		Quantity:        quantity,
		UnitCost:        unitCost,
		MovementDate:    movementDate,
		ReferenceNumber: row.Reference,
	})
}

func (p *Processor) applyBalance(ctx context.Context, cols map[string]int, record []string) error {
	row := balanceRow{
		FacilityCode:  field(cols, record, "facility_code"),
		CommodityCode: field(cols, record, "commodity_code"),
		CurrentStock:  field(cols, record, "current_stock"),
		ReorderLevel:  field(cols, record, "reorder_level"),
		MaximumStock:  field(cols, record, "maximum_stock"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	facilityID, commodityID, err := p.resolvePair(ctx, row.FacilityCode, row.CommodityCode)
	if err != nil {
		return err
	}

	current, err := decimal.NewFromString(row.CurrentStock)
	if err != nil {
		return fmt.Errorf("stock actual inválido: %s", row.CurrentStock)
	}
	reorder, err := decimal.NewFromString(row.ReorderLevel)
	if err != nil {
		return fmt.Errorf("nivel de reorden inválido: %s", row.ReorderLevel)
	}
	maximum, err := decimal.NewFromString(row.MaximumStock)
	if err != nil {
		return fmt.Errorf("stock máximo inválido: %s", row.MaximumStock)
	}

	return p.stockUC.SetBalance(ctx, stock.BalanceInput{
		FacilityID:   facilityID,
		CommodityID:  commodityID,
		CurrentStock: current,
		ReorderLevel: reorder,
		MaximumStock: maximum,
	})
}

func (p *Processor) applyServiceVolume(ctx context.Context, cols map[string]int, record []string) error {
	row := serviceVolumeRow{
		FacilityCode:    field(cols, record, "facility_code"),
		ServiceType:     field(cols, record, "service_type"),
		VolumeCount:     field(cols, record, "volume_count"),
		ReportingPeriod: field(cols, record, "reporting_period"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	facility, err := p.facilityRepo.GetByCode(ctx, row.FacilityCode)
	if err != nil {
		return err
	}
	if facility == nil {
		return fmt.Errorf("establecimiento %s no existe", row.FacilityCode)
	}

	count, err := strconv.Atoi(row.VolumeCount)
	if err != nil || count < 0 {
		return fmt.Errorf("volumen inválido: %s", row.VolumeCount)
	}
	period, err := time.Parse(dto.DateLayout, row.ReportingPeriod)
	if err != nil {
		return fmt.Errorf("período inválido: %s", row.ReportingPeriod)
	}

	return p.volumeRepo.Create(ctx, &entity.ServiceVolume{
		FacilityID:      facility.ID,
		ServiceType:     row.ServiceType,
		VolumeCount:     count,
		ReportingPeriod: period,
	})
}

func (p *Processor) applyLeadTime(ctx context.Context, cols map[string]int, record []string) error {
	row := leadTimeRow{
		FacilityCode:        field(cols, record, "facility_code"),
		CommodityCode:       field(cols, record, "commodity_code"),
		Supplier:            field(cols, record, "supplier"),
		AverageLeadTimeDays: field(cols, record, "average_lead_time_days"),
	}
	if err := row.Validate(); err != nil {
		return err
	}

	facilityID, commodityID, err := p.resolvePair(ctx, row.FacilityCode, row.CommodityCode)
	if err != nil {
		return err
	}

	days, err := strconv.Atoi(row.AverageLeadTimeDays)
	if err != nil || days <= 0 {
		return fmt.Errorf("días de entrega inválidos: %s", row.AverageLeadTimeDays)
	}

	return p.leadTimeRepo.Upsert(ctx, &entity.LeadTime{
		FacilityID:          facilityID,
		CommodityID:         commodityID,
		Supplier:            row.Supplier,
		AverageLeadTimeDays: days,
	})
}
