package ingest

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
)

// Filas tipadas de los CSV de carga. La validación corre fila a fila antes de
// aplicar; una fila inválida se reporta y no aborta el archivo.

type facilityRow struct {
	FacilityCode string
	FacilityName string
	District     string
	Region       string
	FacilityType string
}

func (r facilityRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityCode, validation.Required),
		validation.Field(&r.FacilityName, validation.Required),
		validation.Field(&r.District, validation.Required),
		validation.Field(&r.Region, validation.Required),
		validation.Field(&r.FacilityType, validation.Required),
	)
}

type commodityRow struct {
	CommodityCode string
	CommodityName string
	CommodityType string
	UnitOfMeasure string
}

func (r commodityRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CommodityCode, validation.Required),
		validation.Field(&r.CommodityName, validation.Required),
		validation.Field(&r.CommodityType, validation.Required),
		validation.Field(&r.UnitOfMeasure, validation.Required),
	)
}

type movementRow struct {
	FacilityCode  string
	CommodityCode string
	MovementType  string
	Quantity      string
	UnitCost      string
	MovementDate  string
	Reference     string
}

func (r movementRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityCode, validation.Required),
		validation.Field(&r.CommodityCode, validation.Required),
		validation.Field(&r.MovementType, validation.Required, validation.In(
			entity.MovementTypeISSUE, entity.MovementTypeRECEIPT, entity.MovementTypeADJUSTMENT,
		)),
		validation.Field(&r.Quantity, validation.Required),
		validation.Field(&r.MovementDate, validation.Required, validation.Date("2006-01-02")),
	)
}

type balanceRow struct {
	FacilityCode  string
	CommodityCode string
	CurrentStock  string
	ReorderLevel  string
	MaximumStock  string
}

func (r balanceRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityCode, validation.Required),
		validation.Field(&r.CommodityCode, validation.Required),
		validation.Field(&r.CurrentStock, validation.Required),
		validation.Field(&r.ReorderLevel, validation.Required),
		validation.Field(&r.MaximumStock, validation.Required),
	)
}

type serviceVolumeRow struct {
	FacilityCode    string
	ServiceType     string
	VolumeCount     string
	ReportingPeriod string
}

func (r serviceVolumeRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityCode, validation.Required),
		validation.Field(&r.ServiceType, validation.Required),
		validation.Field(&r.VolumeCount, validation.Required),
		validation.Field(&r.ReportingPeriod, validation.Required, validation.Date("2006-01-02")),
	)
}

type leadTimeRow struct {
	FacilityCode        string
	CommodityCode       string
	Supplier            string
	AverageLeadTimeDays string
}

func (r leadTimeRow) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FacilityCode, validation.Required),
		validation.Field(&r.CommodityCode, validation.Required),
		validation.Field(&r.Supplier, validation.Required),
		validation.Field(&r.AverageLeadTimeDays, validation.Required),
	)
}
