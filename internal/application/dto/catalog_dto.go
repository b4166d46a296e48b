package dto

import "github.com/tu-usuario/medstock-api/internal/domain/entity"

// FacilityDTO respuesta de GET /api/facilities.
type FacilityDTO struct {
	ID           string `json:"id"`
	FacilityCode string `json:"facility_code"`
	FacilityName string `json:"facility_name"`
	District     string `json:"district"`
	Region       string `json:"region"`
	FacilityType string `json:"facility_type"`
}

// FromFacility mapea la entidad al DTO.
func FromFacility(f *entity.Facility) FacilityDTO {
	return FacilityDTO{
		ID:           f.ID,
		FacilityCode: f.Code,
		FacilityName: f.Name,
		District:     f.District,
		Region:       f.Region,
		FacilityType: f.FacilityType,
	}
}

// CommodityDTO respuesta de GET /api/commodities.
type CommodityDTO struct {
	ID            string `json:"id"`
	CommodityCode string `json:"commodity_code"`
	CommodityName string `json:"commodity_name"`
	CommodityType string `json:"commodity_type"`
	UnitOfMeasure string `json:"unit_of_measure"`
}

// FromCommodity mapea la entidad al DTO.
func FromCommodity(c *entity.Commodity) CommodityDTO {
	return CommodityDTO{
		ID:            c.ID,
		CommodityCode: c.Code,
		CommodityName: c.Name,
		CommodityType: c.CommodityType,
		UnitOfMeasure: c.UnitOfMeasure,
	}
}
