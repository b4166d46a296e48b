package entity

import "time"

// ServiceVolume es el conteo de atenciones de una facility por categoría de
// servicio y período de reporte. Proxy de consumo, independiente del stock.
type ServiceVolume struct {
	ID              string
	FacilityID      string
	ServiceType     string // HIV, Immunization, etc.
	VolumeCount     int
	ReportingPeriod time.Time
	CreatedAt       time.Time
}
