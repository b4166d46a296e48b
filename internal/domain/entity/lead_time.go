package entity

import "time"

// LeadTime es el tiempo promedio de reposición (en días) de un proveedor para
// un par (facility, commodity). Única por (facility, commodity, supplier).
type LeadTime struct {
	ID                  string
	FacilityID          string
	CommodityID         string
	Supplier            string
	AverageLeadTimeDays int
	LastUpdated         time.Time
}
