package dto

import (
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// AlertDTO respuesta de GET /api/alerts.
type AlertDTO struct {
	ID            string  `json:"id"`
	FacilityName  string  `json:"facility_name"`
	CommodityName string  `json:"commodity_name"`
	AlertType     string  `json:"alert_type"`
	AlertLevel    string  `json:"alert_level"`
	Message       string  `json:"message"`
	IsResolved    bool    `json:"is_resolved"`
	CreatedAt     string  `json:"created_at"`
	ResolvedAt    *string `json:"resolved_at"`
}

// FromAlertRow mapea la fila con nombres al DTO.
func FromAlertRow(r repository.AlertRow) AlertDTO {
	var resolvedAt *string
	if r.Alert.ResolvedAt != nil {
		s := r.Alert.ResolvedAt.Format(time.RFC3339)
		resolvedAt = &s
	}
	return AlertDTO{
		ID:            r.Alert.ID,
		FacilityName:  r.FacilityName,
		CommodityName: r.CommodityName,
		AlertType:     r.Alert.AlertType,
		AlertLevel:    r.Alert.AlertLevel,
		Message:       r.Alert.Message,
		IsResolved:    r.Alert.IsResolved,
		CreatedAt:     r.Alert.CreatedAt.Format(time.RFC3339),
		ResolvedAt:    resolvedAt,
	}
}
