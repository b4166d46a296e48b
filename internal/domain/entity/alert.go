package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeStockOut = "STOCK_OUT" // stock en cero
	AlertTypeLowStock = "LOW_STOCK" // stock en o bajo el nivel de reorden
	AlertTypeReorder  = "REORDER"   // riesgo de quiebre CRITICAL/HIGH según la última predicción
)

// Niveles de alerta.
const (
	AlertLevelInfo     = "INFO"
	AlertLevelWarning  = "WARNING"
	AlertLevelCritical = "CRITICAL"
)

// Alert es una notificación ligada a un umbral superado. A lo sumo una alerta
// activa por (facility, commodity, tipo); la única mutación permitida además
// de la creación/actualización del mensaje es la transición de resolución.
type Alert struct {
	ID          string
	FacilityID  string
	CommodityID string
	AlertType   string
	AlertLevel  string
	Message     string
	IsResolved  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

// Resolve marca la alerta como resuelta. Idempotente: si ya estaba resuelta
// no toca el timestamp original.
func (a *Alert) Resolve(at time.Time) {
	if a.IsResolved {
		return
	}
	a.IsResolved = true
	a.ResolvedAt = &at
}
