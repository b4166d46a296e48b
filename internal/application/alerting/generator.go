// Package alerting implementa el generador de alertas por umbral y su ciclo
// de resolución.
package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/medstock-api/internal/domain/entity"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// Generator evalúa las reglas de alerta de un par (facility, commodity) de
// forma idempotente: a lo sumo una alerta activa por tipo; si la condición
// persiste se actualiza mensaje y nivel, si desaparece se resuelve. Sin
// estado propio: opera sobre el repositorio que recibe (pool o tx).
type Generator struct {
	now func() time.Time
}

// NewGenerator construye el generador.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// EvaluatePair aplica las tres reglas sobre el estado actual del par:
//
//	stock <= 0                          ⇒ STOCK_OUT / CRITICAL
//	0 < stock <= reorder_level          ⇒ LOW_STOCK / WARNING
//	última predicción CRITICAL o HIGH   ⇒ REORDER   / CRITICAL o WARNING
//
// latest puede ser nil (par nunca predicho). Dos evaluaciones consecutivas
// con el mismo estado no aumentan el número de alertas activas.
func (g *Generator) EvaluatePair(
	ctx context.Context,
	alertRepo repository.AlertRepository,
	balance *entity.StockBalance,
	latest *entity.Prediction,
) error {
	if balance.IsStockedOut() {
		msg := fmt.Sprintf("Stock agotado (%s unidades en existencia)", balance.CurrentStock.String())
		if err := g.upsert(ctx, alertRepo, balance, entity.AlertTypeStockOut, entity.AlertLevelCritical, msg); err != nil {
			return err
		}
	} else if err := g.resolveIfActive(ctx, alertRepo, balance, entity.AlertTypeStockOut); err != nil {
		return err
	}

	if !balance.IsStockedOut() && balance.IsLow() {
		msg := fmt.Sprintf("Stock actual (%s) en o bajo el nivel de reorden (%s)",
			balance.CurrentStock.String(), balance.ReorderLevel.String())
		if err := g.upsert(ctx, alertRepo, balance, entity.AlertTypeLowStock, entity.AlertLevelWarning, msg); err != nil {
			return err
		}
	} else if err := g.resolveIfActive(ctx, alertRepo, balance, entity.AlertTypeLowStock); err != nil {
		return err
	}

	level, triggered := reorderLevelFor(latest)
	if triggered {
		msg := fmt.Sprintf("Riesgo de quiebre %s: quiebre previsto para %s",
			latest.RiskLevel, latest.PredictedStockOutDate.Format("2006-01-02"))
		return g.upsert(ctx, alertRepo, balance, entity.AlertTypeReorder, level, msg)
	}
	return g.resolveIfActive(ctx, alertRepo, balance, entity.AlertTypeReorder)
}

// reorderLevelFor mapea el riesgo de la última predicción al nivel de la
// alerta REORDER. Solo CRITICAL y HIGH disparan.
func reorderLevelFor(latest *entity.Prediction) (string, bool) {
	if latest == nil {
		return "", false
	}
	switch latest.RiskLevel {
	case entity.RiskCritical:
		return entity.AlertLevelCritical, true
	case entity.RiskHigh:
		return entity.AlertLevelWarning, true
	}
	return "", false
}

func (g *Generator) upsert(
	ctx context.Context,
	alertRepo repository.AlertRepository,
	balance *entity.StockBalance,
	alertType, level, msg string,
) error {
	existing, err := alertRepo.GetActive(ctx, balance.FacilityID, balance.CommodityID, alertType)
	if err != nil {
		return fmt.Errorf("buscar alerta activa %s: %w", alertType, err)
	}
	now := g.now()
	if existing != nil {
		existing.AlertLevel = level
		existing.Message = msg
		existing.UpdatedAt = now
		return alertRepo.Update(ctx, existing)
	}
	return alertRepo.Create(ctx, &entity.Alert{
		FacilityID:  balance.FacilityID,
		CommodityID: balance.CommodityID,
		AlertType:   alertType,
		AlertLevel:  level,
		Message:     msg,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (g *Generator) resolveIfActive(
	ctx context.Context,
	alertRepo repository.AlertRepository,
	balance *entity.StockBalance,
	alertType string,
) error {
	existing, err := alertRepo.GetActive(ctx, balance.FacilityID, balance.CommodityID, alertType)
	if err != nil {
		return fmt.Errorf("buscar alerta activa %s: %w", alertType, err)
	}
	if existing == nil {
		return nil
	}
	return alertRepo.Resolve(ctx, existing.ID, g.now())
}
