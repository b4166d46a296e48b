package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/alerting"
)

// AlertHandler maneja el listado y la resolución manual de alertas.
type AlertHandler struct {
	svc *alerting.Service
}

// NewAlertHandler construye el handler.
func NewAlertHandler(svc *alerting.Service) *AlertHandler {
	return &AlertHandler{svc: svc}
}

// List godoc
// @Summary      Listar alertas
// @Description  Alertas activas y resueltas con nombres de facility y commodity resueltos.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Resolve godoc
// @Summary      Resolver una alerta
// @Description  Marca la alerta como resuelta. Idempotente: resolver una alerta ya resuelta no cambia su resolved_at.
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.svc.Resolve(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alerta resuelta"})
}
