package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/dto"
	appforecast "github.com/tu-usuario/medstock-api/internal/application/forecast"
	"github.com/tu-usuario/medstock-api/internal/domain/repository"
)

// PredictionHandler maneja la generación y el listado de predicciones.
type PredictionHandler struct {
	uc *appforecast.PredictorUseCase
}

// NewPredictionHandler construye el handler.
func NewPredictionHandler(uc *appforecast.PredictorUseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// List godoc
// @Summary      Listar predicciones
// @Tags         predictions
// @Produce      json
// @Param        facility_id   query  string  false  "Filtrar por facility (UUID)"
// @Param        commodity_id  query  string  false  "Filtrar por commodity (UUID)"
// @Param        limit         query  int     false  "Máximo de filas (default 100)"
// @Success      200  {array}   dto.PredictionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/predictions [get]
func (h *PredictionHandler) List(c *fiber.Ctx) error {
	filter := repository.PredictionFilter{
		FacilityID:  c.Query("facility_id"),
		CommodityID: c.Query("commodity_id"),
		Limit:       c.QueryInt("limit"),
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Generate godoc
// @Summary      Generar predicción de quiebre de stock
// @Description  Corre la regla determinista para un par (facility, commodity), persiste el resultado y actualiza alertas.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GeneratePredictionRequest  true  "facility_id y commodity_id"
// @Success      201   {object}  dto.GeneratePredictionResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/predictions [post]
func (h *PredictionHandler) Generate(c *fiber.Ctx) error {
	var in dto.GeneratePredictionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	result, err := h.uc.Predict(c.Context(), in.FacilityID, in.CommodityID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
