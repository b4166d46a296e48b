package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/usecase"
)

// CatalogHandler maneja facilities, commodities y balances de stock.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListFacilities godoc
// @Summary      Listar establecimientos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.FacilityDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/facilities [get]
func (h *CatalogHandler) ListFacilities(c *fiber.Ctx) error {
	list, err := h.uc.Facilities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListCommodities godoc
// @Summary      Listar insumos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.CommodityDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/commodities [get]
func (h *CatalogHandler) ListCommodities(c *fiber.Ctx) error {
	list, err := h.uc.Commodities(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListStockBalances godoc
// @Summary      Listar balances de stock
// @Description  Balances por par (facility, commodity) con stock_status derivado (LOW/OK).
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   dto.StockBalanceDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock-balances [get]
func (h *CatalogHandler) ListStockBalances(c *fiber.Ctx) error {
	list, err := h.uc.StockBalances(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
