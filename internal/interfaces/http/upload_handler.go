package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medstock-api/internal/application/ingest"
	"github.com/tu-usuario/medstock-api/pkg/logger"
)

// UploadHandler maneja la carga de archivos CSV.
type UploadHandler struct {
	processor *ingest.Processor
	log       *logger.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(processor *ingest.Processor, log *logger.Logger) *UploadHandler {
	return &UploadHandler{processor: processor, log: log}
}

// Upload godoc
// @Summary      Cargar archivo CSV
// @Description  Detecta el tipo por encabezados (facilities, commodities, stock_movements, stock_balances, service_volumes, lead_times) y aplica cada fila. Las filas inválidas se reportan sin abortar el archivo.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.UploadSummary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "se requiere el campo multipart 'file'")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "no se pudo abrir el archivo")
	}
	defer f.Close()

	summary, err := h.processor.Process(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}

	h.log.Info().
		Str("file", fileHeader.Filename).
		Str("file_type", summary.FileType).
		Int("processed", summary.Processed).
		Int("errors", len(summary.Errors)).
		Msg("archivo CSV procesado")

	return c.JSON(summary)
}
