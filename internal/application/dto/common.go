package dto

// DateLayout es el formato de fechas (sin hora) en la API y los CSV.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP: {"error": <mensaje>}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadSummary es el resumen de éxito parcial de una carga CSV: las filas
// malas no abortan el archivo, se recolectan por fila.
type UploadSummary struct {
	Success   bool     `json:"success"`
	FileType  string   `json:"file_type"`
	Processed int      `json:"processed"`
	Errors    []string `json:"errors"`
	Message   string   `json:"message"`
}
