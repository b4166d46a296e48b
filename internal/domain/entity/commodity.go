package entity

import "time"

// Commodity es un insumo médico rastreable (medicamento, vacuna, prueba
// diagnóstica). El código es la clave natural usada en los archivos CSV.
type Commodity struct {
	ID            string
	Code          string
	Name          string
	CommodityType string // ARV, Vaccine, Test Kit, etc.
	UnitOfMeasure string
	CreatedAt     time.Time
}
