package entity

import "time"

// Facility es un punto de atención de salud (clínica, hospital, almacén
// distrital). El código es la clave natural usada en los archivos CSV.
type Facility struct {
	ID           string
	Code         string
	Name         string
	District     string
	Region       string
	FacilityType string
	CreatedAt    time.Time
}
