package export

import (
	"fmt"

	"github.com/tu-usuario/medstock-api/internal/domain"
)

// Datasets de ejemplo para probar la carga CSV sin datos reales. Los códigos
// cruzan entre archivos: cargar facilities y commodities primero deja los
// demás archivos listos para importar.

var sampleFacilities = [][]string{
	{"facility_code", "facility_name", "district", "region", "facility_type"},
	{"HC001", "Kampala Central Health Center", "Kampala", "Central", "Health Center IV"},
	{"HC002", "Gulu Regional Hospital", "Gulu", "Northern", "Regional Referral"},
	{"HC003", "Mbarara Community Clinic", "Mbarara", "Western", "Health Center III"},
	{"HC004", "Jinja District Store", "Jinja", "Eastern", "District Store"},
	{"HC005", "Arua Health Center", "Arua", "West Nile", "Health Center IV"},
}

var sampleCommodities = [][]string{
	{"commodity_code", "commodity_name", "commodity_type", "unit_of_measure"},
	{"ARV001", "TLD (Tenofovir/Lamivudine/Dolutegravir)", "ARV", "bottle"},
	{"ARV002", "Nevirapine Syrup", "ARV", "bottle"},
	{"VAC001", "BCG Vaccine", "Vaccine", "vial"},
	{"VAC002", "Measles Vaccine", "Vaccine", "vial"},
	{"TST001", "HIV Rapid Test Kit", "Test Kit", "kit"},
	{"MAL001", "Artemether/Lumefantrine", "Antimalarial", "pack"},
}

var sampleStockMovements = [][]string{
	{"facility_code", "commodity_code", "movement_type", "quantity", "unit_cost", "movement_date", "reference_number"},
	{"HC001", "ARV001", "RECEIPT", "500", "8.50", "2024-01-05", "GRN-2024-001"},
	{"HC001", "ARV001", "ISSUE", "120", "8.50", "2024-01-12", "ISS-2024-014"},
	{"HC001", "ARV001", "ISSUE", "95", "8.50", "2024-01-26", "ISS-2024-031"},
	{"HC002", "VAC001", "RECEIPT", "300", "1.20", "2024-01-08", "GRN-2024-002"},
	{"HC002", "VAC001", "ISSUE", "80", "1.20", "2024-01-15", "ISS-2024-019"},
	{"HC003", "TST001", "RECEIPT", "200", "2.00", "2024-01-10", "GRN-2024-003"},
	{"HC003", "TST001", "ADJUSTMENT", "-15", "2.00", "2024-01-20", "ADJ-2024-004"},
	{"HC005", "ARV001", "RECEIPT", "1500", "8.50", "2024-01-03", "GRN-2024-005"},
	{"HC005", "ARV001", "ISSUE", "60", "8.50", "2024-01-18", "ISS-2024-027"},
}

var sampleStockBalances = [][]string{
	{"facility_code", "commodity_code", "current_stock", "reorder_level", "maximum_stock"},
	{"HC001", "ARV001", "285", "150", "800"},
	{"HC002", "VAC001", "220", "100", "500"},
	{"HC003", "TST001", "185", "50", "400"},
	{"HC004", "MAL001", "40", "60", "300"},
	{"HC005", "ARV001", "1500", "400", "2000"},
}

var sampleServiceVolumes = [][]string{
	{"facility_code", "service_type", "volume_count", "reporting_period"},
	{"HC001", "HIV", "1250", "2024-01-01"},
	{"HC002", "Immunization", "890", "2024-01-01"},
	{"HC003", "HIV", "430", "2024-01-01"},
	{"HC004", "Malaria", "670", "2024-01-01"},
	{"HC005", "HIV", "980", "2024-01-01"},
}

var sampleLeadTimes = [][]string{
	{"facility_code", "commodity_code", "supplier", "average_lead_time_days"},
	{"HC001", "ARV001", "National Medical Stores", "21"},
	{"HC002", "VAC001", "UNICEF", "14"},
	{"HC003", "TST001", "National Medical Stores", "28"},
	{"HC004", "MAL001", "Joint Medical Store", "35"},
	{"HC005", "ARV001", "National Medical Stores", "25"},
}

var sampleDataSets = map[string][][]string{
	"facilities":      sampleFacilities,
	"commodities":     sampleCommodities,
	"stock_movements": sampleStockMovements,
	"stock_balances":  sampleStockBalances,
	"service_volumes": sampleServiceVolumes,
	"lead_times":      sampleLeadTimes,
}

// SampleData devuelve un CSV de ejemplo del tipo pedido, listo para cargar
// vía /api/upload. Devuelve ErrNotFound para tipos desconocidos.
func SampleData(dataType string) ([]byte, error) {
	rows, ok := sampleDataSets[dataType]
	if !ok {
		return nil, fmt.Errorf("%w: tipo de datos de ejemplo desconocido: %s", domain.ErrNotFound, dataType)
	}
	return writeCSV(rows[0], rows[1:])
}
