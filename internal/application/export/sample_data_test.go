package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medstock-api/internal/application/export"
	"github.com/tu-usuario/medstock-api/internal/domain"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err, "los datos de ejemplo deben ser CSV válido")
	return records
}

func TestSampleData_TodosLosTipos(t *testing.T) {
	for _, dataType := range []string{
		"facilities", "commodities", "stock_movements",
		"stock_balances", "service_volumes", "lead_times",
	} {
		t.Run(dataType, func(t *testing.T) {
			data, err := export.SampleData(dataType)
			require.NoError(t, err)

			records := parseCSV(t, data)
			require.Greater(t, len(records), 1, "encabezado más al menos una fila")
			for i, row := range records[1:] {
				assert.Len(t, row, len(records[0]), "fila %d con la misma aridad que el encabezado", i+2)
			}
		})
	}
}

func TestSampleData_TipoDesconocido(t *testing.T) {
	_, err := export.SampleData("users")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSampleData_BalancesIncluyenParDeReferencia(t *testing.T) {
	data, err := export.SampleData("stock_balances")
	require.NoError(t, err)

	records := parseCSV(t, data)
	found := false
	for _, row := range records[1:] {
		if row[0] == "HC005" && row[1] == "ARV001" {
			found = true
			assert.Equal(t, "1500", row[2])
			assert.Equal(t, "400", row[3])
		}
	}
	assert.True(t, found, "el dataset de balances incluye el par HC005/ARV001")
}

func TestSampleData_CodigosCruzanEntreArchivos(t *testing.T) {
	// Todos los facility_code referenciados en movimientos existen en el
	// archivo de facilities.
	facilities, err := export.SampleData("facilities")
	require.NoError(t, err)
	known := map[string]bool{}
	for _, row := range parseCSV(t, facilities)[1:] {
		known[row[0]] = true
	}

	movements, err := export.SampleData("stock_movements")
	require.NoError(t, err)
	for _, row := range parseCSV(t, movements)[1:] {
		assert.True(t, known[row[0]], "facility_code %s debe existir en facilities", row[0])
	}
}
