package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

func sampleAnnexes() []entity.BuildingAnnex {
	return []entity.BuildingAnnex{
		{
			Building: "Casa Consistorial",
			Sections: []entity.Section{{
				Key:     "Ilum",
				Title:   "Iluminación",
				Columns: []string{"ID CENTRO", "Potencia (W)", "Unidades"},
				Totals: entity.Row{
					"ID CENTRO":    entity.TotalsLabel,
					"Potencia (W)": "300",
					"Unidades":     "12",
				},
			}},
		},
		{
			Building: "Polideportivo",
			Sections: []entity.Section{{
				Key:     "Clima",
				Title:   "Climatización",
				Columns: []string{"ID CENTRO", "Potencia (kW)"},
				Totals:  entity.Row{},
			}},
		},
	}
}

func TestFlattenTotals(t *testing.T) {
	records := flattenTotals(sampleAnnexes())

	require.Len(t, records, 2)
	assert.Equal(t, totalsRecord{"Casa Consistorial", "Iluminación", "Potencia (W)", "300"}, records[0])
	assert.Equal(t, totalsRecord{"Casa Consistorial", "Iluminación", "Unidades", "12"}, records[1])
}

func TestExportTotalsToCSV(t *testing.T) {
	repo := &ExportRepositoryImpl{}

	path, err := repo.ExportTotalsToCSV(sampleAnnexes(), "totales", t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Edificio", "Sección", "Columna", "Total"}, rows[0])
	assert.Equal(t, []string{"Casa Consistorial", "Iluminación", "Potencia (W)", "300"}, rows[1])
}

func TestExportTotalsToJSON(t *testing.T) {
	repo := &ExportRepositoryImpl{}

	path, err := repo.ExportTotalsToJSON(sampleAnnexes(), "totales", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []totalsRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Casa Consistorial", records[0].Building)
}
