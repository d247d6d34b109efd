package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
)

// writeTestWorkbook crea un libro con una hoja Ilum de ejemplo.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Ilum"))

	cells := [][]interface{}{
		{"ID CENTRO", "EDIFICIO", "DEPENDENCIA", "Potencia (W)"},
		{"C0001", "Casa Consistorial", "Planta 1", 120},
		{"C0001", "Casa Consistorial", "Planta 2", 80.456},
		{"C0002", "Biblioteca", "Sala", 60},
	}
	for r, rowCells := range cells {
		for c, v := range rowCells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Ilum", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "analisis.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadSheets(t *testing.T) {
	path := writeTestWorkbook(t)
	repo := NewWorkbookRepository()

	sheets := []types.SheetSpec{
		{Key: "Ilum", Title: "SISTEMAS DE ILUMINACIÓN"},
		{Key: "Clima", Title: "SISTEMAS DE CLIMATIZACIÓN"},
	}

	tables, missing, err := repo.LoadSheets(context.Background(), path, sheets)
	require.NoError(t, err)

	// La hoja ausente se informa, no rompe la carga.
	assert.Equal(t, []string{"Clima"}, missing)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "Ilum", table.Key)
	assert.Equal(t, "SISTEMAS DE ILUMINACIÓN", table.Title)
	assert.Equal(t, []string{"ID CENTRO", "EDIFICIO", "DEPENDENCIA", "Potencia (W)"}, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "Casa Consistorial", table.Rows[0]["EDIFICIO"])
	assert.Equal(t, "120", table.Rows[0]["Potencia (W)"])
	// Los decimales se redondean a dos cifras al cargar.
	assert.Equal(t, "80.46", table.Rows[1]["Potencia (W)"])
}

func TestLoadSheetsMissingFile(t *testing.T) {
	repo := NewWorkbookRepository()
	_, _, err := repo.LoadSheets(context.Background(), filepath.Join(t.TempDir(), "no-existe.xlsx"), types.DefaultSheets())
	assert.Error(t, err)
}

func TestBuildTableBlankHeaders(t *testing.T) {
	raw := [][]string{
		{"ID CENTRO", "", "Potencia (W)"},
		{"C1", "algo", "10"},
	}

	table := buildTable(types.SheetSpec{Key: "Ilum"}, raw)

	assert.Equal(t, []string{"ID CENTRO", "COL_2", "Potencia (W)"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "algo", table.Rows[0]["COL_2"])
}

func TestBuildTableShortRows(t *testing.T) {
	raw := [][]string{
		{"ID CENTRO", "EDIFICIO", "Potencia (W)"},
		{"C1"}, // excelize recorta las celdas vacías del final
	}

	table := buildTable(types.SheetSpec{Key: "Ilum"}, raw)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0]["EDIFICIO"])
	assert.Equal(t, "", table.Rows[0]["Potencia (W)"])
}
