package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

func tablaIlum(rows []entity.Row) *entity.Table {
	return &entity.Table{
		Key:     "Ilum",
		Title:   "SISTEMAS DE ILUMINACIÓN",
		Columns: []string{"ID CENTRO", "EDIFICIO", "DEPENDENCIA", "Potencia (W)", "Unidades"},
		Rows:    rows,
	}
}

func TestBuildingTotalsIntegerFormatting(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Casa Consistorial", "DEPENDENCIA": "Planta 1", "Potencia (W)": "100", "Unidades": "4"},
		{"ID CENTRO": "C1", "EDIFICIO": "Casa Consistorial", "DEPENDENCIA": "Planta 2", "Potencia (W)": "200", "Unidades": "6"},
	})

	totals := BuildingTotals(table, table.Rows)

	assert.Equal(t, entity.TotalsLabel, totals[entity.BuildingColumn])
	assert.Equal(t, "300", totals["Potencia (W)"])
	assert.Equal(t, "10", totals["Unidades"])
}

func TestBuildingTotalsDecimalFormatting(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Biblioteca", "Potencia (W)": "1.25", "Unidades": "1"},
		{"ID CENTRO": "C1", "EDIFICIO": "Biblioteca", "Potencia (W)": "1.25", "Unidades": "1"},
	})

	totals := BuildingTotals(table, table.Rows)

	// 2.50 se recorta a 2.5, sin ceros sobrantes.
	assert.Equal(t, "2.5", totals["Potencia (W)"])
}

func TestBuildingTotalsOrderIndependent(t *testing.T) {
	rows := []entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Polideportivo", "Potencia (W)": "12.4", "Unidades": "2"},
		{"ID CENTRO": "C2", "EDIFICIO": "Polideportivo", "Potencia (W)": "7.6", "Unidades": "3"},
		{"ID CENTRO": "C3", "EDIFICIO": "Polideportivo", "Potencia (W)": "30", "Unidades": "1"},
	}
	reversed := []entity.Row{rows[2], rows[1], rows[0]}

	a := BuildingTotals(tablaIlum(rows), rows)
	b := BuildingTotals(tablaIlum(reversed), reversed)

	assert.Equal(t, a, b)
	assert.Equal(t, "50", a["Potencia (W)"])
}

func TestBuildingTotalsEmptySubset(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Otro Edificio", "Potencia (W)": "100", "Unidades": "1"},
	})

	totals := BuildingTotals(table, nil)

	require.NotNil(t, totals)
	assert.Equal(t, entity.TotalsLabel, totals[entity.BuildingColumn])
	assert.Equal(t, "", totals["Potencia (W)"])
	assert.Equal(t, "", totals["Unidades"])
}

func TestBuildingTotalsCoercesMixedColumn(t *testing.T) {
	// Una celda no numérica suelta no invalida la columna cuando la fila de
	// referencia del libro la marca con total.
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Teatro", "Potencia (W)": "10", "Unidades": "s/d"},
		{"ID CENTRO": "C2", "EDIFICIO": "Teatro", "Potencia (W)": "n/a", "Unidades": "3"},
		{"ID CENTRO": "C3", "EDIFICIO": "Teatro", "Potencia (W)": "5", "Unidades": "2"},
	})
	table.TotalsRef = entity.Row{"Potencia (W)": "15", "Unidades": "5"}

	totals := BuildingTotals(table, table.Rows)

	assert.Equal(t, "15", totals["Potencia (W)"])
	assert.Equal(t, "5", totals["Unidades"])
}

func TestBuildingTotalsRespectsReferenceRow(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Mercado", "Potencia (W)": "40", "Unidades": "2"},
	})
	// El libro solo pide total en Potencia.
	table.TotalsRef = entity.Row{"Potencia (W)": "40", "Unidades": ""}

	totals := BuildingTotals(table, table.Rows)

	assert.Equal(t, "40", totals["Potencia (W)"])
	_, hasUnidades := totals["Unidades"]
	assert.False(t, hasUnidades)
}

func TestBuildingTotalsSkipsTextColumns(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Escuela", "DEPENDENCIA": "Aula 1", "Potencia (W)": "20", "Unidades": "1"},
		{"ID CENTRO": "C2", "EDIFICIO": "Escuela", "DEPENDENCIA": "Aula 2", "Potencia (W)": "30", "Unidades": "1"},
	})

	totals := BuildingTotals(table, table.Rows)

	_, hasDependencia := totals["DEPENDENCIA"]
	assert.False(t, hasDependencia)
	assert.Equal(t, "50", totals["Potencia (W)"])
}

func TestBuildingTotalsZeroSumRendersBlank(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Almacén", "Potencia (W)": "0", "Unidades": "0"},
	})

	totals := BuildingTotals(table, table.Rows)

	assert.Equal(t, "", totals["Potencia (W)"])
	assert.Equal(t, "", totals["Unidades"])
}

func TestBuildingTotalsCommaDecimal(t *testing.T) {
	table := tablaIlum([]entity.Row{
		{"ID CENTRO": "C1", "EDIFICIO": "Ayuntamiento", "Potencia (W)": "1,5", "Unidades": "1"},
		{"ID CENTRO": "C2", "EDIFICIO": "Ayuntamiento", "Potencia (W)": "2,25", "Unidades": "1"},
	})

	totals := BuildingTotals(table, table.Rows)

	assert.Equal(t, "3.75", totals["Potencia (W)"])
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", MonthName(1))
	assert.Equal(t, "Diciembre", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
