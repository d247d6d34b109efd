package usecase

import (
	"strings"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// BuildingTotals construye la fila sintética de totales para el subconjunto
// de filas de un edificio. Nunca falla: un subconjunto vacío produce
// agregados en blanco. La suma coerciona celda a celda, así que una celda no
// numérica suelta no invalida la columna.
func BuildingTotals(t *entity.Table, subset []entity.Row) entity.Row {
	totals := entity.Row{entity.BuildingColumn: entity.TotalsLabel}

	for _, col := range totalColumns(t) {
		var sum float64
		count := 0
		for _, row := range subset {
			if v, ok := entity.ParseNumber(row[col]); ok {
				sum += v
				count++
			}
		}
		if count == 0 || sum == 0 {
			totals[col] = ""
			continue
		}
		totals[col] = entity.FormatNumber(sum)
	}

	return totals
}

// totalColumns decide qué columnas llevan total. Si el libro traía fila de
// totales pre-calculados, manda esa fila (columnas con valor no vacío, como
// en el Excel original). Si no, llevan total las columnas cuyos valores no
// vacíos son todos numéricos.
func totalColumns(t *entity.Table) []string {
	if t == nil {
		return nil
	}

	var cols []string
	for i, col := range t.Columns {
		if i == 0 || col == entity.BuildingColumn {
			continue
		}
		if t.TotalsRef != nil {
			if strings.TrimSpace(t.TotalsRef[col]) != "" {
				cols = append(cols, col)
			}
			continue
		}
		if columnIsNumeric(t, col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// columnIsNumeric: todos los valores no vacíos de la columna son números y
// hay al menos uno.
func columnIsNumeric(t *entity.Table, col string) bool {
	seen := false
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		if _, ok := entity.ParseNumber(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}
