package usecase

import (
	"strings"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// DefaultIDColumn es la columna de identificador de centro usada para
// recortar las filas vacías del final de cada hoja.
const DefaultIDColumn = "ID CENTRO"

// CleanTable deja la tabla lista para el cálculo de totales: recorta las
// filas vacías del final, elimina las filas en blanco intermedias y separa la
// fila de totales del propio Excel (si existe) en TotalsRef para que nunca se
// cuente dos veces. El conjunto de columnas no cambia.
func CleanTable(t *entity.Table, idColumn string) {
	if t == nil || len(t.Rows) == 0 {
		return
	}
	if idColumn == "" {
		idColumn = DefaultIDColumn
	}

	// Recorte tras la última fila con ID válido, conservando como mucho una
	// fila más (la de totales pre-calculados del libro).
	if hasColumn(t, idColumn) {
		last := -1
		for i := len(t.Rows) - 1; i >= 0; i-- {
			if validID(t.Rows[i][idColumn]) {
				last = i
				break
			}
		}
		if last >= 0 && last+2 < len(t.Rows) {
			t.Rows = t.Rows[:last+2]
		}
	}

	// Filas completamente en blanco fuera.
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if !row.IsBlank() {
			kept = append(kept, row)
		}
	}
	t.Rows = kept

	// Fila final de totales del libro: se aparta como referencia de qué
	// columnas llevan total y se retira de los datos.
	if n := len(t.Rows); n > 0 {
		lastRow := t.Rows[n-1]
		if isWorkbookTotalsRow(lastRow, idColumn) {
			ref := lastRow.Clone()
			for k, v := range ref {
				if strings.EqualFold(strings.TrimSpace(v), "Total") {
					ref[k] = ""
				}
			}
			t.TotalsRef = ref
			t.Rows = t.Rows[:n-1]
		}
	}
}

// isWorkbookTotalsRow detecta la fila de totales que el Excel arrastra al
// final de cada hoja: o lleva la palabra "Total" en alguna celda, o no tiene
// ID de centro válido pese a tener contenido.
func isWorkbookTotalsRow(row entity.Row, idColumn string) bool {
	for _, v := range row {
		if strings.EqualFold(strings.TrimSpace(v), "Total") {
			return true
		}
	}
	if _, ok := row[idColumn]; !ok {
		return false
	}
	return !validID(row[idColumn]) && !row.IsBlank()
}

func validID(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}

func hasColumn(t *entity.Table, name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
