package entity

import (
	"strconv"
	"strings"
)

// Row es una fila de una hoja: columna → valor ya normalizado como texto.
type Row map[string]string

// Table contains the cleaned contents of one worksheet.
type Table struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`

	// TotalsRef guarda la fila de totales pre-calculados del propio Excel
	// cuando se detectó una; marca qué columnas llevan total. Nil si el
	// Excel no traía fila de totales.
	TotalsRef Row `json:"-"`
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Subset devuelve las filas cuyo valor en column coincide exactamente con value.
func (t *Table) Subset(column, value string) []Row {
	if t == nil {
		return nil
	}
	var out []Row
	for _, row := range t.Rows {
		if row[column] == value {
			out = append(out, row)
		}
	}
	return out
}

// Buildings devuelve las etiquetas distintas de la columna indicada, en orden
// de aparición.
func (t *Table) Buildings(column string) []string {
	if t == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[column])
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ParseNumber interpreta un valor de celda como número. Admite coma decimal
// (el Excel de origen está en castellano).
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// IsBlank reports whether every cell of the row is empty.
func (r Row) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clone copia la fila.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
