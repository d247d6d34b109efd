package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
	"github.com/cofrian/artecoin-automatizaciones/internal/domain/repository"
	"github.com/cofrian/artecoin-automatizaciones/internal/shared/types"
)

// WorkbookRepositoryImpl implementa el WorkbookRepository sobre excelize.
type WorkbookRepositoryImpl struct{}

// NewWorkbookRepository crea una nueva implementación del WorkbookRepository.
func NewWorkbookRepository() repository.WorkbookRepository {
	return &WorkbookRepositoryImpl{}
}

// LoadSheets lee las hojas pedidas del libro. Una hoja ausente se devuelve en
// missing y no interrumpe la carga; un error de lectura sí es fatal.
func (r *WorkbookRepositoryImpl) LoadSheets(ctx context.Context, path string, sheets []types.SheetSpec) ([]entity.Table, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	available := map[string]bool{}
	for _, name := range f.GetSheetList() {
		available[strings.TrimSpace(name)] = true
	}

	var tables []entity.Table
	var missing []string

	for _, spec := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if !available[spec.Key] {
			missing = append(missing, spec.Key)
			continue
		}

		raw, err := f.GetRows(spec.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("reading sheet %s: %w", spec.Key, err)
		}
		tables = append(tables, buildTable(spec, raw))
	}

	return tables, missing, nil
}

// buildTable monta la tabla a partir de las filas crudas. La primera fila es
// la cabecera; las cabeceras vacías reciben un nombre posicional.
func buildTable(spec types.SheetSpec, raw [][]string) entity.Table {
	table := entity.Table{Key: spec.Key, Title: spec.Title}
	if len(raw) == 0 {
		return table
	}

	for i, h := range raw[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("COL_%d", i+1)
		}
		table.Columns = append(table.Columns, h)
	}

	for _, rawRow := range raw[1:] {
		row := make(entity.Row, len(table.Columns))
		for i, col := range table.Columns {
			v := ""
			if i < len(rawRow) {
				v = rawRow[i]
			}
			row[col] = normalizeCell(v)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// normalizeCell redondea los valores numéricos a dos decimales y deja el
// resto tal cual, como hacía la carga original del Excel.
func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if f, ok := entity.ParseNumber(s); ok {
		return entity.FormatNumber(f)
	}
	return s
}
