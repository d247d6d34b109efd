package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	docx "github.com/lukasjarosch/go-docx"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// ExportAnnexToDOCX fusiona el anexo de un edificio sobre la plantilla Word
// y devuelve la ruta absoluta del documento generado.
func (r *ExportRepositoryImpl) ExportAnnexToDOCX(annex entity.BuildingAnnex, templatePath, outputDir string) (string, error) {
	if templatePath == "" {
		return "", errors.New("no Word template path configured")
	}
	dir, err := ensureDir(outputDir)
	if err != nil {
		return "", err
	}

	doc, err := docx.Open(templatePath)
	if err != nil {
		return "", fmt.Errorf("error opening Word template '%s': %w", templatePath, err)
	}

	if err := doc.ReplaceAll(buildPlaceholderMap(annex)); err != nil {
		return "", fmt.Errorf("error merging placeholders for '%s': %w", annex.Building, err)
	}

	outputFilename := filepath.Join(dir, fmt.Sprintf("Anexo 3 %s.docx", annex.SafeName))
	if err := doc.WriteToFile(outputFilename); err != nil {
		return "", fmt.Errorf("error writing Word document '%s': %w", outputFilename, err)
	}

	absPath, err := filepath.Abs(outputFilename)
	if err != nil {
		return outputFilename, nil
	}
	return absPath, nil
}

// buildPlaceholderMap aplana el anexo en el mapa de sustitución que espera la
// plantilla: {edificio}, {mes}, {anio} y, por cada sección, {df_<clave>} con
// las filas y {totales_<clave>} con la fila de totales.
func buildPlaceholderMap(annex entity.BuildingAnnex) docx.PlaceholderMap {
	m := docx.PlaceholderMap{
		"edificio": annex.Building,
		"mes":      annex.Month,
		"anio":     strconv.Itoa(annex.Year),
	}
	for _, section := range annex.Sections {
		key := strings.ToLower(section.Key)
		m["df_"+key] = renderSectionRows(section)
		m["totales_"+key] = renderTotalsLine(section)
	}
	return m
}

// renderSectionRows serializa las filas de una sección como texto tabulado,
// una línea por equipo, con cabecera de columnas.
func renderSectionRows(section entity.Section) string {
	if len(section.Rows) == 0 {
		return "Sin datos"
	}
	var b strings.Builder
	b.WriteString(strings.Join(section.Columns, " | "))
	for _, row := range section.Rows {
		b.WriteString("\n")
		values := make([]string, 0, len(section.Columns))
		for _, col := range section.Columns {
			values = append(values, row[col])
		}
		b.WriteString(strings.Join(values, " | "))
	}
	return b.String()
}

// renderTotalsLine serializa la fila de totales como pares "columna: valor".
func renderTotalsLine(section entity.Section) string {
	if len(section.Totals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(section.Columns))
	for _, col := range section.Columns {
		if v := section.Totals[col]; v != "" && v != entity.TotalsLabel {
			parts = append(parts, fmt.Sprintf("%s: %s", col, v))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return entity.TotalsLabel + ": " + strings.Join(parts, "; ")
}
