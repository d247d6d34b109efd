package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cofrian/artecoin-automatizaciones/internal/domain/entity"
)

// totalsRecord es la forma plana de un total para los volcados CSV y JSON.
type totalsRecord struct {
	Building string `json:"edificio"`
	Section  string `json:"seccion"`
	Column   string `json:"columna"`
	Total    string `json:"total"`
}

// ExportTotalsToCSV vuelca los totales de todos los edificios en formato
// largo: una fila por edificio, sección y columna totalizada.
func (r *ExportRepositoryImpl) ExportTotalsToCSV(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"Edificio", "Sección", "Columna", "Total"})
	for _, record := range flattenTotals(annexes) {
		writer.Write([]string{record.Building, record.Section, record.Column, record.Total})
	}

	return filepath.Abs(outputFilename)
}

// ExportTotalsToJSON vuelca los mismos totales en JSON indentado.
func (r *ExportRepositoryImpl) ExportTotalsToJSON(annexes []entity.BuildingAnnex, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(flattenTotals(annexes)); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func flattenTotals(annexes []entity.BuildingAnnex) []totalsRecord {
	records := make([]totalsRecord, 0, len(annexes))
	for _, annex := range annexes {
		for _, section := range annex.Sections {
			for _, col := range section.Columns {
				v := section.Totals[col]
				if v == "" || v == entity.TotalsLabel {
					continue
				}
				records = append(records, totalsRecord{
					Building: annex.Building,
					Section:  section.Title,
					Column:   col,
					Total:    v,
				})
			}
		}
	}
	return records
}
