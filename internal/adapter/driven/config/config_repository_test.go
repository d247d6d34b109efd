package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "anexos.yaml", `
excel: excel/proyecto/analisis.xlsx
template: word/anexos/Plantilla_Anexo_3.docx
dir: word/anexos
report_type: [docx, pdf]
month: 6
year: 2026
sheets:
  - key: Ilum
    title: SISTEMAS DE ILUMINACIÓN
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "excel/proyecto/analisis.xlsx", cfg.ExcelPath)
	assert.Equal(t, []string{"docx", "pdf"}, cfg.ReportType)
	assert.Equal(t, 6, cfg.Month)
	require.Len(t, cfg.Sheets, 1)
	assert.Equal(t, "Ilum", cfg.Sheets[0].Key)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "anexos.toml", `
excel = "analisis.xlsx"
refresh_fields = true
buildings = ["Casa Consistorial"]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "analisis.xlsx", cfg.ExcelPath)
	assert.True(t, cfg.RefreshFields)
	assert.Equal(t, []string{"Casa Consistorial"}, cfg.Buildings)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeFile(t, "anexos.json", `{"excel": "analisis.xlsx", "id_column": "ID CENTRO"}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ID CENTRO", cfg.IDColumn)
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "no-existe.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "[s]\nk=v"))
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = repo.LoadConfigFile(dir)
	assert.Error(t, err)
}
