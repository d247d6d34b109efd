// Package sanitize convierte etiquetas arbitrarias (nombres de edificio,
// secciones, filtros) en nombres de archivo válidos en Windows.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMaxLength deja margen para la ruta completa (límite de 260 en Windows).
	DefaultMaxLength = 100

	// DefaultName se usa cuando la entrada queda vacía tras la limpieza.
	DefaultName = "documento"
)

// Caracteres no válidos en Windows, más las comillas tipográficas que
// aparecen en los nombres de centro del Excel.
const reservedChars = `<>:"|?*\/` + "“”"

var collapseRe = regexp.MustCompile(`[_\s]+`)

// stripMarks descompone (NFD) y elimina las marcas diacríticas: á→a, ñ→n.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Filename limpia name con la longitud máxima por defecto.
func Filename(name string) string {
	return FilenameMax(name, DefaultMaxLength)
}

// FilenameMax cleans name so it is safe as a Windows filename. It is total:
// every input maps to a valid, non-empty name and never errors.
func FilenameMax(name string, maxLen int) string {
	cleaned := name
	for _, ch := range reservedChars {
		cleaned = strings.ReplaceAll(cleaned, string(ch), "")
	}

	if out, _, err := transform.String(stripMarks, cleaned); err == nil {
		cleaned = out
	}

	cleaned = collapseRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if r := []rune(cleaned); len(r) > maxLen {
		cleaned = strings.TrimSpace(string(r[:maxLen]))
	}

	if cleaned == "" {
		return DefaultName
	}
	return cleaned
}
