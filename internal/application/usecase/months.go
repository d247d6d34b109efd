package usecase

// Meses en castellano para los campos {mes} de las plantillas.
var spanishMonths = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName devuelve el nombre castellano del mes (1-12), o "" fuera de rango.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return spanishMonths[m-1]
}
