package entity

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber formatea un valor numérico como en los anexos: entero sin
// punto decimal si procede, y si no con dos decimales sin ceros sobrantes.
func FormatNumber(f float64) string {
	if math.Abs(f-math.Round(f)) < 1e-6 {
		return strconv.FormatInt(int64(math.Round(f)), 10)
	}
	out := strconv.FormatFloat(f, 'f', 2, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	return out
}
