package services

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceNumeric converte um valor de origem duvidosa (célula de planilha,
// documento antigo) para float64. Qualquer coisa que não der para converter
// degrada para o default, nunca propaga erro.
func CoerceNumeric(value interface{}, defaultValue float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return defaultValue
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return defaultValue
		}
		// Planilha brasileira usa vírgula como decimal ("1.234,56")
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return defaultValue
	case nil:
		return defaultValue
	default:
		return defaultValue
	}
}

// CoerceNumericInt é a variante inteira, para ids vindos de form/query.
func CoerceNumericInt(value interface{}, defaultValue int) int {
	return int(CoerceNumeric(value, float64(defaultValue)))
}
