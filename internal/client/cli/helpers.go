package cli

import "strings"

// maskValue скрывает значение cookie, оставляя последние 4 символа
func maskValue(value string) string {
	switch {
	case value == "":
		return "<empty>"
	case len(value) <= 8:
		return strings.Repeat("*", 8) // Короткие значения маскируем полностью
	default:
		return "****" + value[len(value)-4:]
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
