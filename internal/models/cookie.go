package models

import (
	"net/http"
	"time"
)

// Cookie - cookie, которую провайдер авторизации выставляет в сессию.
// Ключ идентичности - Name (с учетом регистра).
type Cookie struct {
	Expires time.Time `json:"expires"`
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Domain  string    `json:"domain"`
	Path    string    `json:"path"`
}

// HTTPCookie конвертирует cookie в формат net/http для записи в cookie jar
func (c Cookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:    c.Name,
		Value:   c.Value,
		Domain:  c.Domain,
		Path:    c.Path,
		Expires: c.Expires,
	}
}

// UpsertCookies добавляет incoming в existing по имени:
// существующая cookie заменяется на своей позиции, новая дописывается в конец.
// Повторное применение того же набора не меняет результат.
// existing не модифицируется.
func UpsertCookies(existing, incoming []Cookie) []Cookie {
	result := make([]Cookie, 0, len(existing)+len(incoming))
	result = append(result, existing...)

	index := make(map[string]int, len(result))
	for i, c := range result {
		if _, ok := index[c.Name]; !ok {
			index[c.Name] = i
		}
	}

	for _, c := range incoming {
		if i, ok := index[c.Name]; ok {
			result[i] = c
			continue
		}
		index[c.Name] = len(result)
		result = append(result, c)
	}

	return result
}
