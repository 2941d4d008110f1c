package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Виды ошибок транспорта. Все три считаются повторяемыми провайдером авторизации.
var (
	// ErrMalformedResponse - ответ не JSON или в нем нет обязательного поля
	ErrMalformedResponse = errors.New("malformed response")

	// ErrTransport - сетевая ошибка, таймаут или отмена запроса
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus - сервер ответил статусом вне 2xx
	ErrHTTPStatus = errors.New("unexpected http status")
)

// StatusError содержит код ответа и начало тела для диагностики
type StatusError struct {
	Method     string
	URL        string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s: status %d %s: %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Is позволяет errors.Is(err, ErrHTTPStatus)
func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// ErrorKind возвращает короткое имя вида ошибки для логов
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrHTTPStatus):
		return "http_status"
	case errors.Is(err, ErrTransport):
		return "transport_failure"
	default:
		return "unknown"
	}
}

// RetryableKinds - ошибки, которые имеет смысл повторять
func RetryableKinds() []error {
	return []error{ErrMalformedResponse, ErrTransport, ErrHTTPStatus}
}
