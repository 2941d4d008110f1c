// Package retry оборачивает операцию повторными попытками с фиксированной задержкой.
// Пакет ничего не знает про HTTP: какие ошибки повторять, решает вызывающий код.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultAttempts - количество попыток по умолчанию
	DefaultAttempts = 3
	// DefaultDelay - пауза между попытками по умолчанию
	DefaultDelay = 3 * time.Second
)

// Policy описывает, сколько раз и какие ошибки повторять.
// Экспоненциального backoff нет: пауза одинаковая между всеми попытками.
type Policy struct {
	// Retryable - дополнительный предикат; ошибка повторяется,
	// если совпала с RetryOn (errors.Is) или предикат вернул true
	Retryable func(err error) bool

	// OnError вызывается на каждой повторяемой ошибке, включая последнюю
	OnError func(attempt int, err error)

	// sleep подменяется в тестах
	sleep func(ctx context.Context, d time.Duration) error

	// RetryOn - виды ошибок, которые стоит повторять
	RetryOn []error

	// Attempts - общее число попыток (минимум 1)
	Attempts int

	// Delay - пауза между попытками
	Delay time.Duration
}

// IsRetryable сообщает, попадает ли ошибка в повторяемые
func (p Policy) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	for _, kind := range p.RetryOn {
		if errors.Is(err, kind) {
			return true
		}
	}
	return p.Retryable != nil && p.Retryable(err)
}

func (p Policy) attempts() int {
	if p.Attempts < 1 {
		return 1
	}
	return p.Attempts
}

// Do выполняет op с повторами.
// После исчерпания попыток возвращается последняя ошибка без обертки.
// Неповторяемая ошибка возвращается сразу, без паузы и без вызова OnError.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	attempts := p.attempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !p.IsRetryable(err) {
			return zero, err
		}

		lastErr = err
		if p.OnError != nil {
			p.OnError(attempt, err)
		}

		if attempt == attempts {
			break
		}
		if p.Delay > 0 {
			if sleepErr := sleep(ctx, p.Delay); sleepErr != nil {
				return zero, fmt.Errorf("%w: %w", sleepErr, lastErr)
			}
		}
	}

	return zero, lastErr
}

// Wrap возвращает функцию той же сигнатуры, выполняющую op через Do
func Wrap[T any](p Policy, op func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return Do(ctx, p, op)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
