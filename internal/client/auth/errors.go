package auth

import (
	"errors"
	"fmt"
)

// ErrRetriesExhausted - шаг handshake не удался ни с одной попытки
var ErrRetriesExhausted = errors.New("retries exhausted")

// Step - шаг handshake
type Step string

const (
	StepCreateSession    Step = "create_session"
	StepFetchUser        Step = "fetch_user"
	StepFetchIngress     Step = "fetch_ingress_cookie"
	StepTransportSession Step = "transport_session"
)

// StepError описывает, на каком шаге и после скольких попыток прервался handshake.
// errors.Is(err, ErrRetriesExhausted) истинно, только если попытки закончились.
type StepError struct {
	Err       error
	Step      Step
	Attempts  int
	Exhausted bool
}

func (e *StepError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("%s: %s after %d attempts: %v", e.Step, ErrRetriesExhausted, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func (e *StepError) Is(target error) bool {
	return target == ErrRetriesExhausted && e.Exhausted
}
