package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

// MaxEmailLen - ограничение длины адреса по RFC 5321
const MaxEmailLen = 254

// ValidateEmail проверяет, что логин похож на email адрес.
// Сервер принимает логин только в виде email, поэтому отсекаем очевидные ошибки до запроса.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email must be a plain address like name@example.com")
	}

	return nil
}

// ValidatePassword проверяет, что пароль передан.
// Требования к сложности задает сервер, здесь их не дублируем.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateCredentials проверяет email и пароль
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
