package models

import (
	"log/slog"

	"github.com/iudanet/puapi/internal/crypto"
)

// Credentials - учетные данные игрока. Пароль никогда не попадает в логи.
type Credentials struct {
	Email    string
	Password string
}

// String не раскрывает учетные данные при случайной печати через fmt
func (c Credentials) String() string {
	return "Credentials(account=" + crypto.Fingerprint(c.Email) + ")"
}

// LogValue реализует slog.LogValuer: в лог попадает только отпечаток email
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("account", crypto.Fingerprint(c.Email)),
		slog.Bool("has_password", c.Password != ""),
	)
}
