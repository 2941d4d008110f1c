package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize - длина отпечатка в байтах (hex-строка будет в 2 раза длиннее)
const fingerprintSize = 8

// Fingerprint возвращает короткий BLAKE2b отпечаток идентификатора аккаунта.
// Используется в логах вместо email, чтобы не писать учетные данные в открытом виде.
// Регистр и пробелы по краям не влияют на результат.
func Fingerprint(login string) string {
	normalized := strings.ToLower(strings.TrimSpace(login))
	if normalized == "" {
		return ""
	}

	// blake2b.New возвращает ошибку только для неверного размера или ключа
	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		panic(err)
	}
	_, _ = h.Write([]byte(normalized))

	return hex.EncodeToString(h.Sum(nil))
}
