package crypto

import (
	"fmt"
	"strings"
	"time"
)

// signatureAlphabet - 64 символа, индекс символа равен значению разряда
const signatureAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// TimeSignature кодирует время в миллисекундах (Unix epoch) в base64-подобную строку.
// Используется как параметр t при handshake с socket.io эндпоинтом.
// Для нулевого значения возвращает пустую строку.
func TimeSignature(now time.Time) string {
	return EncodeSignature(uint64(now.UnixMilli()))
}

// EncodeSignature кодирует произвольное беззнаковое число алфавитом подписи
func EncodeSignature(v uint64) string {
	var buf [11]byte // 64^11 > 2^64
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = signatureAlphabet[v%64]
		v /= 64
	}
	return string(buf[i:])
}

// DecodeTimeSignature восстанавливает количество миллисекунд из подписи
func DecodeTimeSignature(sig string) (uint64, error) {
	var v uint64
	for i := 0; i < len(sig); i++ {
		idx := strings.IndexByte(signatureAlphabet, sig[i])
		if idx < 0 {
			return 0, fmt.Errorf("invalid signature character %q at position %d", sig[i], i)
		}
		if v > (^uint64(0))>>6 {
			return 0, fmt.Errorf("signature %q overflows uint64", sig)
		}
		v = v*64 + uint64(idx)
	}
	return v, nil
}
