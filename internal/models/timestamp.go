package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// isoLayouts - варианты ISO-8601: разделитель T или пробел, точность до часа, минуты
// или (дробной) секунды, смещение "Z", "+hh:mm", "+hhmm", "+hh" или без смещения
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	clocks := []string{"15:04:05.999999999", "15:04", "15"}
	zones := []string{"Z07:00", "Z0700", "Z07", ""}

	layouts := make([]string, 0, 2*len(clocks)*len(zones)+1)
	for _, sep := range []string{"T", " "} {
		for _, clock := range clocks {
			for _, zone := range zones {
				layouts = append(layouts, "2006-01-02"+sep+clock+zone)
			}
		}
	}
	return append(layouts, "2006-01-02")
}

// ParseTimestamp разбирает ISO-8601 строку.
// Пустое значение - не ошибка: возвращается nil.
// Значения без смещения считаются UTC.
func ParseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts, nil
		}
	}

	return nil, fmt.Errorf("invalid ISO-8601 timestamp %q", value)
}

// LenientTime хранит значение, которое API отдает то как ISO-8601, то в произвольном виде.
// Если разбор удался, заполнено Time; исходная строка всегда сохраняется в Raw.
type LenientTime struct {
	Time *time.Time
	Raw  string
}

// IsNull сообщает, что значение отсутствовало или было пустым
func (l LenientTime) IsNull() bool {
	return l.Time == nil && l.Raw == ""
}

// String возвращает RFC 3339 для разобранного значения и исходную строку иначе
func (l LenientTime) String() string {
	if l.Time != nil {
		return l.Time.Format(time.RFC3339)
	}
	return l.Raw
}

// parseLenient разбирает произвольное JSON значение: null, строку или что-то еще
func parseLenient(raw json.RawMessage) LenientTime {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return LenientTime{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// не строка (число, bool, объект) - оставляем как есть
		return LenientTime{Raw: text}
	}

	ts, err := ParseTimestamp(s)
	if err != nil {
		return LenientTime{Raw: s}
	}
	return LenientTime{Time: ts, Raw: s}
}
