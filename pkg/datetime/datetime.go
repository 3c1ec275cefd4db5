// Package datetime парсинг моментов времени из двух текстовых кодировок,
// встречающихся в payload'ах клиентов:
//
//   - ISO-8601 со смещением: "2025-11-22T15:00:00+07:00" (признак - разделитель 'T')
//   - легаси-формат "HH:mm:ss dd/MM/yyyy": "15:00:00 22/11/2025" (пробел, без 'T')
//
// Отсутствующее значение (пустая строка) - это не ошибка и не "сейчас":
// парсер возвращает nil, вызывающий обязан трактовать его как "неизвестно".
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LegacyLayout легаси-формат времени "HH:mm:ss dd/MM/yyyy"
const LegacyLayout = "15:04:05 02/01/2006"

// ErrMalformed возвращается для непустой строки, которую не удалось распарсить
// ни в одной из поддерживаемых кодировок
var ErrMalformed = errors.New("datetime: malformed datetime string")

// DefaultLocation зона по умолчанию для легаси-формата (клиенты шлют UTC+7)
var DefaultLocation = FixedOffset(7)

// FixedOffset возвращает фиксированную зону со смещением в часах от UTC
func FixedOffset(hours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", hours), hours*3600)
}

// ParseInstant парсит момент времени в зоне по умолчанию.
// Возвращает (nil, nil) для пустой строки.
func ParseInstant(s string) (*time.Time, error) {
	return ParseInstantIn(s, DefaultLocation)
}

// ParseInstantIn парсит момент времени.
// Для ISO-формы смещение берется из самой строки, loc не используется.
// Для легаси-формы календарные поля интерпретируются в loc как есть,
// без какой-либо конвертации зон.
func ParseInstantIn(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// ISO-8601 определяем по наличию разделителя 'T'
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
		}
		return &t, nil
	}

	// Легаси-форма: "HH:mm:ss dd/MM/yyyy", ровно две части через пробел
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q: expected time and date parts", ErrMalformed, s)
	}

	t, err := time.ParseInLocation(LegacyLayout, parts[0]+" "+parts[1], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}

	return &t, nil
}
