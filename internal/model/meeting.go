package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Meeting struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	TimeZone        string    `json:"time_zone"`
	WindowStart     string    `json:"window_start"` // HH:MM, минуты от полуночи 0-1439
	WindowEnd       string    `json:"window_end"`   // HH:MM
	DurationMinutes int       `json:"duration_minutes"`
	Dates           []string  `json:"dates"` // YYYY-MM-DD, отсортированы по возрастанию
	CreatedAt       time.Time `json:"created_at"`
	OwnerDeviceID   string    `json:"owner_device_id"`
}

// ParseMinutes разбирает время вида "HH:MM" в минуты от полуночи
func ParseMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}

	var hours, mins int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}

	return hours*60 + mins, nil
}

// FormatMinutes форматирует минуты от полуночи обратно в "HH:MM"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeDates сортирует ключи дат по возрастанию и убирает дубликаты
func NormalizeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	sort.Strings(result)
	return result
}

// Validate проверяет инварианты встречи перед сохранением
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	if len(m.Dates) == 0 {
		return ErrNoDates
	}

	start, err := ParseMinutes(m.WindowStart)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWindow, m.WindowStart)
	}
	end, err := ParseMinutes(m.WindowEnd)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidWindow, m.WindowEnd)
	}

	if m.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if end <= start {
		return ErrWindowOrder
	}
	if end-start < m.DurationMinutes {
		return ErrWindowTooShort
	}

	return nil
}
