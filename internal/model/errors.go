package model

import "errors"

// Ошибки валидации: обнаруживаются синхронно, до любого обращения к хранилищу
var (
	ErrEmptyTitle      = errors.New("title is required")
	ErrNoDates         = errors.New("at least one date is required")
	ErrInvalidWindow   = errors.New("window time must be in HH:MM format")
	ErrWindowOrder     = errors.New("end time must be after start time")
	ErrWindowTooShort  = errors.New("time window is shorter than slot duration")
	ErrInvalidDuration = errors.New("slot duration must be positive")
	ErrEmptyName       = errors.New("participant name is required")
	ErrNoSlots         = errors.New("at least one slot must be selected")
)

// IsValidation проверяет что ошибка относится к ошибкам валидации
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrEmptyTitle,
		ErrNoDates,
		ErrInvalidWindow,
		ErrWindowOrder,
		ErrWindowTooShort,
		ErrInvalidDuration,
		ErrEmptyName,
		ErrNoSlots,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
