package model

import (
	"sort"
	"strings"
	"time"
)

type MeetingResponse struct {
	ID          string    `json:"id"`
	MeetingSlug string    `json:"meeting_slug"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	SlotIDs     []string  `json:"slot_ids"` // отсортированы, без дубликатов
	SubmittedAt time.Time `json:"submitted_at"`
	DeviceID    string    `json:"device_id"`
}

// Normalize приводит поля ответа к каноничному виду перед сохранением
func (r *MeetingResponse) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.SlotIDs = NormalizeSlotIDs(r.SlotIDs)
}

// Validate проверяет обязательные поля ответа
func (r *MeetingResponse) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.SlotIDs) == 0 {
		return ErrNoSlots
	}
	return nil
}

// NormalizeSlotIDs сортирует идентификаторы слотов и убирает дубликаты
func NormalizeSlotIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}
