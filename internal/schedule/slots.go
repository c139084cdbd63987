package schedule

import (
	"github.com/Freeeeeet/meetpoll/internal/model"
)

// BuildSlots строит упорядоченный список слотов из параметров встречи.
// Функция чистая и детерминированная: одинаковый вход всегда даёт
// одинаковый результат, включая идентификаторы. Если окно встречи
// нарушает инварианты (end <= start, нулевая длительность) - возвращает
// пустой список, а не ошибку.
func BuildSlots(meeting *model.Meeting) []model.SlotDefinition {
	if meeting == nil {
		return nil
	}

	start, err := model.ParseMinutes(meeting.WindowStart)
	if err != nil {
		return nil
	}
	end, err := model.ParseMinutes(meeting.WindowEnd)
	if err != nil {
		return nil
	}

	duration := meeting.DurationMinutes
	if end <= start || duration <= 0 {
		return nil
	}

	dates := model.NormalizeDates(meeting.Dates)

	var slots []model.SlotDefinition
	for _, dateKey := range dates {
		for cursor := start; cursor+duration <= end; cursor += duration {
			slots = append(slots, model.SlotDefinition{
				ID:           model.SlotID(dateKey, cursor),
				DateKey:      dateKey,
				StartMinutes: cursor,
				EndMinutes:   cursor + duration,
			})
		}
	}

	return slots
}

// SlotsByDate группирует слоты по ключу даты, сохраняя порядок внутри дня
func SlotsByDate(slots []model.SlotDefinition) map[string][]model.SlotDefinition {
	grouped := make(map[string][]model.SlotDefinition)
	for _, slot := range slots {
		grouped[slot.DateKey] = append(grouped[slot.DateKey], slot)
	}
	return grouped
}
