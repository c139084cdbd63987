package model

import "fmt"

// SlotDefinition производный слот, никогда не сохраняется в БД.
// Идентификатор детерминирован: любой клиент восстановит его заново
// из параметров встречи без координации.
type SlotDefinition struct {
	ID           string `json:"id"` // dateKey + "-" + startMinutes
	DateKey      string `json:"date_key"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
}

// SlotID собирает идентификатор слота из ключа даты и смещения начала
func SlotID(dateKey string, startMinutes int) string {
	return fmt.Sprintf("%s-%d", dateKey, startMinutes)
}
