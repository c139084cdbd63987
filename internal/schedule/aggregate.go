package schedule

import (
	"github.com/Freeeeeet/meetpoll/internal/model"
)

type PopularityTier string

const (
	TierNone   PopularityTier = "none"
	TierLow    PopularityTier = "low"
	TierMedium PopularityTier = "medium"
	TierHigh   PopularityTier = "high"
)

type MatchQuality string

const (
	MatchNone MatchQuality = "none"
	MatchPoor MatchQuality = "poor"
	MatchOkay MatchQuality = "okay"
	MatchGood MatchQuality = "good"
)

// Aggregation агрегированная статистика по ответам участников.
// Всегда пересчитывается заново из списка ответов и никогда не
// сохраняется отдельно от него, поэтому устареть не может.
type Aggregation struct {
	// SlotResponders: slotID -> идентификаторы ответов, выбравших слот,
	// в порядке отправки ответов
	SlotResponders map[string][]string
	// SlotCounts: slotID -> количество выбравших
	SlotCounts map[string]int
	// MaxSlotCount максимум по всем слотам (0 если ответов нет)
	MaxSlotCount int
	// TotalResponses общее количество ответов
	TotalResponses int

	responseSlots map[string][]string
}

// Aggregate считает статистику по слотам из списка ответов.
// Ответы должны быть упорядочены по времени отправки: этот порядок
// определяет порядок идентификаторов в SlotResponders.
func Aggregate(slots []model.SlotDefinition, responses []*model.MeetingResponse) *Aggregation {
	agg := &Aggregation{
		SlotResponders: make(map[string][]string, len(slots)),
		SlotCounts:     make(map[string]int, len(slots)),
		TotalResponses: len(responses),
		responseSlots:  make(map[string][]string, len(responses)),
	}

	known := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		known[slot.ID] = struct{}{}
	}

	for _, response := range responses {
		agg.responseSlots[response.ID] = response.SlotIDs
		for _, slotID := range response.SlotIDs {
			if _, ok := known[slotID]; !ok {
				continue
			}
			agg.SlotResponders[slotID] = append(agg.SlotResponders[slotID], response.ID)
		}
	}

	for slotID, responders := range agg.SlotResponders {
		count := len(responders)
		agg.SlotCounts[slotID] = count
		if count > agg.MaxSlotCount {
			agg.MaxSlotCount = count
		}
	}

	return agg
}

// PopularityTier относительная популярность слота: low/medium/high
// считаются от максимума по всем слотам, а не от абсолютных порогов,
// поэтому тепловая карта осмысленна и для 3, и для 300 участников.
func (a *Aggregation) PopularityTier(slotID string) PopularityTier {
	count := a.SlotCounts[slotID]
	if count == 0 {
		return TierNone
	}
	if a.MaxSlotCount == 1 {
		return TierLow
	}

	ratio := float64(count) / float64(a.MaxSlotCount)
	switch {
	case ratio >= 0.75:
		return TierHigh
	case ratio >= 0.4:
		return TierMedium
	default:
		return TierLow
	}
}

// MatchQuality доля всех ответивших, выбравших указанный слот:
// "если выбрать этот слот, какая часть участников сможет прийти"
func (a *Aggregation) MatchQuality(focusedSlotID string) MatchQuality {
	if focusedSlotID == "" || a.TotalResponses == 0 {
		return MatchNone
	}

	ratio := float64(a.SlotCounts[focusedSlotID]) / float64(a.TotalResponses)
	switch {
	case ratio >= 0.66:
		return MatchGood
	case ratio >= 0.5:
		return MatchOkay
	default:
		return MatchPoor
	}
}

// ResponseSlots возвращает слоты, выбранные указанным ответом
// (для перекрёстной подсветки при наведении на участника)
func (a *Aggregation) ResponseSlots(responseID string) []string {
	return a.responseSlots[responseID]
}
