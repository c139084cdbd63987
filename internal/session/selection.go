package session

import "github.com/Freeeeeet/meetpoll/internal/model"

// GestureMode режим жеста выделения: добавлять или убирать слоты
type GestureMode string

const (
	GestureAdd    GestureMode = "add"
	GestureRemove GestureMode = "remove"
)

// Selection набор выбранных участником слотов плюс состояние жеста
// drag-выделения. Режим жеста фиксируется один раз в момент нажатия:
// если начальный слот был выбран - жест убирает, иначе добавляет.
// Режим действует на каждый слот до отпускания, независимо от того,
// был ли конкретный слот выбран раньше.
type Selection struct {
	selected map[string]struct{}

	dragging bool
	mode     GestureMode
}

func NewSelection() *Selection {
	return &Selection{selected: make(map[string]struct{})}
}

// PointerDown начинает жест на указанном слоте и применяет режим к нему
func (s *Selection) PointerDown(slotID string) {
	s.dragging = true
	if _, ok := s.selected[slotID]; ok {
		s.mode = GestureRemove
	} else {
		s.mode = GestureAdd
	}
	s.applyMode(slotID)
}

// PointerEnter применяет зафиксированный режим к слоту под курсором
func (s *Selection) PointerEnter(slotID string) {
	if !s.dragging {
		return
	}
	s.applyMode(slotID)
}

// PointerUp завершает жест
func (s *Selection) PointerUp() {
	s.dragging = false
}

func (s *Selection) applyMode(slotID string) {
	if s.mode == GestureRemove {
		delete(s.selected, slotID)
	} else {
		s.selected[slotID] = struct{}{}
	}
}

// Contains проверяет, выбран ли слот
func (s *Selection) Contains(slotID string) bool {
	_, ok := s.selected[slotID]
	return ok
}

// Mode возвращает текущий режим жеста
func (s *Selection) Mode() GestureMode {
	return s.mode
}

// Dragging сообщает, идёт ли жест
func (s *Selection) Dragging() bool {
	return s.dragging
}

// SlotIDs возвращает выбранные слоты в каноничном отсортированном виде
func (s *Selection) SlotIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return model.NormalizeSlotIDs(ids)
}
