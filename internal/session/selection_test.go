package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionAddGesture(t *testing.T) {
	s := NewSelection()

	// Начальный слот не выбран - жест добавляет
	s.PointerDown("a")
	assert.Equal(t, GestureAdd, s.Mode())
	assert.True(t, s.Contains("a"))

	s.PointerEnter("b")
	s.PointerEnter("c")
	s.PointerUp()

	assert.Equal(t, []string{"a", "b", "c"}, s.SlotIDs())
}

func TestSelectionRemoveGesture(t *testing.T) {
	s := NewSelection()
	s.PointerDown("a")
	s.PointerEnter("b")
	s.PointerEnter("c")
	s.PointerUp()

	// Начальный слот уже выбран - жест убирает
	s.PointerDown("a")
	assert.Equal(t, GestureRemove, s.Mode())
	s.PointerEnter("b")
	s.PointerUp()

	assert.Equal(t, []string{"c"}, s.SlotIDs())
}

func TestSelectionModeLatchedForWholeGesture(t *testing.T) {
	s := NewSelection()
	s.PointerDown("b")
	s.PointerUp()

	// Жест начат на невыбранном слоте: режим add действует и на уже
	// выбранный "b" (он остаётся выбранным, а не переключается)
	s.PointerDown("a")
	s.PointerEnter("b")
	s.PointerUp()
	assert.Equal(t, []string{"a", "b"}, s.SlotIDs())

	// Жест начат на выбранном слоте: режим remove действует и на
	// невыбранный "c" (он просто остаётся невыбранным)
	s.PointerDown("a")
	s.PointerEnter("c")
	s.PointerEnter("b")
	s.PointerUp()
	assert.Empty(t, s.SlotIDs())
}

func TestSelectionEnterIgnoredWithoutGesture(t *testing.T) {
	s := NewSelection()
	s.PointerEnter("a")
	assert.Empty(t, s.SlotIDs())
	assert.False(t, s.Dragging())
}

func TestSelectionReenterSameSlotIsIdempotent(t *testing.T) {
	s := NewSelection()
	s.PointerDown("a")
	s.PointerEnter("a")
	s.PointerEnter("a")
	s.PointerUp()

	assert.Equal(t, []string{"a"}, s.SlotIDs())
}
