package schedule

import (
	"testing"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeeting() *model.Meeting {
	return &model.Meeting{
		Slug:            "abc123",
		Title:           "Планёрка",
		WindowStart:     "09:00",
		WindowEnd:       "10:00",
		DurationMinutes: 30,
		Dates:           []string{"2025-03-10"},
	}
}

func TestBuildSlotsExample(t *testing.T) {
	slots := BuildSlots(testMeeting())

	require.Len(t, slots, 2)
	assert.Equal(t, "2025-03-10-540", slots[0].ID)
	assert.Equal(t, 540, slots[0].StartMinutes)
	assert.Equal(t, 570, slots[0].EndMinutes)
	assert.Equal(t, "2025-03-10-570", slots[1].ID)
	assert.Equal(t, 570, slots[1].StartMinutes)
	assert.Equal(t, 600, slots[1].EndMinutes)
}

func TestBuildSlotsPerDateCount(t *testing.T) {
	meeting := testMeeting()
	meeting.WindowStart = "09:00"
	meeting.WindowEnd = "17:30"
	meeting.DurationMinutes = 60
	meeting.Dates = []string{"2025-03-12", "2025-03-10", "2025-03-11"}

	slots := BuildSlots(meeting)

	// floor((17:30-09:00)/60) = 8 слотов на каждую дату
	require.Len(t, slots, 24)

	byDate := SlotsByDate(slots)
	for _, dateKey := range meeting.Dates {
		require.Len(t, byDate[dateKey], 8)
	}

	// Даты идут по возрастанию, внутри даты слоты строго по возрастанию
	// и без наложений
	assert.Equal(t, "2025-03-10", slots[0].DateKey)
	assert.Equal(t, "2025-03-12", slots[23].DateKey)
	for i := 1; i < len(slots); i++ {
		if slots[i].DateKey != slots[i-1].DateKey {
			assert.Greater(t, slots[i].DateKey, slots[i-1].DateKey)
			continue
		}
		assert.Equal(t, slots[i-1].EndMinutes, slots[i].StartMinutes)
	}

	// Первый слот каждой даты начинается с начала окна
	for _, daySlots := range byDate {
		assert.Equal(t, 540, daySlots[0].StartMinutes)
	}
}

func TestBuildSlotsDeterministic(t *testing.T) {
	first := BuildSlots(testMeeting())
	second := BuildSlots(testMeeting())

	assert.Equal(t, first, second)
}

func TestBuildSlotsDefensiveEmpty(t *testing.T) {
	inverted := testMeeting()
	inverted.WindowStart = "10:00"
	inverted.WindowEnd = "09:00"
	assert.Empty(t, BuildSlots(inverted))

	equal := testMeeting()
	equal.WindowEnd = equal.WindowStart
	assert.Empty(t, BuildSlots(equal))

	zeroDuration := testMeeting()
	zeroDuration.DurationMinutes = 0
	assert.Empty(t, BuildSlots(zeroDuration))

	badTime := testMeeting()
	badTime.WindowStart = "garbage"
	assert.Empty(t, BuildSlots(badTime))

	assert.Empty(t, BuildSlots(nil))
}

func TestBuildSlotsDropsIncompleteTrailingSlot(t *testing.T) {
	meeting := testMeeting()
	meeting.WindowEnd = "09:50"

	// 50 минут окна при длительности 30 - помещается только один слот
	slots := BuildSlots(meeting)
	require.Len(t, slots, 1)
	assert.Equal(t, 540, slots[0].StartMinutes)
}

func TestBuildSlotsDeduplicatesDates(t *testing.T) {
	meeting := testMeeting()
	meeting.Dates = []string{"2025-03-10", "2025-03-10"}

	slots := BuildSlots(meeting)
	assert.Len(t, slots, 2)
}
