package heatmap

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPNG(t *testing.T) {
	meeting := &model.Meeting{
		Slug:            "abc123",
		Title:           "Планёрка",
		WindowStart:     "09:00",
		WindowEnd:       "11:00",
		DurationMinutes: 30,
		Dates:           []string{"2025-03-10", "2025-03-11"},
	}

	slots := schedule.BuildSlots(meeting)
	agg := schedule.Aggregate(slots, []*model.MeetingResponse{
		{ID: "r1", Name: "Алиса", SlotIDs: []string{"2025-03-10-540", "2025-03-10-570"}},
		{ID: "r2", Name: "Боб", SlotIDs: []string{"2025-03-10-540"}},
	})

	data, err := Render(meeting, slots, agg)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRenderRejectsEmptyInput(t *testing.T) {
	_, err := Render(nil, nil, nil)
	assert.Error(t, err)

	meeting := &model.Meeting{Title: "Пустая", Dates: []string{"2025-03-10"}}
	_, err = Render(meeting, nil, schedule.Aggregate(nil, nil))
	assert.Error(t, err)
}
