package heatmap

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/schedule"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	headerHeight     = 70
	leftLabelsWidth  = 80
	columnWidth      = 140
	rowHeight        = 44
	cellPadding      = 4
	cellBorderRadius = 5.0
	bottomPadding    = 20
)

// Цветовая схема: заливка ячейки соответствует ярусу популярности
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	titleColor     = color.RGBA{60, 64, 70, 255}
	labelColor     = color.RGBA{110, 115, 120, 255}
	cellTextColor  = color.RGBA{20, 24, 28, 230}
	tierNoneColor  = color.RGBA{228, 230, 233, 255}
	tierLowColor   = color.RGBA{200, 228, 180, 255}
	tierMedColor   = color.RGBA{158, 210, 120, 255}
	tierHighColor  = color.RGBA{103, 182, 72, 255}
	gridLabelColor = color.RGBA{90, 95, 100, 220}
)

func tierColor(tier schedule.PopularityTier) color.RGBA {
	switch tier {
	case schedule.TierHigh:
		return tierHighColor
	case schedule.TierMedium:
		return tierMedColor
	case schedule.TierLow:
		return tierLowColor
	default:
		return tierNoneColor
	}
}

// Render рисует тепловую карту доступности: даты по горизонтали,
// слоты дня по вертикали, цвет ячейки - ярус популярности слота.
func Render(meeting *model.Meeting, slots []model.SlotDefinition, agg *schedule.Aggregation) ([]byte, error) {
	if meeting == nil {
		return nil, fmt.Errorf("meeting is nil")
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("meeting has no slots")
	}

	byDate := schedule.SlotsByDate(slots)
	dates := model.NormalizeDates(meeting.Dates)

	rows := 0
	for _, daySlots := range byDate {
		if len(daySlots) > rows {
			rows = len(daySlots)
		}
	}

	width := leftLabelsWidth + columnWidth*len(dates)
	height := headerHeight + rowHeight*rows + bottomPadding

	dc := gg.NewContext(width, height)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// Заголовок встречи
	dc.SetColor(titleColor)
	dc.DrawStringAnchored(meeting.Title, float64(width)/2, 20, 0.5, 0.5)

	// Подписи дат
	for i, dateKey := range dates {
		x := float64(leftLabelsWidth + i*columnWidth + columnWidth/2)
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(dateKey, x, headerHeight-18, 0.5, 0.5)
	}

	// Подписи времени слева (из слотов первого дня)
	if first, ok := byDate[dates[0]]; ok {
		for row, slot := range first {
			y := float64(headerHeight + row*rowHeight + rowHeight/2)
			dc.SetColor(gridLabelColor)
			dc.DrawStringAnchored(model.FormatMinutes(slot.StartMinutes), float64(leftLabelsWidth)/2, y, 0.5, 0.5)
		}
	}

	// Ячейки тепловой карты
	for i, dateKey := range dates {
		for row, slot := range byDate[dateKey] {
			x := float64(leftLabelsWidth + i*columnWidth + cellPadding)
			y := float64(headerHeight + row*rowHeight + cellPadding)
			w := float64(columnWidth - 2*cellPadding)
			h := float64(rowHeight - 2*cellPadding)

			dc.SetColor(tierColor(agg.PopularityTier(slot.ID)))
			dc.DrawRoundedRectangle(x, y, w, h, cellBorderRadius)
			dc.Fill()

			if count := agg.SlotCounts[slot.ID]; count > 0 {
				dc.SetColor(cellTextColor)
				dc.DrawStringAnchored(fmt.Sprintf("%d", count), x+w/2, y+h/2, 0.5, 0.5)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}
