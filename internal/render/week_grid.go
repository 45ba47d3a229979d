// Package render draws a room's weekly schedule grid as a PNG: one row per
// block, one column per day, cells colored by slot status with the same
// legend the browser grid uses.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/benjaauf/reservas-salasUSM/internal/formatting"
	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/timeblock"
)

const (
	imageWidth    = 1400
	imageHeight   = 900
	headerHeight  = 60.0
	titleHeight   = 40.0
	legendHeight  = 40.0
	hourColWidth  = 150.0
	cellPadding   = 3.0
	cellRadius    = 6.0
	totalDays     = 7
	gridTopOffset = titleHeight + headerHeight
)

var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	headerBgColor = color.RGBA{230, 232, 235, 255}
	textColor     = color.RGBA{80, 85, 90, 255}
	cellTextColor = color.RGBA{50, 54, 58, 255}
	borderColor   = color.RGBA{200, 203, 207, 255}

	availableColor    = color.RGBA{209, 237, 196, 255} // green
	occupiedColor     = color.RGBA{246, 198, 198, 255} // red
	specificDateColor = color.RGBA{244, 227, 178, 255} // gold
	pendingColor      = color.RGBA{250, 216, 180, 255} // orange
	missingColor      = color.RGBA{235, 235, 235, 255}
)

func statusColor(status model.SlotStatus) color.RGBA {
	colors := map[model.SlotStatus]color.RGBA{
		model.SlotStatusAvailable:    availableColor,
		model.SlotStatusOccupied:     occupiedColor,
		model.SlotStatusSpecificDate: specificDateColor,
		model.SlotStatusPending:      pendingColor,
	}
	if c, ok := colors[status]; ok {
		return c
	}
	return missingColor
}

// WeekGrid renders the room's weekly schedule and returns PNG bytes.
func WeekGrid(room *model.Room) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	drawTitle(dc, room)
	drawDayHeader(dc)
	drawGrid(dc, room.Schedule)
	drawLegend(dc)

	return encodePNG(dc)
}

func drawTitle(dc *gg.Context, room *model.Room) {
	title := fmt.Sprintf("Horario Semanal - Sala %s (%s, %d personas)", room.Number, room.Type, room.Capacity)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, titleHeight/2, 0.5, 0.5)
}

func drawDayHeader(dc *gg.Context) {
	dayWidth := (imageWidth - hourColWidth) / totalDays

	dc.SetColor(headerBgColor)
	dc.DrawRectangle(0, titleHeight, imageWidth, headerHeight)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawStringAnchored("Hora", hourColWidth/2, titleHeight+headerHeight/2, 0.5, 0.5)
	for i, day := range model.Days {
		x := hourColWidth + float64(i)*dayWidth + dayWidth/2
		dc.DrawStringAnchored(string(day), x, titleHeight+headerHeight/2, 0.5, 0.5)
	}
}

func drawGrid(dc *gg.Context, sched model.Schedule) {
	dayWidth := (imageWidth - hourColWidth) / totalDays
	gridHeight := imageHeight - gridTopOffset - legendHeight
	rowHeight := gridHeight / float64(timeblock.MaxBlock)

	for block := timeblock.MinBlock; block <= timeblock.MaxBlock; block++ {
		y := gridTopOffset + float64(block-1)*rowHeight

		dc.SetColor(textColor)
		dc.DrawStringAnchored(formatting.BlockPairLabel(block), hourColWidth/2, y+rowHeight/2-8, 0.5, 0.5)
		dc.DrawStringAnchored(formatting.BlockTimeLabel(block), hourColWidth/2, y+rowHeight/2+8, 0.5, 0.5)

		for i, day := range model.Days {
			x := hourColWidth + float64(i)*dayWidth
			drawCell(dc, sched, day, block, x, y, dayWidth, rowHeight)
		}
	}
}

func drawCell(dc *gg.Context, sched model.Schedule, day model.Day, block int, x, y, w, h float64) {
	slot, ok := sched.Slot(day, block)

	cellColor := missingColor
	label := ""
	if ok {
		cellColor = statusColor(slot.Status)
		label = cellLabel(slot)
	}

	dc.SetColor(cellColor)
	dc.DrawRoundedRectangle(x+cellPadding, y+cellPadding, w-2*cellPadding, h-2*cellPadding, cellRadius)
	dc.Fill()

	dc.SetColor(borderColor)
	dc.DrawRoundedRectangle(x+cellPadding, y+cellPadding, w-2*cellPadding, h-2*cellPadding, cellRadius)
	dc.Stroke()

	if label != "" {
		dc.SetColor(cellTextColor)
		dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
	}
}

func cellLabel(slot model.Slot) string {
	switch slot.Status {
	case model.SlotStatusAvailable:
		return "Disponible"
	case model.SlotStatusOccupied:
		return "Reservado"
	case model.SlotStatusPending:
		return "Pendiente"
	case model.SlotStatusSpecificDate:
		return fmt.Sprintf("Reservas (%d)", len(slot.SpecificDateReservations))
	}
	return ""
}

func drawLegend(dc *gg.Context) {
	entries := []struct {
		c     color.RGBA
		label string
	}{
		{availableColor, formatting.StatusLabel(model.SlotStatusAvailable)},
		{specificDateColor, formatting.StatusLabel(model.SlotStatusSpecificDate)},
		{pendingColor, formatting.StatusLabel(model.SlotStatusPending)},
		{occupiedColor, formatting.StatusLabel(model.SlotStatusOccupied)},
	}

	y := float64(imageHeight) - legendHeight/2
	x := 20.0
	for _, e := range entries {
		dc.SetColor(e.c)
		dc.DrawRectangle(x, y-7, 14, 14)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(e.label, x+22, y, 0, 0.5)

		width, _ := dc.MeasureString(e.label)
		x += 22 + width + 40
	}
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
