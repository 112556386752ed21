package calendarimage

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"sync"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontStyle int

const (
	fontRegular fontStyle = iota
	fontBold
)

// Размеры и отступы
const (
	imageWidth   = 770
	headerHeight = 90
	weekdayRowH  = 36
	cellSize     = 100
	cellPadding  = 6
	cellRadius   = 10.0
	legendHeight = 50
	gridLeft     = (imageWidth - cellSize*7) / 2
)

// Шрифты
const (
	titleFontSize   = 30.0
	weekdayFontSize = 16.0
	dayFontSize     = 24.0
	legendFontSize  = 14.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 230}
	weekdayTextColor = color.RGBA{110, 115, 120, 220}

	availableColor   = color.RGBA{133, 193, 85, 220}
	unavailableColor = color.RGBA{228, 229, 232, 255}
	pastColor        = color.RGBA{205, 205, 205, 200}
	selectedColor    = color.RGBA{66, 133, 244, 235}
	todayBorderColor = color.NRGBA{255, 99, 71, 230}

	dayTextColor      = color.RGBA{20, 24, 28, 230}
	otherMonthText    = color.RGBA{150, 150, 150, 200}
	selectedTextColor = color.RGBA{255, 255, 255, 255}
)

var (
	fontsOnce   sync.Once
	parsedFonts map[fontStyle]*opentype.Font
)

// loadFont ставит шрифт Go нужного размера, при ошибке разбора остаётся basicfont
func loadFont(dc *gg.Context, size float64, style fontStyle) {
	fontsOnce.Do(func() {
		parsedFonts = make(map[fontStyle]*opentype.Font)
		for st, data := range map[fontStyle][]byte{fontRegular: goregular.TTF, fontBold: gobold.TTF} {
			if f, err := opentype.Parse(data); err == nil {
				parsedFonts[st] = f
			}
		}
	})

	if f, ok := parsedFonts[style]; ok {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// Render рисует сетку месяца в PNG.
// Цвет ячейки: зелёная доступна, серая прошла, синяя выбрана; сегодня обведено.
func Render(grid scheduling.Grid, title string) ([]byte, error) {
	weeks := grid.Weeks()
	if len(weeks) == 0 {
		return nil, fmt.Errorf("render calendar: empty grid")
	}

	height := headerHeight + weekdayRowH + len(weeks)*cellSize + legendHeight
	dc := gg.NewContext(imageWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()

	if title == "" {
		title = MonthTitle(grid.Cursor)
	}
	drawHeader(dc, title)
	drawWeekdays(dc)
	for row, week := range weeks {
		for col, cell := range week {
			x := float64(gridLeft + col*cellSize)
			y := float64(headerHeight + weekdayRowH + row*cellSize)
			drawCell(dc, cell, x, y)
		}
	}
	drawLegend(dc, float64(height-legendHeight))

	return encodeImage(dc)
}

// MonthTitle заголовок вида "March 2024"
func MonthTitle(cursor scheduling.MonthCursor) string {
	return cursor.Month.String() + " " + strconv.Itoa(cursor.Year)
}

func drawHeader(dc *gg.Context, title string) {
	loadFont(dc, titleFontSize, fontBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

func drawWeekdays(dc *gg.Context) {
	loadFont(dc, weekdayFontSize, fontBold)
	dc.SetColor(weekdayTextColor)
	for i := 0; i < 7; i++ {
		label := time.Weekday(i).String()[:3]
		x := float64(gridLeft+i*cellSize) + cellSize/2
		dc.DrawStringAnchored(label, x, float64(headerHeight)+weekdayRowH/2, 0.5, 0.5)
	}
}

func drawCell(dc *gg.Context, cell model.CalendarCell, x, y float64) {
	bx := x + cellPadding
	by := y + cellPadding
	size := float64(cellSize - 2*cellPadding)

	dc.SetColor(cellColor(cell))
	dc.DrawRoundedRectangle(bx, by, size, size, cellRadius)
	dc.Fill()

	if cell.IsToday {
		dc.SetColor(todayBorderColor)
		dc.SetLineWidth(3)
		dc.DrawRoundedRectangle(bx+1.5, by+1.5, size-3, size-3, cellRadius)
		dc.Stroke()
	}

	style := fontRegular
	if cell.IsCurrentMonth {
		style = fontBold
	}
	loadFont(dc, dayFontSize, style)
	dc.SetColor(cellTextColor(cell))
	dc.DrawStringAnchored(strconv.Itoa(cell.Date.Day()), bx+size/2, by+size/2, 0.5, 0.5)
}

func cellColor(cell model.CalendarCell) color.Color {
	switch {
	case cell.IsSelected:
		return selectedColor
	case cell.IsPast:
		return pastColor
	case cell.IsAvailable:
		return availableColor
	default:
		return unavailableColor
	}
}

func cellTextColor(cell model.CalendarCell) color.Color {
	switch {
	case cell.IsSelected:
		return selectedTextColor
	case !cell.IsCurrentMonth:
		return otherMonthText
	default:
		return dayTextColor
	}
}

func drawLegend(dc *gg.Context, top float64) {
	items := []struct {
		Label string
		Clr   color.Color
	}{
		{"Available", availableColor},
		{"Selected", selectedColor},
		{"Past", pastColor},
		{"Unavailable", unavailableColor},
	}

	boxW, boxH := 20.0, 14.0
	x := float64(gridLeft) + cellPadding
	y := top + (legendHeight-boxH)/2

	loadFont(dc, legendFontSize, fontRegular)
	for _, item := range items {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(item.Label, x+boxW+8, y+boxH/2, 0, 0.35)
		w, _ := dc.MeasureString(item.Label)
		x += boxW + 8 + w + 28
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
