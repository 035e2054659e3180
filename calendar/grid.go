package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Cell is one day slot of a month grid. Padding cells before the 1st and
// after the last day have Day == 0.
type Cell struct {
	Day      int
	Today    bool
	Holidays []string
}

func (c Cell) IsHoliday() bool {
	return len(c.Holidays) > 0
}

// MonthGrid lays out a month in weeks starting on Sunday.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]Cell
}

// NewMonthGrid builds the grid for month of year. holidays may span any
// period; only the ones inside the month are marked. today is supplied by
// the caller and marks at most one cell.
func NewMonthGrid(year int, month time.Month, holidays []Holiday, today Date) MonthGrid {
	g := MonthGrid{Year: year, Month: month}
	days := DaysIn(year, month)
	col := int(Date{Year: year, Month: month, Day: 1}.Weekday())

	var week [7]Cell
	for day := 1; day <= days; day++ {
		date := Date{Year: year, Month: month, Day: day}
		cell := Cell{Day: day, Today: date == today}
		for _, h := range On(holidays, date) {
			cell.Holidays = append(cell.Holidays, h.Name)
		}
		week[col] = cell
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]Cell{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// YearGrid returns the twelve month grids of year.
func YearGrid(year int, holidays []Holiday, today Date) []MonthGrid {
	grids := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		grids = append(grids, NewMonthGrid(year, m, holidays, today))
	}
	return grids
}

// String renders the grid as text. Holidays carry a trailing '*' and
// today is bracketed.
func (g MonthGrid) String() string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", g.Month, g.Year)
	fmt.Fprintf(&b, "%*s\n", (7*cellWidth+len(title))/2, title)
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		fmt.Fprintf(&b, " %s  ", name)
	}
	b.WriteString("\n")
	for _, week := range g.Weeks {
		for _, cell := range week {
			b.WriteString(formatCell(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

const cellWidth = 5

func formatCell(c Cell) string {
	if c.Day == 0 {
		return strings.Repeat(" ", cellWidth)
	}
	open, mark, closing := " ", " ", " "
	if c.IsHoliday() {
		mark = "*"
	}
	if c.Today {
		open, closing = "[", "]"
	}
	return fmt.Sprintf("%s%2d%s%s", open, c.Day, mark, closing)
}
