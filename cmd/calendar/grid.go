package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/calendarimage"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/spf13/cobra"
)

// gridFlags общие флаги команд grid и image
type gridFlags struct {
	days     string
	month    string
	today    string
	selected string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.days, "days", "", "available weekdays, comma separated or JSON array")
	cmd.Flags().StringVar(&f.month, "month", "", "month to show, YYYY-MM (default: month of --today)")
	cmd.Flags().StringVar(&f.today, "today", "", "reference date, YYYY-MM-DD (default: current date)")
	cmd.Flags().StringVar(&f.selected, "selected", "", "selected date, YYYY-MM-DD")
}

func (f *gridFlags) grid() (scheduling.Grid, scheduling.MonthCursor, error) {
	var empty scheduling.Grid

	today := time.Now()
	if f.today != "" {
		t, err := time.Parse(scheduling.DateLayout, f.today)
		if err != nil {
			return empty, scheduling.MonthCursor{}, fmt.Errorf("parse --today: %w", err)
		}
		today = t
	}

	cursor := scheduling.CursorFor(today)
	if f.month != "" {
		t, err := time.Parse("2006-01", f.month)
		if err != nil {
			return empty, cursor, fmt.Errorf("parse --month: %w", err)
		}
		cursor = scheduling.CursorFor(t)
	}

	var selected time.Time
	if f.selected != "" {
		t, err := time.Parse(scheduling.DateLayout, f.selected)
		if err != nil {
			return empty, cursor, fmt.Errorf("parse --selected: %w", err)
		}
		selected = t
	}

	set, err := parseDays(f.days)
	if err != nil {
		return empty, cursor, err
	}

	return scheduling.GenerateGrid(cursor.Year, cursor.Month, set, selected, today), cursor, nil
}

// parseDays принимает "Monday,Friday" или JSON-массив
func parseDays(raw string) (model.WeekdaySet, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		set, err := model.ParseWeekdayJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("parse --days: %w", err)
		}
		return set, nil
	}
	return model.NewWeekdaySet(strings.Split(raw, ",")...), nil
}

func newGridCmd() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month grid for a set of available weekdays",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, cursor, err := flags.grid()
			if err != nil {
				return err
			}
			printGrid(cmd.OutOrStdout(), grid, calendarimage.MonthTitle(cursor))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// printGrid печатает сетку: [d] выбран, *d доступен, (d) другой месяц, . недоступен
func printGrid(w io.Writer, grid scheduling.Grid, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "  Su   Mo   Tu   We   Th   Fr   Sa")

	for _, week := range grid.Weeks() {
		var line strings.Builder
		for _, cell := range week {
			line.WriteString(fmt.Sprintf("%5s", cellLabel(cell)))
		}
		fmt.Fprintln(w, line.String())
	}
}

func cellLabel(cell model.CalendarCell) string {
	day := cell.Date.Day()
	switch {
	case cell.IsSelected:
		return fmt.Sprintf("[%d]", day)
	case !cell.IsCurrentMonth:
		return fmt.Sprintf("(%d)", day)
	case cell.IsAvailable:
		return fmt.Sprintf("*%d", day)
	case cell.IsPast:
		return "."
	default:
		return fmt.Sprintf("%d", day)
	}
}

func newImageCmd() *cobra.Command {
	var (
		flags  gridFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Render the month grid as a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, cursor, err := flags.grid()
			if err != nil {
				return err
			}

			png, err := calendarimage.Render(grid, calendarimage.MonthTitle(cursor))
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved %s (%d bytes)\n", output, len(png))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "calendar.png", "output file")
	return cmd
}
