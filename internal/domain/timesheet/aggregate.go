package timesheet

import (
	"fmt"

	"github.com/workfriar/timesheet-backend-go/internal/pkg/timefmt"
)

// RowTotal sums a row's cells into one "H:MM" total.
func RowTotal(row TimesheetRow) (string, error) {
	total := 0
	for _, cell := range row.Cells {
		m, err := timefmt.ToMinutes(cell.Hours)
		if err != nil {
			return "", fmt.Errorf("row %d, %s: %w", row.LocalID, cell.Weekday, err)
		}
		total += m
	}
	return timefmt.FromMinutes(total), nil
}

// Aggregate computes the derived totals for a set of rows. Row order is
// preserved: RowTotals[i] belongs to rows[i]. days is the width of the
// week grid; rows with fewer cells contribute zero to the missing days.
func Aggregate(rows []TimesheetRow, days int) (WeekAggregate, error) {
	perDay := make([]int, days)
	rowTotals := make([]string, 0, len(rows))
	grand := 0

	for _, row := range rows {
		rowMinutes := 0
		for i, cell := range row.Cells {
			m, err := timefmt.ToMinutes(cell.Hours)
			if err != nil {
				return WeekAggregate{}, fmt.Errorf("row %d, %s: %w", row.LocalID, cell.Weekday, err)
			}
			rowMinutes += m
			if i < days {
				perDay[i] += m
			}
		}
		rowTotals = append(rowTotals, timefmt.FromMinutes(rowMinutes))
		grand += rowMinutes
	}

	perDayTotals := make([]string, days)
	for i, m := range perDay {
		perDayTotals[i] = timefmt.FromMinutes(m)
	}

	return WeekAggregate{
		PerDayTotals:  perDayTotals,
		RowTotals:     rowTotals,
		GrandTotal:    timefmt.FromMinutes(grand),
		OverallStatus: ReduceStatus(rows),
	}, nil
}
