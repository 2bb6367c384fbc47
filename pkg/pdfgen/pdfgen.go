package pdfgen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
)

const fullDayHours = 8.0

// DaySummary is one row of the weekly summary table.
type DaySummary struct {
	Day   string
	Hours map[string]float64
}

// pto returns the PTO hours recorded on the day.
func (d DaySummary) pto() float64 {
	return d.Hours["PTO"]
}

// total returns all hours recorded on the day, PTO included.
func (d DaySummary) total() float64 {
	var sum float64
	for _, h := range d.Hours {
		sum += h
	}
	return sum
}

// insightFor maps a day's worked and PTO hours to its productivity label.
func insightFor(worked, pto float64) string {
	if pto >= fullDayHours {
		return "On Leave"
	}

	var msg string
	switch {
	case worked >= 10:
		msg = "Excellent! Remember to get some rest."
	case worked >= 8:
		msg = "Excellent! Keep it up."
	case worked >= 4:
		msg = "Good, productive day."
	case worked > 0:
		msg = "Room for improvement."
	}
	if pto > 0 {
		msg += fmt.Sprintf(" (%vh PTO)", pto)
	}
	return msg
}

// Generate renders the weekly timesheet summary as a PDF document.
// Days render in the order given.
func Generate(title string, days []DaySummary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 20)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(30, 10, "Day", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 10, "Details", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 10, "Hours", "1", 0, "C", true, 0, "")
	pdf.CellFormat(65, 10, "Productivity Insight", "1", 1, "C", true, 0, "")

	var totalProductive float64

	for _, day := range days {
		pdf.SetFont("Arial", "", 10)

		pto := day.pto()
		dailyTotal := day.total()
		worked := dailyTotal - pto
		if worked > 0 {
			totalProductive += worked
		}

		details := detailLines(day.Hours)
		rowHeight := float64(len(details)) * 8
		if rowHeight < 16 {
			rowHeight = 16
		}

		left := pdf.GetX()
		top := pdf.GetY()

		pdf.MultiCell(30, rowHeight, day.Day, "1", "C", false)
		pdf.SetXY(left+30, top)
		pdf.MultiCell(70, rowHeight/float64(max(len(details), 1)), joinLines(details), "1", "L", false)
		pdf.SetXY(left+100, top)
		pdf.MultiCell(25, rowHeight, fmt.Sprintf("%v", dailyTotal), "1", "C", false)
		pdf.SetXY(left+125, top)
		pdf.MultiCell(65, rowHeight, insightFor(worked, pto), "1", "C", false)

		pdf.SetXY(left, top+rowHeight)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 12, "Total Productive Hours", "1", 0, "R", true, 0, "")
	pdf.CellFormat(90, 12, fmt.Sprintf("%v hours", totalProductive), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// detailLines lists the day's non-zero activities in stable order.
func detailLines(hours map[string]float64) []string {
	activities := make([]string, 0, len(hours))
	for activity, h := range hours {
		if h > 0 {
			activities = append(activities, activity)
		}
	}
	sort.Strings(activities)

	lines := make([]string, 0, len(activities))
	for _, activity := range activities {
		lines = append(lines, fmt.Sprintf("- %s: %v hrs", activity, hours[activity]))
	}
	return lines
}

func joinLines(lines []string) string {
	var buf bytes.Buffer
	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	return buf.String()
}
