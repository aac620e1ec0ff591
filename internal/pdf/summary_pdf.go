package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskboard/internal/models"
)

// SummaryGenerator renders the dashboard aggregation as a one-page PDF.
type SummaryGenerator struct{}

func NewSummaryGenerator() *SummaryGenerator {
	return &SummaryGenerator{}
}

func (g *SummaryGenerator) Write(w io.Writer, s *models.DashboardSummary) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Dashboard Summary")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	doc.Ln(10)

	line := func(format string, args ...any) {
		doc.Cell(0, 7, fmt.Sprintf(format, args...))
		doc.Ln(7)
	}

	line("Projects: %d", s.TotalProjects)
	line("Tasks: %d (completed %d, %.2f%%)", s.TotalTasks, s.CompletedTasks, s.CompletedPercent)
	line("Comments: %d", s.TotalComments)
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Overdue tasks by priority")
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 11)
	if len(s.OverdueByPriority) == 0 {
		line("none")
	}
	for _, priority := range []string{"high", "medium", "low"} {
		if n, ok := s.OverdueByPriority[priority]; ok {
			line("  %s: %d", priority, n)
		}
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("Due within 7 days (%d)", len(s.TasksDueIn7Days)))
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 11)
	for _, t := range s.TasksDueIn7Days {
		due := "no due date"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		line("  %s - due %s (%s)", t.Title, due, t.Priority)
	}

	return doc.Output(w)
}
