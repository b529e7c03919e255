// Package reportcard writes the end-of-day stats as a one-page PDF.
package reportcard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/tatianab/school-days/internal/minigame"
	"github.com/tatianab/school-days/internal/models"
)

// Card is everything printed on a report card.
type Card struct {
	Session      string
	Date         time.Time
	Name         string
	GPA          float64
	Grades       map[models.Subject]int
	Popularity   int
	Energy       int
	Stress       int
	Achievements []string
	Results      []minigame.Result
	Verdict      string
}

// FromPlayer collects a card from the final player state.
func FromPlayer(p *models.Player, results []minigame.Result) Card {
	return Card{
		Date:         time.Now(),
		Name:         p.Name(),
		GPA:          p.GPA(),
		Grades:       p.Grades(),
		Popularity:   p.Popularity(),
		Energy:       p.Energy(),
		Stress:       p.Stress(),
		Achievements: p.Achievements(),
		Results:      results,
	}
}

var gameNames = map[string]string{
	minigame.WordPuzzleID:  "Word Puzzle",
	minigame.SentenceFixID: "Grammar Challenge",
	minigame.TypingTestID:  "Typing Test",
	minigame.MathQuizID:    "Math Quiz",
	minigame.ScienceQuizID: "Science Quiz",
}

// Write renders c as a PDF to w.
func Write(w io.Writer, c Card) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("School Days Report Card", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "School Days Report Card", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	sub := c.Date.Format("January 2, 2006")
	if c.Session != "" {
		sub += "  -  session " + c.Session
	}
	pdf.CellFormat(0, 6, sub, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 8, "Student:")
	pdf.SetFont("Helvetica", "", 14)
	pdf.Cell(0, 8, tr(c.Name))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 8, "GPA:")
	pdf.SetFont("Helvetica", "", 14)
	pdf.Cell(0, 8, fmt.Sprintf("%.2f / 4.00", c.GPA))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(220, 230, 245)
	pdf.CellFormat(80, 8, "Subject", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Grade", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Letter", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, s := range models.Subjects {
		g := c.Grades[s]
		pdf.CellFormat(80, 8, s.Label(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprint(g), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, Letter(g), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Wellbeing")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, fmt.Sprintf("Popularity %d   Energy %d   Stress %d", c.Popularity, c.Energy, c.Stress))
	pdf.Ln(10)

	if len(c.Results) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Class Activities")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		for _, r := range c.Results {
			name := gameNames[r.ID]
			if name == "" {
				name = r.ID
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s (%s): +%d points", name, r.Subject.Label(), r.Points))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Achievements")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	ach := "None"
	if len(c.Achievements) > 0 {
		ach = strings.Join(c.Achievements, ", ")
	}
	pdf.MultiCell(0, 6, tr(ach), "", "L", false)

	if c.Verdict != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 12)
		pdf.MultiCell(0, 6, tr(c.Verdict), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("reportcard: %w", err)
	}
	return nil
}

// WriteFile writes the card to path.
func WriteFile(path string, c Card) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reportcard: %w", err)
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Letter maps a numeric grade to a letter grade.
func Letter(grade int) string {
	switch {
	case grade >= 90:
		return "A"
	case grade >= 80:
		return "B"
	case grade >= 70:
		return "C"
	case grade >= 60:
		return "D"
	}
	return "F"
}
