// Package export renders generated documents as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"basegraph.app/blueprint/internal/model"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	SheetOverview     = "Overview"
	SheetRequirements = "Requirements"
	SheetUserStories  = "User Stories"
	SheetDataModel    = "Data Model"
	SheetTimeline     = "Timeline"
	SheetRisks        = "Risks"
)

// Filename is the download name of a document workbook.
func Filename(doc *model.PRD) string {
	return doc.ID + ".xlsx"
}

// Write renders the document as a workbook into w.
func Write(w io.Writer, doc *model.PRD) error {
	f, err := Workbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Workbook builds one sheet per document area. The caller closes the file.
func Workbook(doc *model.PRD) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	w := &sheetWriter{file: f, header: header}
	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	w.table(SheetOverview, []string{"Field", "Value"}, overviewRows(doc))
	w.table(SheetRequirements, []string{"Section", "Requirement"}, requirementRows(doc))
	w.table(SheetUserStories, []string{"ID", "Title", "As a", "I want", "So that", "Priority", "Effort", "Acceptance Criteria"}, storyRows(doc))
	w.table(SheetDataModel, []string{"Entity", "Attribute", "Type", "Required", "Description"}, dataModelRows(doc))
	w.table(SheetTimeline, []string{"Milestone", "Date", "Deliverables"}, timelineRows(doc))
	w.table(SheetRisks, []string{"Risk", "Probability", "Impact", "Mitigation", "Contingency"}, riskRows(doc))

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

type sheetWriter struct {
	file   *excelize.File
	header int
	err    error
}

func (w *sheetWriter) table(sheet string, columns []string, rows [][]any) {
	if w.err != nil {
		return
	}

	if sheet != SheetOverview {
		if _, err := w.file.NewSheet(sheet); err != nil {
			w.err = fmt.Errorf("creating sheet %s: %w", sheet, err)
			return
		}
	}

	head := make([]any, len(columns))
	for i, c := range columns {
		head[i] = c
	}
	if err := w.file.SetSheetRow(sheet, "A1", &head); err != nil {
		w.err = fmt.Errorf("writing %s header: %w", sheet, err)
		return
	}

	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := w.file.SetCellStyle(sheet, "A1", last, w.header); err != nil {
		w.err = fmt.Errorf("styling %s header: %w", sheet, err)
		return
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := w.file.SetSheetRow(sheet, cell, &row); err != nil {
			w.err = fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
			return
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := w.file.SetColWidth(sheet, "A", lastCol, 28); err != nil {
		w.err = fmt.Errorf("sizing %s columns: %w", sheet, err)
	}
}

func overviewRows(doc *model.PRD) [][]any {
	summary := doc.ExecutiveSummary
	return [][]any{
		{"Document ID", doc.ID},
		{"Project", doc.Metadata.ProjectName},
		{"Version", doc.Version},
		{"Status", string(doc.Status)},
		{"Generated", doc.GeneratedAt.Format("2006-01-02")},
		{"Problem Statement", summary.ProblemStatement},
		{"Solution Overview", summary.SolutionOverview},
		{"Business Value", summary.BusinessValue},
		{"Estimated Effort", summary.InvestmentSummary.EstimatedEffort},
		{"Complexity", string(summary.InvestmentSummary.ComplexityLevel)},
		{"Total Duration", doc.TimelineEstimate.TotalDuration},
		{"Key Features", joinLines(summary.KeyFeatures)},
	}
}

func requirementRows(doc *model.PRD) [][]any {
	fr := doc.FunctionalRequirements
	sections := []struct {
		name  string
		items []string
	}{
		{"Core Functionality", fr.CoreFunctionality},
		{"Data Management", fr.DataManagement},
		{"Process Automation", fr.ProcessAutomation},
		{"Reporting & Analytics", fr.ReportingAnalytics},
		{"Integration Features", fr.IntegrationFeatures},
	}

	var rows [][]any
	for _, s := range sections {
		for _, item := range s.items {
			rows = append(rows, []any{s.name, item})
		}
	}
	return rows
}

func storyRows(doc *model.PRD) [][]any {
	rows := make([][]any, 0, len(doc.UserStories))
	for _, s := range doc.UserStories {
		rows = append(rows, []any{
			s.ID, s.Title, s.AsA, s.IWant, s.SoThat,
			string(s.Priority), s.EffortEstimate, joinLines(s.AcceptanceCriteria),
		})
	}
	return rows
}

func dataModelRows(doc *model.PRD) [][]any {
	var rows [][]any
	for _, e := range doc.DataModel.Entities {
		for _, a := range e.Attributes {
			rows = append(rows, []any{e.Name, a.Name, a.Type, yesNo(a.Required), a.Description})
		}
	}
	return rows
}

func timelineRows(doc *model.PRD) [][]any {
	t := doc.TimelineEstimate
	rows := [][]any{{"Project Start", t.StartDate, ""}}
	for _, m := range t.Milestones {
		rows = append(rows, []any{m.Milestone, m.Date, joinLines(m.Deliverables)})
	}
	return append(rows, []any{"Estimated Completion", t.EstimatedCompletion, ""})
}

func riskRows(doc *model.PRD) [][]any {
	rows := make([][]any, 0, len(doc.RiskAssessment.Risks))
	for _, r := range doc.RiskAssessment.Risks {
		rows = append(rows, []any{r.Risk, r.Probability, r.Impact, r.Mitigation, r.Contingency})
	}
	return rows
}

func joinLines(items []string) string {
	return strings.Join(items, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
